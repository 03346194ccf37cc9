package member_service

import (
	"context"
	"errors"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"
)

type memberService struct {
	store repository.Store
}

func NewMemberService(store repository.Store) service.MemberService {
	return &memberService{store: store}
}

func (s *memberService) GetProfile(ctx context.Context, memberID int64) (*models.MemberProfile, error) {
	repos := s.store.Repositories()

	member, err := repos.Members.GetByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, service.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	subscription, err := repos.Subscriptions.GetCurrentByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &models.MemberProfile{Member: member, Subscription: subscription}, nil
}

func (s *memberService) GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error) {
	member, err := s.store.Repositories().Members.GetByTelegramID(ctx, telegramID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, service.ErrMemberNotFound
	}
	return member, err
}

func (s *memberService) GetTransactions(ctx context.Context, memberID int64) ([]models.Transaction, error) {
	return s.store.Repositories().Transactions.GetByMemberID(ctx, memberID)
}
