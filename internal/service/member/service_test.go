package member_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/repository/mocks"
	"gym-ledger/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileWithActiveSubscription(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()

	member := &models.Member{ID: 1, Username: "anna", WalletBalance: decimal.RequireFromString("90.00")}
	current := &models.Subscription{
		ID:            5,
		MemberID:      1,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		RemainingDays: 8,
		IsActive:      true,
		Status:        models.SubscriptionActive,
	}
	store.Members.On("GetByID", ctx, int64(1)).Return(member, nil)
	store.Subscriptions.On("GetCurrentByMemberID", ctx, int64(1)).Return(current, nil)

	profile, err := NewMemberService(store).GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "anna", profile.Member.Username)
	assert.Equal(t, 8, profile.Subscription.RemainingDays)
	store.AssertExpectations(t)
}

func TestGetProfileWithoutSubscription(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()
	store.Members.On("GetByID", ctx, int64(2)).Return(&models.Member{ID: 2}, nil)
	store.Subscriptions.On("GetCurrentByMemberID", ctx, int64(2)).Return((*models.Subscription)(nil), nil)

	profile, err := NewMemberService(store).GetProfile(ctx, 2)

	require.NoError(t, err)
	assert.Nil(t, profile.Subscription)
}

func TestGetProfileUnknownMember(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()
	store.Members.On("GetByID", ctx, int64(9)).Return((*models.Member)(nil), repository.ErrNotFound)

	_, err := NewMemberService(store).GetProfile(ctx, 9)

	assert.ErrorIs(t, err, service.ErrMemberNotFound)
	store.Subscriptions.AssertNotCalled(t, "GetCurrentByMemberID")
}

func TestGetByTelegramID(t *testing.T) {
	ctx := context.Background()

	t.Run("linked", func(t *testing.T) {
		store := mocks.NewStore()
		store.Members.On("GetByTelegramID", ctx, int64(777)).Return(&models.Member{ID: 1}, nil)

		member, err := NewMemberService(store).GetByTelegramID(ctx, 777)

		require.NoError(t, err)
		assert.Equal(t, int64(1), member.ID)
	})

	t.Run("not linked", func(t *testing.T) {
		store := mocks.NewStore()
		store.Members.On("GetByTelegramID", ctx, int64(778)).Return((*models.Member)(nil), repository.ErrNotFound)

		_, err := NewMemberService(store).GetByTelegramID(ctx, 778)

		assert.ErrorIs(t, err, service.ErrMemberNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := mocks.NewStore()
		boom := errors.New("connection reset")
		store.Members.On("GetByTelegramID", ctx, int64(779)).Return((*models.Member)(nil), boom)

		_, err := NewMemberService(store).GetByTelegramID(ctx, 779)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, service.KindInternal, service.KindOf(err))
	})
}
