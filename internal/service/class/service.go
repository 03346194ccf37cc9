package class_service

import (
	"context"
	"errors"
	"strings"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"

	"go.uber.org/zap"
)

type classService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewClassService(store repository.Store, logger *zap.Logger) service.ClassService {
	return &classService{
		store:  store,
		logger: logger.Named("class"),
	}
}

func (s *classService) CreateClass(ctx context.Context, input models.NewClass) (*models.Class, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price.IsNegative() {
		return nil, service.ErrInvalidInput
	}
	start, end := models.DateOnly(input.StartDate), models.DateOnly(input.EndDate)
	if end.Before(start) {
		return nil, service.ErrInvalidDateRange
	}

	class := &models.Class{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Price:     input.Price,
		IsActive:  true,
	}
	if err := s.store.Repositories().Classes.Create(ctx, class); err != nil {
		s.logger.Error("❌ Ошибка создания занятия", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Занятие создано", zap.Int64("class_id", class.ID), zap.String("name", name))
	return class, nil
}

func (s *classService) ListActive(ctx context.Context) ([]models.Class, error) {
	return s.store.Repositories().Classes.GetActive(ctx)
}

func (s *classService) ListAll(ctx context.Context) ([]models.Class, error) {
	return s.store.Repositories().Classes.GetAll(ctx)
}

func (s *classService) GetEnrolledMembers(ctx context.Context, classID int64) ([]models.EnrolledMember, error) {
	if _, err := s.store.Repositories().Classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrClassNotFound
		}
		return nil, err
	}
	return s.store.Repositories().Enrollments.GetByClassID(ctx, classID)
}
