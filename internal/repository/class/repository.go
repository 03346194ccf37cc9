package class

import (
	"context"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type classRepository struct {
	db repository.Querier
}

func NewClassRepository(db repository.Querier) repository.ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO gym."CLASSES" (class_name, start_date, end_date, price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING class_id
	`
	return r.db.QueryRowxContext(
		ctx,
		query,
		class.Name,
		class.StartDate,
		class.EndDate,
		class.Price,
		class.IsActive,
	).Scan(&class.ID)
}

func (r *classRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	var class models.Class
	query := `SELECT * FROM gym."CLASSES" WHERE class_id = $1`
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, repository.MapError(err)
	}
	return &class, nil
}

func (r *classRepository) GetActive(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	query := `SELECT * FROM gym."CLASSES" WHERE is_active = TRUE ORDER BY start_date, class_id`
	err := r.db.SelectContext(ctx, &classes, query)
	return classes, err
}

func (r *classRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	query := `SELECT * FROM gym."CLASSES" ORDER BY class_id`
	err := r.db.SelectContext(ctx, &classes, query)
	return classes, err
}
