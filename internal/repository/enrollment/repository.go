package enrollment

import (
	"context"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type enrollmentRepository struct {
	db repository.Querier
}

func NewEnrollmentRepository(db repository.Querier) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create: второй pending-записи на то же занятие не даст частичный уникальный индекс
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO gym."ENROLLMENT" (user_id, class_id, payment_status)
		VALUES ($1, $2, $3)
		RETURNING enrollment_id, enrollment_date
	`
	err := r.db.QueryRowxContext(ctx, query, enrollment.MemberID, enrollment.ClassID, enrollment.PaymentStatus).
		Scan(&enrollment.ID, &enrollment.EnrollmentDate)
	return repository.MapError(err)
}

func (r *enrollmentRepository) GetPending(ctx context.Context, memberID, classID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	query := `
		SELECT * FROM gym."ENROLLMENT"
		WHERE user_id = $1 AND class_id = $2 AND payment_status = 'pending'
		LIMIT 1`

	err := r.db.GetContext(ctx, &enrollment, query, memberID, classID)
	if err != nil {
		if err = repository.MapError(err); err == repository.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) CompletePending(ctx context.Context, memberID, classID int64) (int64, error) {
	query := `
		UPDATE gym."ENROLLMENT"
		SET payment_status = 'completed'
		WHERE user_id = $1 AND class_id = $2 AND payment_status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, memberID, classID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *enrollmentRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.EnrolledClass, error) {
	var classes []models.EnrolledClass
	query := `
		SELECT c.class_id, c.class_name, c.price, e.enrollment_date, e.payment_status
		FROM gym."ENROLLMENT" e
		JOIN gym."CLASSES" c ON e.class_id = c.class_id
		WHERE e.user_id = $1
		ORDER BY e.enrollment_date DESC
	`
	err := r.db.SelectContext(ctx, &classes, query, memberID)
	return classes, err
}

func (r *enrollmentRepository) GetByClassID(ctx context.Context, classID int64) ([]models.EnrolledMember, error) {
	var members []models.EnrolledMember
	query := `
		SELECT u.username, e.enrollment_date, e.payment_status
		FROM gym."ENROLLMENT" e
		JOIN gym."USER" u ON e.user_id = u.user_id
		WHERE e.class_id = $1
		ORDER BY e.enrollment_date
	`
	err := r.db.SelectContext(ctx, &members, query, classID)
	return members, err
}
