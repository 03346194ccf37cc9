package enrollment_service

import (
	"context"
	"testing"

	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/repository/mocks"
	"gym-ledger/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var yoga = &models.Class{ID: 3, Name: "Yoga", Price: decimal.NewFromInt(20), IsActive: true}

func newService(store *mocks.Store) service.EnrollmentService {
	cfg := &config.Config{Ledger: config.LedgerConfig{AdminID: 1, DayRate: decimal.NewFromInt(1)}}
	return NewEnrollmentService(store, cfg, zap.NewNop())
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()

	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(50)}, nil)
	store.Classes.On("GetByID", ctx, int64(3)).Return(yoga, nil)
	store.Enrollments.On("GetPending", ctx, int64(1), int64(3)).Return(nil, nil)
	store.Enrollments.On("Create", ctx, mock.MatchedBy(func(e *models.Enrollment) bool {
		return e.PaymentStatus == models.PaymentPending
	})).Return(nil)
	store.Payments.On("Create", ctx, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Status == models.PaymentPending && p.Amount.Equal(decimal.NewFromInt(20))
	})).Return(nil)

	receipt, err := newService(store).Enroll(ctx, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, receipt.Enrollment.PaymentStatus)
	assert.True(t, receipt.Payment.Amount.Equal(decimal.NewFromInt(20)))
	store.Members.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestEnrollTwiceRejected(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()

	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1}, nil)
	store.Classes.On("GetByID", ctx, int64(3)).Return(yoga, nil)
	store.Enrollments.On("GetPending", ctx, int64(1), int64(3)).
		Return(&models.Enrollment{ID: 5, MemberID: 1, ClassID: 3, PaymentStatus: models.PaymentPending}, nil)

	_, err := newService(store).Enroll(ctx, 1, 3)

	assert.ErrorIs(t, err, service.ErrAlreadyEnrolled)
	store.Payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnrollConcurrentInsertConflict(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()

	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1}, nil)
	store.Classes.On("GetByID", ctx, int64(3)).Return(yoga, nil)
	store.Enrollments.On("GetPending", ctx, int64(1), int64(3)).Return(nil, nil)
	store.Enrollments.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

	_, err := newService(store).Enroll(ctx, 1, 3)

	assert.ErrorIs(t, err, service.ErrAlreadyEnrolled)
	assert.Equal(t, 1, store.Rollbacks)
}

func TestEnrollUnknownOrInactiveClass(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1}, nil)
	store.Classes.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound)
	_, err := newService(store).Enroll(ctx, 1, 404)
	assert.ErrorIs(t, err, service.ErrClassNotFound)

	store = mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1}, nil)
	store.Classes.On("GetByID", ctx, int64(4)).Return(&models.Class{ID: 4, Price: decimal.NewFromInt(5)}, nil)
	_, err = newService(store).Enroll(ctx, 1, 4)
	assert.ErrorIs(t, err, service.ErrClassInactive)
}

func pendingPayment() *models.Payment {
	return &models.Payment{ID: 9, MemberID: 1, ClassID: 3, Amount: decimal.NewFromInt(20), Status: models.PaymentPending}
}

func TestSettlePayment(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()

	store.Members.On("LockByID", ctx, int64(1)).Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(50)}, nil)
	store.Payments.On("GetPendingForUpdate", ctx, int64(1), int64(3)).Return(pendingPayment(), nil)
	store.Payments.On("CompletePending", ctx, int64(1), int64(3)).Return(int64(1), nil)
	store.Enrollments.On("CompletePending", ctx, int64(1), int64(3)).Return(int64(1), nil)
	store.Transactions.On("Create", ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionClassPayment &&
			tx.SubscriptionID == nil &&
			tx.ClassID != nil && *tx.ClassID == 3 &&
			tx.Amount.Equal(decimal.NewFromInt(20))
	})).Return(nil)
	store.Admins.On("LockByID", ctx, int64(1)).Return(&models.Admin{ID: 1}, nil)
	store.Members.On("AdjustBalance", ctx, int64(1), amount(-20)).Return(nil)
	store.Admins.On("AdjustBalance", ctx, int64(1), amount(20)).Return(nil)

	receipt, err := newService(store).SettlePayment(ctx, models.SettlementRequest{
		MemberID: 1,
		ClassID:  3,
		Amount:   decimal.NewNullDecimal(decimal.NewFromInt(20)),
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, receipt.Payment.Status)
	assert.Equal(t, "30.00", receipt.MemberBalance.StringFixed(2))
	assert.Equal(t, 1, store.Commits)
	store.AssertExpectations(t)
}

func TestSettlePaymentRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		balance int64
		payment *models.Payment
		amount  decimal.NullDecimal
		wantErr error
	}{
		{
			name:    "nothing pending",
			balance: 50,
			wantErr: service.ErrNothingToSettle,
		},
		{
			name:    "amount mismatch",
			balance: 50,
			payment: pendingPayment(),
			amount:  decimal.NewNullDecimal(decimal.NewFromInt(15)),
			wantErr: service.ErrAmountMismatch,
		},
		{
			name:    "insufficient balance",
			balance: 10,
			payment: pendingPayment(),
			wantErr: service.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewStore()
			store.Members.On("LockByID", ctx, int64(1)).
				Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(tt.balance)}, nil)
			if tt.payment == nil {
				store.Payments.On("GetPendingForUpdate", ctx, int64(1), int64(3)).Return(nil, nil)
			} else {
				store.Payments.On("GetPendingForUpdate", ctx, int64(1), int64(3)).Return(tt.payment, nil)
			}

			_, err := newService(store).SettlePayment(ctx, models.SettlementRequest{MemberID: 1, ClassID: 3, Amount: tt.amount})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, service.KindPrecondition, service.KindOf(err))
			store.Payments.AssertNotCalled(t, "CompletePending", mock.Anything, mock.Anything, mock.Anything)
			store.Members.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
