package subscription_service

import (
	"context"
	"errors"
	"testing"
	"time"

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

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func newService(store *mocks.Store) *subscriptionService {
	cfg := &config.Config{Ledger: config.LedgerConfig{AdminID: 1, DayRate: decimal.NewFromInt(1)}}
	return NewSubscriptionService(store, cfg, zap.NewNop()).(*subscriptionService)
}

func TestQuote(t *testing.T) {
	s := newService(mocks.NewStore())

	quote, err := s.Quote(date("2024-01-01"), date("2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 10, quote.Days)
	assert.True(t, quote.Cost.Equal(decimal.NewFromInt(10)))

	quote, err = s.Quote(date("2024-01-05"), date("2024-01-05"))
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Days)

	_, err = s.Quote(date("2024-01-10"), date("2024-01-01"))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)
}

func TestQuoteLongRange(t *testing.T) {
	s := newService(mocks.NewStore())

	quote, err := s.Quote(date("2024-01-01"), date("2400-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 137332, quote.Days)
	assert.True(t, quote.Cost.Equal(decimal.NewFromInt(137332)))
}

func TestQuoteUsesConfiguredRate(t *testing.T) {
	cfg := &config.Config{Ledger: config.LedgerConfig{AdminID: 1, DayRate: decimal.RequireFromString("2.50")}}
	s := NewSubscriptionService(mocks.NewStore(), cfg, zap.NewNop())

	quote, err := s.Quote(date("2024-03-01"), date("2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, "10.00", quote.Cost.StringFixed(2))
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	start, end := date("2024-01-01"), date("2024-01-10")

	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).
		Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(100)}, nil)
	store.Subscriptions.On("FindOverlappingActive", ctx, int64(1), start, end).Return(nil, nil)
	store.Subscriptions.On("Create", ctx, mock.AnythingOfType("*models.Subscription")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Subscription).ID = 42 }).
		Return(nil)
	store.Transactions.On("Create", ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionSubscriptionPurchase &&
			tx.Status == models.TransactionCompleted &&
			tx.SubscriptionID != nil && *tx.SubscriptionID == 42 &&
			tx.Amount.Equal(decimal.NewFromInt(10))
	})).Return(nil)
	store.Admins.On("LockByID", ctx, int64(1)).Return(&models.Admin{ID: 1}, nil)
	store.Members.On("AdjustBalance", ctx, int64(1), amount(-10)).Return(nil)
	store.Admins.On("AdjustBalance", ctx, int64(1), amount(10)).Return(nil)

	sub, err := newService(store).Purchase(ctx, 1, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(42), sub.ID)
	assert.Equal(t, 10, sub.RemainingDays)
	assert.True(t, sub.IsActive)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.Equal(t, 1, store.Commits)
	store.AssertExpectations(t)
}

func TestPurchaseOverlapWinsOverBalance(t *testing.T) {
	ctx := context.Background()
	start, end := date("2024-01-05"), date("2024-01-07")

	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).
		Return(&models.Member{ID: 1, WalletBalance: decimal.Zero}, nil)
	store.Subscriptions.On("FindOverlappingActive", ctx, int64(1), start, end).
		Return(&models.Subscription{ID: 3, StartDate: date("2024-01-01"), EndDate: date("2024-01-10")}, nil)

	_, err := newService(store).Purchase(ctx, 1, start, end)

	assert.ErrorIs(t, err, service.ErrOverlappingSubscription)
	assert.Equal(t, service.KindPrecondition, service.KindOf(err))
	assert.Equal(t, 1, store.Rollbacks)
	store.Subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.Members.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	start, end := date("2024-02-01"), date("2024-02-10")

	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).
		Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(5)}, nil)
	store.Subscriptions.On("FindOverlappingActive", ctx, int64(1), start, end).Return(nil, nil)

	_, err := newService(store).Purchase(ctx, 1, start, end)

	assert.ErrorIs(t, err, service.ErrInsufficientFunds)
	store.Subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.Members.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	store.Admins.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseInvalidRangeTouchesNothing(t *testing.T) {
	store := mocks.NewStore()

	_, err := newService(store).Purchase(context.Background(), 1, date("2024-01-10"), date("2024-01-01"))

	assert.ErrorIs(t, err, service.ErrInvalidDateRange)
	assert.Equal(t, service.KindValidation, service.KindOf(err))
	assert.Zero(t, store.Commits+store.Rollbacks)
	store.Members.AssertNotCalled(t, "LockByID", mock.Anything, mock.Anything)
}

func TestPurchaseStorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	start, end := date("2024-01-01"), date("2024-01-10")
	boom := errors.New("connection reset")

	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(1)).
		Return(&models.Member{ID: 1, WalletBalance: decimal.NewFromInt(100)}, nil)
	store.Subscriptions.On("FindOverlappingActive", ctx, int64(1), start, end).Return(nil, nil)
	store.Subscriptions.On("Create", ctx, mock.Anything).Return(nil)
	store.Transactions.On("Create", ctx, mock.Anything).Return(boom)

	_, err := newService(store).Purchase(ctx, 1, start, end)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, service.KindInternal, service.KindOf(err))
	assert.Equal(t, 1, store.Rollbacks)
	store.Members.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseUnknownMember(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore()
	store.Members.On("LockByID", ctx, int64(9)).Return(nil, repository.ErrNotFound)

	_, err := newService(store).Purchase(ctx, 9, date("2024-01-01"), date("2024-01-02"))
	assert.ErrorIs(t, err, service.ErrMemberNotFound)
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestExpireEnded(t *testing.T) {
	ctx := context.Background()
	today := date("2024-03-01")

	store := mocks.NewStore()
	store.Subscriptions.On("ExpireEnded", ctx, today).Return(int64(2), nil)
	store.Subscriptions.On("RefreshRemainingDays", ctx, today).Return(int64(5), nil)

	expired, err := newService(store).ExpireEnded(ctx, today.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(2), expired)
	store.AssertExpectations(t)
}
