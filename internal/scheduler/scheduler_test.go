package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-ledger/internal/models/config"
	"gym-ledger/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsBadSchedule(t *testing.T) {
	cfg := &config.Config{Ledger: config.LedgerConfig{ExpirySchedule: "every night"}}

	_, err := New(cfg, new(mocks.SubscriptionService), zap.NewNop())
	assert.Error(t, err)
}

func TestExpireSubscriptionsUsesLocalDate(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	subs := new(mocks.SubscriptionService)
	cfg := &config.Config{Ledger: config.LedgerConfig{ExpirySchedule: "5 0 * * *", Location: moscow}}
	s, err := New(cfg, subs, zap.NewNop())
	require.NoError(t, err)

	// 22:30 UTC 1 марта - уже 2 марта по Москве
	s.now = func() time.Time { return time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC) }
	subs.On("ExpireEnded", mock.Anything, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)).Return(int64(3), nil)

	s.expireSubscriptions()

	subs.AssertExpectations(t)
}

func TestExpireSubscriptionsErrorIsNotFatal(t *testing.T) {
	subs := new(mocks.SubscriptionService)
	cfg := &config.Config{Ledger: config.LedgerConfig{ExpirySchedule: "@daily"}}
	s, err := New(cfg, subs, zap.NewNop())
	require.NoError(t, err)

	subs.On("ExpireEnded", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	assert.NotPanics(t, s.expireSubscriptions)
}

func TestStartStop(t *testing.T) {
	cfg := &config.Config{Ledger: config.LedgerConfig{ExpirySchedule: "@daily"}}
	s, err := New(cfg, new(mocks.SubscriptionService), zap.NewNop())
	require.NoError(t, err)

	s.Start()
	assert.NoError(t, s.Stop(context.Background()))
}

func TestCronMessagesGoToZap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	cronLogger(zap.New(core)).Info("skip")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "cron", entry.LoggerName)
	assert.Contains(t, entry.Message, "skip")
}
