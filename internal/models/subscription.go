package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	ID            int64              `db:"subscription_id" json:"id"`
	MemberID      int64              `db:"user_id" json:"member_id"`
	StartDate     time.Time          `db:"start_date" json:"start_date"`
	EndDate       time.Time          `db:"end_date" json:"end_date"`
	RemainingDays int                `db:"remaining_days" json:"remaining_days"`
	IsActive      bool               `db:"is_active" json:"is_active"`
	Status        SubscriptionStatus `db:"status" json:"status"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
}

// Covers проверяет, попадает ли день в период абонемента
func (s *Subscription) Covers(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(s.StartDate)) && !d.After(DateOnly(s.EndDate))
}

// SubscriptionQuote - расчёт стоимости до покупки
type SubscriptionQuote struct {
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Days      int             `json:"days"`
	Cost      decimal.Decimal `json:"cost"`
}

// CREATE TABLE gym."SUBSCRIPTION" - см. pkg/schema.sql
