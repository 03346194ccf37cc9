package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionSubscriptionPurchase TransactionType = "subscription_purchase"
	TransactionClassPayment         TransactionType = "class_payment"
)

const TransactionCompleted = "completed"

// Transaction - журнал движения денег, только добавление
type Transaction struct {
	ID             int64           `db:"transaction_id" json:"id"`
	MemberID       int64           `db:"user_id" json:"member_id"`
	SubscriptionID *int64          `db:"subscription_id" json:"subscription_id,omitempty"`
	ClassID        *int64          `db:"class_id" json:"class_id,omitempty"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Type           TransactionType `db:"transaction_type" json:"type"`
	Status         string          `db:"status" json:"status"`
	Date           time.Time       `db:"transaction_date" json:"date"`
}

// TransactionView - строка списка платежей для администратора
type TransactionView struct {
	Transaction
	Username          string     `db:"username" json:"username"`
	SubscriptionStart *time.Time `db:"subscription_start" json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `db:"subscription_end" json:"subscription_end,omitempty"`
}
