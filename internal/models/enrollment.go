package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Enrollment struct {
	ID             int64         `db:"enrollment_id" json:"id"`
	MemberID       int64         `db:"user_id" json:"member_id"`
	ClassID        int64         `db:"class_id" json:"class_id"`
	EnrollmentDate time.Time     `db:"enrollment_date" json:"enrollment_date"`
	PaymentStatus  PaymentStatus `db:"payment_status" json:"payment_status"`
}

type Payment struct {
	ID        int64           `db:"payment_id" json:"id"`
	MemberID  int64           `db:"user_id" json:"member_id"`
	ClassID   int64           `db:"class_id" json:"class_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Status    PaymentStatus   `db:"payment_status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// EnrolledClass - строка "мои занятия" для посетителя
type EnrolledClass struct {
	ClassID        int64           `db:"class_id" json:"class_id"`
	ClassName      string          `db:"class_name" json:"class_name"`
	Price          decimal.Decimal `db:"price" json:"price"`
	EnrollmentDate time.Time       `db:"enrollment_date" json:"enrollment_date"`
	PaymentStatus  PaymentStatus   `db:"payment_status" json:"payment_status"`
}

// EnrolledMember - строка списка записавшихся для администратора
type EnrolledMember struct {
	Username       string        `db:"username" json:"username"`
	EnrollmentDate time.Time     `db:"enrollment_date" json:"enrollment_date"`
	PaymentStatus  PaymentStatus `db:"payment_status" json:"payment_status"`
}

type EnrollmentReceipt struct {
	Enrollment *Enrollment `json:"enrollment"`
	Payment    *Payment    `json:"payment"`
}

type SettlementRequest struct {
	MemberID int64
	ClassID  int64
	// Amount, если передан, обязан совпасть с суммой в PAYMENT
	Amount decimal.NullDecimal
}

type SettlementReceipt struct {
	Payment       *Payment        `json:"payment"`
	Transaction   *Transaction    `json:"transaction"`
	MemberBalance decimal.Decimal `json:"member_balance"`
}
