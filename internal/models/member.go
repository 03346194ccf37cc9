package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Member - посетитель зала (таблица USER)
type Member struct {
	ID            int64           `db:"user_id" json:"id"`
	Username      string          `db:"username" json:"username"`
	Email         string          `db:"email" json:"email"`
	PasswordHash  string          `db:"password" json:"-"`
	WalletBalance decimal.Decimal `db:"wallet_balance" json:"wallet_balance"`
	TelegramID    *int64          `db:"telegram_id" json:"telegram_id,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// Admin - администратор (таблица ADMIN), на его кошелёк поступает выручка
type Admin struct {
	ID            int64           `db:"admin_id" json:"id"`
	Username      string          `db:"username" json:"username"`
	Email         string          `db:"email" json:"email"`
	PasswordHash  string          `db:"password" json:"-"`
	WalletBalance decimal.Decimal `db:"wallet_balance" json:"wallet_balance"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

type Registration struct {
	Role            Role   `json:"role" validate:"required,oneof=member admin"`
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// Session - результат успешного входа
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	AccountID int64     `json:"account_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Claims struct {
	AccountID int64
	Role      Role
}

// MemberProfile - данные для личного кабинета
type MemberProfile struct {
	Member       *Member       `json:"member"`
	Subscription *Subscription `json:"subscription,omitempty"`
}
