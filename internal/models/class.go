package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Class struct {
	ID        int64           `db:"class_id" json:"id"`
	Name      string          `db:"class_name" json:"name"`
	StartDate time.Time       `db:"start_date" json:"start_date"`
	EndDate   time.Time       `db:"end_date" json:"end_date"`
	Price     decimal.Decimal `db:"price" json:"price"`
	IsActive  bool            `db:"is_active" json:"is_active"`
}

type NewClass struct {
	Name      string          `json:"name"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Price     decimal.Decimal `json:"price"`
}
