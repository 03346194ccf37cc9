package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Statistics struct {
	TotalRevenue             decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	MonthlyRevenue           decimal.Decimal `db:"monthly_revenue" json:"monthly_revenue"`
	TotalMembers             int             `db:"total_members" json:"total_members"`
	ActiveMembers            int             `db:"active_members" json:"active_members"`
	TodayAttendance          int             `db:"today_attendance" json:"today_attendance"`
	MonthlyAverageAttendance decimal.Decimal `db:"monthly_average_attendance" json:"monthly_average_attendance"`
}

// MemberOverview - строка списка посетителей с текущим абонементом
type MemberOverview struct {
	ID                 int64               `db:"user_id" json:"id"`
	Username           string              `db:"username" json:"username"`
	Email              string              `db:"email" json:"email"`
	SubscriptionStatus *SubscriptionStatus `db:"sub_status" json:"subscription_status,omitempty"`
	StartDate          *time.Time          `db:"start_date" json:"start_date,omitempty"`
	EndDate            *time.Time          `db:"end_date" json:"end_date,omitempty"`
	RemainingDays      *int                `db:"remaining_days" json:"remaining_days,omitempty"`
}
