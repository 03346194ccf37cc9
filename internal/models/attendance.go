package models

import "time"

type Attendance struct {
	ID             int64     `db:"attendance_id" json:"id"`
	MemberID       int64     `db:"user_id" json:"member_id"`
	SubscriptionID int64     `db:"subscription_id" json:"subscription_id"`
	Date           time.Time `db:"attendance_date" json:"date"`
	IsPresent      bool      `db:"is_present" json:"is_present"`
}

// AttendanceResult - повторная отметка за день не ошибка, а информационный ответ
type AttendanceResult struct {
	Attendance    *Attendance `json:"attendance,omitempty"`
	AlreadyMarked bool        `json:"already_marked"`
}

// DateOnly отбрасывает время, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today - текущая календарная дата в часовом поясе зала
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOnly(time.Now().In(loc))
}
