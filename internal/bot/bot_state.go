package bot

import (
	"sync"

	"gym-ledger/internal/models"
)

type BotState int

const (
	StateDefault BotState = iota

	// покупка абонемента
	StateEnteringSubscriptionDates
	StateConfirmingSubscription

	// запись на занятие
	StateSelectingClass
	StateConfirmingEnrollment

	// оплата занятия
	StateSelectingPayment
	StateConfirmingPayment
)

type UserSession struct {
	mu sync.Mutex

	State    BotState
	MemberID int64

	// покупка абонемента
	Quote *models.SubscriptionQuote

	// запись и оплата
	AvailableClasses []models.Class
	PendingClasses   []models.EnrolledClass
	SelectedClassID  int64
	SelectedClass    string
}

func (s *UserSession) reset() {
	s.State = StateDefault
	s.Quote = nil
	s.AvailableClasses = nil
	s.PendingClasses = nil
	s.SelectedClassID = 0
	s.SelectedClass = ""
}
