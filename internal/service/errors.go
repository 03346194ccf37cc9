package service

import (
	"errors"

	"gym-ledger/internal/repository"
)

var (
	ErrInvalidDateRange = errors.New("End date must be on or after start date")
	ErrInvalidInput     = errors.New("invalid input")
	ErrWeakPassword     = errors.New("Password must be at least 6 characters long")
	ErrPasswordMismatch = errors.New("Passwords do not match")

	ErrOverlappingSubscription = errors.New("You already have an active subscription for this period")
	ErrInsufficientFunds       = errors.New("Insufficient balance")
	ErrNoActiveSubscription    = errors.New("No active subscription found")
	ErrAlreadyEnrolled         = errors.New("You are already enrolled in this class.")
	ErrNothingToSettle         = errors.New("No pending payment for this class")
	ErrAmountMismatch          = errors.New("Payment amount does not match the class price")
	ErrClassInactive           = errors.New("Class is not active")
	ErrUsernameTaken           = errors.New("Username already exists")
	ErrEmailTaken              = errors.New("Email already exists")
	ErrTelegramLinked          = errors.New("Telegram account is already linked to another member")

	ErrMemberNotFound = errors.New("Member not found")
	ErrClassNotFound  = errors.New("Class not found")

	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPrecondition
	KindNotFound
	KindUnauthorized
)

var kinds = map[error]Kind{
	ErrInvalidDateRange: KindValidation,
	ErrInvalidInput:     KindValidation,
	ErrWeakPassword:     KindValidation,
	ErrPasswordMismatch: KindValidation,

	ErrOverlappingSubscription: KindPrecondition,
	ErrInsufficientFunds:       KindPrecondition,
	ErrNoActiveSubscription:    KindPrecondition,
	ErrAlreadyEnrolled:         KindPrecondition,
	ErrNothingToSettle:         KindPrecondition,
	ErrAmountMismatch:          KindPrecondition,
	ErrClassInactive:           KindPrecondition,
	ErrUsernameTaken:           KindPrecondition,
	ErrEmailTaken:              KindPrecondition,
	ErrTelegramLinked:          KindPrecondition,

	ErrMemberNotFound:      KindNotFound,
	ErrClassNotFound:       KindNotFound,
	repository.ErrNotFound: KindNotFound,

	ErrInvalidCredentials: KindUnauthorized,
	ErrInvalidToken:       KindUnauthorized,
}

// KindOf относит ошибку к одной из категорий; всё неизвестное - внутренняя ошибка хранилища
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for target, kind := range kinds {
		if errors.Is(err, target) {
			return kind
		}
	}
	return KindInternal
}

// IsDomain - ошибка из предметной области, её текст можно показать пользователю
func IsDomain(err error) bool {
	return err != nil && KindOf(err) != KindInternal
}
