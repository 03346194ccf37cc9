package auth_service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type authService struct {
	store  repository.Store
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(store repository.Store, cfg *config.Config, logger *zap.Logger) service.AuthService {
	return &authService{
		store:  store,
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
		logger: logger.Named("auth"),
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, reg models.Registration) (int64, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.Username == "" || reg.Email == "" || reg.Password == "" {
		return 0, service.ErrInvalidInput
	}
	if len(reg.Password) < minPasswordLength {
		return 0, service.ErrWeakPassword
	}
	if reg.Password != reg.ConfirmPassword {
		return 0, service.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	repos := s.store.Repositories()
	var id int64
	switch reg.Role {
	case models.RoleMember:
		if err := checkTaken(repos.Members.UsernameOrEmailTaken(ctx, reg.Username, reg.Email)); err != nil {
			return 0, err
		}
		member := &models.Member{
			Username:      reg.Username,
			Email:         reg.Email,
			PasswordHash:  string(hash),
			WalletBalance: decimal.Zero,
		}
		if err := repos.Members.Create(ctx, member); err != nil {
			return 0, conflictAsTaken(err)
		}
		id = member.ID
	case models.RoleAdmin:
		if err := checkTaken(repos.Admins.UsernameOrEmailTaken(ctx, reg.Username, reg.Email)); err != nil {
			return 0, err
		}
		admin := &models.Admin{
			Username:      reg.Username,
			Email:         reg.Email,
			PasswordHash:  string(hash),
			WalletBalance: decimal.Zero,
		}
		if err := repos.Admins.Create(ctx, admin); err != nil {
			return 0, conflictAsTaken(err)
		}
		id = admin.ID
	default:
		return 0, service.ErrInvalidInput
	}

	s.logger.Info("👤 Зарегистрирован", zap.String("role", string(reg.Role)), zap.String("username", reg.Username))
	return id, nil
}

func checkTaken(usernameTaken, emailTaken bool, err error) error {
	switch {
	case err != nil:
		return err
	case usernameTaken:
		return service.ErrUsernameTaken
	case emailTaken:
		return service.ErrEmailTaken
	}
	return nil
}

// гонка двух регистраций с одним логином доходит до уникального индекса
func conflictAsTaken(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return service.ErrUsernameTaken
	}
	return err
}

func (s *authService) Login(ctx context.Context, role models.Role, username, password string) (*models.Session, error) {
	repos := s.store.Repositories()

	var id int64
	var hash string
	switch role {
	case models.RoleMember:
		member, err := repos.Members.GetByUsername(ctx, username)
		if err != nil {
			return nil, credentialsError(err)
		}
		id, hash = member.ID, member.PasswordHash
	case models.RoleAdmin:
		admin, err := repos.Admins.GetByUsername(ctx, username)
		if err != nil {
			return nil, credentialsError(err)
		}
		id, hash = admin.ID, admin.PasswordHash
	default:
		return nil, service.ErrInvalidInput
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, service.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id,
		"role": string(role),
		"iat":  s.now().Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.Session{
		Token:     signed,
		Role:      role,
		AccountID: id,
		Username:  username,
		ExpiresAt: expiresAt,
	}, nil
}

func credentialsError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrInvalidCredentials
	}
	return err
}

func (s *authService) ParseToken(raw string) (*models.Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, service.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	if role != string(models.RoleMember) && role != string(models.RoleAdmin) {
		return nil, service.ErrInvalidToken
	}

	return &models.Claims{AccountID: int64(sub), Role: models.Role(role)}, nil
}

func (s *authService) LinkTelegram(ctx context.Context, username, password string, telegramID int64) (*models.Member, error) {
	var member *models.Member
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		member, err = repos.Members.GetByUsername(ctx, username)
		if err != nil {
			return credentialsError(err)
		}
		if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
			return service.ErrInvalidCredentials
		}
		if err := repos.Members.SetTelegramID(ctx, member.ID, telegramID); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return service.ErrTelegramLinked
			}
			return err
		}
		member.TelegramID = &telegramID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("🔗 Telegram привязан", zap.Int64("member_id", member.ID), zap.Int64("telegram_id", telegramID))
	return member, nil
}
