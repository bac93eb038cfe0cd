package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"boardpulse/internal/domains"
	"boardpulse/internal/storage"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	provider   AuthProvider
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type AuthProvider interface {
	SaveAccount(ctx context.Context, passHash string, account domains.Account) error
	GetAccountByEmail(ctx context.Context, email string) (domains.Account, error)
	GetAccountByID(ctx context.Context, id int64) (domains.Account, error)
	SaveSession(ctx context.Context, session domains.Session) error
	GetSession(ctx context.Context, token string) (domains.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

func NewAuthService(provider AuthProvider, secret string) *AuthService {
	return &AuthService{
		provider:   provider,
		secret:     secret,
		accessTTL:  15 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
	}
}

func (s *AuthService) Register(ctx context.Context, account domains.Account) error {
	passHash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		return err
	}

	if err := s.provider.SaveAccount(ctx, string(passHash), account); err != nil {
		if !errors.Is(err, storage.ErrUserExist) {
			slog.Error("save account failed", "err", err)
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	account, err := s.provider.GetAccountByEmail(ctx, email)
	if err != nil {
		slog.Error("fetch account failed", "err", err, "email", email)
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", "", PasswordIncorrect
	}

	return s.issueTokens(ctx, account)
}

// Refresh rotates the stored session: the presented token is deleted and
// a fresh access/refresh pair issued. Expired sessions are removed on
// sight.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	session, err := s.provider.GetSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", TokenIncorrect
		}
		return "", "", err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.provider.DeleteSession(ctx, refreshToken)
		return "", "", TokenIncorrect
	}

	account, err := s.provider.GetAccountByID(ctx, session.AccountID)
	if err != nil {
		return "", "", err
	}

	if err := s.provider.DeleteSession(ctx, refreshToken); err != nil {
		slog.Error("delete rotated session failed", "err", err)
	}
	return s.issueTokens(ctx, account)
}

func (s *AuthService) Me(ctx context.Context, accountID int64) (domains.Account, error) {
	return s.provider.GetAccountByID(ctx, accountID)
}

func (s *AuthService) issueTokens(ctx context.Context, account domains.Account) (string, string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(account.ID, 10),
		"role": account.Role,
		"exp":  time.Now().Add(s.accessTTL).Unix(),
		"type": "access",
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", "", err
	}

	refreshToken := uuid.NewString()
	session := domains.Session{
		Token:     refreshToken,
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.provider.SaveSession(ctx, session); err != nil {
		slog.Error("save session failed", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
