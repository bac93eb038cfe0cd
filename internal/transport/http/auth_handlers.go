package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"boardpulse/internal/domains"
	"boardpulse/internal/httpx"
	"boardpulse/internal/service"
	"boardpulse/internal/storage"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Register(ctx context.Context, account domains.Account) error
	Login(ctx context.Context, email string, password string) (string, string, error)
	Refresh(ctx context.Context, token string) (string, string, error)
	Me(ctx context.Context, accountID int64) (domains.Account, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{service: service}
}

func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	registerData, err := httpx.ReadBody[RegisterData](*r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if registerData.Email == "" || registerData.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account := domains.Account{
		FullName: registerData.FullName,
		Email:    registerData.Email,
		Password: registerData.Password,
	}
	if err := h.service.Register(r.Context(), account); err != nil {
		if errors.Is(err, storage.ErrUserExist) {
			httpx.Error(w, http.StatusConflict, "account already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to register")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](*r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, err := h.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, service.PasswordIncorrect) || errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	setRefreshCookie(w, refreshToken)
	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenByCookie, err := r.Cookie("refreshToken")
	if err != nil || tokenByCookie.Value == "" {
		httpx.Error(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	accessToken, refreshToken, err := h.service.Refresh(r.Context(), tokenByCookie.Value)
	if err != nil {
		if errors.Is(err, service.TokenIncorrect) {
			httpx.Error(w, http.StatusUnauthorized, "token is incorrect")
			return
		}
		slog.Error("refresh failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	setRefreshCookie(w, refreshToken)
	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.service.Me(r.Context(), accountID)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, account)
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    token,
		Path:     "/api/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
