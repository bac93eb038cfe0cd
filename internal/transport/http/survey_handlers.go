package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"boardpulse/internal/domains"
	"boardpulse/internal/httpx"
	"boardpulse/internal/registry"
	"boardpulse/internal/service"

	"github.com/gorilla/mux"
)

// maxSubmissionBody bounds submission and import payloads.
const maxSubmissionBody = 1 << 20

type SurveyHandlers struct {
	service SubmissionServices
}

type SubmissionServices interface {
	Submit(ctx context.Context, slug string, accountID int64, payload json.RawMessage) (domains.Submission, error)
	ListMine(ctx context.Context, accountID int64) ([]domains.Submission, error)
}

func NewSurveyHandlers(service SubmissionServices) *SurveyHandlers {
	return &SurveyHandlers{service: service}
}

// ListSurveys serves the published definitions, display-normalized.
func (h *SurveyHandlers) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys := registry.Surveys()
	out := make([]domains.SurveyDefinition, 0, len(surveys))
	for _, survey := range surveys {
		out = append(out, registry.NormalizedDefinition(survey))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *SurveyHandlers) GetSurvey(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	survey, ok := registry.GetSurveyBySlug(slug)
	if !ok {
		httpx.Error(w, http.StatusNotFound, "survey not found")
		return
	}
	httpx.JSON(w, http.StatusOK, registry.NormalizedDefinition(survey))
}

func (h *SurveyHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxSubmissionBody))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	submission, err := h.service.Submit(r.Context(), mux.Vars(r)["slug"], accountID, payload)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			httpx.Error(w, http.StatusNotFound, "survey not found")
			return
		}
		slog.Error("submit failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to save submission")
		return
	}

	httpx.JSON(w, http.StatusCreated, submission)
}

// Dashboard serves the caller's own submissions alongside the available
// definitions.
func (h *SurveyHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	submissions, err := h.service.ListMine(r.Context(), accountID)
	if err != nil {
		slog.Error("list own submissions failed", "err", err, "account", accountID)
		httpx.Error(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}

	surveys := registry.Surveys()
	normalized := make([]domains.SurveyDefinition, 0, len(surveys))
	for _, survey := range surveys {
		normalized = append(normalized, registry.NormalizedDefinition(survey))
	}

	httpx.JSON(w, http.StatusOK, struct {
		Surveys     []domains.SurveyDefinition `json:"surveys"`
		Submissions []domains.Submission       `json:"submissions"`
	}{Surveys: normalized, Submissions: submissions})
}
