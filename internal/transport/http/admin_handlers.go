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
	"boardpulse/internal/service"

	"github.com/gorilla/mux"
)

// maxImportBody is larger than the live submission limit; legacy dumps
// carry whole batches.
const maxImportBody = 8 << 20

type AdminHandlers struct {
	reports     ReportServices
	exports     ExportServices
	submissions ImportServices
}

type ReportServices interface {
	Overview(ctx context.Context, q string) (domains.Overview, error)
	Results(ctx context.Context, slug string) (domains.SurveyResults, error)
	Analysis(ctx context.Context, slug string) (domains.ResultsAnalysis, error)
	SubmissionByID(ctx context.Context, id string) (domains.SubmissionDetail, error)
}

type ExportServices interface {
	CSVExport(ctx context.Context, slug string) (string, []byte, error)
}

type ImportServices interface {
	Import(ctx context.Context, slug string, accountID int64, payload json.RawMessage) (int, error)
}

func NewAdminHandlers(reports ReportServices, exports ExportServices, submissions ImportServices) *AdminHandlers {
	return &AdminHandlers{reports: reports, exports: exports, submissions: submissions}
}

func (h *AdminHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.reports.Overview(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, service.ErrNoUsableSource) {
			httpx.Error(w, http.StatusServiceUnavailable, "submission counts unavailable")
			return
		}
		slog.Error("overview failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to build overview")
		return
	}
	httpx.JSON(w, http.StatusOK, overview)
}

func (h *AdminHandlers) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.reports.Results(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			httpx.Error(w, http.StatusNotFound, "survey not found")
			return
		}
		slog.Error("results failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to load results")
		return
	}
	httpx.JSON(w, http.StatusOK, results)
}

func (h *AdminHandlers) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.reports.Analysis(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			httpx.Error(w, http.StatusNotFound, "survey not found")
			return
		}
		slog.Error("analysis failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to analyze results")
		return
	}
	httpx.JSON(w, http.StatusOK, analysis)
}

func (h *AdminHandlers) SubmissionByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.reports.SubmissionByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) || errors.Is(err, service.ErrSurveyNotFound) {
			httpx.Error(w, http.StatusNotFound, "submission not found")
			return
		}
		slog.Error("submission detail failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to load submission")
		return
	}
	httpx.JSON(w, http.StatusOK, detail)
}

func (h *AdminHandlers) Export(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.exports.CSVExport(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			httpx.Error(w, http.StatusNotFound, "survey not found")
			return
		}
		slog.Error("export failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to export submissions")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *AdminHandlers) Import(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBody))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	imported, err := h.submissions.Import(r.Context(), mux.Vars(r)["slug"], accountID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSurveyNotFound):
			httpx.Error(w, http.StatusNotFound, "survey not found")
		case errors.Is(err, service.ErrEmptyImport):
			httpx.Error(w, http.StatusBadRequest, "no importable submissions in payload")
		default:
			slog.Error("import failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "failed to import submissions")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, ImportResult{Imported: imported})
}
