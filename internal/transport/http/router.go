package httptransport

import (
	"net/http"

	"boardpulse/internal/config"
	"boardpulse/internal/httpx"
	"boardpulse/internal/service"
	"boardpulse/internal/storage/providers"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Router(db *pgxpool.Pool, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	allProviders := providers.New(db)
	authService := service.NewAuthService(allProviders.AuthProvider, cfg.JWT.Secret)
	submissionService := service.NewSubmissionService(allProviders.SubmissionProvider)
	reportService := service.NewReportService(allProviders.SubmissionProvider, cfg.Report.FetchTimeout)
	exportService := service.NewExportService(allProviders.SubmissionProvider, cfg.Report.FetchTimeout)

	authHandler := NewAuthHandlers(authService)
	surveyHandler := NewSurveyHandlers(submissionService)
	adminHandler := NewAdminHandlers(reportService, exportService, submissionService)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, struct {
			Status string `json:"status"`
		}{Status: "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(httpx.Protected(cfg.JWT.Secret))
	authed.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/surveys", surveyHandler.ListSurveys).Methods(http.MethodGet)
	authed.HandleFunc("/surveys/{slug}", surveyHandler.GetSurvey).Methods(http.MethodGet)
	authed.HandleFunc("/surveys/{slug}/submit", surveyHandler.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/dashboard", surveyHandler.Dashboard).Methods(http.MethodGet)

	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(httpx.AdminOnly)
	admin.HandleFunc("/overview", adminHandler.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/results/{slug}", adminHandler.Results).Methods(http.MethodGet)
	admin.HandleFunc("/analysis/{slug}", adminHandler.Analysis).Methods(http.MethodGet)
	admin.HandleFunc("/submissions/{id}", adminHandler.SubmissionByID).Methods(http.MethodGet)
	admin.HandleFunc("/export/{slug}", adminHandler.Export).Methods(http.MethodGet)
	admin.HandleFunc("/import/{slug}", adminHandler.Import).Methods(http.MethodPost)

	return router
}
