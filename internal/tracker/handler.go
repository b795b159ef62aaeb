package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymsplit/internal/coach"
	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/middleware"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/settings"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type settingsStore interface {
	Load(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, settings settings.Settings) error
}

type coachService interface {
	Ask(ctx context.Context, query, planContext string) string
	WeeklyReport(ctx context.Context, entries []logstore.HistoryEntry) string
}

type Handler struct {
	service  *Service
	settings settingsStore
	coach    coachService
}

func NewHandler(service *Service, settings settingsStore, coach coachService) *Handler {
	return &Handler{
		service:  service,
		settings: settings,
		coach:    coach,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	coachAllowedPerMin int,
) {
	bearer := middleware.RequireBearer()
	coachLimit := middleware.RateLimit(rateLimiter, metricsManager, "coach", coachAllowedPerMin)

	mainRouter.HandleFunc("/today", h.HandleToday).Methods("GET", "OPTIONS").Name("today")
	mainRouter.Handle("/log", bearer(http.HandlerFunc(h.HandleLog))).Methods("POST", "OPTIONS").Name("log")
	mainRouter.Handle("/history", bearer(http.HandlerFunc(h.HandleHistory))).Methods("GET", "OPTIONS").Name("history")
	mainRouter.Handle("/progress/{exercise}", bearer(http.HandlerFunc(h.HandleProgress))).Methods("GET", "OPTIONS").Name("progress")
	mainRouter.Handle("/coach/ask", coachLimit(http.HandlerFunc(h.HandleCoachAsk))).Methods("POST", "OPTIONS").Name("coach-ask")
	mainRouter.Handle("/coach/report", bearer(coachLimit(http.HandlerFunc(h.HandleCoachReport)))).Methods("POST", "OPTIONS").Name("coach-report")
	mainRouter.HandleFunc("/settings", h.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	mainRouter.HandleFunc("/settings", h.HandlePutSettings).Methods("PUT").Name("put-settings")
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.today")
	defer span.End()

	plan := h.service.Today(ctx)
	span.SetAttributes(attribute.String("day_type", plan.Label.String()))
	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.log")
	defer span.End()

	cred, _ := middleware.CredentialFromContext(ctx)

	var entry logstore.LogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		span.SetStatus(codes.Error, "decode-body")
		http.Error(w, "invalid log entry", http.StatusBadRequest)
		return
	}

	plan, err := h.service.Log(ctx, cred, entry)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.writeError(w, err)
		return
	}

	span.SetAttributes(attribute.String("day_type", plan.Label.String()))
	pkg.WriteJSON(w, logResponse{
		Date:     plan.Date,
		DayType:  plan.Label,
		LogEntry: entry,
	}, http.StatusCreated)
}

type logResponse struct {
	Date    string            `json:"date"`
	DayType schedule.DayLabel `json:"dayType"`
	logstore.LogEntry
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.history")
	defer span.End()

	cred, _ := middleware.CredentialFromContext(ctx)
	exercise := r.URL.Query().Get("exercise")

	view, err := h.service.History(ctx, cred, exercise)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.writeError(w, err)
		return
	}

	span.SetAttributes(
		attribute.Int("entries", len(view.Entries)),
		attribute.Int("dropped", view.Dropped),
	)
	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.progress")
	defer span.End()

	cred, _ := middleware.CredentialFromContext(ctx)
	exercise := mux.Vars(r)["exercise"]
	if strings.TrimSpace(exercise) == "" {
		http.Error(w, "exercise required", http.StatusBadRequest)
		return
	}

	series, err := h.service.Progress(ctx, cred, exercise)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.writeError(w, err)
		return
	}

	pkg.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) HandleCoachAsk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.coachAsk")
	defer span.End()

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query required", http.StatusBadRequest)
		return
	}

	planContext := coach.PlanContext(h.service.Today(ctx))
	answer := h.coach.Ask(ctx, req.Query, planContext)
	pkg.WriteJSON(w, map[string]string{"answer": answer}, http.StatusOK)
}

func (h *Handler) HandleCoachReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.coachReport")
	defer span.End()

	cred, _ := middleware.CredentialFromContext(ctx)
	view, err := h.service.History(ctx, cred, "")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.writeError(w, err)
		return
	}

	report := h.coach.WeeklyReport(ctx, view.Entries)
	pkg.WriteJSON(w, map[string]string{"report": report}, http.StatusOK)
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.getSettings")
	defer span.End()

	st, err := h.settings.Load(ctx)
	if err != nil {
		log.Errorf("get settings: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, st, http.StatusOK)
}

func (h *Handler) HandlePutSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.putSettings")
	defer span.End()

	var st settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		http.Error(w, "invalid settings", http.StatusBadRequest)
		return
	}
	if err := st.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.settings.Save(ctx, st); err != nil {
		log.Errorf("put settings: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, st, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("tracker request failed: %s", err)
	}
	http.Error(w, err.Error(), status)
}

// ErrorStatus maps service and log store errors to HTTP status codes.
func ErrorStatus(err error) int {
	var missing *MissingFieldError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.Is(err, ErrRestDay):
		return http.StatusConflict
	case errors.Is(err, ErrSpreadsheetNotConfigured):
		return http.StatusPreconditionFailed
	case errors.Is(err, logstore.ErrAuthExpired):
		return http.StatusUnauthorized
	}

	var rejected *logstore.RemoteRejectedError
	if errors.As(err, &rejected) {
		return http.StatusBadGateway
	}
	if errors.Is(err, logstore.ErrTransport) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
