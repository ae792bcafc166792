package hydration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=hydration_test

const defaultStatsDays = 7

type hydrationService interface {
	Log(ctx context.Context, userID string, amountMl int) (*WaterIntake, error)
	Stats(ctx context.Context, userID string, days int) (*Stats, error)
	DailyRecommendation(ctx context.Context, userID string) (*Recommendation, error)
}

type LogWaterRequest struct {
	AmountMl int `json:"amountMl"`
}

type Handler struct {
	service        hydrationService
	metricsManager *metrics.Manager
}

func NewHandler(service hydrationService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	waterRouter := mainRouter.PathPrefix("/water").Subrouter()
	waterRouter.HandleFunc("", handler.handleLogWater).Methods("POST", "OPTIONS").Name("log-water")
	waterRouter.HandleFunc("/stats", handler.handleStats).Methods("GET", "OPTIONS").Name("water-stats")
	waterRouter.HandleFunc("/recommendation", handler.handleRecommendation).Methods("GET", "OPTIONS").Name("water-recommendation")
}

func (handler *Handler) handleLogWater(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req LogWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	intake, err := handler.service.Log(ctx, userID, req.AmountMl)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			http.Error(w, "error, invalid amount", http.StatusBadRequest)
			return
		}
		log.Errorf("log water intake for user %s: %s", userID, err)
		http.Error(w, "failed to log water intake", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWaterIntakes.Inc()

	intakeJson, err := json.Marshal(intake)
	if err != nil {
		log.Errorf("marshal water intake: %s", err)
		http.Error(w, "failed to log water intake", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, intakeJson, http.StatusCreated)
}

func (handler *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := defaultStatsDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsedDays, err := strconv.Atoi(daysParam)
		if err != nil || parsedDays <= 0 {
			http.Error(w, "error, invalid days parameter", http.StatusBadRequest)
			return
		}
		days = parsedDays
	}

	intakeStats, err := handler.service.Stats(ctx, userID, days)
	if err != nil {
		log.Errorf("get water stats for user %s: %s", userID, err)
		http.Error(w, "failed to get water stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(intakeStats)
	if err != nil {
		log.Errorf("marshal water stats: %s", err)
		http.Error(w, "failed to get water stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(statsJson))
}

func (handler *Handler) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	recommendation, err := handler.service.DailyRecommendation(ctx, userID)
	if err != nil {
		log.Errorf("get water recommendation for user %s: %s", userID, err)
		http.Error(w, "failed to get water recommendation", http.StatusInternalServerError)
		return
	}

	recommendationJson, err := json.Marshal(recommendation)
	if err != nil {
		log.Errorf("marshal water recommendation: %s", err)
		http.Error(w, "failed to get water recommendation", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(recommendationJson))
}
