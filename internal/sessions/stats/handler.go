package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const defaultWindowDays = 30

type statsEngine interface {
	WorkoutStats(ctx context.Context, userID string, window Window) (*WorkoutStats, error)
	ExerciseProgression(ctx context.Context, userID, exerciseID string, window Window) ([]ProgressionPoint, error)
	Calendar(ctx context.Context, userID string, year int, month time.Month) (CalendarData, error)
}

type Handler struct {
	engine statsEngine
	now    func() time.Time
}

func NewHandler(engine statsEngine) *Handler {
	return &Handler{
		engine: engine,
		now:    time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	statsRouter := mainRouter.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("", handler.handleWorkoutStats).Methods("GET", "OPTIONS").Name("workout-stats")
	statsRouter.HandleFunc("/progression/{exerciseId}", handler.handleProgression).Methods("GET", "OPTIONS").Name("exercise-progression")
	statsRouter.HandleFunc("/calendar", handler.handleCalendar).Methods("GET", "OPTIONS").Name("workout-calendar")
}

func (handler *Handler) handleWorkoutStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	window, ok := handler.windowFromRequest(w, r)
	if !ok {
		return
	}

	workoutStats, err := handler.engine.WorkoutStats(ctx, userID, window)
	if err != nil {
		log.Errorf("get workout stats for user %s: %s", userID, err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(workoutStats)
	if err != nil {
		log.Errorf("marshal workout stats: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(statsJson))
}

func (handler *Handler) handleProgression(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID := vars["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	window, ok := handler.windowFromRequest(w, r)
	if !ok {
		return
	}

	progression, err := handler.engine.ExerciseProgression(ctx, userID, exerciseID, window)
	if err != nil {
		log.Errorf("get progression for user %s, exercise %s: %s", userID, exerciseID, err)
		http.Error(w, "failed to get exercise progression", http.StatusInternalServerError)
		return
	}

	progressionJson, err := json.Marshal(progression)
	if err != nil {
		log.Errorf("marshal exercise progression: %s", err)
		http.Error(w, "failed to get exercise progression", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(progressionJson))
}

func (handler *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	now := handler.now()
	year := now.Year()
	month := now.Month()

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsedYear, err := strconv.Atoi(yearParam)
		if err != nil || parsedYear < 1900 {
			http.Error(w, "error, invalid year", http.StatusBadRequest)
			return
		}
		year = parsedYear
	}
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsedMonth, err := strconv.Atoi(monthParam)
		if err != nil || parsedMonth < 1 || parsedMonth > 12 {
			http.Error(w, "error, invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(parsedMonth)
	}

	calendar, err := handler.engine.Calendar(ctx, userID, year, month)
	if err != nil {
		log.Errorf("get calendar for user %s, %d-%d: %s", userID, year, month, err)
		http.Error(w, "failed to get workout calendar", http.StatusInternalServerError)
		return
	}

	calendarJson, err := json.Marshal(calendar)
	if err != nil {
		log.Errorf("marshal workout calendar: %s", err)
		http.Error(w, "failed to get workout calendar", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(calendarJson))
}

// windowFromRequest reads the optional "days" query param, falling
// back to the default window. Writes the error response itself and
// returns ok == false on invalid input.
func (handler *Handler) windowFromRequest(w http.ResponseWriter, r *http.Request) (Window, bool) {
	days := defaultWindowDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsedDays, err := strconv.Atoi(daysParam)
		if err != nil || parsedDays <= 0 {
			http.Error(w, "error, invalid days parameter", http.StatusBadRequest)
			return Window{}, false
		}
		days = parsedDays
	}
	return LastNDays(days, handler.now()), true
}
