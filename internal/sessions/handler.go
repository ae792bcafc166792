package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	StartFromTemplate(ctx context.Context, userID, templateID string) (*Session, error)
	StartEmpty(ctx context.Context, userID string) (*Session, error)
	Get(ctx context.Context, sessionID, userID string) (*Session, error)
	List(ctx context.Context, userID string, page, size int) (_ []Session, total int, err error)
	UpdateExercises(ctx context.Context, sessionID, userID string, exerciseLogs []ExerciseLog) (*Session, error)
	Complete(ctx context.Context, sessionID, userID string) (*Session, error)
	Delete(ctx context.Context, sessionID, userID string) error
}

type StartSessionRequest struct {
	PackageID string `json:"packageId"`
}

type UpdateExercisesRequest struct {
	Exercises []ExerciseLog `json:"exercises"`
}

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	service        sessionsService
	metricsManager *metrics.Manager
}

func NewHandler(service sessionsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	sessionsRouter := mainRouter.PathPrefix("/sessions").Subrouter()
	sessionsRouter.HandleFunc("", handler.handleStart).Methods("POST", "OPTIONS").Name("start-session")
	sessionsRouter.HandleFunc("/empty", handler.handleStartEmpty).Methods("POST", "OPTIONS").Name("start-empty-session")
	sessionsRouter.HandleFunc("/page/{page}/size/{size}", handler.handleList).Methods("GET", "OPTIONS").Name("list-sessions")
	sessionsRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-session")
	sessionsRouter.HandleFunc("/{id}", handler.handleUpdateExercises).Methods("PUT", "OPTIONS").Name("update-session-exercises")
	sessionsRouter.HandleFunc("/{id}/complete", handler.handleComplete).Methods("POST", "OPTIONS").Name("complete-session")
	sessionsRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-session")
}

func (handler *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}

	if req.PackageID == "" {
		http.Error(w, "error, package id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.StartFromTemplate(ctx, userID, req.PackageID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "workout package not found", http.StatusNotFound)
			return
		}
		log.Errorf("start session from template [%s] for user [%s]: %s", req.PackageID, userID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSessionsStarted.Inc()

	handler.writeSession(w, session, http.StatusCreated)
}

func (handler *Handler) handleStartEmpty(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.startEmpty")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	session, err := handler.service.StartEmpty(ctx, userID)
	if err != nil {
		log.Errorf("start empty session for user [%s]: %s", userID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSessionsStarted.Inc()

	handler.writeSession(w, session, http.StatusCreated)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	session, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.writeSession(w, session, http.StatusOK)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page size (has to be greater than 0)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be greater than 0)", http.StatusBadRequest)
		return
	}

	sessionsPage, total, err := handler.service.List(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list sessions for user [%s]: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if sessionsPage == nil {
		sessionsPage = []Session{}
	}

	listJson, err := json.Marshal(ListResponse{
		Sessions: sessionsPage,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal sessions list: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func (handler *Handler) handleUpdateExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.updateExercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	var req UpdateExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, ErrInvalidSetPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Tracef("update session exercises, unmarshal json params: %s", err)
		http.Error(w, "update session failed", http.StatusBadRequest)
		return
	}

	session, err := handler.service.UpdateExercises(ctx, id, userID, req.Exercises)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "not allowed", http.StatusForbidden)
		case errors.Is(err, ErrSessionCompleted):
			http.Error(w, "session already completed", http.StatusBadRequest)
		default:
			log.Errorf("update session [%s] exercises: %s", id, err)
			http.Error(w, "update session failed", http.StatusInternalServerError)
		}
		return
	}

	handler.writeSession(w, session, http.StatusOK)
}

func (handler *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	session, err := handler.service.Complete(ctx, id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "not allowed", http.StatusForbidden)
		case errors.Is(err, ErrSessionCompleted):
			http.Error(w, "session already completed", http.StatusBadRequest)
		default:
			log.Errorf("complete session [%s]: %s", id, err)
			http.Error(w, "complete session failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterSessionsCompleted.Inc()

	handler.writeSession(w, session, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "not allowed", http.StatusForbidden)
			return
		}
		log.Errorf("delete session [%s]: %s", id, err)
		http.Error(w, "delete session failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId": "`+id+`"}`)
}

func (handler *Handler) writeSession(w http.ResponseWriter, session *Session, statusCode int) {
	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, statusCode)
}
