package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context, exerciseType, category string) ([]Exercise, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	exercisesRouter := mainRouter.PathPrefix("/exercises").Subrouter()
	exercisesRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
	exercisesRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("list-exercises")
	exercisesRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	exercisesRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" || exercise.Type == "" {
		http.Error(w, "error, exercise name or type empty", http.StatusBadRequest)
		return
	}

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add new exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("marshal added exercise: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exerciseType := r.URL.Query().Get("type")
	category := r.URL.Query().Get("category")

	exercisesList, err := handler.repo.List(ctx, exerciseType, category)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if exercisesList == nil {
		exercisesList = []Exercise{}
	}

	exercisesJson, err := json.Marshal(exercisesList)
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId": "`+id+`"}`)
}
