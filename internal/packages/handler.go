package packages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=packages_test

type packagesRepo interface {
	Add(ctx context.Context, pack Package) (*Package, error)
	Get(ctx context.Context, id string) (*Package, error)
	ListForUser(ctx context.Context, userID string) ([]Package, error)
	Update(ctx context.Context, pack *Package) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	repo packagesRepo
}

func NewHandler(repo packagesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	packagesRouter := mainRouter.PathPrefix("/packages").Subrouter()
	packagesRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("add-package")
	packagesRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("list-packages")
	packagesRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-package")
	packagesRouter.HandleFunc("/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-package")
	packagesRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-package")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.packages.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var pack Package
	if err := json.NewDecoder(r.Body).Decode(&pack); err != nil {
		log.Tracef("new package, unmarshal json params: %s", err)
		http.Error(w, "add package failed", http.StatusBadRequest)
		return
	}

	if pack.Name == "" {
		http.Error(w, "error, package name empty", http.StatusBadRequest)
		return
	}

	now := time.Now()
	pack.ID = uuid.NewString()
	pack.UserID = userID
	pack.CreatedAt = now
	pack.UpdatedAt = now
	if pack.Exercises == nil {
		pack.Exercises = []PackageExercise{}
	}

	addedPack, err := handler.repo.Add(ctx, pack)
	if err != nil {
		log.Errorf("failed to add new package [%s] for user [%s]: %s", pack.Name, userID, err)
		http.Error(w, "error, failed to add new package", http.StatusInternalServerError)
		return
	}

	packJson, err := json.Marshal(addedPack)
	if err != nil {
		log.Errorf("marshal added package: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, packJson, http.StatusCreated)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.packages.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	pack, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			http.Error(w, "package not found", http.StatusNotFound)
			return
		}
		log.Errorf("get package [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if pack.UserID != userID && !pack.IsPublic {
		http.Error(w, "package not found", http.StatusNotFound)
		return
	}

	packJson, err := json.Marshal(pack)
	if err != nil {
		log.Errorf("marshal package: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, packJson)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.packages.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	packs, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list packages for user [%s]: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if packs == nil {
		packs = []Package{}
	}

	packsJson, err := json.Marshal(packs)
	if err != nil {
		log.Errorf("marshal packages: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, packsJson)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.packages.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	pack, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			http.Error(w, "not allowed", http.StatusForbidden)
			return
		}
		log.Errorf("update package, get [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// only the owner can change a package, public or not
	if pack.UserID != userID {
		http.Error(w, "not allowed", http.StatusForbidden)
		return
	}

	type updateRequest struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Exercises   []PackageExercise `json:"exercises"`
		IsPublic    bool              `json:"isPublic"`
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update package, unmarshal json params: %s", err)
		http.Error(w, "update package failed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "error, package name empty", http.StatusBadRequest)
		return
	}

	pack.Name = req.Name
	pack.Description = req.Description
	pack.IsPublic = req.IsPublic
	pack.UpdatedAt = time.Now()
	pack.Exercises = req.Exercises
	if pack.Exercises == nil {
		pack.Exercises = []PackageExercise{}
	}

	if err := handler.repo.Update(ctx, pack); err != nil {
		log.Errorf("update package [%s]: %s", id, err)
		http.Error(w, "update package failed", http.StatusInternalServerError)
		return
	}

	packJson, err := json.Marshal(pack)
	if err != nil {
		log.Errorf("marshal package: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, packJson)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.packages.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	pack, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			http.Error(w, "not allowed", http.StatusForbidden)
			return
		}
		log.Errorf("delete package, get [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if pack.UserID != userID {
		http.Error(w, "not allowed", http.StatusForbidden)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("delete package [%s]: %s", id, err)
		http.Error(w, "delete package failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId": "`+id+`"}`)
}
