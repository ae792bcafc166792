package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	AddWeightEntry(ctx context.Context, entry WeightEntry) error
	ListWeightHistory(ctx context.Context, userID string) ([]WeightEntry, error)
}

type loginService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type RegisterRequest struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Name      string     `json:"name,omitempty"`
	WeightKg  *float64   `json:"weightKg,omitempty"`
	HeightCm  *float64   `json:"heightCm,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

type WeightReportRequest struct {
	WeightKg float64 `json:"weightKg"`
}

type Handler struct {
	repo           usersRepo
	authService    loginService
	metricsManager *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	authService loginService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the auth endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(
		rateLimiter, "login",
		loginRateLimitAllowedPerMin,
		handler.metricsManager,
	))

	meSubrouter := mainRouter.PathPrefix("/me").Subrouter()
	meSubrouter.HandleFunc("", handler.handleGetMe).Methods("GET", "OPTIONS").Name("me")
	meSubrouter.HandleFunc("", handler.handleUpdateMe).Methods("PUT", "OPTIONS").Name("update-me")
	meSubrouter.HandleFunc("/weight", handler.handleReportWeight).Methods("POST", "OPTIONS").Name("report-weight")
	meSubrouter.HandleFunc("/weight/history", handler.handleWeightHistory).Methods("GET", "OPTIONS").Name("weight-history")
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Username == "" {
		http.Error(w, "error, email or username empty", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 8 {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	user, err := handler.repo.Add(ctx, User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: passwordHash,
		WeightKg:     req.WeightKg,
		HeightCm:     req.HeightCm,
		Gender:       req.Gender,
		BirthDate:    req.BirthDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "error, username or email taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to register user [%s]: %s", req.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal registered user: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", loginReq.Username)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login, get user [%s]: %s", loginReq.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, user.PasswordHash) {
		reqIp, _ := pkg.ReadUserIP(r)
		log.Tracef("[password] failed login attempt for user %s from %s", loginReq.Username, reqIp)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("new login success for user: %s", user.ID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := r.Header.Get("X-FITLOG-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.getMe")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user [%s]: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}

func (handler *Handler) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateMe")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type updateRequest struct {
		Name      string     `json:"name"`
		WeightKg  *float64   `json:"weightKg"`
		HeightCm  *float64   `json:"heightCm"`
		Gender    string     `json:"gender"`
		BirthDate *time.Time `json:"birthDate"`
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile, get user [%s]: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	user.Name = req.Name
	user.WeightKg = req.WeightKg
	user.HeightCm = req.HeightCm
	user.Gender = req.Gender
	user.BirthDate = req.BirthDate
	user.UpdatedAt = time.Now()

	if err := handler.repo.UpdateProfile(ctx, user); err != nil {
		log.Errorf("update profile [%s]: %s", userID, err)
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}

func (handler *Handler) handleReportWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.reportWeight")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req WeightReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("report weight, unmarshal json params: %s", err)
		http.Error(w, "report weight failed", http.StatusBadRequest)
		return
	}

	if req.WeightKg <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	entry := WeightEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		WeightKg:   req.WeightKg,
		RecordedAt: time.Now(),
	}
	if err := handler.repo.AddWeightEntry(ctx, entry); err != nil {
		log.Errorf("add weight entry for user [%s]: %s", userID, err)
		http.Error(w, "report weight failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWeightReports.Inc()

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal weight entry: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) handleWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.weightHistory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.ListWeightHistory(ctx, userID)
	if err != nil {
		log.Errorf("list weight history for user [%s]: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []WeightEntry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weight history: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}
