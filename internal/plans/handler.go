package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftplan/internal/autoreg"
	"github.com/2beens/liftplan/internal/middleware"
	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/storage"
	"github.com/2beens/liftplan/internal/telemetry/metrics"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"
	"github.com/2beens/liftplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type service interface {
	GeneratePlan(ctx context.Context, req planner.Request) (*GenerateResult, error)
	GetPlan(ctx context.Context, id string) (*training.WeeklyPlan, error)
	LatestPlan(ctx context.Context, userID string) (*training.WeeklyPlan, error)
	PlanModifications(ctx context.Context, planID string) ([]training.ExerciseModification, error)
	ResolveExercise(ctx context.Context, req planner.ExerciseRequest) (*planner.ExerciseResult, error)
	InferCapacities(ctx context.Context, req InferRequest) InferResult
	SaveCapacity(ctx context.Context, userID string, c training.PatternCapacity) error
	StartSession(ctx context.Context, planID string, req StartSessionRequest) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	SessionLogs(ctx context.Context, sessionID string) ([]training.SetLog, error)
	SubmitSet(ctx context.Context, sessionID string, req SubmitSetRequest) (training.Suggestion, error)
	ApplySuggestion(ctx context.Context, sessionID string) (training.ExerciseSpec, error)
	DismissSuggestion(ctx context.Context, sessionID string) error
	CompleteSession(ctx context.Context, sessionID string) (*autoreg.Summary, error)
	AbandonSession(ctx context.Context, sessionID string) error
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	generateAllowedPerMin int,
) {
	generate := middleware.RateLimit(rateLimiter, "generate-plan", generateAllowedPerMin, metricsManager)(
		http.HandlerFunc(h.HandleGenerate),
	)
	mainRouter.Handle("/plans", generate).Methods("POST", "OPTIONS").Name("generate-plan")
	mainRouter.HandleFunc("/plans/resolve", h.HandleResolve).Methods("POST", "OPTIONS").Name("resolve-exercise")
	mainRouter.HandleFunc("/plans/{id}", h.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	mainRouter.HandleFunc("/plans/{id}/sessions", h.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	mainRouter.HandleFunc("/plans/{id}/modifications", h.HandleListModifications).Methods("GET", "OPTIONS").Name("list-modifications")
	mainRouter.HandleFunc("/capacities/infer", h.HandleInferCapacities).Methods("POST", "OPTIONS").Name("infer-capacities")

	mainRouter.HandleFunc("/users/{uid}/capacities", h.HandleSaveCapacity).Methods("POST", "OPTIONS").Name("save-capacity")
	mainRouter.HandleFunc("/users/{uid}/plans/latest", h.HandleLatestPlan).Methods("GET", "OPTIONS").Name("latest-plan")

	mainRouter.HandleFunc("/sessions/{sid}", h.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	mainRouter.HandleFunc("/sessions/{sid}/logs", h.HandleSessionLogs).Methods("GET", "OPTIONS").Name("session-logs")
	mainRouter.HandleFunc("/sessions/{sid}/sets", h.HandleSubmitSet).Methods("POST", "OPTIONS").Name("submit-set")
	mainRouter.HandleFunc("/sessions/{sid}/suggestion/apply", h.HandleApply).Methods("POST", "OPTIONS").Name("apply-suggestion")
	mainRouter.HandleFunc("/sessions/{sid}/suggestion/dismiss", h.HandleDismiss).Methods("POST", "OPTIONS").Name("dismiss-suggestion")
	mainRouter.HandleFunc("/sessions/{sid}/complete", h.HandleComplete).Methods("POST", "OPTIONS").Name("complete-session")
	mainRouter.HandleFunc("/sessions/{sid}/abandon", h.HandleAbandon).Methods("POST", "OPTIONS").Name("abandon-session")
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	var req planner.Request
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.GeneratePlan(ctx, req)
	if err != nil {
		log.Errorf("generate plan for user [%s]: %s", req.Profile.UserID, err)
		writeError(w, err, "generate plan failed")
		return
	}
	writeJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	planID := mux.Vars(r)["id"]
	plan, err := h.service.GetPlan(ctx, planID)
	if err != nil {
		log.Errorf("get plan [%s]: %s", planID, err)
		writeError(w, err, "get plan failed")
		return
	}
	writeJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleLatestPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.latest")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	plan, err := h.service.LatestPlan(ctx, userID)
	if err != nil {
		log.Errorf("latest plan of user [%s]: %s", userID, err)
		writeError(w, err, "get latest plan failed")
		return
	}
	writeJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleListModifications(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.modifications")
	defer span.End()

	planID := mux.Vars(r)["id"]
	mods, err := h.service.PlanModifications(ctx, planID)
	if err != nil {
		log.Errorf("list modifications of plan [%s]: %s", planID, err)
		writeError(w, err, "list modifications failed")
		return
	}
	writeJSON(w, mods, http.StatusOK)
}

func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.resolve")
	defer span.End()

	var req planner.ExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.ResolveExercise(ctx, req)
	if err != nil {
		log.Errorf("resolve exercise [%s]: %s", req.Pattern, err)
		writeError(w, err, "resolve exercise failed")
		return
	}
	writeJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleInferCapacities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.capacities.infer")
	defer span.End()

	var req InferRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, h.service.InferCapacities(ctx, req), http.StatusOK)
}

func (h *Handler) HandleSaveCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.capacities.save")
	defer span.End()

	var c training.PatternCapacity
	if !decodeJSON(w, r, &c) {
		return
	}

	userID := mux.Vars(r)["uid"]
	if err := h.service.SaveCapacity(ctx, userID, c); err != nil {
		log.Errorf("save %s capacity for user [%s]: %s", c.Pattern, userID, err)
		writeError(w, err, "save capacity failed")
		return
	}
	writeJSON(w, c, http.StatusCreated)
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	var req StartSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	planID := mux.Vars(r)["id"]
	view, err := h.service.StartSession(ctx, planID, req)
	if err != nil {
		log.Errorf("start session on plan [%s]: %s", planID, err)
		writeError(w, err, "start session failed")
		return
	}
	writeJSON(w, view, http.StatusCreated)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	view, err := h.service.GetSession(ctx, mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, err, "get session failed")
		return
	}
	writeJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleSessionLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.logs")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	logs, err := h.service.SessionLogs(ctx, sessionID)
	if err != nil {
		log.Errorf("list set logs of session [%s]: %s", sessionID, err)
		writeError(w, err, "list set logs failed")
		return
	}
	writeJSON(w, logs, http.StatusOK)
}

// HandleSubmitSet answers 204 when the set needs no change.
func (h *Handler) HandleSubmitSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.submit_set")
	defer span.End()

	var req SubmitSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sessionID := mux.Vars(r)["sid"]
	suggestion, err := h.service.SubmitSet(ctx, sessionID, req)
	if err != nil {
		log.Errorf("submit set in session [%s]: %s", sessionID, err)
		writeError(w, err, "submit set failed")
		return
	}
	if suggestion.Kind == training.SuggestMaintain {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, suggestion, http.StatusOK)
}

func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.apply")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	spec, err := h.service.ApplySuggestion(ctx, sessionID)
	if err != nil {
		log.Errorf("apply suggestion in session [%s]: %s", sessionID, err)
		writeError(w, err, "apply suggestion failed")
		return
	}
	writeJSON(w, spec, http.StatusOK)
}

func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.dismiss")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	if err := h.service.DismissSuggestion(ctx, sessionID); err != nil {
		log.Errorf("dismiss suggestion in session [%s]: %s", sessionID, err)
		writeError(w, err, "dismiss suggestion failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	summary, err := h.service.CompleteSession(ctx, sessionID)
	if err != nil {
		log.Errorf("complete session [%s]: %s", sessionID, err)
		writeError(w, err, "complete session failed")
		return
	}
	writeJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.abandon")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	if err := h.service.AbandonSession(ctx, sessionID); err != nil {
		writeError(w, err, "abandon session failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !pkg.IsJSONContent(r) {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			pkg.WriteJSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	pkg.WriteJSON(w, v, statusCode)
}

func writeError(w http.ResponseWriter, err error, message string) {
	pkg.WriteJSONError(w, message+": "+err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrPlanLocked),
		errors.Is(err, autoreg.ErrSuggestionPending),
		errors.Is(err, autoreg.ErrNoSuggestion),
		errors.Is(err, autoreg.ErrInvalidState),
		errors.Is(err, autoreg.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, storage.ErrPlanNotFound),
		errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingUserID),
		errors.Is(err, ErrInvalidDay),
		errors.Is(err, storage.ErrInvalidCapacity),
		errors.Is(err, autoreg.ErrNoExercises),
		errors.Is(err, training.ErrInvalidRPE),
		errors.Is(err, training.ErrUnknownPattern):
		return http.StatusBadRequest
	case errors.Is(err, autoreg.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
