package finished

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jfcoach/backend/internal/auth"
	"github.com/jfcoach/backend/internal/telemetry/metrics"
	"github.com/jfcoach/backend/internal/telemetry/tracing"
	"github.com/jfcoach/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dayLayout = "2006-01-02"

type finishedRepo interface {
	Add(ctx context.Context, fw Workout) (*Workout, error)
	GetVolume(ctx context.Context, customerID int, from, to time.Time) (*Volume, error)
	List(ctx context.Context, customerID int, from, to time.Time) ([]Workout, error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo           finishedRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo finishedRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	finishedRouter := mainRouter.PathPrefix("/finished").Subrouter()
	finishedRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("finished-new")
	finishedRouter.HandleFunc("/volume", handler.HandleGetVolume).Methods("GET", "OPTIONS").Name("finished-volume")
	finishedRouter.HandleFunc("/history", handler.HandleGetHistory).Methods("GET", "OPTIONS").Name("finished-history")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "finishedHandler.new")
	defer span.End()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var fw Workout
	if err := json.NewDecoder(r.Body).Decode(&fw); err != nil {
		log.Tracef("new finished workout, unmarshal json params: %s", err)
		http.Error(w, "add finished workout failed", http.StatusBadRequest)
		return
	}

	if fw.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}
	if fw.DurationInSeconds <= 0 {
		http.Error(w, "error, duration invalid", http.StatusBadRequest)
		return
	}

	// manual entries only come through here, imports go through the importer
	fw.CustomerID = customerID
	fw.Source = SourceManual
	fw.ExternalID = nil
	if fw.ExecutionDay.IsZero() {
		fw.ExecutionDay = time.Now()
	}
	if fw.CreatedAt.IsZero() {
		fw.CreatedAt = time.Now()
	}

	added, err := handler.repo.Add(ctx, fw)
	if err != nil {
		log.Errorf("failed to add finished workout for customer %d: %s", customerID, err)
		http.Error(w, "error, failed to add finished workout", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterFinishedWorkouts.Inc()

	log.Debugf("new finished workout added: %d", added.ID)
	pkg.SendJsonResponse(w, http.StatusCreated, added)
}

func (handler *Handler) HandleGetVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "finishedHandler.volume")
	defer span.End()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := periodFromRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	volume, err := handler.repo.GetVolume(ctx, customerID, from, to)
	if err != nil {
		log.Errorf("failed to get volume for customer %d: %s", customerID, err)
		http.Error(w, "error, failed to get volume", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, volume)
}

func (handler *Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "finishedHandler.history")
	defer span.End()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := periodFromRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.List(ctx, customerID, from, to)
	if err != nil {
		log.Errorf("failed to get history for customer %d: %s", customerID, err)
		http.Error(w, "error, failed to get history", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
}

// periodFromRequest reads the "from" and "to" query params (YYYY-MM-DD),
// defaulting to the last 30 days.
func periodFromRequest(r *http.Request) (from time.Time, to time.Time, err error) {
	now := time.Now()
	from = now.AddDate(0, 0, -30)
	to = now

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		from, err = time.Parse(dayLayout, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from param [%s]", fromParam)
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		to, err = time.Parse(dayLayout, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to param [%s]", toParam)
		}
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period, to before from")
	}

	return from, to, nil
}
