package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jfcoach/backend/internal/auth"
	"github.com/jfcoach/backend/internal/middleware"
	"github.com/jfcoach/backend/internal/telemetry/metrics"
	"github.com/jfcoach/backend/internal/telemetry/tracing"
	"github.com/jfcoach/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const importTimeout = time.Minute

// WebhookEvent is the typed Strava event payload.
type WebhookEvent struct {
	ObjectType     string `json:"object_type"`
	AspectType     string `json:"aspect_type"`
	ObjectID       int64  `json:"object_id"`
	OwnerID        int64  `json:"owner_id"`
	SubscriptionID int64  `json:"subscription_id"`
	EventTime      int64  `json:"event_time"`
}

type ConnectResponse struct {
	URL string `json:"url"`
}

type StatusResponse struct {
	Connected bool `json:"connected"`
}

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=strava_test

type connectionsRepo interface {
	Save(ctx context.Context, conn Connection) (*Connection, error)
	GetByCustomer(ctx context.Context, customerID int) (*Connection, error)
}

type oauthClient interface {
	AuthCodeURL(redirectURI, state string) string
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)
	GetRunByDay(ctx context.Context, accessToken string, customerID int, day time.Time) (*Activity, error)
}

type activityImporter interface {
	ImportActivity(ctx context.Context, activityID, ownerID int64) (ImportOutcome, error)
}

type Handler struct {
	verifier       *Verifier
	stateCodec     *StateCodec
	client         oauthClient
	repo           connectionsRepo
	refresher      tokenRefresher
	importer       activityImporter
	metricsManager *metrics.Manager
	// our callback endpoint, registered with Strava
	callbackURI string
	// deep link scheme the mobile app handles oauth failures on
	appErrorScheme string
}

func NewHandler(
	verifier *Verifier,
	stateCodec *StateCodec,
	client oauthClient,
	repo connectionsRepo,
	refresher tokenRefresher,
	importer activityImporter,
	metricsManager *metrics.Manager,
	callbackURI string,
	appErrorScheme string,
) *Handler {
	return &Handler{
		verifier:       verifier,
		stateCodec:     stateCodec,
		client:         client,
		repo:           repo,
		refresher:      refresher,
		importer:       importer,
		metricsManager: metricsManager,
		callbackURI:    callbackURI,
		appErrorScheme: appErrorScheme,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	stravaRouter := mainRouter.PathPrefix("/strava").Subrouter()
	stravaRouter.HandleFunc("/webhook", h.HandleWebhookVerify).Methods("GET").Name("strava-webhook-verify")
	stravaRouter.HandleFunc("/webhook", h.HandleWebhookEvent).Methods("POST").Name("strava-webhook-event")
	stravaRouter.HandleFunc("/connect", h.HandleConnect).Methods("GET", "OPTIONS").Name("strava-connect")
	stravaRouter.HandleFunc("/callback", h.HandleCallback).Methods("GET").Name("strava-callback")
	stravaRouter.HandleFunc("/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("strava-status")
	stravaRouter.HandleFunc("/activities", h.HandleGetActivities).Methods("GET", "OPTIONS").Name("strava-activities")

	// signature verification needs the untouched wire bytes
	stravaRouter.Use(middleware.RawBodyCapture())
}

// HandleWebhookVerify answers Strava's one-time subscription handshake.
func (h *Handler) HandleWebhookVerify(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.webhookVerify")
	defer span.End()

	query := r.URL.Query()
	if err := h.verifier.VerifySubscription(query.Get("hub.verify_token")); err != nil {
		log.Warnf("strava webhook handshake rejected: %s", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]string{
		"hub.challenge": query.Get("hub.challenge"),
	})
}

// HandleWebhookEvent verifies the event signature over the raw request bytes,
// acks immediately, and runs the import in the background. Strava only wants
// a fast "received", a slow response triggers redelivery.
func (h *Handler) HandleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.webhookEvent")
	defer span.End()

	rawBody, ok := middleware.RawBodyFromContext(ctx)
	if !ok {
		log.Error("strava webhook event: raw body not captured")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.verifier.VerifySignature(rawBody, r.Header.Get("X-Strava-Signature")); err != nil {
		log.Warnf("strava webhook event rejected: %s", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Errorf("strava webhook event, unmarshal body: %s", err)
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	span.SetAttributes(
		attribute.String("event.object_type", event.ObjectType),
		attribute.String("event.aspect_type", event.AspectType),
		attribute.Int64("event.object_id", event.ObjectID),
	)
	h.metricsManager.CounterWebhookEvents.
		WithLabelValues(event.ObjectType, event.AspectType).Inc()

	if event.ObjectType == "activity" && event.AspectType == "create" {
		// ack first, import in the background; the request context dies with
		// the response, so the import gets its own bounded one
		go func() {
			importCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), importTimeout)
			defer cancel()
			importCtx, importSpan := tracing.GlobalTracer.Start(importCtx, "stravaHandler.webhookEvent.import")
			defer importSpan.End()

			outcome, err := h.importer.ImportActivity(importCtx, event.ObjectID, event.OwnerID)
			if err != nil {
				log.Errorf("strava import activity %d (owner %d) failed [%s]: %s",
					event.ObjectID, event.OwnerID, outcome, err)
				return
			}
			log.Debugf("strava import activity %d (owner %d): %s", event.ObjectID, event.OwnerID, outcome)
		}()
	}

	pkg.SendJsonResponse(w, http.StatusOK, map[string]bool{"received": true})
}

// HandleConnect starts the oauth flow for the logged in customer.
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.connect")
	defer span.End()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	redirectURI := r.URL.Query().Get("redirectUri")
	if redirectURI == "" {
		http.Error(w, "error, redirectUri required", http.StatusBadRequest)
		return
	}

	state, err := h.stateCodec.Encode(ConnectState{
		CustomerID:  customerID,
		RedirectURI: redirectURI,
	})
	if err != nil {
		log.Errorf("strava connect, encode state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, ConnectResponse{
		URL: h.client.AuthCodeURL(h.callbackURI, state),
	})
}

// HandleCallback finishes the oauth flow: Strava redirects the customer's
// browser here with a code and our state blob.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.callback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := r.URL.Query()
	if query.Get("error") != "" {
		log.Warnf("strava callback, provider error: %s", query.Get("error"))
		http.Redirect(w, r, h.appErrorScheme+"?reason=access_denied", http.StatusFound)
		return
	}

	code := query.Get("code")
	stateParam := query.Get("state")
	if code == "" || stateParam == "" {
		http.Error(w, "invalid strava callback", http.StatusBadRequest)
		return
	}

	state, err := h.stateCodec.Decode(stateParam)
	if err != nil {
		log.Warnf("strava callback, bad state: %s", err)
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	tokenResponse, err := h.client.ExchangeCode(ctx, code)
	if err != nil {
		log.Errorf("strava callback, code exchange for customer %d: %s", state.CustomerID, err)
		http.Redirect(w, r, h.appErrorScheme+"?reason=token_exchange_failed", http.StatusFound)
		return
	}

	if _, err = h.repo.Save(ctx, Connection{
		CustomerID:   state.CustomerID,
		AthleteID:    tokenResponse.Athlete.ID,
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
		ExpiresAt:    tokenResponse.ExpiresAt,
	}); err != nil {
		log.Errorf("strava callback, save connection for customer %d: %s", state.CustomerID, err)
		http.Redirect(w, r, h.appErrorScheme+"?reason=token_exchange_failed", http.StatusFound)
		return
	}

	log.Debugf("strava connected for customer %d (athlete %d)", state.CustomerID, tokenResponse.Athlete.ID)
	http.Redirect(w, r, state.RedirectURI+"?connected=true", http.StatusFound)
}

// HandleStatus reports whether the logged in customer has a connection.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.status")
	defer span.End()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	_, err := h.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{Connected: false})
			return
		}
		log.Errorf("strava status for customer %d: %s", customerID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, StatusResponse{Connected: true})
}

// HandleGetActivities returns the customer's Run activity for a calendar day,
// read live from Strava (null when there is none).
func (h *Handler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stravaHandler.activities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	customerID, ok := auth.CustomerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		http.Error(w, "error, date required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	day, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, invalid date [%s]", dateParam), http.StatusBadRequest)
		return
	}

	conn, err := h.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			http.Error(w, "strava not connected", http.StatusBadRequest)
			return
		}
		log.Errorf("strava activities, get connection for customer %d: %s", customerID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err = h.refresher.EnsureFresh(ctx, conn)
	if err != nil {
		log.Errorf("strava activities, refresh for customer %d: %s", customerID, err)
		http.Error(w, "failed to refresh strava token", http.StatusInternalServerError)
		return
	}

	run, err := h.client.GetRunByDay(ctx, conn.AccessToken, customerID, day)
	if err != nil {
		log.Errorf("strava activities for customer %d: %s", customerID, err)
		http.Error(w, "failed to get strava activities", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, run)
}
