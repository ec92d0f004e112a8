package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jfcoach/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultAPIBaseURL   = "https://www.strava.com/api/v3"
	DefaultOAuthBaseURL = "https://www.strava.com/oauth"

	activityTypeRun = "Run"

	// Strava rate limits are tight (100 req / 15 min), cache day lookups briefly
	activitiesCacheExpireSeconds = 60
)

// TokenResponse is the subset of the oauth token endpoint response we consume.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Athlete      struct {
		ID int64 `json:"id"`
	} `json:"athlete"`
}

// Activity is the subset of a Strava activity we consume.
type Activity struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Distance     float64   `json:"distance"`
	MovingTime   int       `json:"moving_time"`
	AverageSpeed float64   `json:"average_speed"`
	StartDate    time.Time `json:"start_date"`
}

func (a *Activity) IsRun() bool {
	return a.Type == activityTypeRun
}

type Client struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	oauthBaseURL string
	httpClient   *http.Client
	cache        *freecache.Cache
}

func NewClient(
	clientID string,
	clientSecret string,
	apiBaseURL string,
	oauthBaseURL string,
	httpClient *http.Client,
) *Client {
	megabyte := 1024 * 1024
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiBaseURL:   apiBaseURL,
		oauthBaseURL: oauthBaseURL,
		httpClient:   httpClient,
		cache:        freecache.NewCache(10 * megabyte),
	}
}

// AuthCodeURL builds the provider authorization URL the customer's browser is
// sent to. redirectURI is our callback endpoint, state travels through the
// provider untouched.
func (c *Client) AuthCodeURL(redirectURI, state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", redirectURI)
	params.Set("approval_prompt", "auto")
	params.Set("scope", "activity:read_all")
	params.Set("state", state)
	return fmt.Sprintf("%s/authorize?%s", c.oauthBaseURL, params.Encode())
}

// ExchangeCode trades an authorization code for a token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (_ *TokenResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaClient.exchangeCode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.token(ctx, url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
	})
}

// RefreshToken trades a refresh token for a new token pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (_ *TokenResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaClient.refreshToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.token(ctx, url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
}

func (c *Client) token(ctx context.Context, params url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx, "POST",
		fmt.Sprintf("%s/token", c.oauthBaseURL),
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint status %d: %s", resp.StatusCode, respBytes)
	}

	tokenResponse := &TokenResponse{}
	if err := json.Unmarshal(respBytes, tokenResponse); err != nil {
		return nil, fmt.Errorf("unmarshal token response: %w", err)
	}

	return tokenResponse, nil
}

// GetActivity fetches full activity detail.
func (c *Client) GetActivity(ctx context.Context, accessToken string, activityID int64) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaClient.getActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", activityID))

	req, err := http.NewRequestWithContext(
		ctx, "GET",
		fmt.Sprintf("%s/activities/%d", c.apiBaseURL, activityID),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read activity response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activity endpoint status %d: %s", resp.StatusCode, respBytes)
	}

	activity := &Activity{}
	if err := json.Unmarshal(respBytes, activity); err != nil {
		return nil, fmt.Errorf("unmarshal activity: %w", err)
	}

	return activity, nil
}

// GetRunByDay returns the first Run activity the athlete recorded on the given
// calendar day (UTC bounds), or nil when there is none. Day lookups are cached
// per customer for a short period.
func (c *Client) GetRunByDay(ctx context.Context, accessToken string, customerID int, day time.Time) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaClient.getRunByDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("customer.id", customerID),
		attribute.String("day", day.Format("2006-01-02")),
	)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	var activities []Activity
	cacheKey := fmt.Sprintf("activities::%d::%s", customerID, dayStart.Format("2006-01-02"))
	if activitiesBytes, err := c.cache.Get([]byte(cacheKey)); err == nil {
		if err = json.Unmarshal(activitiesBytes, &activities); err == nil {
			log.Tracef("found cached activities for %s", cacheKey)
			return firstRun(activities), nil
		}
		log.Errorf("failed to unmarshal cached activities for %s: %s", cacheKey, err)
	}

	params := url.Values{}
	params.Set("after", fmt.Sprintf("%d", dayStart.Unix()))
	params.Set("before", fmt.Sprintf("%d", dayEnd.Unix()))

	req, err := http.NewRequestWithContext(
		ctx, "GET",
		fmt.Sprintf("%s/athlete/activities?%s", c.apiBaseURL, params.Encode()),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read activities response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("athlete activities endpoint status %d: %s", resp.StatusCode, respBytes)
	}

	if err := json.Unmarshal(respBytes, &activities); err != nil {
		return nil, fmt.Errorf("unmarshal activities: %w", err)
	}

	if err := c.cache.Set([]byte(cacheKey), respBytes, activitiesCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache activities for %s: %s", cacheKey, err)
	}

	return firstRun(activities), nil
}

func firstRun(activities []Activity) *Activity {
	for i := range activities {
		if activities[i].IsRun() {
			return &activities[i]
		}
	}
	return nil
}
