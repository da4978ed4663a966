package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/models"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient talks JSON to the portal backend. The login call is the one
// exception: the backend's OAuth2 password flow requires form-encoded
// "username"/"password" fields.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	log     logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. rps bounds the
// outbound request rate; zero disables pacing.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, rps float64, log logging.Logger) *HTTPClient {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = int(rps) + 1
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
}

// errorEnvelope is the backend failure body. FastAPI occasionally emits a
// structured detail (validation errors); those decode to an empty string and
// fall back to the generic message.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

func decodeDetail(body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Detail
}

// do executes one request. A nil out skips response decoding (204 replies).
// When authed is true the current access token is attached as a bearer
// header; a missing token short-circuits to ErrUnauthenticated without a
// network round-trip.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if authed {
		pair, ok, err := c.tokens.Load()
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrUnauthenticated
		}
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}

	log := c.log.With("method", method, "path", path, "request_id", reqID)
	log.Debug(ctx, "api request")

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &common.APIError{StatusCode: resp.StatusCode, Detail: decodeDetail(raw)}
		log.Warn(ctx, "api error response", "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", true, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json", true, out)
}

// Login posts form-encoded credentials. The field names "username" and
// "password" are a fixed wire contract (OAuth2 password flow) even though
// the portal identifies users by email.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var pair models.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", false, &pair)
	if err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.getJSON(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.getJSON(ctx, "/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListSlots(ctx context.Context) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	if err := c.getJSON(ctx, "/bookings/slots", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]models.File, error) {
	var out []models.File
	if err := c.getJSON(ctx, "/files", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListRecordings(ctx context.Context) ([]models.Recording, error) {
	var out []models.Recording
	if err := c.getJSON(ctx, "/recordings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListRequests(ctx context.Context) ([]models.Request, error) {
	var out []models.Request
	if err := c.getJSON(ctx, "/requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateBooking(ctx context.Context, in models.BookingCreate) (*models.Booking, error) {
	var out models.Booking
	if err := c.postJSON(ctx, "/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CancelBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, "", true, nil)
}

func (c *HTTPClient) CreateRequest(ctx context.Context, in models.RequestCreate) (*models.Request, error) {
	var out models.Request
	if err := c.postJSON(ctx, "/requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DownloadURL(ctx context.Context, kind DownloadKind, id int64) (string, error) {
	var out struct {
		DownloadURL string `json:"download_url"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d/download-url", kind, id), &out); err != nil {
		return "", err
	}
	return out.DownloadURL, nil
}
