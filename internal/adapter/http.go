package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/studysesh/study-sesh/internal/config"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/utils"
	"github.com/studysesh/study-sesh/models"
)

// httpServerAdapter is the HTTP/REST implementation of [ServerAdapter].
// The bearer token is guarded by a mutex so the TUI event loop and background
// requests can share one adapter.
type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request prepares a resty request with the JSON content type and, when a
// token is held, the Authorization header.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}

	return req
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.request(ctx).
		SetBody(user).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	var tokenResponse models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(user).
		SetResult(&tokenResponse).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if tokenResponse.Token == "" {
		return fmt.Errorf("login response carried no token")
	}

	h.SetToken(tokenResponse.Token)
	return nil
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, username, newPassword string) error {
	resp, err := h.request(ctx).
		SetBody(models.ResetPasswordRequest{Username: username, NewPassword: newPassword}).
		Post("/reset-password")
	if err != nil {
		return fmt.Errorf("reset-password request: %w", err)
	}

	return mapHTTPError(resp)
}

// list, create, update, and remove are the shared verbs behind the sixteen
// resource methods below.

func (h *httpServerAdapter) list(ctx context.Context, path string, out any) error {
	resp, err := h.request(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) create(ctx context.Context, path string, body, out any) error {
	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(out).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) update(ctx context.Context, path string, body, out any) error {
	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(out).
		Put(path)
	if err != nil {
		return fmt.Errorf("PUT %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) remove(ctx context.Context, path string) error {
	resp, err := h.request(ctx).
		Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := h.list(ctx, "/subjects", &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (h *httpServerAdapter) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	var created models.Subject
	if err := h.create(ctx, "/subjects", subject, &created); err != nil {
		return models.Subject{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	var updated models.Subject
	if err := h.update(ctx, fmt.Sprintf("/subjects/%d", subject.ID), subject, &updated); err != nil {
		return models.Subject{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteSubject(ctx context.Context, id int64) error {
	return h.remove(ctx, fmt.Sprintf("/subjects/%d", id))
}

func (h *httpServerAdapter) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := h.list(ctx, "/assignments", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (h *httpServerAdapter) CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	var created models.Assignment
	if err := h.create(ctx, "/assignments", assignment, &created); err != nil {
		return models.Assignment{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	var updated models.Assignment
	if err := h.update(ctx, fmt.Sprintf("/assignments/%d", assignment.ID), assignment, &updated); err != nil {
		return models.Assignment{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteAssignment(ctx context.Context, id int64) error {
	return h.remove(ctx, fmt.Sprintf("/assignments/%d", id))
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := h.list(ctx, "/notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note
	if err := h.create(ctx, "/notes", note, &created); err != nil {
		return models.Note{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var updated models.Note
	if err := h.update(ctx, fmt.Sprintf("/notes/%d", note.ID), note, &updated); err != nil {
		return models.Note{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	return h.remove(ctx, fmt.Sprintf("/notes/%d", id))
}

func (h *httpServerAdapter) ListTests(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	if err := h.list(ctx, "/tests", &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (h *httpServerAdapter) CreateTest(ctx context.Context, test models.Test) (models.Test, error) {
	var created models.Test
	if err := h.create(ctx, "/tests", test, &created); err != nil {
		return models.Test{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateTest(ctx context.Context, test models.Test) (models.Test, error) {
	var updated models.Test
	if err := h.update(ctx, fmt.Sprintf("/tests/%d", test.ID), test, &updated); err != nil {
		return models.Test{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteTest(ctx context.Context, id int64) error {
	return h.remove(ctx, fmt.Sprintf("/tests/%d", id))
}

func (h *httpServerAdapter) Ask(ctx context.Context, messages []models.ChatMessage) (string, error) {
	var askResponse models.AskResponse

	if err := h.create(ctx, "/ai-assistant", models.AskRequest{Messages: messages}, &askResponse); err != nil {
		return "", err
	}

	return askResponse.Response, nil
}
