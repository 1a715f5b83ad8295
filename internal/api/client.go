package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/session"
)

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	genericErrorMessage = "API Error"

	requestTimeout = 30 * time.Second
)

// Resolution statuses reported by the resolve endpoints.
const (
	ResolutionSuccess   = "success"
	ResolutionDRMLocked = "drm_locked"
)

// APIError is a backend-reported failure carrying the human-readable message
// extracted from the response body's detail field.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// QualityInfo is the response of the quality-listing endpoint.
type QualityInfo struct {
	IsDRM     bool     `json:"is_drm"`
	Qualities []string `json:"qualities"`
}

// Resolution is the response of the resolve endpoints.
type Resolution struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

type tokenRequest struct {
	AccessToken string `json:"access_token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type coursesResponse struct {
	Courses []model.Course `json:"courses"`
}

type curriculumResponse struct {
	Curriculum []model.CurriculumRecord `json:"curriculum"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Client handles course backend interactions. Every call attaches the
// current session token as the Authorization header; non-success responses
// and unparseable bodies surface as *APIError with no retries.
type Client struct {
	httpClient *http.Client
	session    *session.Store

	mu      sync.RWMutex
	baseURL string
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, store *session.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    store,
	}
}

// SetBaseURL points the client at a different backend, e.g. after the user
// changed the backend URL in settings.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

func (c *Client) base() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// call performs one backend request and decodes the JSON response into out.
func (c *Client) call(method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base()+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The session header always wins over anything a caller could set.
	if token, ok := c.session.Get(); ok {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var eb errorBody
		if jsonErr := json.Unmarshal(data, &eb); jsonErr == nil && eb.Detail != "" {
			return &APIError{Message: eb.Detail}
		}
		return &APIError{Message: genericErrorMessage}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{Message: genericErrorMessage}
		}
	}
	return nil
}

// Authenticate validates a raw access token.
func (c *Client) Authenticate(token string) error {
	return c.call(http.MethodPost, "/api/auth", tokenRequest{AccessToken: token}, nil)
}

// Login exchanges email/password credentials for an access token.
func (c *Client) Login(email, password string) (string, error) {
	var out loginResponse
	if err := c.call(http.MethodPost, "/api/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Courses fetches the list of purchased courses for the session.
func (c *Client) Courses() ([]model.Course, error) {
	var out coursesResponse
	if err := c.call(http.MethodGet, "/api/courses", nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// Curriculum fetches the flat ordered curriculum of a course.
func (c *Client) Curriculum(courseID int64) ([]model.CurriculumRecord, error) {
	var out curriculumResponse
	path := fmt.Sprintf("/api/curriculum/%d", courseID)
	if err := c.call(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Curriculum, nil
}

// LectureQualities fetches the available video qualities for a lecture.
func (c *Client) LectureQualities(courseID, lectureID int64) (*QualityInfo, error) {
	var out QualityInfo
	path := fmt.Sprintf("/api/lecture-qualities/%d/%d", courseID, lectureID)
	if err := c.call(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveLecture resolves a one-time download URL for a lecture video.
// Quality is optional; empty means the backend picks the best stream.
func (c *Client) ResolveLecture(courseID, lectureID int64, quality string) (*Resolution, error) {
	path := fmt.Sprintf("/api/resolve-download/%d/%d", courseID, lectureID)
	if quality != "" {
		path += "?quality=" + url.QueryEscape(quality)
	}
	var out Resolution
	if err := c.call(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveAttachment resolves a download URL for a supplementary asset.
func (c *Client) ResolveAttachment(courseID, lectureID, assetID int64) (*Resolution, error) {
	path := fmt.Sprintf("/api/resolve-attachment/%d/%d/%d", courseID, lectureID, assetID)
	var out Resolution
	if err := c.call(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
