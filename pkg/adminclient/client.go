// Package adminclient provides an HTTP client for the gym admin API.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ErrMemberNotFound is returned when the server has no member with the
// requested id.
var ErrMemberNotFound = errors.New("member not found")

// ErrRequestFailed wraps non-success statuses that carry no structured error.
var ErrRequestFailed = errors.New("request failed")

// Member is the wire representation of one membership record.
type Member struct {
	MemberID      int     `json:"member_id"`
	UniqueCode    string  `json:"unique_code"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           *int    `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	MemberType    string  `json:"member_type"`
	StudentNumber *string `json:"student_number,omitempty"`
	GymPlan       string  `json:"gym_plan"`
	Email         string  `json:"email,omitempty"`
	ContactNumber string  `json:"contact_number,omitempty"`
	Address       string  `json:"address,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	PricePaid     float64 `json:"price_paid"`
}

// MutationResult is the success-flag envelope mutations resolve to.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Client talks to the gym admin server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new admin API client.
func New(baseURL string, logger *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches the authoritative member list.
func (c *Client) List(ctx context.Context) ([]Member, error) {
	var resp struct {
		Members []Member `json:"members"`
	}
	if err := c.getJSON(ctx, "/admin/members-json", &resp); err != nil {
		return nil, err
	}
	if resp.Members == nil {
		resp.Members = []Member{}
	}
	return resp.Members, nil
}

// Get fetches one member's full detail.
func (c *Client) Get(ctx context.Context, memberID int) (*Member, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/admin/member/%d", memberID), nil, "")
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("Get request failed", "member_id", memberID, "error", err)
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode == http.StatusNotFound {
		return nil, ErrMemberNotFound
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, httpResp.StatusCode)
	}

	var member Member
	if err := json.NewDecoder(httpResp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	return &member, nil
}

// CreateForm carries the new-member form fields. Zero-value optional fields
// are omitted from the multipart body.
type CreateForm struct {
	FirstName     string
	LastName      string
	Age           string
	Gender        string
	MemberType    string
	StudentNumber string
	GymPlan       string
	Email         string
	ContactNumber string
	Address       string
	StartDate     string
	EndDate       string
}

func (f CreateForm) fields() map[string]string {
	fields := map[string]string{
		"first_name":  f.FirstName,
		"last_name":   f.LastName,
		"member_type": f.MemberType,
		"gym_plan":    f.GymPlan,
		"start_date":  f.StartDate,
		"end_date":    f.EndDate,
	}
	optional := map[string]string{
		"age":            f.Age,
		"gender":         f.Gender,
		"student_number": f.StudentNumber,
		"email":          f.Email,
		"contact_number": f.ContactNumber,
		"address":        f.Address,
	}
	for key, value := range optional {
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}

// Create submits a new member as a multipart form.
func (c *Client) Create(ctx context.Context, form CreateForm) (*MutationResult, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range form.fields() {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close form writer: %w", err)
	}

	return c.doMutation(ctx, http.MethodPost, "/admin/add-member", body, writer.FormDataContentType())
}

// UpdateFields is the partial edit payload. Member type is not editable
// after creation, so it has no field here.
type UpdateFields struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	GymPlan       *string `json:"gym_plan,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// Update submits a partial edit for one member.
func (c *Client) Update(ctx context.Context, memberID int, fields UpdateFields) (*MutationResult, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal update fields: %w", err)
	}

	return c.doMutation(ctx, http.MethodPost,
		fmt.Sprintf("/admin/member/%d/edit", memberID),
		bytes.NewReader(payload), "application/json")
}

// Delete removes one member.
func (c *Client) Delete(ctx context.Context, memberID int) (*MutationResult, error) {
	return c.doMutation(ctx, http.MethodDelete,
		fmt.Sprintf("/admin/member/%d/delete", memberID), nil, "")
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// doMutation sends a mutation and decodes the success-flag envelope. The
// envelope is decoded for every status so a 4xx validation failure still
// yields the server's error text.
func (c *Client) doMutation(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*MutationResult, error) {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("mutation request failed", "method", method, "path", path, "error", err)
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	var result MutationResult
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debugw("mutation completed",
		"method", method,
		"path", path,
		"status", httpResp.StatusCode,
		"success", result.Success,
	)
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("GET request failed", "path", path, "error", err)
		return err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s status %d", ErrRequestFailed, path, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
