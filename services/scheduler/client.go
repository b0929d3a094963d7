package schedulersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/maplewood/scheduler/core"
	"github.com/maplewood/scheduler/core/schedule"
	"github.com/maplewood/scheduler/core/student"
)

// TransportError is a network/HTTP-level failure talking to the scheduler
// service. Retryable by re-invoking the call; never fatal.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("scheduler: %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

func IsTransportError(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}

// Client talks to the authoritative scheduler service. It implements
// schedule.API and student.API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ schedule.API = (*Client)(nil)
	_ student.API  = (*Client)(nil)
)

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(conf.Scheduler.BaseURL, "/"),
		httpClient: &http.Client{Timeout: conf.Scheduler.Timeout},
	}
}

// envelope is the {success, message, data} wrapper the master-schedule
// endpoints respond with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type entriesData struct {
	Entries []schedule.Section `json:"entries"`
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return errors.Wrap(err, "encoding request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: errors.Wrap(err, "decoding response")}
	}
	return nil
}

func (c *Client) entries(ctx context.Context, op, method, path string, body interface{}) ([]schedule.Section, error) {
	var env envelope
	if err := c.do(ctx, op, method, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		// the request itself was rejected (unknown semester, bad input)
		return nil, core.NewValidationError(errors.New(env.Message))
	}
	var data entriesData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, &TransportError{Op: op, Err: errors.Wrap(err, "decoding entries")}
	}
	return data.Entries, nil
}

func (c *Client) Semesters(ctx context.Context) ([]schedule.Semester, error) {
	var semesters []schedule.Semester
	if err := c.do(ctx, "semesters", http.MethodGet, "/semesters", nil, &semesters); err != nil {
		return nil, err
	}
	return semesters, nil
}

func (c *Client) MasterSchedule(ctx context.Context, semesterID int) ([]schedule.Section, error) {
	path := fmt.Sprintf("/master-schedule/semester/%d", semesterID)
	return c.entries(ctx, "master schedule", http.MethodGet, path, nil)
}

func (c *Client) GenerateMasterSchedule(ctx context.Context, semesterID int) ([]schedule.Section, error) {
	body := map[string]int{"semesterId": semesterID}
	return c.entries(ctx, "generate master schedule", http.MethodPost, "/master-schedule/generate", body)
}

func (c *Client) Progress(ctx context.Context, studentID int) (student.Progress, error) {
	var prog student.Progress
	path := fmt.Sprintf("/students/%d/progress", studentID)
	if err := c.do(ctx, "student progress", http.MethodGet, path, nil, &prog); err != nil {
		return student.Progress{}, err
	}
	return prog, nil
}

func (c *Client) StudentSchedule(ctx context.Context, studentID, semesterID int) (student.Schedule, error) {
	var sched student.Schedule
	path := fmt.Sprintf("/students/%d/schedule?semesterId=%d", studentID, semesterID)
	if err := c.do(ctx, "student schedule", http.MethodGet, path, nil, &sched); err != nil {
		return student.Schedule{}, err
	}
	return sched, nil
}

func (c *Client) AvailableSections(ctx context.Context, studentID, semesterID int) ([]student.CandidateSection, error) {
	var sections []student.CandidateSection
	path := fmt.Sprintf("/students/%d/available-sections?semesterId=%d", studentID, semesterID)
	if err := c.do(ctx, "available sections", http.MethodGet, path, nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// Enroll submits the authoritative enrollment. A success=false response is an
// enrollment rejection, not a transport failure.
func (c *Client) Enroll(ctx context.Context, studentID, sectionID int) error {
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/students/%d/enroll?sectionId=%d", studentID, sectionID)
	if err := c.do(ctx, "enroll", http.MethodPost, path, nil, &result); err != nil {
		return err
	}
	if !result.Success {
		return &student.RejectionError{Message: result.Message}
	}
	return nil
}
