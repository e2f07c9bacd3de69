package asana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Parthiban024/jira-automation/pkg/config"
	"github.com/Parthiban024/jira-automation/pkg/logger"
)

const tasksPath = "/api/1.0/tasks"

// gid sentinel when Asana answers 201 without a readable identifier
const unknownGID = "Unknown"

// Client creates tasks through the Asana REST API. Each inbound webhook
// delivery results in exactly one call; there is no retry policy, the
// webhook sender owns redelivery.
type Client struct {
	http      *resty.Client
	baseURL   string
	projectID string
}

// NewClient builds a client from configuration. A missing token is not an
// error here; it surfaces as an authorization failure from Asana.
func NewClient(cfg *config.AsanaConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.Token.Value())
	return &Client{
		http:      client,
		baseURL:   base,
		projectID: cfg.ProjectID,
	}
}

type taskRequest struct {
	Data taskData `json:"data"`
}

type taskData struct {
	Name     string   `json:"name"`
	Notes    string   `json:"notes"`
	Projects []string `json:"projects"`
}

type taskResponse struct {
	Data struct {
		GID string `json:"gid"`
	} `json:"data"`
}

// CreateTask issues a single task-creation call and classifies the
// outcome. It never returns an error; every failure domain maps to a
// Failure result handed back to the webhook sender.
func (c *Client) CreateTask(ctx context.Context, name, notes string) Result {
	log := logger.FromContext(ctx)
	body := taskRequest{Data: taskData{
		Name:     name,
		Notes:    notes,
		Projects: []string{c.projectID},
	}}
	log.Info("sending task creation request to Asana", "task_name", name)
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(tasksPath)
	if err != nil {
		return c.classifyCallError(ctx, err)
	}
	log.Info("Asana API responded", "status_code", resp.StatusCode())
	if resp.StatusCode() != http.StatusCreated {
		msg := fmt.Sprintf("Asana API error: %d - %s", resp.StatusCode(), resp.String())
		log.Error("task creation rejected by Asana", "status_code", resp.StatusCode(), "body", resp.String())
		return APIFailure(resp.StatusCode(), msg)
	}
	gid := c.extractGID(ctx, resp.Body())
	return Success(gid, name, c.taskURL(gid))
}

func (c *Client) classifyCallError(ctx context.Context, err error) Result {
	log := logger.FromContext(ctx)
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		log.Error("network error while calling Asana API", "error", err)
		return Failure(ErrorKindNetwork, fmt.Sprintf("Network error while calling Asana API: %s", err))
	}
	log.Error("unexpected error creating Asana task", "error", err)
	return Failure(ErrorKindTaskCreation, fmt.Sprintf("Unexpected error creating Asana task: %s", err))
}

// extractGID pulls the task identifier out of a 201 response. A body that
// does not carry one is degraded to the sentinel, never a failure.
func (c *Client) extractGID(ctx context.Context, body []byte) string {
	var parsed taskResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Data.GID == "" {
		logger.FromContext(ctx).Warn("created task response carried no gid")
		return unknownGID
	}
	return parsed.Data.GID
}

// taskURL composes the Asana viewer URL for a created task.
func (c *Client) taskURL(gid string) string {
	return fmt.Sprintf("%s/0/%s/%s", c.baseURL, c.projectID, gid)
}
