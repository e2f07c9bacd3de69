package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Parthiban024/jira-automation/engine/asana"
	"github.com/Parthiban024/jira-automation/engine/jira"
	"github.com/Parthiban024/jira-automation/pkg/logger"
)

// ErrBadRequest marks a delivery whose body is not JSON; the router maps
// it to HTTP 400. Every other failure becomes a Result with HTTP 200.
var ErrBadRequest = errors.New("bad request")

// TaskCreator is the outbound side of the pipeline. Implemented by
// asana.Client.
type TaskCreator interface {
	CreateTask(ctx context.Context, name, notes string) asana.Result
}

// Service turns one inbound Jira webhook delivery into exactly one task
// creation attempt. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	tasks   TaskCreator
	metrics *Metrics
	maxBody int64
}

// NewService creates the forwarding service.
func NewService(tasks TaskCreator, metrics *Metrics, maxBody int64) *Service {
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	return &Service{tasks: tasks, metrics: metrics, maxBody: maxBody}
}

// Process validates the request body and forwards the issue. The error
// return is non-nil only for the malformed-body case.
func (s *Service) Process(ctx context.Context, body io.Reader) (asana.Result, error) {
	b, err := ReadRawJSON(body, s.maxBody)
	if err != nil {
		logger.FromContext(ctx).Warn("rejecting non-JSON webhook body", "error", err)
		return asana.Result{}, ErrBadRequest
	}
	return s.Forward(ctx, b), nil
}

// Forward extracts issue fields, normalizes the description, composes the
// task name and notes, and delegates to the task creator. Field
// extraction problems become processing failures; they never propagate.
func (s *Service) Forward(ctx context.Context, body []byte) asana.Result {
	start := time.Now()
	s.metrics.OnReceived(ctx)
	log := logger.FromContext(ctx)
	log.Info("starting Jira to Asana sync")

	var ev jira.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		log.Error("failed to extract issue fields from webhook payload", "error", err)
		return s.observe(ctx, start, asana.Failure(
			asana.ErrorKindProcessing,
			fmt.Sprintf("Error processing webhook data: %s", err),
		))
	}

	key := ev.Key()
	summary := ev.Summary()
	description := jira.NormalizeDescription(ctx, ev.Issue.Fields.Description)
	log.Info("processing Jira issue", "issue", key, "summary", summary)

	name := fmt.Sprintf("[%s] %s", key, summary)
	res := s.tasks.CreateTask(ctx, name, composeNotes(key, summary, description))
	if res.OK() {
		log.Info("created Asana task", "issue", key, "task_id", res.TaskID)
	}
	return s.observe(ctx, start, res)
}

func (s *Service) observe(ctx context.Context, start time.Time, res asana.Result) asana.Result {
	if res.OK() {
		s.metrics.OnForwarded(ctx)
	} else {
		s.metrics.OnFailed(ctx, string(res.ErrorKind))
	}
	s.metrics.ObserveProcessing(ctx, time.Since(start))
	return res
}

// composeNotes builds the task notes. The Description section is present
// only when the normalized text is non-empty.
func composeNotes(key, summary, description string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Issue: %s\nOriginal Summary: %s\n\n", key, summary)
	if description != "" {
		sb.WriteString("Description:\n")
		sb.WriteString(description)
	}
	return sb.String()
}
