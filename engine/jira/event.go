package jira

import "encoding/json"

// Fallbacks substituted when the webhook payload omits a field.
const (
	DefaultKey     = "UNKNOWN"
	DefaultSummary = "No Title"
)

// Event is the inbound Jira webhook payload. Only the fields this
// integration forwards are modeled; everything else is ignored.
type Event struct {
	Issue Issue `json:"issue"`
}

// Issue carries the tracker identifier and the forwarded fields.
type Issue struct {
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields holds the issue attributes. Description is kept raw because Jira
// sends either a plain string or an ADF rich-text document depending on
// the instance version.
type Fields struct {
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description"`
}

// Key returns the issue key, or DefaultKey when absent.
func (e *Event) Key() string {
	if e.Issue.Key == "" {
		return DefaultKey
	}
	return e.Issue.Key
}

// Summary returns the issue summary, or DefaultSummary when absent.
func (e *Event) Summary() string {
	if e.Issue.Fields.Summary == "" {
		return DefaultSummary
	}
	return e.Issue.Fields.Summary
}
