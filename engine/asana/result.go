package asana

// ErrorKind classifies a task-creation failure by the domain it
// originated in.
type ErrorKind string

const (
	// ErrorKindNetwork is a transport-level failure reaching the Asana API.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindAPI means Asana was reachable but returned a non-success status.
	ErrorKindAPI ErrorKind = "api"
	// ErrorKindProcessing is a failure extracting or composing fields from
	// the inbound payload, before any outbound call.
	ErrorKindProcessing ErrorKind = "processing"
	// ErrorKindTaskCreation is an uncategorized failure on the outbound path.
	ErrorKindTaskCreation ErrorKind = "task_creation"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Result is the single outcome produced for every inbound issue event.
// It is serialized verbatim back to the webhook sender.
type Result struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	TaskID     string    `json:"task_id,omitempty"`
	TaskName   string    `json:"task_name,omitempty"`
	TaskURL    string    `json:"asana_url,omitempty"`
	ErrorKind  ErrorKind `json:"error_type,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
}

// Success builds the result for a created task.
func Success(taskID, taskName, taskURL string) Result {
	return Result{
		Status:   statusSuccess,
		Message:  "Task created successfully in Asana",
		TaskID:   taskID,
		TaskName: taskName,
		TaskURL:  taskURL,
	}
}

// Failure builds an error result of the given kind.
func Failure(kind ErrorKind, message string) Result {
	return Result{
		Status:    statusError,
		Message:   message,
		ErrorKind: kind,
	}
}

// APIFailure builds an error result for a non-success Asana response.
func APIFailure(statusCode int, message string) Result {
	r := Failure(ErrorKindAPI, message)
	r.StatusCode = statusCode
	return r
}

// OK reports whether the result represents a created task.
func (r Result) OK() bool {
	return r.Status == statusSuccess
}
