package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTeamsAvailable is returned when the Linear workspace has no teams to file issues into
var ErrNoTeamsAvailable = errors.New("no Linear teams available in workspace")

// ErrIssueCreationFailed is returned when issueCreate reports success=false without a transport error
var ErrIssueCreationFailed = errors.New("linear issue creation failed")

// ErrMalformedResponse is returned when a GraphQL response does not have the expected shape
var ErrMalformedResponse = errors.New("malformed Linear API response")

// RemoteAPIError is the normalized failure of a Linear GraphQL call.
// Exactly one of Messages, StatusCode or Err describes the failure, checked in that order.
type RemoteAPIError struct {
	// Messages holds every message of a GraphQL error array
	Messages []string
	// StatusCode and Payload describe a non-2xx response without a GraphQL error array
	StatusCode int
	Payload    string
	// Err is the underlying transport error when no response was received
	Err error
}

func (e *RemoteAPIError) Error() string {
	switch {
	case len(e.Messages) > 0:
		return strings.Join(e.Messages, "; ")
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Payload)
	case e.Err != nil:
		return fmt.Sprintf("linear request failed: %v", e.Err)
	default:
		return "linear request failed"
	}
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// IsRemoteAPIError checks if an error (or anything it wraps) is a RemoteAPIError
func IsRemoteAPIError(err error) bool {
	var apiErr *RemoteAPIError
	return errors.As(err, &apiErr)
}
