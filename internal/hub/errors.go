package hub

import "fmt"

// HubErrorType represents the type of Hub client error.
type HubErrorType int

const (
	// HubFetchFailed indicates the metadata query failed (network or
	// unexpected response).
	HubFetchFailed HubErrorType = iota
	// HubNotFound indicates the repository was not found on the Hub.
	HubNotFound
	// HubAuthFailed indicates authentication failed (missing or
	// invalid token for a private or gated repository).
	HubAuthFailed
	// HubTimeout indicates the metadata query timed out.
	HubTimeout
)

// String returns the string representation of the error type.
func (t HubErrorType) String() string {
	switch t {
	case HubFetchFailed:
		return "FetchFailed"
	case HubNotFound:
		return "NotFound"
	case HubAuthFailed:
		return "AuthFailed"
	case HubTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// HubError represents a Hub API error.
type HubError struct {
	// Type is the error type classification.
	Type HubErrorType
	// Repo is the repository identifier that caused the error.
	Repo string
	// URL is the request URL that failed.
	URL string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *HubError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hub error [%s] for repository '%s': %s (caused by: %v)",
			e.Type.String(), e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("hub error [%s] for repository '%s': %s",
		e.Type.String(), e.Repo, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *HubError) Unwrap() error {
	return e.Cause
}

// NewHubError creates a new HubError.
func NewHubError(typ HubErrorType, repo, url, message string, cause error) *HubError {
	return &HubError{
		Type:    typ,
		Repo:    repo,
		URL:     url,
		Message: message,
		Cause:   cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(repo, url string, cause error) *HubError {
	return NewHubError(HubFetchFailed, repo, url, "failed to fetch repository metadata", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(repo, url string) *HubError {
	return NewHubError(HubNotFound, repo, url, "repository not found", nil)
}

// NewAuthError creates an authentication failed error.
func NewAuthError(repo, url string) *HubError {
	return NewHubError(HubAuthFailed, repo, url, "authentication failed (private or gated repository?)", nil)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(repo, url string, cause error) *HubError {
	return NewHubError(HubTimeout, repo, url, "metadata request timed out", cause)
}
