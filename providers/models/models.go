// Package models holds the wire types and failure taxonomy of the generation
// call.
package models

import "fmt"

// Message is one chat message in the request body.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the JSON body sent to the endpoint.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

// ChatCompletionResponse is the expected response shape: a choices array
// whose first element carries the completion text.
type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AIError is the error envelope some providers return on non-2xx statuses.
type AIError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FailureKind classifies a generation failure. Each kind is reported
// distinctly; none is silently swallowed.
type FailureKind int

const (
	FailureTimeout FailureKind = iota
	FailureNetwork
	FailureRemoteError
	FailureMalformedResponse
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureNetwork:
		return "network"
	case FailureRemoteError:
		return "remote error"
	case FailureMalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// GenerationFailure is the error type of every failed generation call.
type GenerationFailure struct {
	Kind   FailureKind
	Status int    // set for FailureRemoteError
	Body   string // set for FailureRemoteError
	Err    error  // underlying transport error, if any
}

func (f *GenerationFailure) Error() string {
	switch f.Kind {
	case FailureTimeout:
		return fmt.Sprintf("generation timed out: %v", f.Err)
	case FailureNetwork:
		return fmt.Sprintf("network error during generation: %v", f.Err)
	case FailureRemoteError:
		return fmt.Sprintf("generation endpoint returned HTTP %d: %s", f.Status, f.Body)
	case FailureMalformedResponse:
		return "generation response is missing completion choices"
	default:
		return fmt.Sprintf("generation failed: %v", f.Err)
	}
}

func (f *GenerationFailure) Unwrap() error { return f.Err }
