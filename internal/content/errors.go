package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrNotFound: the document does not exist (or was already deleted).
	ErrNotFound = errors.New("content: document not found")
	// ErrRevisionMismatch: a patch carried an IfRevision guard and the stored
	// revision moved underneath it. The later writer must re-read.
	ErrRevisionMismatch = errors.New("content: revision mismatch")
)

// APIError is a non-2xx answer from the store, with whatever description the
// platform attached.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("content: api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("content: %s (status %d)", e.Description, e.StatusCode)
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var envelope struct {
		Error struct {
			Description string `json:"description"`
			Type        string `json:"type"`
		} `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &envelope)

	desc := envelope.Error.Description
	if desc == "" {
		desc = envelope.Message
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Description: desc}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr)
	case http.StatusConflict, http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ErrRevisionMismatch, apiErr)
	}
	return apiErr
}
