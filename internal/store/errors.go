package store

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v71/github"
)

// FormatError renders a store failure for an operation record. GitHub API
// failures come out as "<status> - <message>"; anything else is the plain
// error text. Keeping this a pure formatting helper means the engine's error
// taxonomy stays structural even if display conventions change.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		msg := ghErr.Message
		if msg == "" {
			msg = ghErr.Response.Status
		}
		return fmt.Sprintf("%d - %s", ghErr.Response.StatusCode, msg)
	}
	return err.Error()
}
