// Package review hands a recorded clip to an external natural-language
// diagnostic collaborator and returns its free-text assessment.
//
// The raw container bytes travel as-is; nothing derived from the numeric
// pipeline is sent, and the response text is returned without interpretation.
package review

import "context"

// Reviewer produces a free-text assessment of a recorded clip.
type Reviewer interface {
	Review(ctx context.Context, audioWAV []byte) (string, error)
}
