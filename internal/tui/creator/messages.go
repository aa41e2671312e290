package creator

import (
	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/token"
)

// Idea generator messages

// IdeasSettledMsg carries the outcome of one idea request.
type IdeasSettledMsg struct {
	Ticket     ideas.Ticket
	Suggestion ideas.Suggestion
	Err        error
}

// Image messages

// ImageLoadedMsg carries the result of reading a picked or pasted path.
type ImageLoadedMsg struct {
	Path  string
	Image *token.Image
	Err   error
}

// Submission messages

// SubmitSettledMsg carries the submitter's outcome.
type SubmitSettledMsg struct {
	CorrelationID string
	Result        token.Result
	Err           error
}
