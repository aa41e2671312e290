package creator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/token"
)

// generateCmd runs one idea request. The ticket travels with the result so
// stale completions can be discarded.
func generateCmd(ctx context.Context, svc ideas.Service, ticket ideas.Ticket, prompt string) tea.Cmd {
	return func() tea.Msg {
		suggestion, err := svc.Generate(ctx, prompt)
		return IdeasSettledMsg{
			Ticket:     ticket,
			Suggestion: suggestion,
			Err:        err,
		}
	}
}

// loadImageCmd reads and sniffs an image file off the event loop
func loadImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := token.OpenImage(path)
		return ImageLoadedMsg{Path: path, Image: img, Err: err}
	}
}

// submitCmd hands the composed request to the submitter
func submitCmd(ctx context.Context, submitter token.Submitter, req token.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := submitter.Submit(ctx, req)
		return SubmitSettledMsg{
			CorrelationID: req.CorrelationID,
			Result:        res,
			Err:           err,
		}
	}
}
