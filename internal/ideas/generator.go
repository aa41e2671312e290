package ideas

import (
	"errors"
	"strings"
)

// State is the lifecycle of the generator's single request slot.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInFlight:
		return "in-flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrInFlight is returned by Begin while a request is outstanding.
var ErrInFlight = errors.New("idea request already in flight")

// Ticket identifies one request issued through Begin.
type Ticket uint64

// Generator tracks the prompt, the last suggestion and the request lifecycle.
// It performs no I/O: Begin hands out a ticket, the caller runs the request,
// and Settle applies the outcome. Only the ticket from the latest Begin is
// honoured.
type Generator struct {
	prompt     string
	state      State
	ticket     Ticket
	suggestion *Suggestion
	errMsg     string
}

// NewGenerator returns an idle generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// SetPrompt, Prompt and State expose the concept text the next Begin uses and
// the current lifecycle state.
func (g *Generator) SetPrompt(p string) { g.prompt = p }
func (g *Generator) Prompt() string { return g.prompt }
func (g *Generator) State() State { return g.state }

// Loading reports whether a request is outstanding. The trigger control is
// disabled while it is true.
func (g *Generator) Loading() bool {
	return g.state == StateInFlight
}

// Err returns the message of the last failure, or "".
func (g *Generator) Err() string {
	return g.errMsg
}

// Suggestion returns the last successful suggestion.
func (g *Generator) Suggestion() (Suggestion, bool) {
	if g.suggestion == nil {
		return Suggestion{}, false
	}
	return *g.suggestion, true
}

// Begin starts a request for the current prompt. A blank prompt fails
// locally with EmptyPromptMessage and no ticket is issued. Otherwise prior
// results and errors are cleared and the generator enters StateInFlight.
func (g *Generator) Begin() (Ticket, error) {
	if g.state == StateInFlight {
		return 0, ErrInFlight
	}
	if strings.TrimSpace(g.prompt) == "" {
		g.state = StateFailed
		g.errMsg = EmptyPromptMessage
		return 0, ErrEmptyPrompt
	}
	g.ticket++
	g.state = StateInFlight
	g.suggestion = nil
	g.errMsg = ""
	return g.ticket, nil
}

// Settle applies the outcome of the request identified by t. Loading ends
// regardless of outcome. It returns false for a stale ticket.
func (g *Generator) Settle(t Ticket, s Suggestion, err error) bool {
	if t == 0 || t != g.ticket || g.state != StateInFlight {
		return false
	}
	if err != nil {
		g.state = StateFailed
		g.errMsg = Message(err)
		return true
	}
	g.state = StateSucceeded
	g.suggestion = &s
	return true
}

// AdoptName passes the suggested name to set. It reports whether there was a
// suggestion to adopt.
func (g *Generator) AdoptName(set func(string)) bool {
	return g.adopt(set, func(s Suggestion) string { return s.Name })
}

// AdoptSymbol passes the suggested symbol to set.
func (g *Generator) AdoptSymbol(set func(string)) bool {
	return g.adopt(set, func(s Suggestion) string { return s.Symbol })
}

// AdoptDescription passes the suggested description to set.
func (g *Generator) AdoptDescription(set func(string)) bool {
	return g.adopt(set, func(s Suggestion) string { return s.Description })
}

func (g *Generator) adopt(set func(string), field func(Suggestion) string) bool {
	s, ok := g.Suggestion()
	if !ok || set == nil {
		return false
	}
	set(field(s))
	return true
}
