package token

import (
	"errors"
	"time"
)

// Status is the submission state of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusCreating
)

func (s Status) String() string {
	if s == StatusCreating {
		return "creating"
	}
	return "idle"
}

// ErrSubmitDisabled is returned when submission is attempted without a
// connected wallet or while another submission is running.
var ErrSubmitDisabled = errors.New("submission disabled")

// Result records the outcome of the last submission.
type Result struct {
	Signature string
	Message   string
	Err       string
	At        time.Time
}

// Failed reports whether the submission ended in an error.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Form owns all token-creation state. Children never hold copies; they read
// through the accessors and write through the mutators.
type Form struct {
	draft       Draft
	authorities Authorities
	creator     CreatorInfo
	payer       string
	status      Status
	result      *Result
	now         func() time.Time
}

// NewForm returns a form populated with the default draft values.
func NewForm() *Form {
	return &Form{
		draft: Draft{
			Decimals: DefaultDecimals,
			Supply:   DefaultSupply,
		},
		authorities: DefaultAuthorities(),
		now:         time.Now,
	}
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft { return f.draft }

// Authorities returns the current revocation choices.
func (f *Form) Authorities() Authorities { return f.authorities }

// Creator returns the current creator-info override.
func (f *Form) Creator() CreatorInfo { return f.creator }

// Status returns the submission status.
func (f *Form) Status() Status { return f.status }

// Result returns the last recorded submission result.
func (f *Form) Result() (Result, bool) {
	if f.result == nil {
		return Result{}, false
	}
	return *f.result, true
}

// Draft setters. Each replaces one field exactly as entered; nothing is
// validated or trimmed.
func (f *Form) SetName(v string) { f.draft.Name = v }
func (f *Form) SetSymbol(v string) { f.draft.Symbol = v }
func (f *Form) SetDecimals(v uint64) { f.draft.Decimals = v }
func (f *Form) SetSupply(v uint64) { f.draft.Supply = v }
func (f *Form) SetDescription(v string) { f.draft.Description = v }

// SetRevoke sets a single authority choice.
func (f *Form) SetRevoke(kind AuthorityKind, revoked bool) {
	f.authorities = f.authorities.With(kind, revoked)
}

// Creator info setters. Name and website are kept while the override is
// disabled and only reach the request once it is enabled again.
func (f *Form) SetCreatorEnabled(v bool) { f.creator.Enabled = v }
func (f *Form) SetCreatorName(v string) { f.creator.Name = v }
func (f *Form) SetCreatorWebsite(v string) { f.creator.Website = v }

// AcceptImage stores an image as both the submission payload and the preview.
// A nil image leaves the current one in place.
func (f *Form) AcceptImage(img *Image) {
	if img == nil {
		return
	}
	f.draft.Image = img
}

// ImagePreview returns the data URI of the current image, or "".
func (f *Form) ImagePreview() string {
	if f.draft.Image == nil {
		return ""
	}
	return f.draft.Image.DataURI
}

// SetPayer records the connected wallet's public key. An empty key means the
// wallet is disconnected.
func (f *Form) SetPayer(publicKey string) { f.payer = publicKey }

// Payer returns the connected wallet's public key, or "".
func (f *Form) Payer() string { return f.payer }

// Quote derives the current price. It is recomputed on every call.
func (f *Form) Quote() Quote {
	return ComputeQuote(f.authorities, f.creator)
}

// CanSubmit reports whether the submit action is enabled: a wallet must be
// connected and no submission may be running.
func (f *Form) CanSubmit() bool {
	return f.payer != "" && f.status == StatusIdle
}

// BeginSubmit composes the creation request and moves the form to
// StatusCreating.
func (f *Form) BeginSubmit(correlationID string) (CreateRequest, error) {
	if !f.CanSubmit() {
		return CreateRequest{}, ErrSubmitDisabled
	}
	f.status = StatusCreating
	return f.compose(correlationID), nil
}

// FinishSubmit returns the form to StatusIdle and records the outcome.
func (f *Form) FinishSubmit(res Result, err error) {
	f.status = StatusIdle
	if err != nil {
		res.Err = err.Error()
	}
	if res.At.IsZero() {
		res.At = f.now()
	}
	f.result = &res
}

func (f *Form) compose(correlationID string) CreateRequest {
	req := CreateRequest{
		CorrelationID: correlationID,
		Payer:         f.payer,
		Draft:         f.draft,
		Authorities:   f.authorities,
		Quote:         f.Quote(),
	}
	if f.creator.Enabled {
		creator := f.creator
		req.Creator = &creator
	}
	return req
}
