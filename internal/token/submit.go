package token

import (
	"context"

	"github.com/solmint/solmint/internal/logger"
)

// CreateRequest is the composed draft handed to a Submitter.
type CreateRequest struct {
	CorrelationID string
	Payer         string
	Draft         Draft
	Authorities   Authorities
	// Creator is nil unless the creator-info override is enabled.
	Creator *CreatorInfo
	Quote   Quote
}

// Fields flattens the request for structured logging. Image bytes are
// summarised, not logged.
func (r CreateRequest) Fields() map[string]any {
	fields := map[string]any{
		"correlation_id": r.CorrelationID,
		"payer":          r.Payer,
		"name":           r.Draft.Name,
		"symbol":         r.Draft.Symbol,
		"decimals":       r.Draft.Decimals,
		"supply":         r.Draft.Supply,
		"description":    r.Draft.Description,
		"revoke_freeze":  r.Authorities.Freeze,
		"revoke_mint":    r.Authorities.Mint,
		"revoke_update":  r.Authorities.Update,
		"custom_creator": r.Creator != nil,
		"quote_sol":      r.Quote.SOL(),
	}
	if r.Creator != nil {
		fields["creator_name"] = r.Creator.Name
		fields["creator_website"] = r.Creator.Website
	}
	if img := r.Draft.Image; img != nil {
		fields["image_name"] = img.Name
		fields["image_mime"] = img.MIME
		fields["image_bytes"] = img.Size()
	}
	return fields
}

// Submitter sends a creation request through the wallet collaborator.
type Submitter interface {
	Submit(ctx context.Context, req CreateRequest) (Result, error)
}

// LogSubmitter records the composed request and stops there. Building and
// signing the on-chain transaction is left to a wallet-backed Submitter.
type LogSubmitter struct {
	Log *logger.Logger
}

// NotWiredMessage is the result message reported by LogSubmitter.
const NotWiredMessage = "draft recorded; on-chain submission is not wired"

// Submit implements Submitter.
func (s LogSubmitter) Submit(ctx context.Context, req CreateRequest) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.Log.WithFields(req.Fields()).Info("creating token")
	return Result{Message: NotWiredMessage}, nil
}
