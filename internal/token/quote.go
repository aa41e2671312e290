package token

import "fmt"

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// Fixed fees, in lamports.
const (
	ServiceFee uint64 = 100_000_000 // 0.1 SOL
	NetworkFee uint64 = 2_000_000   // 0.002 SOL
	OptionFee  uint64 = 100_000_000 // 0.1 SOL per enabled option
)

// Quote is the price of a creation request. It is always derived, never stored.
type Quote struct {
	Options  int
	Lamports uint64
}

// ComputeQuote prices a request from its paid options: each revoked authority
// and the custom creator info toggle add OptionFee on top of the service and
// network fees.
func ComputeQuote(auth Authorities, creator CreatorInfo) Quote {
	options := 0
	for _, flag := range []bool{auth.Freeze, auth.Mint, auth.Update, creator.Enabled} {
		if flag {
			options++
		}
	}
	return Quote{
		Options:  options,
		Lamports: ServiceFee + NetworkFee + uint64(options)*OptionFee,
	}
}

// SOL renders the quote in SOL rounded to three decimals.
func (q Quote) SOL() string {
	return FormatSOL(q.Lamports)
}

// FormatSOL renders a lamport amount in SOL rounded half-up to three decimals.
func FormatSOL(lamports uint64) string {
	const perMilli = LamportsPerSOL / 1000
	milli := (lamports + perMilli/2) / perMilli
	return fmt.Sprintf("%d.%03d", milli/1000, milli%1000)
}
