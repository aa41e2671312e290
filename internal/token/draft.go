package token

// Default draft values shown when the form opens.
const (
	DefaultDecimals uint64 = 9
	DefaultSupply   uint64 = 1_000_000
)

// Draft is the in-progress token configuration. It lives only for the
// session and is never persisted.
type Draft struct {
	Name        string
	Symbol      string
	Decimals    uint64
	Supply      uint64
	Description string
	Image       *Image
}

// AuthorityKind names one of the revocable on-chain authorities.
type AuthorityKind string

const (
	AuthorityFreeze AuthorityKind = "freeze"
	AuthorityMint   AuthorityKind = "mint"
	AuthorityUpdate AuthorityKind = "update"
)

// AuthorityKinds lists the revocable authorities in display order.
var AuthorityKinds = []AuthorityKind{AuthorityFreeze, AuthorityMint, AuthorityUpdate}

// Authorities records which authorities are revoked at creation time.
type Authorities struct {
	Freeze bool
	Mint   bool
	Update bool
}

// DefaultAuthorities revokes metadata update only.
func DefaultAuthorities() Authorities {
	return Authorities{Update: true}
}

// Get reports whether the given authority is revoked.
func (a Authorities) Get(kind AuthorityKind) bool {
	switch kind {
	case AuthorityFreeze:
		return a.Freeze
	case AuthorityMint:
		return a.Mint
	case AuthorityUpdate:
		return a.Update
	default:
		return false
	}
}

// With returns a copy with the given authority set to revoked.
func (a Authorities) With(kind AuthorityKind, revoked bool) Authorities {
	switch kind {
	case AuthorityFreeze:
		a.Freeze = revoked
	case AuthorityMint:
		a.Mint = revoked
	case AuthorityUpdate:
		a.Update = revoked
	}
	return a
}

// CreatorInfo overrides the creator fields written into token metadata.
// Name and Website are meaningful only when Enabled.
type CreatorInfo struct {
	Enabled bool
	Name    string
	Website string
}
