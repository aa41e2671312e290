// Package token holds the token-creation draft and everything derived from it:
// the authority and creator-info options, the price quote, image intake and
// the submission lifecycle. It has no UI dependencies; the TUI drives a Form
// through its mutators and renders what it reports.
package token
