// Package voting holds the vote-gating rules: the window evaluator and the
// machine-readable error taxonomy surfaced by the cast path.
package voting

import "errors"

// Code identifies a vote denial in a machine-readable way. Codes are part of
// the API contract and must stay stable.
type Code string

const (
	CodeVotingDisabled        Code = "VOTING_DISABLED"
	CodeVotingNotStarted      Code = "VOTING_NOT_STARTED"
	CodeVotingEnded           Code = "VOTING_ENDED"
	CodeNominationNotEligible Code = "NOMINATION_NOT_ELIGIBLE"
	CodeAlreadyVoted          Code = "ALREADY_VOTED"
	CodeCategoryNotFound      Code = "CATEGORY_NOT_FOUND"
)

// Error is a domain-level vote denial. It is expected, user-facing, and never
// retried: retrying cannot change the outcome within the same window.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

// Sentinel instances for errors.Is comparisons across layers.
var (
	ErrVotingDisabled        = &Error{CodeVotingDisabled, "voting is currently disabled"}
	ErrVotingNotStarted      = &Error{CodeVotingNotStarted, "voting has not started yet"}
	ErrVotingEnded           = &Error{CodeVotingEnded, "voting has ended"}
	ErrNominationNotEligible = &Error{CodeNominationNotEligible, "nomination not found or not approved"}
	ErrAlreadyVoted          = &Error{CodeAlreadyVoted, "you have already voted in this category"}
	ErrCategoryNotFound      = &Error{CodeCategoryNotFound, "category not found"}
)

// CodeOf extracts the denial code from err, or "" if err is not a vote denial.
func CodeOf(err error) Code {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
