package voting

import (
	"time"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// EvaluateWindow decides whether a vote attempt is temporally and
// administratively permitted. Pure function of settings + clock; rules
// short-circuit in order: disabled, not started, ended.
//
// A nil settings row means no restrictions have ever been configured and the
// attempt is permitted; callers create the default enabled row lazily.
func EvaluateWindow(s *entity.EventSettings, now time.Time) error {
	if s == nil {
		return nil
	}
	if !s.VotingEnabled {
		return ErrVotingDisabled
	}
	if s.VotingStartDate != nil && now.Before(*s.VotingStartDate) {
		return ErrVotingNotStarted
	}
	if s.VotingEndDate != nil && now.After(*s.VotingEndDate) {
		return ErrVotingEnded
	}
	return nil
}
