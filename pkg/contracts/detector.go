package contracts

import (
	"context"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// PatternDetector defines the interface for detecting patterns over a
// game's accumulated play history. Detectors are pure functions of the
// ordered play list: re-running one over unchanged history must produce
// the same deduplicated pattern set.
type PatternDetector interface {
	// Detect scans the full, sequence-ordered play history of one game
	// and returns the deduplicated patterns it finds.
	Detect(ctx context.Context, game models.GameState, plays []models.Play) ([]models.Pattern, error)

	// Type returns the kind of patterns this detector finds.
	Type() models.PatternType
}

// PlayClassifier maps a play's free-text/categorical fields to an
// enumerated category. Implementations live in the sports packages; the
// engine and detectors only ever see the enumerated result.
type PlayClassifier interface {
	// Classify returns the category of a play.
	Classify(play models.Play) models.PlayCategory

	// IsThreePointAttempt reports whether the play is a three-point attempt.
	IsThreePointAttempt(play models.Play) bool

	// IsFoul reports whether the play's text or type indicates a foul.
	IsFoul(play models.Play) bool

	// PlayerName resolves the acting player's display name, falling back
	// to extraction from the play text when the feed omits it. Returns ""
	// when no name can be determined.
	PlayerName(play models.Play) string
}

// DetectorConfig defines the tuning knobs for pattern detection. The
// thresholds are empirically chosen, so they are configuration rather than
// constants baked into the detectors.
type DetectorConfig interface {
	// MinPeriodPlays returns the minimum plays a period needs before the
	// scoring run detector scans it.
	MinPeriodPlays() int

	// RunWindowSizes returns the base sliding-window sizes for run detection.
	RunWindowSizes() []int

	// MaxRunWindow returns the cap for the full-period dominance window.
	MaxRunWindow() int

	// RunThreshold returns the (min points for, max points against)
	// qualification thresholds for a given window size.
	RunThreshold(windowSize int) (minFor, maxAgainst int)

	// MinStreakLength returns the consecutive-make count at which a hot
	// streak qualifies.
	MinStreakLength() int

	// MinMomentumDeficit returns the smallest overcome deficit that counts
	// as a momentum shift.
	MinMomentumDeficit() int
}
