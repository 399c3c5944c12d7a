package basketball

import (
	"strconv"
	"strings"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// Classifier categorizes basketball plays from the feed's free-text and
// play-type fields. ESPN-style feeds describe plays in prose ("Hannah
// Stuelke made Layup.", "Lucy Olsen missed Three Point Jumper."), so
// classification is substring matching. Everything downstream consumes the
// enumerated PlayCategory, so a structured upstream field can replace this
// without touching the detectors.
type Classifier struct{}

// NewClassifier creates a basketball play classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the play's category. Free throws are identified first
// so a made free throw never counts as a made field goal.
func (c *Classifier) Classify(play models.Play) models.PlayCategory {
	playType := strings.ToLower(play.PlayType)
	text := strings.ToLower(play.Text)

	if c.isFreeThrow(playType, text) {
		return models.CategoryFreeThrow
	}

	if play.ScoringPlay && c.isMadeShot(playType, text) {
		return models.CategoryMadeShot
	}

	if c.isMissedShot(playType, text) {
		return models.CategoryMissedShot
	}

	if strings.Contains(playType, "foul") || strings.Contains(text, "foul") {
		return models.CategoryFoul
	}

	return models.CategoryOther
}

// IsThreePointAttempt reports whether the play is a three-point attempt
// (made or missed).
func (c *Classifier) IsThreePointAttempt(play models.Play) bool {
	playType := strings.ToLower(play.PlayType)
	text := strings.ToLower(play.Text)

	return strings.Contains(playType, "three") || strings.Contains(text, "three") ||
		strings.Contains(playType, "3pt") || strings.Contains(text, "3pt")
}

// IsFoul reports whether the play charges a foul. Checked independently of
// Classify because a play text can carry a foul alongside a shot attempt.
func (c *Classifier) IsFoul(play models.Play) bool {
	return strings.Contains(strings.ToLower(play.PlayType), "foul") ||
		strings.Contains(strings.ToLower(play.Text), "foul")
}

// PlayerName resolves the acting player's display name, extracting it from
// the play text when the feed omits the playerName field.
func (c *Classifier) PlayerName(play models.Play) string {
	if play.PlayerName != "" {
		return play.PlayerName
	}
	return ExtractPlayerName(play.Text)
}

func (c *Classifier) isFreeThrow(playType, text string) bool {
	return strings.Contains(playType, "free throw") || strings.Contains(text, "free throw")
}

func (c *Classifier) isMadeShot(playType, text string) bool {
	if strings.Contains(text, "made") {
		return true
	}
	for _, kw := range []string{"shot", "layup", "dunk", "jumper"} {
		if strings.Contains(playType, kw) {
			return true
		}
	}
	return false
}

func (c *Classifier) isMissedShot(playType, text string) bool {
	return strings.Contains(text, "missed") || strings.Contains(playType, "miss") ||
		strings.Contains(text, "blocked") || strings.Contains(playType, "block")
}

// playerNameActions are the action phrases a player name precedes in the
// feed's play text.
var playerNameActions = []string{
	" made ", " missed ", " Made ", " Missed ",
	" Offensive Rebound", " Defensive Rebound",
	" Turnover", " Steal", " Block", " Foul",
}

// ExtractPlayerName pulls a player name out of play text as a fallback for
// plays that omit the playerName field. Returns "" when no name is found.
func ExtractPlayerName(text string) string {
	if text == "" {
		return ""
	}

	for _, action := range playerNameActions {
		if idx := strings.Index(text, action); idx >= 0 {
			name := strings.TrimSpace(text[:idx])
			if len(name) >= 2 && !strings.HasPrefix(name, "Team") {
				return name
			}
		}
	}

	return ""
}

// ParseClock converts a display clock ("M:SS" or bare seconds) to seconds
// remaining. Unparseable clocks return 0.
func ParseClock(clock string) int {
	if clock == "" {
		return 0
	}

	if strings.Contains(clock, ":") {
		parts := strings.SplitN(clock, ":", 2)
		mins, _ := strconv.Atoi(parts[0])
		secs, _ := strconv.Atoi(parts[1])
		return mins*60 + secs
	}

	secs, _ := strconv.Atoi(clock)
	return secs
}
