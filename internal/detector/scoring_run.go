package detector

import (
	"context"
	"fmt"
	"sort"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// ScoringRunDetector finds bounded bursts where one team dramatically
// outscores the other. Each period is scanned independently with several
// window sizes, because a single window size cannot distinguish a short
// explosive burst from sustained quarter-long dominance, and a window that
// straddles a quarter break distorts momentum interpretation.
type ScoringRunDetector struct {
	config contracts.DetectorConfig
}

// NewScoringRunDetector creates a scoring run detector.
func NewScoringRunDetector(config contracts.DetectorConfig) *ScoringRunDetector {
	return &ScoringRunDetector{config: config}
}

// Type implements PatternDetector.
func (d *ScoringRunDetector) Type() models.PatternType {
	return models.PatternScoringRun
}

// Detect implements PatternDetector. Plays must be in sequence order.
func (d *ScoringRunDetector) Detect(ctx context.Context, game models.GameState, plays []models.Play) ([]models.Pattern, error) {
	if game.HomeTeamID == "" || game.AwayTeamID == "" {
		// Cannot attribute points to a side yet.
		return nil, nil
	}

	periods := groupByPeriod(plays)

	var runs []models.Pattern
	for _, period := range sortedPeriods(periods) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		runs = append(runs, d.scanPeriod(game, period, periods[period])...)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Period != runs[j].Period {
			return runs[i].Period < runs[j].Period
		}
		return runs[i].PointsFor > runs[j].PointsFor
	})

	return runs, nil
}

// scanPeriod slides every configured window size across one period's plays
// and keeps the best qualifying run per team.
func (d *ScoringRunDetector) scanPeriod(game models.GameState, period int, plays []models.Play) []models.Pattern {
	if len(plays) < d.config.MinPeriodPlays() {
		return nil
	}

	// Prefix sums of each side's points, so a window sum is one subtraction.
	homePts := make([]int, len(plays)+1)
	awayPts := make([]int, len(plays)+1)
	for i, play := range plays {
		homePts[i+1] = homePts[i]
		awayPts[i+1] = awayPts[i]
		if play.ScoringPlay && play.PointsScored > 0 {
			switch play.TeamID {
			case game.HomeTeamID:
				homePts[i+1] += play.PointsScored
			case game.AwayTeamID:
				awayPts[i+1] += play.PointsScored
			}
		}
	}

	windowSizes := append([]int{}, d.config.RunWindowSizes()...)
	dominance := d.config.MaxRunWindow()
	if len(plays) < dominance {
		dominance = len(plays)
	}
	windowSizes = append(windowSizes, dominance)

	// Best qualifying candidate per team in this period.
	best := make(map[string]models.Pattern)

	for _, windowSize := range windowSizes {
		if windowSize > len(plays) {
			continue
		}

		minFor, maxAgainst := d.config.RunThreshold(windowSize)

		for i := 0; i+windowSize <= len(plays); i++ {
			home := homePts[i+windowSize] - homePts[i]
			away := awayPts[i+windowSize] - awayPts[i]

			var teamID string
			var pointsFor, pointsAgainst int
			switch {
			case home >= minFor && away <= maxAgainst:
				teamID, pointsFor, pointsAgainst = game.HomeTeamID, home, away
			case away >= minFor && home <= maxAgainst:
				teamID, pointsFor, pointsAgainst = game.AwayTeamID, away, home
			default:
				continue
			}

			if existing, ok := best[teamID]; ok && existing.PointsFor >= pointsFor {
				continue
			}

			best[teamID] = models.Pattern{
				GameID:        game.GameID,
				Type:          models.PatternScoringRun,
				TeamID:        teamID,
				IsHomeTeam:    teamID == game.HomeTeamID,
				Period:        period,
				PointsFor:     pointsFor,
				PointsAgainst: pointsAgainst,
				WindowSize:    windowSize,
				StartSequence: plays[i].Sequence,
				EndSequence:   plays[i+windowSize-1].Sequence,
				Description: fmt.Sprintf("%s on a %d-%d run in %s",
					game.TeamName(teamID), pointsFor, pointsAgainst, models.PeriodLabel(period)),
			}
		}
	}

	runs := make([]models.Pattern, 0, len(best))
	for _, run := range best {
		runs = append(runs, run)
	}
	return runs
}

func groupByPeriod(plays []models.Play) map[int][]models.Play {
	periods := make(map[int][]models.Play)
	for _, play := range plays {
		periods[play.Period] = append(periods[play.Period], play)
	}
	return periods
}

func sortedPeriods(periods map[int][]models.Play) []int {
	keys := make([]int, 0, len(periods))
	for period := range periods {
		keys = append(keys, period)
	}
	sort.Ints(keys)
	return keys
}
