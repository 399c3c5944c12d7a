package basketball

import (
	"os"
	"strconv"
	"strings"
)

// Config holds basketball-specific pattern detection tuning. The window
// sizes and thresholds are empirically chosen, so every one of them can be
// overridden from the environment.
type Config struct {
	MinPlaysPerPeriod int
	WindowSizes       []int
	DominanceWindow   int

	// Scoring run qualification thresholds per window bucket
	BurstMinFor         int
	BurstMaxAgainst     int
	MediumMinFor        int
	MediumMaxAgainst    int
	LongMinFor          int
	LongMaxAgainst      int
	DominanceMinFor     int
	DominanceMaxAgainst int

	StreakLength   int
	MomentumMargin int
}

// NewConfig creates a basketball configuration with defaults and
// environment overrides.
func NewConfig() *Config {
	return &Config{
		MinPlaysPerPeriod:   getEnvInt("RUN_MIN_PERIOD_PLAYS", 25),
		WindowSizes:         getEnvIntSlice("RUN_WINDOW_SIZES", []int{25, 50, 75}),
		DominanceWindow:     getEnvInt("RUN_DOMINANCE_WINDOW", 120),
		BurstMinFor:         getEnvInt("RUN_BURST_MIN_FOR", 8),
		BurstMaxAgainst:     getEnvInt("RUN_BURST_MAX_AGAINST", 2),
		MediumMinFor:        getEnvInt("RUN_MEDIUM_MIN_FOR", 16),
		MediumMaxAgainst:    getEnvInt("RUN_MEDIUM_MAX_AGAINST", 4),
		LongMinFor:          getEnvInt("RUN_LONG_MIN_FOR", 20),
		LongMaxAgainst:      getEnvInt("RUN_LONG_MAX_AGAINST", 6),
		DominanceMinFor:     getEnvInt("RUN_DOMINANCE_MIN_FOR", 20),
		DominanceMaxAgainst: getEnvInt("RUN_DOMINANCE_MAX_AGAINST", 8),
		StreakLength:        getEnvInt("HOT_STREAK_LENGTH", 3),
		MomentumMargin:      getEnvInt("MOMENTUM_MIN_DEFICIT", 1),
	}
}

// MinPeriodPlays implements DetectorConfig.
func (c *Config) MinPeriodPlays() int {
	return c.MinPlaysPerPeriod
}

// RunWindowSizes implements DetectorConfig.
func (c *Config) RunWindowSizes() []int {
	return c.WindowSizes
}

// MaxRunWindow implements DetectorConfig.
func (c *Config) MaxRunWindow() int {
	return c.DominanceWindow
}

// RunThreshold implements DetectorConfig. Buckets follow the window sizes:
// a short burst needs lopsided scoring, a full-period dominance window
// tolerates a few more answering points.
func (c *Config) RunThreshold(windowSize int) (minFor, maxAgainst int) {
	switch {
	case windowSize >= 100:
		return c.DominanceMinFor, c.DominanceMaxAgainst
	case windowSize >= 75:
		return c.LongMinFor, c.LongMaxAgainst
	case windowSize >= 50:
		return c.MediumMinFor, c.MediumMaxAgainst
	default:
		return c.BurstMinFor, c.BurstMaxAgainst
	}
}

// MinStreakLength implements DetectorConfig.
func (c *Config) MinStreakLength() int {
	return c.StreakLength
}

// MinMomentumDeficit implements DetectorConfig.
func (c *Config) MinMomentumDeficit() int {
	return c.MomentumMargin
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvIntSlice(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		if parsed, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && parsed > 0 {
			sizes = append(sizes, parsed)
		}
	}

	if len(sizes) == 0 {
		return defaultValue
	}
	return sizes
}
