package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/consumer"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/retry"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// Engine orchestrates play processing: dedup guard, score/clock update,
// player stat accumulation, then pattern detection. Events are partitioned
// by game so one worker owns one game's ordering; different games process
// fully in parallel with no shared mutable state.
type Engine struct {
	consumer    *consumer.StreamConsumer
	store       contracts.Store
	stateCache  contracts.StateCache
	publisher   contracts.PatternPublisher
	classifier  contracts.PlayClassifier
	detectors   []contracts.PatternDetector
	retryPolicy *retry.Policy
	scanEvery   int

	// Per-game processing state, touched only by that game's partition
	// worker (and engine tests).
	games   map[string]*gameTrack
	gamesMu sync.Mutex

	// Metrics
	processed        int64
	duplicates       int64
	malformed        int64
	failures         int64
	patternsDetected int64
	mu               sync.Mutex
}

type gameTrack struct {
	lastHomeScore int
	lastAwayScore int
	teamsKnown    bool
	sinceScan     int
}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	Processed        int64 `json:"processed"`
	Duplicates       int64 `json:"duplicates"`
	Malformed        int64 `json:"malformed"`
	Failures         int64 `json:"failures"`
	PatternsDetected int64 `json:"patternsDetected"`
}

// NewEngine creates a new processing engine.
func NewEngine(
	streamConsumer *consumer.StreamConsumer,
	store contracts.Store,
	stateCache contracts.StateCache,
	publisher contracts.PatternPublisher,
	classifier contracts.PlayClassifier,
	detectors []contracts.PatternDetector,
	retryPolicy *retry.Policy,
	scanEvery int,
) *Engine {
	if scanEvery < 1 {
		scanEvery = 1
	}
	return &Engine{
		consumer:    streamConsumer,
		store:       store,
		stateCache:  stateCache,
		publisher:   publisher,
		classifier:  classifier,
		detectors:   detectors,
		retryPolicy: retryPolicy,
		scanEvery:   scanEvery,
		games:       make(map[string]*gameTrack),
	}
}

// Start begins consuming plays from the given stream. Blocks until the
// context is cancelled.
func (e *Engine) Start(ctx context.Context, streamKey string) error {
	fmt.Printf("✓ Starting play engine for stream: %s\n", streamKey)

	messageCh, errorCh := e.consumer.ConsumeStream(ctx, streamKey)

	partitions := newPartitionSet(ctx, e)
	defer partitions.close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errorCh:
			if err != nil {
				fmt.Printf("stream error: %v\n", err)
			}

		case msg, ok := <-messageCh:
			if !ok {
				return nil
			}

			if msg.GameID() == "" {
				fmt.Printf("⚠️ message %s has no game id, skipping\n", msg.ID)
				e.countMalformed()
				if err := e.consumer.AckMessage(ctx, msg.StreamKey, msg.ID); err != nil {
					fmt.Printf("error acknowledging message %s: %v\n", msg.ID, err)
				}
				continue
			}

			partitions.dispatch(msg)
		}
	}
}

// processMessage handles one stream message inside a partition worker and
// acknowledges it. Processing failures are acked too: retries already
// happened inside the pipeline, and an unacked poison message would stall
// the whole partition.
func (e *Engine) processMessage(ctx context.Context, msg consumer.Message) {
	var err error
	switch {
	case msg.Meta != nil:
		err = e.processMeta(ctx, *msg.Meta)
	case msg.Play != nil:
		err = e.ProcessPlay(ctx, *msg.Play)
	}

	if err != nil {
		fmt.Printf("❌ error processing message %s: %v\n", msg.ID, err)
		e.countFailure()
	}

	if err := e.consumer.AckMessage(ctx, msg.StreamKey, msg.ID); err != nil {
		fmt.Printf("error acknowledging message %s: %v\n", msg.ID, err)
	}
}

// processMeta applies game metadata (team identities).
func (e *Engine) processMeta(ctx context.Context, meta models.GameState) error {
	if meta.GameID == "" {
		return fmt.Errorf("game metadata missing game id")
	}
	if err := e.store.UpsertGameMeta(ctx, meta); err != nil {
		return err
	}

	track := e.track(meta.GameID)
	track.teamsKnown = meta.HomeTeamID != "" && meta.AwayTeamID != ""
	return nil
}

// ProcessPlay runs the full pipeline for one play. Only dedup-guard and
// score-update failures escalate; stats, cache, and detection are
// contained failure domains for the event.
func (e *Engine) ProcessPlay(ctx context.Context, play models.Play) error {
	if err := play.Validate(); err != nil {
		fmt.Printf("⚠️ skipping malformed play: %v\n", err)
		e.countMalformed()
		return nil
	}

	// Dedup guard: one conditional insert against the durable store.
	var recorded bool
	err := e.retryPolicy.Execute(ctx, func() error {
		var recordErr error
		recorded, recordErr = e.store.RecordPlay(ctx, play)
		return recordErr
	})
	if err != nil {
		return fmt.Errorf("dedup check failed for %s#%d: %w", play.GameID, play.Sequence, err)
	}
	if !recorded {
		e.countDuplicate()
		return nil
	}

	track := e.track(play.GameID)
	e.inferTeams(ctx, play, track)
	track.lastHomeScore = play.HomeScore
	track.lastAwayScore = play.AwayScore

	// Score and clock update, retried independently of stats.
	scoreErr := e.retryPolicy.Execute(ctx, func() error {
		return e.store.UpsertGameState(ctx, play)
	})
	if scoreErr != nil {
		scoreErr = fmt.Errorf("score update failed for %s#%d: %w", play.GameID, play.Sequence, scoreErr)
	}

	state, stateErr := e.store.GetGameState(ctx, play.GameID)
	if stateErr != nil {
		fmt.Printf("⚠️ failed to load game state for %s: %v\n", play.GameID, stateErr)
	}

	if state != nil && e.stateCache != nil {
		if err := e.stateCache.WriteGameState(ctx, *state); err != nil {
			fmt.Printf("⚠️ failed to cache game state for %s: %v\n", play.GameID, err)
		}
	}

	// Player stats are best-effort enrichment: failures here never block
	// score updates or pattern detection.
	e.accumulateStats(ctx, play, state)

	e.countProcessed()

	track.sinceScan++
	if track.sinceScan >= e.scanEvery {
		track.sinceScan = 0
		e.runDetectors(ctx, play.GameID)
	}

	return scoreErr
}

// inferTeams derives home/away team identity from the first scoring plays:
// a scoring play whose side's cumulative score increased tells us which
// side that team is. Used until game metadata arrives.
func (e *Engine) inferTeams(ctx context.Context, play models.Play, track *gameTrack) {
	if track.teamsKnown || !play.ScoringPlay || play.PointsScored <= 0 || play.TeamID == "" {
		return
	}

	var homeTeamID, awayTeamID string
	switch {
	case play.HomeScore > track.lastHomeScore:
		homeTeamID = play.TeamID
	case play.AwayScore > track.lastAwayScore:
		awayTeamID = play.TeamID
	default:
		return
	}

	if err := e.store.SetGameTeams(ctx, play.GameID, homeTeamID, awayTeamID); err != nil {
		fmt.Printf("⚠️ failed to set teams for %s: %v\n", play.GameID, err)
		return
	}

	if state, err := e.store.GetGameState(ctx, play.GameID); err == nil && state != nil {
		track.teamsKnown = state.HomeTeamID != "" && state.AwayTeamID != ""
	}
}

// accumulateStats computes and applies the play's stat delta.
func (e *Engine) accumulateStats(ctx context.Context, play models.Play, state *models.GameState) {
	if play.PlayerID == "" {
		return
	}

	delta := ComputeStatDelta(e.classifier, play)
	if delta.IsZero() {
		return
	}

	teamName := "Unknown"
	if state != nil {
		teamName = state.TeamName(play.TeamID)
	}

	name := e.classifier.PlayerName(play)
	if err := e.store.AddPlayerStats(ctx, play.PlayerID, play.GameID, name, teamName, delta); err != nil {
		fmt.Printf("⚠️ failed to update stats for player %s: %v\n", play.PlayerID, err)
	}
}

// runDetectors runs every detector over the game's committed play history.
// Detectors are read-only over history and write disjoint pattern keys, so
// they run concurrently; a failure in one is isolated from the others.
func (e *Engine) runDetectors(ctx context.Context, gameID string) {
	state, err := e.store.GetGameState(ctx, gameID)
	if err != nil || state == nil {
		if err != nil {
			fmt.Printf("⚠️ detection skipped for %s: %v\n", gameID, err)
		}
		return
	}

	plays, err := e.store.ListPlays(ctx, gameID)
	if err != nil {
		fmt.Printf("⚠️ detection skipped for %s: %v\n", gameID, err)
		return
	}

	var wg sync.WaitGroup
	for _, d := range e.detectors {
		wg.Add(1)
		go func(d contracts.PatternDetector) {
			defer wg.Done()

			patterns, err := d.Detect(ctx, *state, plays)
			if err != nil {
				fmt.Printf("⚠️ %s detector error for %s: %v\n", d.Type(), gameID, err)
				return
			}

			fresh, err := e.store.ReplacePatterns(ctx, gameID, d.Type(), patterns)
			if err != nil {
				fmt.Printf("⚠️ failed to store %s patterns for %s: %v\n", d.Type(), gameID, err)
				return
			}

			for _, pattern := range fresh {
				e.countPattern()
				fmt.Printf("✓ Detected %s: %s\n", pattern.Type, pattern.Description)
				if e.publisher != nil {
					if err := e.publisher.Publish(ctx, pattern); err != nil {
						fmt.Printf("⚠️ failed to publish pattern: %v\n", err)
					}
				}
			}
		}(d)
	}
	wg.Wait()
}

func (e *Engine) track(gameID string) *gameTrack {
	e.gamesMu.Lock()
	defer e.gamesMu.Unlock()
	track, ok := e.games[gameID]
	if !ok {
		track = &gameTrack{}
		e.games[gameID] = track
	}
	return track
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Metrics{
		Processed:        e.processed,
		Duplicates:       e.duplicates,
		Malformed:        e.malformed,
		Failures:         e.failures,
		PatternsDetected: e.patternsDetected,
	}
}

func (e *Engine) countProcessed() { e.mu.Lock(); e.processed++; e.mu.Unlock() }
func (e *Engine) countDuplicate() { e.mu.Lock(); e.duplicates++; e.mu.Unlock() }
func (e *Engine) countMalformed() { e.mu.Lock(); e.malformed++; e.mu.Unlock() }
func (e *Engine) countFailure()   { e.mu.Lock(); e.failures++; e.mu.Unlock() }
func (e *Engine) countPattern()   { e.mu.Lock(); e.patternsDetected++; e.mu.Unlock() }
