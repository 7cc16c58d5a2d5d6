package identity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwl-league/fwl-hub/internal/registry"
	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// Source is the subset of the Sleeper client the loader needs.
type Source interface {
	FetchLeagueInfo(ctx context.Context, leagueID string) (*sleeper.League, error)
	FetchLeagueData(ctx context.Context, leagueID string) (*sleeper.LeagueData, error)
}

// Recorder observes lookup outcomes. Implemented by internal/metrics.
type Recorder interface {
	ObserveIdentityLookup(slot string, outcome string, duration time.Duration)
}

// Lookup outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeAbsent   = "absent"
	OutcomeFailed   = "failed"
)

// Sources names the leagues each slot is resolved from.
type Sources struct {
	LogoSource     string
	AtlantaLeague  string
	ChallengeLogo  string
	DivisionalLogo string
	IdentityLeague string
	RankingSource  string
}

// DefaultSources are the registry's compiled-in identity leagues.
func DefaultSources() Sources {
	return Sources{
		LogoSource:     registry.LogoSourceID,
		AtlantaLeague:  registry.BradyIDs[0],
		ChallengeLogo:  registry.ChallengeLogoID,
		DivisionalLogo: registry.DivisionalLogoID,
		IdentityLeague: registry.IdentityLeagueID,
		RankingSource:  registry.RankingSourceID,
	}
}

// Loader runs the identity batch once and holds its result for the life of
// the process. It reports Loading until the batch has completed.
type Loader struct {
	source   Source
	sources  Sources
	logger   *slog.Logger
	recorder Recorder

	once    sync.Once
	mu      sync.RWMutex
	loading bool
	avatars Avatars
}

// NewLoader creates a loader in the loading state.
func NewLoader(source Source, sources Sources, logger *slog.Logger, recorder Recorder) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		source:   source,
		sources:  sources,
		logger:   logger,
		recorder: recorder,
		loading:  true,
	}
}

// Loading reports whether the batch is still in flight (or not yet started).
func (l *Loader) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Avatars returns a snapshot of the slots resolved so far.
func (l *Loader) Avatars() Avatars {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.avatars
}

// Load issues the six lookups concurrently and waits for all of them. A
// failed lookup leaves its slot nil and never affects the others. Only the
// first call fetches; later calls wait for it and return the same result.
func (l *Loader) Load(ctx context.Context) Avatars {
	l.once.Do(func() { l.load(ctx) })
	return l.Avatars()
}

type lookup struct {
	slot    string
	resolve func(ctx context.Context) (*string, error)
	assign  func(a *Avatars, v *string)
}

func (l *Loader) lookups() []lookup {
	info := func(id string) func(context.Context) (*string, error) {
		return func(ctx context.Context) (*string, error) {
			league, err := l.source.FetchLeagueInfo(ctx, id)
			if err != nil {
				return nil, err
			}
			return leagueAvatar(league), nil
		}
	}
	owner := func(id string, pick func(*sleeper.LeagueData) *string) func(context.Context) (*string, error) {
		return func(ctx context.Context) (*string, error) {
			data, err := l.source.FetchLeagueData(ctx, id)
			if err != nil {
				return nil, err
			}
			return pick(data), nil
		}
	}

	s := l.sources
	return []lookup{
		{"fwl_logo", info(s.LogoSource), func(a *Avatars, v *string) { a.FWLLogo = v }},
		{"atlanta_league", info(s.AtlantaLeague), func(a *Avatars, v *string) { a.AtlantaLeague = v }},
		{"playoffs_challenge", info(s.ChallengeLogo), func(a *Avatars, v *string) { a.PlayoffsChallenge = v }},
		{"divisional_league", info(s.DivisionalLogo), func(a *Avatars, v *string) { a.DivisionalLeague = v }},
		{"regulation_icon", owner(s.IdentityLeague, IdentityOwnerAvatar), func(a *Avatars, v *string) { a.RegulationIcon = v }},
		{"ranking_icon", owner(s.RankingSource, RankingOwnerAvatar), func(a *Avatars, v *string) { a.RankingIcon = v }},
	}
}

func (l *Loader) load(ctx context.Context) {
	start := time.Now()
	lookups := l.lookups()

	// run absorbs its own failure, so no lookup can stop the others.
	var g errgroup.Group
	for _, lk := range lookups {
		g.Go(func() error {
			l.run(ctx, lk)
			return nil
		})
	}
	_ = g.Wait()

	l.mu.Lock()
	l.loading = false
	resolved := countResolved(l.avatars)
	l.mu.Unlock()

	l.logger.Info("Identity loaded",
		"resolved", resolved,
		"lookups", len(lookups),
		"duration", time.Since(start).Round(time.Millisecond))
}

func (l *Loader) run(ctx context.Context, lk lookup) {
	start := time.Now()
	v, err := l.resolve(ctx, lk)

	outcome := OutcomeResolved
	switch {
	case err != nil:
		outcome = OutcomeFailed
		l.logger.Warn("Identity lookup failed", "slot", lk.slot, "error", err)
	case v == nil:
		outcome = OutcomeAbsent
	default:
		l.mu.Lock()
		lk.assign(&l.avatars, v)
		l.mu.Unlock()
	}

	if l.recorder != nil {
		l.recorder.ObserveIdentityLookup(lk.slot, outcome, time.Since(start))
	}
}

// resolve runs one lookup and reports a panic in the source as a failure.
func (l *Loader) resolve(ctx context.Context, lk lookup) (v *string, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, &panicError{slot: lk.slot, value: r}
		}
	}()
	return lk.resolve(ctx)
}

type panicError struct {
	slot  string
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("identity lookup %s panicked: %v", e.slot, e.value)
}

func countResolved(a Avatars) int {
	n := 0
	for _, v := range []*string{a.FWLLogo, a.AtlantaLeague, a.PlayoffsChallenge, a.DivisionalLeague, a.RegulationIcon, a.RankingIcon} {
		if v != nil {
			n++
		}
	}
	return n
}
