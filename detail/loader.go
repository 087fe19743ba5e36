package detail

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kimd61/manga-prototype1/jikan"
)

// DefaultStageDelay is the pause between stages. It only exists to stay under
// Jikan's informal rate limits.
const DefaultStageDelay = 1000 * time.Millisecond

// Option configures a Loader
type Option func(*Loader)

// WithStageDelay sets the pause before the characters and recommendations stages
func WithStageDelay(d time.Duration) Option {
	return func(l *Loader) {
		if d >= 0 {
			l.stageDelay = d
		}
	}
}

// WithIndependentSecondary makes the recommendations stage run even when the
// characters stage failed. By default a characters failure ends the load.
func WithIndependentSecondary(independent bool) Option {
	return func(l *Loader) {
		l.independentSecondary = independent
	}
}

// WithSleeper replaces the wait used between stages
func WithSleeper(sleep jikan.Sleeper) Option {
	return func(l *Loader) {
		if sleep != nil {
			l.sleep = sleep
		}
	}
}

// Loader assembles a Bundle from three sequential Jikan calls
type Loader struct {
	api                  jikan.API
	logger               zerolog.Logger
	stageDelay           time.Duration
	independentSecondary bool
	sleep                jikan.Sleeper
}

// NewLoader creates a new Loader
func NewLoader(api jikan.API, logger zerolog.Logger, opts ...Option) *Loader {
	l := &Loader{
		api:        api,
		logger:     logger,
		stageDelay: DefaultStageDelay,
		sleep:      jikan.SleepWithContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ParseID normalizes a raw identifier, returning ErrMissingInput when it is empty
func ParseID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrMissingInput
	}
	return id, nil
}

// LoadDetail fetches the manga record, then its characters, then its
// recommendations, pausing between stages.
//
// Only a primary failure aborts the load. A characters or recommendations
// failure leaves that list empty and the bundle is returned as is. A cancelled
// context aborts the load with the context error.
func (l *Loader) LoadDetail(ctx context.Context, rawID string) (*Bundle, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	loadID := uuid.NewString()
	log := l.logger.With().Str("load_id", loadID).Str("manga_id", id).Logger()

	log.Debug().Stringer("stage", StageFetchingPrimary).Msg("Loading manga details")
	primary, err := l.api.GetMangaFull(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Error().Err(err).Stringer("stage", StageAborted).Msg("Error fetching manga details")
		return nil, &AbortError{ID: id, Err: err}
	}
	if primary == nil || primary.Data == nil {
		log.Error().Stringer("stage", StageAborted).Msg("Manga response has no data")
		return nil, &AbortError{ID: id, Err: ErrMissingData}
	}

	bundle := newBundle(loadID, *primary.Data)

	if err := l.wait(ctx, log, StageWaitingBeforeCast); err != nil {
		return nil, err
	}

	log.Debug().Stringer("stage", StageFetchingCast).Msg("Loading characters")
	characters, err := l.api.GetMangaCharacters(ctx, id)
	switch {
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn().Err(err).Msg("Characters unavailable, continuing without them")
		if !l.independentSecondary {
			l.logRendered(log, bundle)
			return bundle, nil
		}
	case characters != nil && characters.Data != nil:
		bundle.Characters = characters.Data
	}

	if err := l.wait(ctx, log, StageWaitingBeforeRecommendations); err != nil {
		return nil, err
	}

	log.Debug().Stringer("stage", StageFetchingRecommendations).Msg("Loading recommendations")
	recommendations, err := l.api.GetMangaRecommendations(ctx, id)
	switch {
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn().Err(err).Msg("Recommendations unavailable, continuing without them")
	case recommendations != nil && recommendations.Data != nil:
		bundle.Recommendations = recommendations.Data
	}

	l.logRendered(log, bundle)
	return bundle, nil
}

func (l *Loader) wait(ctx context.Context, log zerolog.Logger, stage Stage) error {
	log.Trace().Stringer("stage", stage).Dur("delay", l.stageDelay).Msg("Pausing before next stage")
	return l.sleep(ctx, l.stageDelay)
}

func (l *Loader) logRendered(log zerolog.Logger, bundle *Bundle) {
	log.Info().
		Stringer("stage", StageRendered).
		Str("title", bundle.Manga.Title).
		Int("characters", len(bundle.Characters)).
		Int("recommendations", len(bundle.Recommendations)).
		Msg("Manga details loaded")
}
