package detail

import (
	"github.com/kimd61/manga-prototype1/jikan"
)

// Stage identifies a step of a detail load
type Stage int

const (
	StageFetchingPrimary Stage = iota
	StageWaitingBeforeCast
	StageFetchingCast
	StageWaitingBeforeRecommendations
	StageFetchingRecommendations
	StageRendered
	StageAborted
)

// String returns the string representation of a Stage
func (s Stage) String() string {
	switch s {
	case StageFetchingPrimary:
		return "fetching_primary"
	case StageWaitingBeforeCast:
		return "waiting_before_cast"
	case StageFetchingCast:
		return "fetching_cast"
	case StageWaitingBeforeRecommendations:
		return "waiting_before_recommendations"
	case StageFetchingRecommendations:
		return "fetching_recommendations"
	case StageRendered:
		return "rendered"
	case StageAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Bundle is everything a renderer needs for one detail page.
//
// Manga is always present. Characters and Recommendations are never nil;
// they are empty when their fetch failed or was skipped. A bundle must not be
// modified once it has been returned by Loader.LoadDetail.
type Bundle struct {
	LoadID          string
	Manga           jikan.Manga
	Characters      []jikan.CharacterEntry
	Recommendations []jikan.RecommendationEntry
}

func newBundle(loadID string, manga jikan.Manga) *Bundle {
	return &Bundle{
		LoadID:          loadID,
		Manga:           manga,
		Characters:      []jikan.CharacterEntry{},
		Recommendations: []jikan.RecommendationEntry{},
	}
}

// HasCharacters reports whether the cast stage produced any entries
func (b *Bundle) HasCharacters() bool {
	return len(b.Characters) > 0
}

// HasRecommendations reports whether the recommendations stage produced any entries
func (b *Bundle) HasRecommendations() bool {
	return len(b.Recommendations) > 0
}
