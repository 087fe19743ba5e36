package render

import (
	"strconv"

	"github.com/kimd61/manga-prototype1/detail"
	"github.com/kimd61/manga-prototype1/filter"
	"github.com/kimd61/manga-prototype1/jikan"
)

const (
	DefaultMaxCharacters      = 8
	DefaultMaxRecommendations = 6
	DefaultDetailLinkBase     = "manga-detail.html"
)

type options struct {
	maxCharacters        int
	maxRecommendations   int
	detailLinkBase       string
	recommendationFilter filter.CompiledFilter
	characterFilter      filter.CompiledFilter
}

// Option configures a renderer
type Option func(*options)

func defaultOptions() options {
	return options{
		maxCharacters:      DefaultMaxCharacters,
		maxRecommendations: DefaultMaxRecommendations,
		detailLinkBase:     DefaultDetailLinkBase,
	}
}

// WithMaxCharacters caps the number of characters shown. Zero hides the section.
func WithMaxCharacters(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxCharacters = n
		}
	}
}

// WithMaxRecommendations caps the number of related manga shown. Zero hides the section.
func WithMaxRecommendations(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRecommendations = n
		}
	}
}

// WithDetailLinkBase sets the page recommendation links point to
func WithDetailLinkBase(base string) Option {
	return func(o *options) {
		if base != "" {
			o.detailLinkBase = base
		}
	}
}

// WithRecommendationFilter only shows recommendations matching f
func WithRecommendationFilter(f filter.CompiledFilter) Option {
	return func(o *options) {
		o.recommendationFilter = f
	}
}

// WithCharacterFilter only shows characters matching f
func WithCharacterFilter(f filter.CompiledFilter) Option {
	return func(o *options) {
		o.characterFilter = f
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// characters returns the filtered, truncated cast without touching the bundle
func (o options) characters(b *detail.Bundle) []jikan.CharacterEntry {
	out := filter.Characters(o.characterFilter, b.Characters)
	if len(out) > o.maxCharacters {
		out = out[:o.maxCharacters]
	}
	return out
}

// recommendations returns the filtered, truncated recommendations without touching the bundle
func (o options) recommendations(b *detail.Bundle) []jikan.RecommendationEntry {
	out := filter.Recommendations(o.recommendationFilter, b.Recommendations)
	if len(out) > o.maxRecommendations {
		out = out[:o.maxRecommendations]
	}
	return out
}

func (o options) detailLink(malID int) string {
	return o.detailLinkBase + "?id=" + strconv.Itoa(malID)
}
