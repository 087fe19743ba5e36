package filter

import (
	"github.com/kimd61/manga-prototype1/jikan"
)

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	// MatchRecommendation checks if a recommendation matches the filter
	MatchRecommendation(rec jikan.RecommendationEntry) bool

	// MatchCharacter checks if a character entry matches the filter
	MatchCharacter(entry jikan.CharacterEntry) bool

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
