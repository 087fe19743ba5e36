package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kimd61/manga-prototype1/jikan"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// MatchRecommendation evaluates the filter against a recommendation
func (f *exprFilter) MatchRecommendation(rec jikan.RecommendationEntry) bool {
	env := f.newEnv()
	env["Title"] = rec.Entry.Title
	env["MalID"] = rec.Entry.MalID
	env["Votes"] = rec.Votes
	env["URL"] = rec.Entry.URL
	return f.run(env)
}

// MatchCharacter evaluates the filter against a character entry
func (f *exprFilter) MatchCharacter(entry jikan.CharacterEntry) bool {
	env := f.newEnv()
	env["Name"] = entry.Character.Name
	env["Role"] = entry.Role
	env["MalID"] = entry.Character.MalID
	env["URL"] = entry.Character.URL
	return f.run(env)
}

func (f *exprFilter) newEnv() map[string]any {
	env := make(map[string]any, len(f.helpers)+4)
	maps.Copy(env, f.helpers)
	return env
}

// run evaluates the program. Evaluation errors count as a non-match.
func (f *exprFilter) run(env map[string]any) bool {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions returns the functions available to every filter.
// contains, startsWith and endsWith are expr operators, so the
// case-insensitive variants need names of their own.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"hasText": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Recommendations returns the recommendations matching f, in order.
// A nil filter matches everything. The input slice is not modified.
func Recommendations(f CompiledFilter, recs []jikan.RecommendationEntry) []jikan.RecommendationEntry {
	out := make([]jikan.RecommendationEntry, 0, len(recs))
	for _, rec := range recs {
		if f == nil || f.MatchRecommendation(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Characters returns the character entries matching f, in order.
// A nil filter matches everything. The input slice is not modified.
func Characters(f CompiledFilter, entries []jikan.CharacterEntry) []jikan.CharacterEntry {
	out := make([]jikan.CharacterEntry, 0, len(entries))
	for _, e := range entries {
		if f == nil || f.MatchCharacter(e) {
			out = append(out, e)
		}
	}
	return out
}
