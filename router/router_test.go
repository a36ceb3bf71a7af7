package router

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/core"
)

func newRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func TestClassifyRouting(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		query string
		want  core.StrategyKind
	}{
		{"Fire emergency contact number", core.StrategyCache},
		{"Chennai Corporation office hours", core.StrategyCache},
		{"Latest water supply schedule update", core.StrategyDocument},
		{"How to apply for birth certificate?", core.StrategyGraph},
		{"Who handles sewage overflow issues?", core.StrategyGraph},
		{"Hello, who are you?", core.StrategyConversational},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			score := r.Classify(tt.query)
			assert.Equal(t, tt.want, score.Winner, "scores: %v", score.Scores)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	r := newRouter(t)
	query := "How to pay property tax? Latest rules and helpline contact"

	first := r.Classify(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Classify(query))
	}
}

func TestClassifyAllZeroRoutesConversational(t *testing.T) {
	r := newRouter(t)

	score := r.Classify("zzz qqq xyzzy")
	assert.Equal(t, core.StrategyConversational, score.Winner)
	assert.Zero(t, score.Confidence)
	for _, points := range score.Scores {
		assert.Zero(t, points)
	}
	assert.Empty(t, score.WinningSignatures())
}

func TestClassifyConfidence(t *testing.T) {
	r := newRouter(t)

	score := r.Classify("fire emergency number")
	total := 0
	for _, points := range score.Scores {
		total += points
	}
	assert.Positive(t, total)
	assert.InDelta(t, float64(score.Scores[score.Winner])/float64(total), score.Confidence, 1e-9)
	assert.Greater(t, score.Confidence, 0.0)
	assert.LessOrEqual(t, score.Confidence, 1.0)
}

// Crafted signatures where two strategies score identically, so the
// outcome depends purely on the priority order.
func tieSignatures() []SignatureSet {
	return []SignatureSet{
		{Strategy: core.StrategyCache, Keywords: []string{"tiebreaker"}},
		{Strategy: core.StrategyDocument, Keywords: []string{"tiebreaker"}},
		{Strategy: core.StrategyGraph, Keywords: []string{"tiebreaker"}},
		{Strategy: core.StrategyConversational, Keywords: []string{"tiebreaker"}},
	}
}

func TestClassifyTieBreakDefaultPriority(t *testing.T) {
	r := newRouter(t, WithSignatures(tieSignatures()))

	score := r.Classify("tiebreaker")
	assert.Equal(t, core.StrategyCache, score.Winner)
	assert.InDelta(t, 0.25, score.Confidence, 1e-9)
}

func TestClassifyTieBreakConfiguredPriority(t *testing.T) {
	r := newRouter(t,
		WithSignatures(tieSignatures()),
		WithPriority(core.StrategyGraph, core.StrategyDocument, core.StrategyCache, core.StrategyConversational),
	)

	score := r.Classify("tiebreaker")
	assert.Equal(t, core.StrategyGraph, score.Winner)
}

func TestClassifyStrictlyHighestBeatsPriority(t *testing.T) {
	sets := []SignatureSet{
		{Strategy: core.StrategyCache, Keywords: []string{"both"}},
		{Strategy: core.StrategyConversational, Keywords: []string{"both"}, Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bboth\b`),
		}},
	}
	r := newRouter(t, WithSignatures(sets))

	// Conversational scores 3 (keyword + pattern), cache 1: priority
	// never overrides a strictly higher score.
	score := r.Classify("both")
	assert.Equal(t, core.StrategyConversational, score.Winner)
}

func TestClassifyMatchedSignatures(t *testing.T) {
	r := newRouter(t)

	score := r.Classify("fire emergency")
	require.Equal(t, core.StrategyCache, score.Winner)
	assert.Contains(t, score.WinningSignatures(), "keyword: fire")
	assert.Contains(t, score.WinningSignatures(), "keyword: emergency")
}

func TestWithPriorityValidation(t *testing.T) {
	_, err := New(WithPriority(core.StrategyCache))
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = New(WithPriority(core.StrategyCache, core.StrategyCache, core.StrategyGraph, core.StrategyDocument))
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = New(WithSignatures(nil))
	assert.ErrorIs(t, err, ErrNoSignatures)
}
