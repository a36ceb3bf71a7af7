package answer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/router"
	"github.com/poiesic/civicmind/strategy"
)

// stubStrategy is a fixed-behavior strategy for assembler tests.
type stubStrategy struct {
	kind      core.StrategyKind
	available bool
	result    core.StrategyResult
}

func (s *stubStrategy) Kind() core.StrategyKind { return s.kind }
func (s *stubStrategy) Available() bool         { return s.available }

func (s *stubStrategy) Lookup(ctx context.Context, query string) core.StrategyResult {
	return s.result
}

var _ strategy.Strategy = (*stubStrategy)(nil)

type bogusPayload struct{}

func (bogusPayload) ResultKind() core.ResultKind { return "bogus" }

func conversationalStub() *stubStrategy {
	return &stubStrategy{
		kind:      core.StrategyConversational,
		available: true,
		result: core.FoundResult(core.Conversational{
			Text:   "I'm CivicMind, your Chennai civic assistant.",
			Method: core.MethodCanned,
			Intent: "default",
		}),
	}
}

func newAssembler(t *testing.T, strategies ...strategy.Strategy) *Assembler {
	t.Helper()
	r, err := router.New()
	require.NoError(t, err)
	a, err := New(r, strategies)
	require.NoError(t, err)
	return a
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, []strategy.Strategy{conversationalStub()})
	assert.ErrorIs(t, err, ErrRouterRequired)

	r, err := router.New()
	require.NoError(t, err)
	_, err = New(r, []strategy.Strategy{
		&stubStrategy{kind: core.StrategyCache, available: true},
	})
	assert.ErrorIs(t, err, ErrConversationalRequired)
}

func TestAnswerRoutedStrategy(t *testing.T) {
	cache := &stubStrategy{
		kind:      core.StrategyCache,
		available: true,
		result: core.FoundResult(core.EmergencyContact{
			Service: "Fire", Number: "101", Availability: "24x7",
		}),
	}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyCache, answer.Strategy)
	assert.Contains(t, answer.Text, "101")
	assert.Contains(t, answer.Text, sourceCache)
	assert.Greater(t, answer.Confidence, 0.0)
	assert.NotEmpty(t, answer.MatchedSignatures)
	assert.False(t, answer.Timestamp.IsZero())
}

func TestAnswerFallbackOnUnavailable(t *testing.T) {
	cache := &stubStrategy{kind: core.StrategyCache, available: false}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyFallback, answer.Strategy)
	assert.Contains(t, answer.Text, "CivicMind")
}

func TestAnswerFallbackOnFailure(t *testing.T) {
	cache := &stubStrategy{
		kind:      core.StrategyCache,
		available: true,
		result:    core.FailedResult("backing store exploded"),
	}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyFallback, answer.Strategy)
	assert.NotContains(t, answer.Text, "exploded")
}

func TestAnswerFallbackOnEmpty(t *testing.T) {
	cache := &stubStrategy{
		kind:      core.StrategyCache,
		available: true,
		result:    core.EmptyResult(),
	}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyFallback, answer.Strategy)
	assert.NotEmpty(t, answer.Text)
}

func TestAnswerFallbackWhenStrategyMissing(t *testing.T) {
	a := newAssembler(t, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyFallback, answer.Strategy)
	assert.NotEmpty(t, answer.Text)
}

func TestAnswerAllZeroRoutesConversational(t *testing.T) {
	a := newAssembler(t, conversationalStub())

	answer := a.Answer(context.Background(), "zzz qqq xyzzy")
	assert.Equal(t, core.StrategyConversational, answer.Strategy)
	assert.Zero(t, answer.Confidence)
	assert.Empty(t, answer.MatchedSignatures)
	assert.NotEmpty(t, answer.Text)
}

func TestAnswerApologyOnUnformattableResult(t *testing.T) {
	cache := &stubStrategy{
		kind:      core.StrategyCache,
		available: true,
		result:    core.FoundResult(bogusPayload{}),
	}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyCache, answer.Strategy)
	assert.Equal(t, apologyText, answer.Text)
}

func TestAnswerApologyOnFormattingPanic(t *testing.T) {
	cache := &stubStrategy{
		kind:      core.StrategyCache,
		available: true,
		result:    core.FoundResult(core.ProcedureAnswer{Procedure: nil}),
	}
	a := newAssembler(t, cache, conversationalStub())

	answer := a.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, apologyText, answer.Text)
}

func TestAnswerIsTotal(t *testing.T) {
	a := newAssembler(t,
		&stubStrategy{kind: core.StrategyCache, available: true, result: core.EmptyResult()},
		&stubStrategy{kind: core.StrategyGraph, available: false},
		&stubStrategy{kind: core.StrategyDocument, available: true, result: core.FailedResult("embed down")},
		conversationalStub(),
	)

	queries := []string{
		"fire emergency number",
		"how to apply for a water connection",
		"latest water supply schedule update",
		"hello there",
		"zzz qqq xyzzy",
		"",
	}
	for _, query := range queries {
		answer := a.Answer(context.Background(), query)
		assert.NotEmpty(t, answer.Text, "query %q", query)
		assert.Contains(t, []core.StrategyKind{
			core.StrategyCache, core.StrategyDocument, core.StrategyGraph,
			core.StrategyConversational, core.StrategyFallback,
		}, answer.Strategy, "query %q", query)
	}
}

func TestAvailability(t *testing.T) {
	a := newAssembler(t,
		&stubStrategy{kind: core.StrategyCache, available: true},
		&stubStrategy{kind: core.StrategyGraph, available: false},
		conversationalStub(),
	)

	status := a.Availability()
	assert.True(t, status[core.StrategyCache])
	assert.False(t, status[core.StrategyGraph])
	assert.False(t, status[core.StrategyDocument])
	assert.True(t, status[core.StrategyConversational])
}

func TestExplainRouting(t *testing.T) {
	a := newAssembler(t, conversationalStub())

	report := a.ExplainRouting("fire emergency number")
	assert.Contains(t, report, `query: "fire emergency number"`)
	assert.Contains(t, report, "winner: cache")
	assert.Contains(t, report, "keyword: fire")

	report = a.ExplainRouting("zzz qqq xyzzy")
	assert.Contains(t, report, "winner: conversational (confidence 0.00)")
}
