package civicmind

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/ai/mock"
	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/knowledge"
)

func writeCivicData(t *testing.T, dir string) {
	t.Helper()

	cache := knowledge.CacheData{
		knowledge.CategoryEmergency: {
			"fire":      "101",
			"police":    "100",
			"ambulance": "108",
		},
		knowledge.CategoryQuickInfo: {
			"corporation_office_hours": "9:30 AM to 5:30 PM (Monday to Friday)",
		},
	}
	raw, err := json.Marshal(cache)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "civic_cache.json"), raw, 0644))

	var graph knowledge.GraphSnapshot
	graph.Entities.Departments = []knowledge.DepartmentRecord{
		{ID: "cmwssb", Name: "Chennai Metro Water Supply and Sewerage Board", Type: "utility"},
	}
	graph.Entities.Services = []knowledge.ServiceRecord{
		{ID: "water_supply", Name: "Water Supply", Department: "cmwssb"},
	}
	graph.Entities.Issues = []knowledge.IssueRecord{
		{ID: "pipeline_leak", Name: "Pipeline Leakage", Service: "water_supply"},
	}
	graph.Procedures = map[string]knowledge.ProcedureRecord{
		"new_water_connection": {
			Title:      "New Water Connection",
			Department: "cmwssb",
			Steps:      []string{"Apply online", "Submit documents", "Pay charges"},
			Fees:       "As per connection size",
			Contact:    "044-45674567",
		},
	}
	raw, err = json.Marshal(graph)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "civic_knowledge.json"), raw, 0644))

	docsDir := filepath.Join(dir, "civic_docs")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	doc := "WATER SUPPLY TIMINGS:\nMorning 6 AM to 8 AM.\n\nTANKER BOOKING:\nCall 044-45671200 or book online."
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "water_supply.txt"), []byte(doc), 0644))
}

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()

	dir := t.TempDir()
	writeCivicData(t, dir)

	opts = append([]EngineOption{
		WithProvider(mock.NewMockProvider()),
		WithDataDir(dir),
	}, opts...)

	engine, err := NewEngine(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, engine.Close()) })

	require.Empty(t, engine.LoadErrors())
	return engine
}

func TestEngineCacheAnswer(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyCache, answer.Strategy)
	assert.Contains(t, answer.Text, "101")
	assert.Greater(t, answer.Confidence, 0.0)
	assert.NotEmpty(t, answer.MatchedSignatures)
}

func TestEngineGraphReasoningAnswer(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.Answer(context.Background(), "how to get water pipeline repaired")
	assert.Equal(t, core.StrategyGraph, answer.Strategy)
	assert.Contains(t, answer.Text, "Step-by-step resolution:")
	assert.Contains(t, answer.Text, "044-45674567")
}

func TestEngineDocumentAnswer(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.Answer(context.Background(), "latest water supply schedule update")
	assert.Equal(t, core.StrategyDocument, answer.Strategy)
	assert.NotEmpty(t, answer.Text)
}

func TestEngineConversationalAnswer(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.Answer(context.Background(), "hello")
	assert.Equal(t, core.StrategyConversational, answer.Strategy)
	assert.Contains(t, answer.Text, "mock reply")
}

func TestEngineAllZeroQuery(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.Answer(context.Background(), "zzz qqq xyzzy")
	assert.Equal(t, core.StrategyConversational, answer.Strategy)
	assert.Zero(t, answer.Confidence)
	assert.NotEmpty(t, answer.Text)
}

func TestEngineAvailability(t *testing.T) {
	engine := newTestEngine(t)

	status := engine.Availability()
	for _, kind := range core.Strategies() {
		assert.True(t, status[kind], "strategy %s", kind)
	}
}

func TestEngineMissingDataStillAnswers(t *testing.T) {
	engine, err := NewEngine(context.Background(),
		WithProvider(mock.NewMockProvider()),
		WithDataDir(filepath.Join(t.TempDir(), "nonexistent")),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, engine.Close()) })

	assert.Len(t, engine.LoadErrors(), 3)

	status := engine.Availability()
	assert.False(t, status[core.StrategyCache])
	assert.False(t, status[core.StrategyGraph])
	assert.False(t, status[core.StrategyDocument])
	assert.True(t, status[core.StrategyConversational])

	answer := engine.Answer(context.Background(), "fire emergency number")
	assert.Equal(t, core.StrategyFallback, answer.Strategy)
	assert.NotEmpty(t, answer.Text)
}

func TestEnginePersistentIndexReusesEmbeddings(t *testing.T) {
	dir := t.TempDir()
	writeCivicData(t, dir)
	indexPath := filepath.Join(t.TempDir(), "index")

	first, err := NewEngine(context.Background(),
		WithProvider(mock.NewMockProvider()),
		WithDataDir(dir),
		WithIndexPath(indexPath),
	)
	require.NoError(t, err)
	require.Empty(t, first.LoadErrors())
	require.NoError(t, first.Close())

	provider := mock.NewMockProvider().(*mock.MockProvider)
	second, err := NewEngine(context.Background(),
		WithProvider(provider),
		WithDataDir(dir),
		WithIndexPath(indexPath),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, second.Close()) })

	require.Empty(t, second.LoadErrors())
	assert.Zero(t, provider.GetMockEmbedder().CallCount())
}

func TestEngineExplainRouting(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.ExplainRouting("fire emergency number")
	assert.Contains(t, report, "winner: cache")
	assert.Contains(t, report, "keyword: fire")
}

func TestEngineConfiguredPriority(t *testing.T) {
	engine := newTestEngine(t, WithPriority(
		core.StrategyConversational, core.StrategyGraph,
		core.StrategyDocument, core.StrategyCache,
	))

	report := engine.ExplainRouting("fire emergency number")
	assert.Contains(t, report, "winner: cache")
}
