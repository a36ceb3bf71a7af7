package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("water supply timings")
		id2 := IDFromContent("water supply timings")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different ids", func(t *testing.T) {
		id1 := IDFromContent("water supply timings")
		id2 := IDFromContent("property tax rates")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content still hashes", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestStrategies(t *testing.T) {
	order := Strategies()
	require.Len(t, order, 4)
	// Priority order doubles as the tie-break order.
	assert.Equal(t, StrategyCache, order[0])
	assert.Equal(t, StrategyDocument, order[1])
	assert.Equal(t, StrategyGraph, order[2])
	assert.Equal(t, StrategyConversational, order[3])
}

func TestStrategyResultConstructors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		res := EmptyResult()
		assert.Equal(t, ResultEmpty, res.Status)
		assert.Nil(t, res.Payload)
	})

	t.Run("found carries payload kind", func(t *testing.T) {
		res := FoundResult(EmergencyContact{Service: "Fire", Number: "101"})
		assert.Equal(t, ResultFound, res.Status)
		assert.Equal(t, KindEmergencyContact, res.Kind)
		require.NotNil(t, res.Payload)
	})

	t.Run("failed carries reason", func(t *testing.T) {
		res := FailedResult("collaborator timeout")
		assert.Equal(t, ResultFailed, res.Status)
		assert.Equal(t, "collaborator timeout", res.Reason)
	})
}

func TestPayloadKinds(t *testing.T) {
	cases := []struct {
		payload Payload
		kind    ResultKind
	}{
		{EmergencyContact{}, KindEmergencyContact},
		{GovernmentContact{}, KindGovernmentContact},
		{CivicService{}, KindCivicService},
		{ZoneContact{}, KindZoneContact},
		{QuickInfo{}, KindQuickInfo},
		{AllContacts{}, KindAllContacts},
		{WebsiteList{}, KindWebsiteList},
		{ProcedureAnswer{}, KindProcedure},
		{DepartmentResolution{}, KindDepartmentResolution},
		{ReasoningChain{}, KindReasoningChain},
		{DocumentHits{}, KindDocumentHits},
		{Conversational{}, KindConversational},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.payload.ResultKind())
	}
}

func TestRoutingScoreWinningSignatures(t *testing.T) {
	score := RoutingScore{
		Scores:  map[StrategyKind]int{StrategyCache: 3, StrategyGraph: 1},
		Matched: map[StrategyKind][]string{StrategyCache: {"keyword: helpline"}},
		Winner:  StrategyCache,
	}
	assert.Equal(t, []string{"keyword: helpline"}, score.WinningSignatures())
}
