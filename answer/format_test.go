package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/core"
)

func TestFormatEmergencyContact(t *testing.T) {
	result := core.FoundResult(core.EmergencyContact{
		Service:      "Fire",
		Number:       "101",
		Availability: "24x7",
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "Fire Emergency Contact")
	assert.Contains(t, text, "Number: 101")
	assert.Contains(t, text, "Availability: 24x7")
	assert.Contains(t, text, sourceCache)
}

func TestFormatAllContactsPreservesOrder(t *testing.T) {
	result := core.FoundResult(core.AllContacts{
		Title: "All Emergency Contacts",
		Contacts: []core.LabeledValue{
			{Label: "Ambulance", Value: "108"},
			{Label: "Fire", Value: "101"},
			{Label: "Police", Value: "100"},
		},
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "All Emergency Contacts")
	ambulance := "- Ambulance: 108"
	fire := "- Fire: 101"
	assert.Less(t, indexOf(t, text, ambulance), indexOf(t, text, fire))
	assert.Contains(t, text, "- Police: 100")
}

func TestFormatProcedure(t *testing.T) {
	result := core.FoundResult(core.ProcedureAnswer{Procedure: &core.Procedure{
		ID:         "property_tax_payment",
		Title:      "Property Tax Payment",
		Department: "gcc",
		Steps:      []string{"Visit the online portal", "Enter the property ID", "Pay online"},
		Documents:  []string{"Property ID", "Previous receipt"},
		Fees:       "As per assessment",
		Timeline:   "Immediate",
		Contact:    "1913",
	}})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "Property Tax Payment")
	assert.Contains(t, text, "1. Visit the online portal")
	assert.Contains(t, text, "3. Pay online")
	assert.Contains(t, text, "Documents required: Property ID, Previous receipt")
	assert.Contains(t, text, "Fees: As per assessment")
	assert.Contains(t, text, sourceGraph)
}

func TestFormatDepartmentResolutionProvenance(t *testing.T) {
	result := core.FoundResult(core.DepartmentResolution{
		IssueID:        "no_water",
		IssueName:      "No Water Supply",
		ServiceID:      "water_supply",
		ServiceName:    "Water Supply",
		DepartmentID:   "cmwssb",
		DepartmentName: "Chennai Metro Water Supply and Sewerage Board",
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "Issue: No Water Supply")
	assert.Contains(t, text, "Responsible department: Chennai Metro Water Supply and Sewerage Board")
	assert.Contains(t, text, "no_water -> water_supply -> cmwssb")
}

func TestFormatReasoningChain(t *testing.T) {
	result := core.FoundResult(core.ReasoningChain{Steps: []core.ReasoningStep{
		{Step: 1, Action: "Identify issue", Result: "Pipeline Leakage"},
		{Step: 2, Action: "Find service", Result: "Water Supply", Details: "Managed by CMWSSB"},
	}})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "1. Identify issue: Pipeline Leakage")
	assert.Contains(t, text, "2. Find service: Water Supply")
	assert.Contains(t, text, "Managed by CMWSSB")
	assert.Contains(t, text, sourceGraph)
}

func TestFormatDocumentHits(t *testing.T) {
	result := core.FoundResult(core.DocumentHits{
		Documents: []core.ScoredChunk{
			{Chunk: &core.Chunk{Source: "water_supply.txt", Text: "Morning 6 AM to 8 AM."}, Score: 0.91},
		},
		WebSources: []core.WebResult{
			{Title: "Water supply advisory", URL: "https://example.org/advisory", Source: "chennai.gov", Snippet: "Supply resumes tomorrow."},
		},
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "From civic documents:")
	assert.Contains(t, text, "water_supply.txt (relevance 0.91)")
	assert.Contains(t, text, "From web sources:")
	assert.Contains(t, text, "Water supply advisory (chennai.gov)")
	assert.Contains(t, text, "https://example.org/advisory")
	assert.Contains(t, text, sourceDocuments)
}

func TestFormatDocumentHitsLocalOnly(t *testing.T) {
	result := core.FoundResult(core.DocumentHits{
		Documents: []core.ScoredChunk{
			{Chunk: &core.Chunk{Source: "property_tax.txt", Text: "Pay online at the portal."}, Score: 0.72},
		},
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "From civic documents:")
	assert.NotContains(t, text, "From web sources:")
	assert.Contains(t, text, sourceDocuments)
}

func TestFormatDocumentHitsWebOnly(t *testing.T) {
	result := core.FoundResult(core.DocumentHits{
		WebSources: []core.WebResult{
			{Title: "Garbage collection schedule", URL: "https://example.org/garbage", Source: "chennai.gov"},
		},
	})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Contains(t, text, "From web sources:")
	// No local hits, so the answer must not claim indexed documents.
	assert.NotContains(t, text, sourceDocuments)
}

func TestFormatConversationalPassthrough(t *testing.T) {
	result := core.FoundResult(core.Conversational{Text: "Hello from CivicMind.", Method: core.MethodCanned})

	text, err := formatResult(result)
	require.NoError(t, err)
	assert.Equal(t, "Hello from CivicMind.", text)
}

func TestFormatRejectsNonFound(t *testing.T) {
	_, err := formatResult(core.EmptyResult())
	assert.ErrorIs(t, err, ErrUnformattableResult)

	_, err = formatResult(core.FailedResult("boom"))
	assert.ErrorIs(t, err, ErrUnformattableResult)
}

func indexOf(t *testing.T, text, substr string) int {
	t.Helper()
	idx := strings.Index(text, substr)
	require.GreaterOrEqual(t, idx, 0, "substring %q not found", substr)
	return idx
}
