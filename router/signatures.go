package router

import (
	"regexp"

	"github.com/poiesic/civicmind/core"
)

// SignatureSet is the routing signature of one strategy: keywords match
// by substring and score 1, patterns match by regexp and score 2.
type SignatureSet struct {
	Strategy core.StrategyKind
	Keywords []string
	Patterns []*regexp.Regexp
}

// DefaultSignatures returns the built-in signature sets, one per
// strategy, in strategy priority order.
func DefaultSignatures() []SignatureSet {
	return []SignatureSet{
		{
			Strategy: core.StrategyCache,
			Keywords: []string{
				"helpline", "contact", "number", "phone", "emergency",
				"fire", "police", "ambulance", "hospital",
				"office hours", "timing", "schedule", "website",
				"zone contact", "collector office", "mayor office",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(helpline|contact|number|phone)\b`),
				regexp.MustCompile(`\b(emergency|fire|police|ambulance)\b`),
				regexp.MustCompile(`\b(office hours|timing|schedule)\b`),
				regexp.MustCompile(`\b(zone|area)\s+(contact|number)\b`),
			},
		},
		{
			Strategy: core.StrategyDocument,
			Keywords: []string{
				"latest", "recent", "update", "current", "new", "report",
				"schedule", "timings", "rules", "guidelines", "notification",
				"2025", "october", "september", "today",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(latest|recent|update|current|new)\b`),
				regexp.MustCompile(`\b(rules|guidelines|notification)\s+(2025|2024)\b`),
				regexp.MustCompile(`\b(schedule|timing)\s+(for|of)\b`),
				regexp.MustCompile(`\b(what is|show me)\s+.*(schedule|timing|rule)\b`),
			},
		},
		{
			Strategy: core.StrategyGraph,
			Keywords: []string{
				"how to", "procedure", "steps", "process", "apply",
				"get", "obtain", "registration", "application",
				"who handles", "responsible", "department",
				"repair", "complaint", "issue",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(how to|procedure|steps|process)\b`),
				regexp.MustCompile(`\b(apply|get|obtain)\s+(for|a|an)\b`),
				regexp.MustCompile(`\b(who handles|responsible|department)\b`),
				regexp.MustCompile(`\b(repair|complaint|issue)\s+(in|at|for)\b`),
			},
		},
		{
			Strategy: core.StrategyConversational,
			Keywords: []string{
				"hello", "hi", "hey", "who are you", "what are you",
				"thank", "thanks", "bye", "goodbye", "help",
				"chat", "talk", "conversation",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(hello|hi|hey|good\s+(morning|afternoon|evening))\b`),
				regexp.MustCompile(`\b(who|what)\s+are\s+you\b`),
				regexp.MustCompile(`\b(thank|thanks|appreciate)\b`),
				regexp.MustCompile(`\b(bye|goodbye|see\s+you)\b`),
			},
		},
	}
}
