package strategy

import (
	"regexp"
	"strings"
)

// Intent names for canned conversational replies.
const (
	IntentGreeting     = "greeting"
	IntentIdentity     = "who_are_you"
	IntentCapabilities = "capabilities"
	IntentThanks       = "thanks"
	IntentGoodbye      = "goodbye"
	IntentHelp         = "help"
	IntentHowItWorks   = "how_it_works"
	IntentAboutChennai = "about_chennai"
	IntentFeedback     = "feedback"
	IntentDefault      = "default"
)

// intentRule matches a query to an intent. Rules run in slice order;
// the first match wins and the default rule always matches last.
// Phrases match on word boundaries so short tokens like "hi" do not
// fire inside longer words.
type intentRule struct {
	intent  string
	pattern *regexp.Regexp
}

func phrasePattern(phrases ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(phrases, "|") + `)\b`)
}

var intentRules = []intentRule{
	{IntentGreeting, phrasePattern("hello", "hi", "hey", "good morning", "good afternoon", "good evening")},
	{IntentIdentity, phrasePattern("who are you", "what are you", "tell me about yourself", "introduce yourself")},
	{IntentCapabilities, phrasePattern("what can you do", "your capabilities", "what do you help with", "services")},
	{IntentThanks, phrasePattern("thank", "thanks", "appreciate")},
	{IntentGoodbye, phrasePattern("bye", "goodbye", "see you", "exit", "quit")},
	{IntentHelp, phrasePattern("help", "assist", "support", "guide")},
	{IntentHowItWorks, phrasePattern("how do you work", "how does this work", "explain your system")},
	{IntentAboutChennai, phrasePattern("about chennai", "chennai city", "tell me about chennai")},
	{IntentFeedback, phrasePattern("feedback", "suggestion", "improve", "better")},
}

var cannedResponses = map[string]string{
	IntentGreeting: "Hello! I'm CivicMind, your Chennai civic assistant. I can help you with " +
		"civic services, government procedures, emergency contacts, and more. What can I " +
		"assist you with today?",

	IntentIdentity: "I'm CivicMind, a civic assistant built for Chennai residents. I answer " +
		"questions about municipal services, government procedures, and civic amenities by " +
		"combining cached contact tables, a civic knowledge graph, and official documents.",

	IntentCapabilities: "I can help you with:\n" +
		"- Emergency contact numbers\n" +
		"- Civic service procedures (water, tax, certificates)\n" +
		"- Government office information\n" +
		"- Municipal service complaints\n" +
		"- Zone-specific contacts\n" +
		"- Latest civic updates and guidelines",

	IntentThanks: "You're welcome! I'm here to help Chennai residents with civic issues " +
		"anytime. Feel free to ask if you have more questions about municipal services, " +
		"government procedures, or civic amenities.",

	IntentGoodbye: "Goodbye! Thank you for using CivicMind. Remember, I'm always here to " +
		"help with your Chennai civic needs. Have a great day!",

	IntentHelp: "I'm your Chennai civic assistant! You can ask me about:\n" +
		"- Emergency numbers (fire, police, ambulance)\n" +
		"- Water supply issues and CMWSSB services\n" +
		"- Property tax payment procedures\n" +
		"- Garbage collection schedules\n" +
		"- Birth/death certificate applications\n" +
		"- Municipal office contacts\n" +
		"- And much more civic information!",

	IntentHowItWorks: "I answer by routing your question to the best source:\n" +
		"- Cached tables give instant contact numbers and timings\n" +
		"- A knowledge graph walks procedures step by step\n" +
		"- Official documents and recent updates answer freshness questions\n" +
		"- And I handle general conversation myself.\n" +
		"I pick the route automatically based on your question.",

	IntentAboutChennai: "Chennai, the capital of Tamil Nadu, is served by several civic bodies:\n" +
		"- Greater Chennai Corporation (GCC) for municipal services\n" +
		"- CMWSSB for water supply and sewerage\n" +
		"- TANGEDCO for electricity\n" +
		"- Tamil Nadu Police for law and order\n" +
		"I can help you interact with all these services efficiently!",

	IntentFeedback: "I appreciate your feedback! If you have specific suggestions about " +
		"civic services, I recommend contacting the relevant departments directly using " +
		"the contact numbers I can provide.",

	IntentDefault: "I understand you're asking about something civic-related, but I need " +
		"more specific information to help you properly. Could you please ask about:\n" +
		"- A specific civic service (water, tax, certificates)\n" +
		"- An emergency contact number\n" +
		"- A government procedure\n" +
		"- A municipal office contact\n" +
		"What exactly can I help you with today?",
}

// classifyIntent returns the first matching intent rule, or the default
// intent when nothing matches. Total: every query gets an intent.
func classifyIntent(query string) string {
	lower := strings.ToLower(query)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(lower) {
			return rule.intent
		}
	}
	return IntentDefault
}
