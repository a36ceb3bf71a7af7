package core

// EmergencyContact is a single emergency helpline hit from the cache.
type EmergencyContact struct {
	Service      string
	Number       string
	Availability string
}

func (EmergencyContact) ResultKind() ResultKind { return KindEmergencyContact }

// GovernmentContact is a government office contact from the cache.
type GovernmentContact struct {
	Office string
	Number string
	Timing string
}

func (GovernmentContact) ResultKind() ResultKind { return KindGovernmentContact }

// CivicService is a civic service helpline from the cache.
type CivicService struct {
	Service  string
	Helpline string
	Timing   string
}

func (CivicService) ResultKind() ResultKind { return KindCivicService }

// ZoneContact is a zone office contact from the cache.
type ZoneContact struct {
	Zone     string
	Contact  string
	Services string
}

func (ZoneContact) ResultKind() ResultKind { return KindZoneContact }

// QuickInfo is a timing/schedule/website fact from the cache.
type QuickInfo struct {
	Topic   string
	Details string
}

func (QuickInfo) ResultKind() ResultKind { return KindQuickInfo }

// LabeledValue is an ordered name/value pair used by list payloads.
type LabeledValue struct {
	Label string
	Value string
}

// AllContacts is the full contact listing of one cache category,
// returned for "all ..." style queries. Entries preserve table order.
type AllContacts struct {
	Title    string
	Contacts []LabeledValue
}

func (AllContacts) ResultKind() ResultKind { return KindAllContacts }

// WebsiteList is a listing of official websites from the cache.
type WebsiteList struct {
	Sites []LabeledValue
}

func (WebsiteList) ResultKind() ResultKind { return KindWebsiteList }

// ProcedureAnswer is a full procedure resolved from the graph.
type ProcedureAnswer struct {
	Procedure *Procedure
}

func (ProcedureAnswer) ResultKind() ResultKind { return KindProcedure }

// DepartmentResolution is a complete issue -> service -> department
// chain resolved from the graph. Partial chains are never surfaced.
type DepartmentResolution struct {
	IssueID        string
	IssueName      string
	ServiceID      string
	ServiceName    string
	DepartmentID   string
	DepartmentName string
}

func (DepartmentResolution) ResultKind() ResultKind { return KindDepartmentResolution }

// ReasoningChain is an ordered multi-hop reasoning trace.
type ReasoningChain struct {
	Steps []ReasoningStep
}

func (ReasoningChain) ResultKind() ResultKind { return KindReasoningChain }

// DocumentHits combines local chunk matches and external web sources
// under two labeled sub-lists. The lists are never merged into one
// ranking because their scores are not comparable.
type DocumentHits struct {
	Documents  []ScoredChunk
	WebSources []WebResult
}

func (DocumentHits) ResultKind() ResultKind { return KindDocumentHits }

// ConversationalMethod tells how a conversational reply was produced.
type ConversationalMethod string

const (
	// MethodGenerated means the reply came from the text-completion collaborator.
	MethodGenerated ConversationalMethod = "generated"
	// MethodCanned means the reply came from the offline intent table.
	MethodCanned ConversationalMethod = "canned"
)

// Conversational is a free-text reply, either generated or canned.
type Conversational struct {
	Text   string
	Method ConversationalMethod
	// Intent is the matched intent rule for canned replies, empty for generated.
	Intent string
}

func (Conversational) ResultKind() ResultKind { return KindConversational }
