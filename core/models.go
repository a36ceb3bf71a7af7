package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for document chunks.
// It is generated with content-based hashing so that identical chunk text
// always produces the same identifier across restarts.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// StrategyKind names an answering strategy.
type StrategyKind string

const (
	// StrategyCache answers from the static keyword-indexed cache.
	StrategyCache StrategyKind = "cache"
	// StrategyDocument answers from the chunked document index plus web sources.
	StrategyDocument StrategyKind = "document"
	// StrategyGraph answers from the civic relationship graph.
	StrategyGraph StrategyKind = "graph"
	// StrategyConversational answers free text; it is the terminal fallback.
	StrategyConversational StrategyKind = "conversational"
	// StrategyFallback marks an answer produced by the fallback chain
	// after the routed strategy failed or was unavailable. It is only
	// ever reported on an Answer, never routed to.
	StrategyFallback StrategyKind = "fallback"
)

// Strategies returns the four routable strategies in their default
// tie-break priority order. Cache hits are cheapest to verify and
// conversational is the most generic catch-all, so it goes last.
func Strategies() []StrategyKind {
	return []StrategyKind{StrategyCache, StrategyDocument, StrategyGraph, StrategyConversational}
}

// ResultKind identifies the shape of a Found strategy result payload.
type ResultKind string

const (
	KindEmergencyContact     ResultKind = "emergency_contact"
	KindGovernmentContact    ResultKind = "government_contact"
	KindCivicService         ResultKind = "civic_service"
	KindZoneContact          ResultKind = "zone_contact"
	KindQuickInfo            ResultKind = "quick_info"
	KindAllContacts          ResultKind = "all_contacts"
	KindWebsiteList          ResultKind = "website_list"
	KindProcedure            ResultKind = "procedure"
	KindDepartmentResolution ResultKind = "department_resolution"
	KindReasoningChain       ResultKind = "reasoning_chain"
	KindDocumentHits         ResultKind = "document_hits"
	KindConversational       ResultKind = "conversational"
)

// ResultStatus is the discriminant of a StrategyResult.
type ResultStatus int

const (
	// ResultEmpty means the strategy found nothing. It is the normal
	// "no answer here" outcome, not an error.
	ResultEmpty ResultStatus = iota + 1
	// ResultFound carries a typed payload.
	ResultFound
	// ResultFailed means the strategy could not complete, typically a
	// collaborator failure. The assembler falls back on it.
	ResultFailed
)

// Payload is implemented by every Found result payload.
type Payload interface {
	// ResultKind reports which formatting rule applies to the payload.
	ResultKind() ResultKind
}

// StrategyResult is the tagged union every strategy returns.
// Status selects which of the remaining fields are meaningful:
// Kind and Payload for ResultFound, Reason for ResultFailed.
type StrategyResult struct {
	Status  ResultStatus
	Kind    ResultKind
	Payload Payload
	Reason  string
}

// EmptyResult reports that the strategy found nothing.
func EmptyResult() StrategyResult {
	return StrategyResult{Status: ResultEmpty}
}

// FoundResult wraps a payload in a successful result.
func FoundResult(p Payload) StrategyResult {
	return StrategyResult{Status: ResultFound, Kind: p.ResultKind(), Payload: p}
}

// FailedResult reports that the strategy could not complete.
// The reason is internal diagnostics and is never shown to the end user.
func FailedResult(reason string) StrategyResult {
	return StrategyResult{Status: ResultFailed, Reason: reason}
}

// RoutingScore is the router's verdict for a query: per-strategy integer
// scores, the signatures that matched (for explainability), the winner,
// and a derived confidence. Confidence is explanatory metadata only and
// never blocks dispatch.
type RoutingScore struct {
	Scores     map[StrategyKind]int
	Matched    map[StrategyKind][]string
	Winner     StrategyKind
	Confidence float64
}

// WinningSignatures returns the matched signatures of the winning strategy.
func (r RoutingScore) WinningSignatures() []string {
	return r.Matched[r.Winner]
}

// NodeKind classifies a graph node.
type NodeKind string

const (
	NodeDepartment NodeKind = "department"
	NodeService    NodeKind = "service"
	NodeIssue      NodeKind = "issue"
	NodeProcedure  NodeKind = "procedure"
)

// RelationLabel labels a directed graph edge.
type RelationLabel string

const (
	RelationManagedBy RelationLabel = "managed_by"
	RelationRelatesTo RelationLabel = "relates_to"
	RelationHandledBy RelationLabel = "handled_by"
	RelationProcedure RelationLabel = "procedure"
)

// GraphNode is a node in the civic relationship graph. Nodes are created
// once at load and never deleted at runtime.
type GraphNode struct {
	ID   string
	Kind NodeKind
	Name string
	// Category is the department category for department nodes
	// (e.g. "government", "emergency"). Empty for other kinds.
	Category string
}

// GraphEdge is a directed, labeled edge. Multiple edges between the same
// pair with different labels are permitted.
type GraphEdge struct {
	From     string
	To       string
	Relation RelationLabel
}

// Procedure carries the kind-specific attributes of a procedure node:
// an ordered list of steps plus fee, timeline and contact details.
type Procedure struct {
	ID         string
	Title      string
	Department string
	Steps      []string
	Documents  []string
	// Fees is either a flat description ("Free", "As per assessment")
	// or a rendered fee table, depending on the source record.
	Fees     string
	Timeline string
	Contact  string
}

// Chunk is a bounded, paragraph-aligned piece of a source document with
// its precomputed embedding. Chunk IDs are content-derived and stable
// for the lifetime of the index; Ordinal preserves the position within
// the source for human-readable citation.
type Chunk struct {
	ID      ID
	Source  string
	Ordinal int
	Text    string
	Vector  []float32
}

// ContentKey returns the string hashed to derive a chunk's content ID.
// Two chunks with the same source and text share an ID, which lets a
// rebuilt index reuse stored embeddings for unchanged content.
func (c *Chunk) ContentKey() string {
	return c.Source + "\x00" + c.Text
}

// ScoredChunk pairs a chunk with its similarity score for a query.
type ScoredChunk struct {
	Chunk *Chunk
	Score float32
}

// WebResult is one item of an external-source result list. The engine
// consumes it as an opaque ranked entry; its relevance score is not
// comparable with local similarity scores.
type WebResult struct {
	Title   string
	URL     string
	Snippet string
	Source  string
	Date    string
}

// ReasoningStep is one labeled step of a graph reasoning chain.
type ReasoningStep struct {
	Step    int
	Action  string
	Result  string
	Node    string
	Details string
}

// Answer is the caller-facing response. Text is always non-empty;
// Strategy is one of the StrategyKind values including StrategyFallback.
type Answer struct {
	Text              string
	Strategy          StrategyKind
	Confidence        float64
	MatchedSignatures []string
	Timestamp         time.Time
}
