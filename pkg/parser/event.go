package parser

// EventKind identifies an event in the parser's output stream.
type EventKind uint8

// Event kinds.
const (
	EventStart EventKind = iota
	EventToken
	EventFinish
	EventMissing
)

// Event is one step of the flat stream a parser produces. The sink replays
// the stream into a tree builder.
type Event[K Kind] struct {
	Kind EventKind
	// NodeKind is the node kind of a start event, or the kind a token
	// event is recorded as. TOMBSTONE marks an abandoned start.
	NodeKind K
	// ForwardParent is the distance to a later start event that becomes
	// the parent of this one. Zero means none.
	ForwardParent int
	// TokenIndex is the index into the token source of a token event.
	TokenIndex int
}
