package irc

// DiagnosticKind classifies a non-fatal decode anomaly.
type DiagnosticKind int

const (
	// DiagUnsupportedTag reports a tag key that is not in the field table.
	// The pair is excluded from the field map and decoding continues.
	DiagUnsupportedTag DiagnosticKind = iota
	// DiagUnknownEnumValue reports an enum field whose wire string is not in
	// the enum table. The field degrades to an unknown-value wrapper.
	DiagUnknownEnumValue
	// DiagMalformedValue reports a field whose coercion failed (bad integer,
	// bad badge pair, bad emote range). The field degrades to an
	// unknown-value wrapper.
	DiagMalformedValue
	// DiagUnknownEventID reports a msg-id or command keyword no event kind
	// resolves for. The message degrades to Unrecognized.
	DiagUnknownEventID
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnsupportedTag:
		return "unsupported_tag"
	case DiagUnknownEnumValue:
		return "unknown_enum_value"
	case DiagMalformedValue:
		return "malformed_value"
	case DiagUnknownEventID:
		return "unknown_event_id"
	default:
		return "unknown"
	}
}

// Diagnostic describes one soft decode anomaly. Diagnostics let operators
// detect protocol drift without the pipeline ever failing on it.
type Diagnostic struct {
	Kind   DiagnosticKind
	Key    string // offending tag key or "msg-id"
	Value  string // offending raw wire value
	Detail string
}

type diagFunc func(Diagnostic)
