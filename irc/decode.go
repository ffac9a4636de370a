package irc

import (
	"fmt"
	"log/slog"
)

// Decoder turns framed (tag string, command line) pairs into Events. The
// zero value is usable and safe for concurrent use.
type Decoder struct {
	// OnDiagnostic, when set, receives soft decode anomalies (unsupported
	// tags, unknown enum values, unknown msg-ids). When nil, diagnostics go
	// to slog at debug level.
	OnDiagnostic func(Diagnostic)
}

func (d *Decoder) diag(di Diagnostic) {
	if d.OnDiagnostic != nil {
		d.OnDiagnostic(di)
		return
	}
	slog.Debug("decode diagnostic",
		slog.String("kind", di.Kind.String()),
		slog.String("key", di.Key),
		slog.String("value", di.Value),
		slog.String("detail", di.Detail))
}

// Decode normalizes one protocol line. tagString is the @-prefixed IRCv3
// tag portion (may be empty); line is the rest: "<prefix> <COMMAND>
// <args...>". Every input yields exactly one Event: classification
// failures produce an Unrecognized event, never an error. The only error
// case is a structurally malformed tag string.
func (d *Decoder) Decode(tagString, line string) (Event, error) {
	fm, err := parseTags(tagString, d.diag)
	if err != nil {
		return nil, err
	}

	cmd := commandKeyword(line)
	parse, ok := commandParsers[cmd]
	if !ok {
		err := fmt.Errorf("%w: command %q", ErrUnknownEventID, cmd)
		d.diag(Diagnostic{Kind: DiagUnknownEventID, Key: "command", Value: cmd, Detail: err.Error()})
		return Unrecognized{RawTags: tagString, RawLine: line, Reason: err}, nil
	}
	cf, err := parse(line)
	if err != nil {
		return Unrecognized{RawTags: tagString, RawLine: line, Reason: err}, nil
	}

	wireID := fm.text(FieldMsgID)
	kind, err := resolveKind(wireID, cmd)
	if err != nil {
		d.diag(Diagnostic{Kind: DiagUnknownEventID, Key: "msg-id", Value: wireID, Detail: err.Error()})
		return Unrecognized{RawTags: tagString, RawLine: line, Reason: err}, nil
	}

	ev, err := assemble(kind, fm, cf, wireID)
	if err != nil {
		return Unrecognized{RawTags: tagString, RawLine: line, Reason: err}, nil
	}
	return ev, nil
}

var defaultDecoder = &Decoder{}

// Decode normalizes one line using a shared default Decoder that logs
// diagnostics via slog.
func Decode(tagString, line string) (Event, error) {
	return defaultDecoder.Decode(tagString, line)
}
