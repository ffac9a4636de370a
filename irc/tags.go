package irc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTagString marks a tag string that is not well-formed
// key=value;... text. This is the pipeline's only hard failure: the caller
// decides whether to drop the line or escalate.
var ErrMalformedTagString = errors.New("malformed tag string")

// FieldMap holds the coerced tag fields of a single message. It is built
// fresh per line and never shared between calls.
type FieldMap map[Field]Value

// parseTags decodes the content of an IRCv3 tag string (with or without the
// leading '@') into a FieldMap. Unsupported keys are reported through diag
// and excluded; a duplicate raw key wins last-write in input order. Only an
// empty key is a hard error.
func parseTags(raw string, diag diagFunc) (FieldMap, error) {
	raw = strings.TrimPrefix(raw, "@")
	fm := make(FieldMap, 16)
	if raw == "" {
		return fm, nil
	}
	for _, pair := range strings.Split(raw, ";") {
		key, val, hasVal := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in pair %q", ErrMalformedTagString, pair)
		}
		spec, ok := fieldTable[key]
		if !ok {
			diag(Diagnostic{Kind: DiagUnsupportedTag, Key: key, Value: val})
			continue
		}
		present := hasVal && val != ""
		fm[spec.field] = spec.coerce(spec.field, val, present, diag)
	}
	return fm, nil
}

func (m FieldMap) has(f Field) bool {
	_, ok := m[f]
	return ok
}

func (m FieldMap) text(f Field) string         { return m[f].Text() }
func (m FieldMap) integer(f Field) int64       { return m[f].Int() }
func (m FieldMap) boolean(f Field) bool        { return m[f].Bool() }
func (m FieldMap) timestamp(f Field) time.Time { return m[f].Time() }
func (m FieldMap) badgeList(f Field) []Badge   { return m[f].Badges() }
func (m FieldMap) emoteList(f Field) []Emote   { return m[f].Emotes() }
