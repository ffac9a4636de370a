package irc

import (
	"strconv"
	"strings"
	"time"
)

// A coerceFn turns the raw wire text of one tag into a typed Value. present
// is false when the tag appeared with an empty value. Coercion failures never
// abort the message: the field degrades to an unknown-value wrapper and a
// diagnostic is emitted.
type coerceFn func(f Field, raw string, present bool, diag diagFunc) Value

func coerceText(_ Field, raw string, present bool, _ diagFunc) Value {
	if !present {
		return Value{}
	}
	return textValue(unescapeTagValue(raw))
}

func coerceInt(f Field, raw string, present bool, diag diagFunc) Value {
	if !present {
		return Value{}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "not a base-10 integer"})
		return unknownValue(raw)
	}
	return intValue(n)
}

// coerceBool handles the "1"-style flags; absent is false.
func coerceBool(_ Field, raw string, present bool, _ diagFunc) Value {
	return boolValue(present && raw == "1")
}

// coerceBoolWord handles the handful of gift-related flags that use "true".
func coerceBoolWord(_ Field, raw string, present bool, _ diagFunc) Value {
	return boolValue(present && raw == "true")
}

func coerceTimestamp(f Field, raw string, present bool, diag diagFunc) Value {
	if !present {
		return Value{}
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "not a millisecond timestamp"})
		return unknownValue(raw)
	}
	return timeValue(time.UnixMilli(ms).UTC())
}

// coerceBadges parses "name/version,name/version" keeping wire order.
func coerceBadges(f Field, raw string, present bool, diag diagFunc) Value {
	if !present {
		return badgesValue(nil)
	}
	parts := strings.Split(raw, ",")
	badges := make([]Badge, 0, len(parts))
	for _, part := range parts {
		name, ver, ok := strings.Cut(part, "/")
		if !ok {
			diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "badge pair missing '/'"})
			return unknownValue(raw)
		}
		n, err := strconv.ParseInt(ver, 10, 64)
		if err != nil {
			diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "badge version not an integer"})
			return unknownValue(raw)
		}
		badges = append(badges, Badge{Name: name, Version: n})
	}
	return badgesValue(badges)
}

// coerceEmotes parses "id:start-stop,start-stop/id:start-stop", preserving
// per-emote grouping and range order. An emotes tag with an empty value is an
// empty list, not absent.
func coerceEmotes(f Field, raw string, present bool, diag diagFunc) Value {
	if !present {
		return emotesValue([]Emote{})
	}
	groups := strings.Split(raw, "/")
	emotes := make([]Emote, 0, len(groups))
	for _, group := range groups {
		id, spans, ok := strings.Cut(group, ":")
		if !ok {
			diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "emote group missing ':'"})
			return unknownValue(raw)
		}
		specs := strings.Split(spans, ",")
		ranges := make([]EmoteRange, 0, len(specs))
		for _, span := range specs {
			from, to, ok := strings.Cut(span, "-")
			if !ok {
				diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "emote range missing '-'"})
				return unknownValue(raw)
			}
			start, err := strconv.ParseInt(from, 10, 64)
			if err != nil {
				diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "emote range start not an integer"})
				return unknownValue(raw)
			}
			end, err := strconv.ParseInt(to, 10, 64)
			if err != nil {
				diag(Diagnostic{Kind: DiagMalformedValue, Key: string(f), Value: raw, Detail: "emote range stop not an integer"})
				return unknownValue(raw)
			}
			ranges = append(ranges, EmoteRange{Start: start, End: end})
		}
		emotes = append(emotes, Emote{ID: id, Ranges: ranges})
	}
	return emotesValue(emotes)
}

// coerceEnum builds a coercer over a fixed string-to-ordinal table. An
// unrecognized wire string degrades to an unknown wrapper, never an error:
// Twitch adds enum values without notice.
func coerceEnum[E ~int](kind ValueKind, table map[string]E) coerceFn {
	return func(f Field, raw string, present bool, diag diagFunc) Value {
		if !present {
			return Value{}
		}
		if ord, ok := table[raw]; ok {
			return enumValue(kind, int(ord), raw)
		}
		diag(Diagnostic{Kind: DiagUnknownEnumValue, Key: string(f), Value: raw})
		return unknownValue(raw)
	}
}
