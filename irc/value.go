package irc

import "time"

// ValueKind discriminates the payload stored in a Value.
type ValueKind int

const (
	// ValueAbsent marks a tag that appeared with an empty value (or a field
	// read back from a map it was never stored in).
	ValueAbsent ValueKind = iota
	ValueText
	ValueInt
	ValueBool
	ValueTime
	ValueBadges
	ValueEmotes
	ValueSubPlan
	ValueUserType
	ValueGiftTheme
	ValueMilestoneCategory
	ValueContributionType
	// ValueUnknown wraps a raw string that failed coercion. The original
	// wire text is preserved for diagnostics.
	ValueUnknown
)

// Badge is a name/version pair from the badges or badge-info tag, in wire
// order.
type Badge struct {
	Name    string
	Version int64
}

// EmoteRange is an inclusive start/stop character-offset pair within a
// message body.
type EmoteRange struct {
	Start int64
	End   int64
}

// Emote groups the occurrence ranges of one emote id within a message body,
// preserving wire order.
type Emote struct {
	ID     string
	Ranges []EmoteRange
}

// Value is a single coerced tag value. The zero value is absent.
type Value struct {
	kind   ValueKind
	text   string
	num    int64
	flag   bool
	ts     time.Time
	badges []Badge
	emotes []Emote
	enum   int
	raw    string
}

func textValue(s string) Value      { return Value{kind: ValueText, text: s} }
func intValue(n int64) Value        { return Value{kind: ValueInt, num: n} }
func boolValue(b bool) Value        { return Value{kind: ValueBool, flag: b} }
func timeValue(t time.Time) Value   { return Value{kind: ValueTime, ts: t} }
func badgesValue(b []Badge) Value   { return Value{kind: ValueBadges, badges: b} }
func emotesValue(e []Emote) Value   { return Value{kind: ValueEmotes, emotes: e} }
func unknownValue(raw string) Value { return Value{kind: ValueUnknown, raw: raw} }
func enumValue(k ValueKind, ordinal int, raw string) Value {
	return Value{kind: k, enum: ordinal, raw: raw}
}

// Kind reports which payload the value carries.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string payload, or "" for non-text values.
func (v Value) Text() string {
	if v.kind != ValueText {
		return ""
	}
	return v.text
}

// Int returns the integer payload, or 0 for non-integer values.
func (v Value) Int() int64 {
	if v.kind != ValueInt {
		return 0
	}
	return v.num
}

// Bool returns the boolean payload; absent and non-boolean values are false.
func (v Value) Bool() bool { return v.kind == ValueBool && v.flag }

// Time returns the timestamp payload, or the zero time.
func (v Value) Time() time.Time {
	if v.kind != ValueTime {
		return time.Time{}
	}
	return v.ts
}

// Badges returns the badge-pair payload, or nil.
func (v Value) Badges() []Badge {
	if v.kind != ValueBadges {
		return nil
	}
	return v.badges
}

// Emotes returns the emote payload. An emotes tag that was present but empty
// yields an empty, non-nil slice.
func (v Value) Emotes() []Emote {
	if v.kind != ValueEmotes {
		return nil
	}
	return v.emotes
}

// Raw returns the original wire text of an unknown-wrapped or enum value.
func (v Value) Raw() string { return v.raw }

func (v Value) SubPlan() SubPlan {
	if v.kind != ValueSubPlan {
		return SubPlanUnknown
	}
	return SubPlan(v.enum)
}

func (v Value) UserType() UserType {
	if v.kind != ValueUserType {
		return UserTypeNormal
	}
	return UserType(v.enum)
}

func (v Value) GiftTheme() GiftTheme {
	if v.kind != ValueGiftTheme {
		return GiftThemeUnknown
	}
	return GiftTheme(v.enum)
}

func (v Value) MilestoneCategory() MilestoneCategory {
	if v.kind != ValueMilestoneCategory {
		return MilestoneUnknown
	}
	return MilestoneCategory(v.enum)
}

func (v Value) ContributionType() ContributionType {
	if v.kind != ValueContributionType {
		return ContributionUnknown
	}
	return ContributionType(v.enum)
}
