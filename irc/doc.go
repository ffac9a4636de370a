// Package irc normalizes raw Twitch IRC lines into typed chat events.
//
// The pipeline takes the two halves of a framed line (the IRCv3 tag string
// and the prefixed command line) and produces exactly one Event:
//
//	ev, err := irc.Decode(
//		"@badges=broadcaster/1;color=#5DA5D9;display-name=ShyRyan",
//		"shyryan!shyryan@shyryan.tmi.twitch.tv PRIVMSG #shyryan :Hello World",
//	)
//
// Tag values are unescaped and coerced per-field (integers, booleans,
// timestamps, badge lists, emote ranges, enums); the msg-id tag or the
// command keyword selects one of the canonical event kinds; the
// command-specific argument text contributes channel, sender and body.
// Anything the pipeline cannot classify still yields an event: the
// Unrecognized variant carrying the raw inputs. Consumers switch on
// Event.Kind() and must keep a default arm, since Twitch adds tags and
// msg-ids without notice.
//
// Protocol drift never surfaces as an error. Unsupported tag keys,
// unrecognized enum strings and unknown msg-ids are reported through the
// Decoder's diagnostic callback and the affected field (or the whole
// classification) degrades; a hard error is returned only for a tag string
// that is not well-formed key=value text.
//
// The pipeline holds no mutable state: the lookup tables are built at init
// and read-only afterwards, so concurrent Decode calls need no
// synchronization.
package irc
