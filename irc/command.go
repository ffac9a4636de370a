package irc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCommandArgs marks a command argument string that does not
// match the expected delimiter shape. The decoder degrades the message to
// Unrecognized rather than surfacing this to the caller.
var ErrMalformedCommandArgs = errors.New("malformed command arguments")

// commandFields is the structured record extracted from the free-text
// argument portion of a line. It lives for one decode call and is merged
// into the field map by the assembler (command fields win on collision).
type commandFields struct {
	Channel string
	Sender  string // login parsed from the prefix, "" for server-sent lines
	Target  string // whisper recipient or clearchat target
	Text    string
	HasText bool
	Action  bool // CTCP ACTION framing was detected and stripped
}

// commandKeyword extracts the command token from a prefixed IRC line.
func commandKeyword(line string) string {
	_, rest, ok := strings.Cut(line, " ")
	if !ok {
		return ""
	}
	cmd, _, _ := strings.Cut(rest, " ")
	return cmd
}

var commandParsers = map[string]func(string) (commandFields, error){
	"PRIVMSG":    parsePrivmsgArgs,
	"WHISPER":    parseWhisperArgs,
	"USERNOTICE": parseUsernoticeArgs,
	"NOTICE":     parseNoticeArgs,
	"ROOMSTATE":  parseRoomstateArgs,
	"CLEARCHAT":  parseClearchatArgs,
}

const ctcpAction = "\x01ACTION "

// cutAction strips CTCP ACTION framing ("\x01ACTION ...\x01") from a message
// body, reporting whether it was present.
func cutAction(text string) (string, bool) {
	if len(text) > len(ctcpAction) && strings.HasPrefix(text, ctcpAction) && strings.HasSuffix(text, "\x01") {
		return text[len(ctcpAction) : len(text)-1], true
	}
	return text, false
}

// parsePrivmsgArgs splits "login!user@host PRIVMSG #channel :text".
func parsePrivmsgArgs(line string) (commandFields, error) {
	sender, rest, ok := strings.Cut(line, "!")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: PRIVMSG prefix missing '!'", ErrMalformedCommandArgs)
	}
	sender = strings.TrimPrefix(sender, ":")
	_, rest, ok = strings.Cut(rest, "PRIVMSG ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: PRIVMSG keyword missing", ErrMalformedCommandArgs)
	}
	channel, text, ok := strings.Cut(rest, " :")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: PRIVMSG missing ' :' before body", ErrMalformedCommandArgs)
	}
	cf := commandFields{Channel: channel, Sender: sender, Text: text, HasText: true}
	cf.Text, cf.Action = cutAction(text)
	return cf, nil
}

// parseWhisperArgs splits "login!user@host WHISPER target :text".
func parseWhisperArgs(line string) (commandFields, error) {
	sender, rest, ok := strings.Cut(line, "!")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: WHISPER prefix missing '!'", ErrMalformedCommandArgs)
	}
	sender = strings.TrimPrefix(sender, ":")
	_, rest, ok = strings.Cut(rest, "WHISPER ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: WHISPER keyword missing", ErrMalformedCommandArgs)
	}
	target, text, ok := strings.Cut(rest, " :")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: WHISPER missing ' :' before body", ErrMalformedCommandArgs)
	}
	return commandFields{Sender: sender, Target: target, Text: text, HasText: true}, nil
}

// parseUsernoticeArgs splits "tmi.twitch.tv USERNOTICE #channel[ :text]".
// The user-supplied body is optional (e.g. raids have none).
func parseUsernoticeArgs(line string) (commandFields, error) {
	_, rest, ok := strings.Cut(line, "USERNOTICE ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: USERNOTICE keyword missing", ErrMalformedCommandArgs)
	}
	channel, text, ok := strings.Cut(rest, " :")
	if !ok {
		return commandFields{Channel: strings.TrimSpace(rest)}, nil
	}
	return commandFields{Channel: channel, Text: text, HasText: true}, nil
}

// parseNoticeArgs splits "tmi.twitch.tv NOTICE #channel :text".
func parseNoticeArgs(line string) (commandFields, error) {
	_, rest, ok := strings.Cut(line, "NOTICE ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: NOTICE keyword missing", ErrMalformedCommandArgs)
	}
	channel, text, ok := strings.Cut(rest, " :")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: NOTICE missing ' :' before body", ErrMalformedCommandArgs)
	}
	return commandFields{Channel: channel, Text: text, HasText: true}, nil
}

// parseRoomstateArgs splits "tmi.twitch.tv ROOMSTATE #channel".
func parseRoomstateArgs(line string) (commandFields, error) {
	_, rest, ok := strings.Cut(line, "ROOMSTATE ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: ROOMSTATE keyword missing", ErrMalformedCommandArgs)
	}
	return commandFields{Channel: strings.TrimSpace(rest)}, nil
}

// parseClearchatArgs splits "tmi.twitch.tv CLEARCHAT #channel[ :target]".
// Without a target login the whole room's chat was cleared.
func parseClearchatArgs(line string) (commandFields, error) {
	_, rest, ok := strings.Cut(line, "CLEARCHAT ")
	if !ok {
		return commandFields{}, fmt.Errorf("%w: CLEARCHAT keyword missing", ErrMalformedCommandArgs)
	}
	channel, target, ok := strings.Cut(rest, " :")
	if !ok {
		return commandFields{Channel: strings.TrimSpace(rest)}, nil
	}
	return commandFields{Channel: channel, Target: target}, nil
}
