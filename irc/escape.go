package irc

import "strings"

// unescapeTagValue reverses IRCv3 message-tag escaping: `\:` -> `;`,
// `\s` -> space, `\\` -> backslash. Any other byte, including a trailing
// backslash or a backslash before an unrecognized byte, is copied through
// unchanged. Twitch never emits `\r`/`\n` escapes in chat tags, so those are
// deliberately left to the copy-through path.
func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case ':':
			b.WriteByte(';')
			i++
		case 's':
			b.WriteByte(' ')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
