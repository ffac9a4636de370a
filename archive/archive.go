// Package archive persists decoded chat events. Two sinks are provided: a
// batched Postgres writer and a gzip NDJSON file writer; both consume the
// same flat Row projection of an event.
package archive

import (
	"context"
	"time"

	"github.com/onnwee/chatwire/irc"
)

// Row is the flat storage projection of one decoded event. Kind-specific
// payloads that don't fit the shared columns (system message, ban target,
// raw line) land in the generic Text/Extra columns.
type Row struct {
	IngestID    string      `json:"ingest_id"`
	Kind        string      `json:"kind"`
	Channel     string      `json:"channel,omitempty"`
	RoomID      string      `json:"room_id,omitempty"`
	MessageID   string      `json:"message_id,omitempty"`
	UserID      string      `json:"user_id,omitempty"`
	Login       string      `json:"login,omitempty"`
	DisplayName string      `json:"display_name,omitempty"`
	Text        string      `json:"text,omitempty"`
	Bits        int64       `json:"bits,omitempty"`
	Badges      []irc.Badge `json:"badges,omitempty"`
	Color       string      `json:"color,omitempty"`
	SentAt      time.Time   `json:"sent_at"`
	Extra       string      `json:"extra,omitempty"` // kind-specific detail (system-msg, ban target, raw line)
}

// Sink consumes rows. Implementations decide their own durability and
// backpressure behavior; Write must be safe for concurrent use.
type Sink interface {
	Write(Row) error
	Close(ctx context.Context) error
}

// RowFromEvent projects an event onto a Row. receivedAt backfills SentAt for
// events whose line carried no tmi-sent-ts tag.
func RowFromEvent(ev irc.Event, ingestID string, receivedAt time.Time) Row {
	row := Row{IngestID: ingestID, Kind: ev.Kind().String(), SentAt: receivedAt}

	switch e := ev.(type) {
	case irc.Message:
		row.Channel = e.Channel
		row.RoomID = e.RoomID
		row.MessageID = e.ID
		row.UserID = e.Sender.ID
		row.Login = e.Sender.Login
		row.DisplayName = e.Sender.DisplayName
		row.Text = e.Text
		row.Bits = e.Bits
		row.Badges = e.Sender.Badges
		row.Color = e.Sender.Color
		if !e.SentAt.IsZero() {
			row.SentAt = e.SentAt
		}
	case irc.Whisper:
		row.MessageID = e.ID
		row.UserID = e.From.ID
		row.Login = e.From.Login
		row.DisplayName = e.From.DisplayName
		row.Text = e.Text
		row.Color = e.From.Color
	case irc.Ban:
		row.Channel = e.Channel
		row.RoomID = e.RoomID
		row.UserID = e.TargetUserID
		row.Login = e.TargetLogin
		if e.Duration.Permanent() {
			row.Extra = "permanent"
		} else {
			row.Extra = e.Duration.Seconds().String()
		}
		if !e.SentAt.IsZero() {
			row.SentAt = e.SentAt
		}
	case irc.RoomState:
		row.Channel = e.Channel
		row.RoomID = e.RoomID
	case irc.Notice:
		row.Channel = e.Channel
		row.Text = e.Text
		row.Extra = e.WireID
	case irc.EmoteMode:
		row.Channel = e.Channel
		row.Extra = onOff(e.On)
	case irc.FollowersMode:
		row.Channel = e.Channel
		row.Extra = onOff(e.On)
	case irc.UniqueMode:
		row.Channel = e.Channel
		row.Extra = onOff(e.On)
	case irc.SlowMode:
		row.Channel = e.Channel
		row.Extra = onOff(e.On)
	case irc.SubsMode:
		row.Channel = e.Channel
		row.Extra = onOff(e.On)
	case irc.Unrecognized:
		row.Text = e.RawLine
		row.Extra = e.RawTags
	default:
		// the USERNOTICE families all embed UserNotice
		if un, ok := userNoticeOf(ev); ok {
			row.Channel = un.Channel
			row.RoomID = un.RoomID
			row.MessageID = un.ID
			row.UserID = un.Sender.ID
			row.Login = un.Sender.Login
			row.DisplayName = un.Sender.DisplayName
			row.Text = un.Text
			row.Badges = un.Sender.Badges
			row.Color = un.Sender.Color
			row.Extra = un.SystemMsg
			if !un.SentAt.IsZero() {
				row.SentAt = un.SentAt
			}
		}
	}
	return row
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func userNoticeOf(ev irc.Event) (irc.UserNotice, bool) {
	switch e := ev.(type) {
	case irc.Sub:
		return e.UserNotice, true
	case irc.Resub:
		return e.UserNotice, true
	case irc.SubGift:
		return e.UserNotice, true
	case irc.AnonSubGift:
		return e.UserNotice, true
	case irc.SubMysteryGift:
		return e.UserNotice, true
	case irc.AnonSubMysteryGift:
		return e.UserNotice, true
	case irc.GiftPaidUpgrade:
		return e.UserNotice, true
	case irc.AnonGiftPaidUpgrade:
		return e.UserNotice, true
	case irc.PrimePaidUpgrade:
		return e.UserNotice, true
	case irc.Raid:
		return e.UserNotice, true
	case irc.Unraid:
		return e.UserNotice, true
	case irc.Ritual:
		return e.UserNotice, true
	case irc.BitsBadgeTier:
		return e.UserNotice, true
	case irc.Announcement:
		return e.UserNotice, true
	case irc.ViewerMilestone:
		return e.UserNotice, true
	case irc.CharityDonation:
		return e.UserNotice, true
	case irc.CommunityPayForward:
		return e.UserNotice, true
	case irc.StandardPayForward:
		return e.UserNotice, true
	case irc.ExtendSub:
		return e.UserNotice, true
	default:
		return irc.UserNotice{}, false
	}
}
