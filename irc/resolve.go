package irc

import (
	"errors"
	"fmt"
)

// ErrUnknownEventID marks a msg-id (or command keyword) no event kind
// resolves for. The decoder degrades the message to Unrecognized.
var ErrUnknownEventID = errors.New("unknown event id")

// msgIDKinds maps wire event identifiers (msg-id tag values) to canonical
// kinds. Several wire ids fold into a shared kind and the assembler
// synthesizes the distinguishing field from the id itself:
//
//   - emote_only_on / emote_only_off -> EmoteMode with On
//   - followers_on / followers_on_zero / followers_off -> FollowersMode
//   - r9k_on / r9k_off -> UniqueMode, slow_* -> SlowMode, subs_* -> SubsMode
//   - highlighted-message -> Message with Highlighted set
var msgIDKinds = map[string]Kind{
	"sub":                 KindSub,
	"resub":               KindResub,
	"subgift":             KindSubGift,
	"anonsubgift":         KindAnonSubGift,
	"submysterygift":      KindSubMysteryGift,
	"anonsubmysterygift":  KindAnonSubMysteryGift,
	"giftpaidupgrade":     KindGiftPaidUpgrade,
	"anongiftpaidupgrade": KindAnonGiftPaidUpgrade,
	"primepaidupgrade":    KindPrimePaidUpgrade,
	"raid":                KindRaid,
	"unraid":              KindUnraid,
	"ritual":              KindRitual,
	"bitsbadgetier":       KindBitsBadgeTier,
	"announcement":        KindAnnouncement,
	"viewermilestone":     KindViewerMilestone,
	"charitydonation":     KindCharityDonation,
	"communitypayforward": KindCommunityPayForward,
	"standardpayforward":  KindStandardPayForward,
	"extendsub":           KindExtendSub,

	"highlighted-message": KindMessage,

	"emote_only_on":     KindEmoteMode,
	"emote_only_off":    KindEmoteMode,
	"followers_on":      KindFollowersMode,
	"followers_on_zero": KindFollowersMode,
	"followers_off":     KindFollowersMode,
	"r9k_on":            KindUniqueMode,
	"r9k_off":           KindUniqueMode,
	"slow_on":           KindSlowMode,
	"slow_off":          KindSlowMode,
	"subs_on":           KindSubsMode,
	"subs_off":          KindSubsMode,

	"ban_success":         KindBanSuccess,
	"unban_success":       KindUnbanSuccess,
	"timeout_success":     KindTimeoutSuccess,
	"untimeout_success":   KindUntimeoutSuccess,
	"already_banned":      KindAlreadyBanned,
	"bad_ban_self":        KindBadBanSelf,
	"bad_ban_broadcaster": KindBadBanBroadcaster,
	"bad_ban_mod":         KindBadBanMod,
	"bad_unban_no_ban":    KindBadUnbanNoBan,

	"msg_banned":                         KindMsgBanned,
	"msg_bad_characters":                 KindMsgBadCharacters,
	"msg_channel_blocked":                KindMsgChannelBlocked,
	"msg_channel_suspended":              KindMsgChannelSuspended,
	"msg_duplicate":                      KindMsgDuplicate,
	"msg_emoteonly":                      KindMsgEmoteOnly,
	"msg_followersonly":                  KindMsgFollowersOnly,
	"msg_followersonly_followed":         KindMsgFollowersOnlyFollowed,
	"msg_followersonly_zero":             KindMsgFollowersOnlyZero,
	"msg_r9k":                            KindMsgUnique,
	"msg_ratelimit":                      KindMsgRateLimit,
	"msg_slowmode":                       KindMsgSlowMode,
	"msg_subsonly":                       KindMsgSubsOnly,
	"msg_timedout":                       KindMsgTimedOut,
	"msg_suspended":                      KindMsgSuspended,
	"msg_verified_email":                 KindMsgVerifiedEmail,
	"msg_requires_verified_phone_number": KindMsgRequiresVerifiedPhone,

	"no_permission":    KindNoPermission,
	"unrecognized_cmd": KindUnrecognizedCommand,
}

// commandKinds gives the default kind when a line carries no msg-id tag.
// USERNOTICE is deliberately absent: it always needs a msg-id.
var commandKinds = map[string]Kind{
	"PRIVMSG":   KindMessage,
	"WHISPER":   KindWhisper,
	"NOTICE":    KindNotice,
	"ROOMSTATE": KindRoomState,
	"CLEARCHAT": KindBan,
}

// resolveKind picks the canonical kind for a line. A present msg-id always
// wins; otherwise the command keyword selects its default.
func resolveKind(wireID, command string) (Kind, error) {
	if wireID != "" {
		if k, ok := msgIDKinds[wireID]; ok {
			return k, nil
		}
		return KindUnrecognized, fmt.Errorf("%w: msg-id %q", ErrUnknownEventID, wireID)
	}
	if k, ok := commandKinds[command]; ok {
		return k, nil
	}
	return KindUnrecognized, fmt.Errorf("%w: command %q", ErrUnknownEventID, command)
}
