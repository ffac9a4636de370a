package irc

// Kind identifies the canonical shape of a normalized event. The set is
// closed but grows over time as Twitch ships new notice families; consumers
// switching on Kind must keep a default arm.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindMessage
	KindChatAction
	KindWhisper
	KindBan
	KindRoomState
	KindNotice

	// USERNOTICE families.
	KindSub
	KindResub
	KindSubGift
	KindAnonSubGift
	KindSubMysteryGift
	KindAnonSubMysteryGift
	KindGiftPaidUpgrade
	KindAnonGiftPaidUpgrade
	KindPrimePaidUpgrade
	KindRaid
	KindUnraid
	KindRitual
	KindBitsBadgeTier
	KindAnnouncement
	KindViewerMilestone
	KindCharityDonation
	KindCommunityPayForward
	KindStandardPayForward
	KindExtendSub

	// Room mode changes, folded from the on/off NOTICE pairs.
	KindEmoteMode
	KindFollowersMode
	KindUniqueMode
	KindSlowMode
	KindSubsMode

	// Moderation command results.
	KindBanSuccess
	KindUnbanSuccess
	KindTimeoutSuccess
	KindUntimeoutSuccess
	KindAlreadyBanned
	KindBadBanSelf
	KindBadBanBroadcaster
	KindBadBanMod
	KindBadUnbanNoBan

	// Delivery rejections for the bot's own messages.
	KindMsgBanned
	KindMsgBadCharacters
	KindMsgChannelBlocked
	KindMsgChannelSuspended
	KindMsgDuplicate
	KindMsgEmoteOnly
	KindMsgFollowersOnly
	KindMsgFollowersOnlyFollowed
	KindMsgFollowersOnlyZero
	KindMsgUnique
	KindMsgRateLimit
	KindMsgSlowMode
	KindMsgSubsOnly
	KindMsgTimedOut
	KindMsgSuspended
	KindMsgVerifiedEmail
	KindMsgRequiresVerifiedPhone

	KindNoPermission
	KindUnrecognizedCommand
)

var kindNames = map[Kind]string{
	KindUnrecognized:             "unrecognized",
	KindMessage:                  "message",
	KindChatAction:               "chat_action",
	KindWhisper:                  "whisper",
	KindBan:                      "ban",
	KindRoomState:                "room_state",
	KindNotice:                   "notice",
	KindSub:                      "sub",
	KindResub:                    "resub",
	KindSubGift:                  "sub_gift",
	KindAnonSubGift:              "anon_sub_gift",
	KindSubMysteryGift:           "sub_mystery_gift",
	KindAnonSubMysteryGift:       "anon_sub_mystery_gift",
	KindGiftPaidUpgrade:          "gift_paid_upgrade",
	KindAnonGiftPaidUpgrade:      "anon_gift_paid_upgrade",
	KindPrimePaidUpgrade:         "prime_paid_upgrade",
	KindRaid:                     "raid",
	KindUnraid:                   "unraid",
	KindRitual:                   "ritual",
	KindBitsBadgeTier:            "bits_badge_tier",
	KindAnnouncement:             "announcement",
	KindViewerMilestone:          "viewer_milestone",
	KindCharityDonation:          "charity_donation",
	KindCommunityPayForward:      "community_pay_forward",
	KindStandardPayForward:       "standard_pay_forward",
	KindExtendSub:                "extend_sub",
	KindEmoteMode:                "emote_mode",
	KindFollowersMode:            "followers_mode",
	KindUniqueMode:               "unique_mode",
	KindSlowMode:                 "slow_mode",
	KindSubsMode:                 "subs_mode",
	KindBanSuccess:               "ban_success",
	KindUnbanSuccess:             "unban_success",
	KindTimeoutSuccess:           "timeout_success",
	KindUntimeoutSuccess:         "untimeout_success",
	KindAlreadyBanned:            "already_banned",
	KindBadBanSelf:               "bad_ban_self",
	KindBadBanBroadcaster:        "bad_ban_broadcaster",
	KindBadBanMod:                "bad_ban_mod",
	KindBadUnbanNoBan:            "bad_unban_no_ban",
	KindMsgBanned:                "msg_banned",
	KindMsgBadCharacters:         "msg_bad_characters",
	KindMsgChannelBlocked:        "msg_channel_blocked",
	KindMsgChannelSuspended:      "msg_channel_suspended",
	KindMsgDuplicate:             "msg_duplicate",
	KindMsgEmoteOnly:             "msg_emote_only",
	KindMsgFollowersOnly:         "msg_followers_only",
	KindMsgFollowersOnlyFollowed: "msg_followers_only_followed",
	KindMsgFollowersOnlyZero:     "msg_followers_only_zero",
	KindMsgUnique:                "msg_unique",
	KindMsgRateLimit:             "msg_rate_limit",
	KindMsgSlowMode:              "msg_slow_mode",
	KindMsgSubsOnly:              "msg_subs_only",
	KindMsgTimedOut:              "msg_timed_out",
	KindMsgSuspended:             "msg_suspended",
	KindMsgVerifiedEmail:         "msg_verified_email",
	KindMsgRequiresVerifiedPhone: "msg_requires_verified_phone",
	KindNoPermission:             "no_permission",
	KindUnrecognizedCommand:      "unrecognized_command",
}

// String returns a stable snake_case name, used for logging and metric
// labels.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unrecognized"
}
