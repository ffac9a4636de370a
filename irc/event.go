package irc

import "time"

// Event is the closed union of normalized chat events. Every decoded line
// yields exactly one Event; switch on Kind() with a default arm.
type Event interface {
	Kind() Kind
}

// User identifies the sender of a message-bearing event, built from the
// identity tags of the line.
type User struct {
	ID          string
	Login       string
	DisplayName string
	Color       string
	Badges      []Badge
	BadgeInfo   []Badge
	Type        UserType
	Mod         bool
	Subscriber  bool
	Turbo       bool
	VIP         bool
}

// ReplyParent carries the reply-threading tags of a message that replies to
// another.
type ReplyParent struct {
	MsgID           string
	UserID          string
	UserLogin       string
	DisplayName     string
	Body            string
	ThreadMsgID     string
	ThreadUserLogin string
}

// Message is a channel chat message. Action marks CTCP ACTION ("/me")
// framing, which shifts the kind to ChatAction; Highlighted marks the
// channel-points highlighted variant, folded back into Message.
type Message struct {
	ID               string
	Channel          string
	RoomID           string
	Sender           User
	Text             string
	Action           bool
	Highlighted      bool
	FirstMessage     bool
	ReturningChatter bool
	Bits             int64
	Emotes           []Emote
	SentAt           time.Time
	Nonce            string
	CustomRewardID   string
	Reply            *ReplyParent
}

func (m Message) Kind() Kind {
	if m.Action {
		return KindChatAction
	}
	return KindMessage
}

// Whisper is a direct message to the connected user.
type Whisper struct {
	ID       string
	ThreadID string
	From     User
	Target   string
	Text     string
	Emotes   []Emote
}

func (Whisper) Kind() Kind { return KindWhisper }

// BanDuration is a timeout length in seconds. DurationPermanent marks a
// permanent ban, distinct from zero and from a missing tag.
type BanDuration int64

const DurationPermanent BanDuration = -1

// Seconds returns the duration as a time.Duration; permanent bans return 0.
func (d BanDuration) Seconds() time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(d) * time.Second
}

// Permanent reports whether this is a permanent ban.
func (d BanDuration) Permanent() bool { return d == DurationPermanent }

// Ban is a CLEARCHAT event: a timeout, a permanent ban, or (with an empty
// TargetLogin) a full chat clear.
type Ban struct {
	Channel      string
	RoomID       string
	TargetLogin  string
	TargetUserID string
	Duration     BanDuration
	SentAt       time.Time
}

func (Ban) Kind() Kind { return KindBan }

// RoomState reports channel mode settings. Twitch sends partial updates, so
// every field is optional: nil means the setting was not part of this line.
// FollowersOnly is in minutes with -1 meaning off; Slow is in seconds with 0
// meaning off.
type RoomState struct {
	Channel       string
	RoomID        string
	EmoteOnly     *bool
	UniqueOnly    *bool
	SubsOnly      *bool
	FollowersOnly *int64
	Slow          *int64
}

func (RoomState) Kind() Kind { return KindRoomState }

// UserNotice carries the fields shared by every USERNOTICE family.
type UserNotice struct {
	ID        string
	Channel   string
	RoomID    string
	Sender    User
	SystemMsg string
	Text      string // optional user-supplied body ("" when absent)
	SentAt    time.Time
}

// Sub is a first-time subscription.
type Sub struct {
	UserNotice
	Plan               SubPlan
	PlanName           string
	CumulativeMonths   int64
	MultimonthDuration int64
	MultimonthTenure   int64
	WasGifted          bool
}

func (Sub) Kind() Kind { return KindSub }

// Resub is a subscription renewal announcement.
type Resub struct {
	UserNotice
	Plan              SubPlan
	PlanName          string
	CumulativeMonths  int64
	StreakMonths      int64
	ShouldShareStreak bool
	WasGifted         bool
	AnonGift          bool
	GifterLogin       string
	GifterName        string
}

func (Resub) Kind() Kind { return KindResub }

// SubGift is a subscription gifted to a named recipient.
type SubGift struct {
	UserNotice
	Plan                 SubPlan
	PlanName             string
	Months               int64
	GiftMonths           int64
	RecipientID          string
	RecipientLogin       string
	RecipientDisplayName string
	OriginID             string
	FunString            string
	Theme                GiftTheme
	CommunityGiftID      string
}

func (SubGift) Kind() Kind { return KindSubGift }

// AnonSubGift is a SubGift from a hidden gifter.
type AnonSubGift struct{ SubGift }

func (AnonSubGift) Kind() Kind { return KindAnonSubGift }

// SubMysteryGift announces a batch of random gifts to the community.
type SubMysteryGift struct {
	UserNotice
	Plan        SubPlan
	Count       int64
	SenderTotal int64
	OriginID    string
	Theme       GiftTheme
}

func (SubMysteryGift) Kind() Kind { return KindSubMysteryGift }

// AnonSubMysteryGift is a SubMysteryGift from a hidden gifter.
type AnonSubMysteryGift struct{ SubMysteryGift }

func (AnonSubMysteryGift) Kind() Kind { return KindAnonSubMysteryGift }

// GiftPaidUpgrade is a recipient continuing a gifted sub with their own
// payment.
type GiftPaidUpgrade struct {
	UserNotice
	GifterLogin    string
	GifterName     string
	PromoName      string
	PromoGiftTotal int64
}

func (GiftPaidUpgrade) Kind() Kind { return KindGiftPaidUpgrade }

// AnonGiftPaidUpgrade is a GiftPaidUpgrade where the original gifter was
// anonymous.
type AnonGiftPaidUpgrade struct {
	UserNotice
	PromoName      string
	PromoGiftTotal int64
}

func (AnonGiftPaidUpgrade) Kind() Kind { return KindAnonGiftPaidUpgrade }

// PrimePaidUpgrade is a Prime subscriber converting to a paid plan.
type PrimePaidUpgrade struct {
	UserNotice
	Plan SubPlan
}

func (PrimePaidUpgrade) Kind() Kind { return KindPrimePaidUpgrade }

// Raid announces an incoming raid.
type Raid struct {
	UserNotice
	ViewerCount     int64
	ProfileImageURL string
}

func (Raid) Kind() Kind { return KindRaid }

// Unraid cancels a pending raid.
type Unraid struct{ UserNotice }

func (Unraid) Kind() Kind { return KindUnraid }

// Ritual is a first-message ritual (e.g. new_chatter).
type Ritual struct {
	UserNotice
	Name string
}

func (Ritual) Kind() Kind { return KindRitual }

// BitsBadgeTier announces a user earning a new bits badge.
type BitsBadgeTier struct {
	UserNotice
	Threshold int64
}

func (BitsBadgeTier) Kind() Kind { return KindBitsBadgeTier }

// Announcement is a /announce moderator message.
type Announcement struct {
	UserNotice
	Color string
}

func (Announcement) Kind() Kind { return KindAnnouncement }

// ViewerMilestone announces a viewer reaching a milestone (watch streaks).
type ViewerMilestone struct {
	UserNotice
	Category    MilestoneCategory
	MilestoneID string
	Value       int64
	Reward      int64 // channel points granted
}

func (ViewerMilestone) Kind() Kind { return KindViewerMilestone }

// CharityDonation announces a donation to a channel charity campaign.
// Amount is in the currency's minor unit scaled by 10^Exponent.
type CharityDonation struct {
	UserNotice
	CharityName string
	Amount      int64
	Exponent    int64
	Currency    string
}

func (CharityDonation) Kind() Kind { return KindCharityDonation }

// CommunityPayForward is a gift recipient gifting onward to the community.
type CommunityPayForward struct {
	UserNotice
	PriorGifterAnonymous   bool
	PriorGifterID          string
	PriorGifterLogin       string
	PriorGifterDisplayName string
}

func (CommunityPayForward) Kind() Kind { return KindCommunityPayForward }

// StandardPayForward is a gift recipient gifting onward to a named user.
type StandardPayForward struct {
	UserNotice
	PriorGifterAnonymous   bool
	PriorGifterID          string
	PriorGifterLogin       string
	PriorGifterDisplayName string
	RecipientID            string
	RecipientLogin         string
	RecipientDisplayName   string
}

func (StandardPayForward) Kind() Kind { return KindStandardPayForward }

// ExtendSub is a subscriber pre-paying to extend an existing sub.
type ExtendSub struct {
	UserNotice
	Plan            SubPlan
	Months          int64
	BenefitEndMonth int64
}

func (ExtendSub) Kind() Kind { return KindExtendSub }

// EmoteMode reports emote-only mode being toggled, folded from the
// emote_only_on / emote_only_off notice pair.
type EmoteMode struct {
	Channel string
	On      bool
}

func (EmoteMode) Kind() Kind { return KindEmoteMode }

// FollowersMode reports followers-only mode being toggled. NoDelay is set
// for the followers_on_zero variant (no minimum follow age).
type FollowersMode struct {
	Channel string
	On      bool
	NoDelay bool
}

func (FollowersMode) Kind() Kind { return KindFollowersMode }

// UniqueMode reports unique-chat (r9k) mode being toggled.
type UniqueMode struct {
	Channel string
	On      bool
}

func (UniqueMode) Kind() Kind { return KindUniqueMode }

// SlowMode reports slow mode being toggled.
type SlowMode struct {
	Channel string
	On      bool
}

func (SlowMode) Kind() Kind { return KindSlowMode }

// SubsMode reports subscribers-only mode being toggled.
type SubsMode struct {
	Channel string
	On      bool
}

func (SubsMode) Kind() Kind { return KindSubsMode }

// Notice is a server notice. The moderation-result and delivery-rejection
// kinds all share this shape; WireID preserves the raw msg-id for the
// catch-all KindNotice case.
type Notice struct {
	kind    Kind
	Channel string
	WireID  string
	Text    string
}

func (n Notice) Kind() Kind {
	if n.kind == KindUnrecognized {
		return KindNotice
	}
	return n.kind
}

// Unrecognized carries a line the pipeline could not classify, with the raw
// inputs preserved for logging or replay. Reason explains the failed
// classification.
type Unrecognized struct {
	RawTags string
	RawLine string
	Reason  error
}

func (Unrecognized) Kind() Kind { return KindUnrecognized }
