package irc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequiredField marks an assembly that cannot populate a mandatory
// field (e.g. a channel-scoped event with no channel). The decoder degrades
// the message to Unrecognized.
var ErrMissingRequiredField = errors.New("missing required field")

// senderUser builds the sender identity from the tag fields. The login
// parsed from the command prefix wins over the login tag.
func senderUser(fm FieldMap, prefixLogin string) User {
	login := prefixLogin
	if login == "" {
		login = fm.text(FieldLogin)
	}
	return User{
		ID:          fm.text(FieldUserID),
		Login:       login,
		DisplayName: fm.text(FieldDisplayName),
		Color:       fm.text(FieldColor),
		Badges:      fm.badgeList(FieldBadges),
		BadgeInfo:   fm.badgeList(FieldBadgeInfo),
		Type:        fm[FieldUserType].UserType(),
		Mod:         fm.boolean(FieldMod),
		Subscriber:  fm.boolean(FieldSubscriber),
		Turbo:       fm.boolean(FieldTurbo),
		VIP:         fm.boolean(FieldVIP),
	}
}

func userNotice(fm FieldMap, cf commandFields) UserNotice {
	return UserNotice{
		ID:        fm.text(FieldID),
		Channel:   cf.Channel,
		RoomID:    fm.text(FieldRoomID),
		Sender:    senderUser(fm, cf.Sender),
		SystemMsg: fm.text(FieldSystemMsg),
		Text:      cf.Text,
		SentAt:    fm.timestamp(FieldSentTS),
	}
}

func replyParent(fm FieldMap) *ReplyParent {
	if !fm.has(FieldReplyParentMsgID) {
		return nil
	}
	return &ReplyParent{
		MsgID:           fm.text(FieldReplyParentMsgID),
		UserID:          fm.text(FieldReplyParentUserID),
		UserLogin:       fm.text(FieldReplyParentUserLogin),
		DisplayName:     fm.text(FieldReplyParentDisplayName),
		Body:            fm.text(FieldReplyParentMsgBody),
		ThreadMsgID:     fm.text(FieldReplyThreadParentMsgID),
		ThreadUserLogin: fm.text(FieldReplyThreadParentUserLogin),
	}
}

func optBool(fm FieldMap, f Field) *bool {
	if !fm.has(f) {
		return nil
	}
	v := fm.boolean(f)
	return &v
}

func optInt(fm FieldMap, f Field) *int64 {
	if !fm.has(f) {
		return nil
	}
	v := fm.integer(f)
	return &v
}

func subGift(fm FieldMap, cf commandFields) SubGift {
	return SubGift{
		UserNotice:           userNotice(fm, cf),
		Plan:                 fm[FieldSubPlan].SubPlan(),
		PlanName:             fm.text(FieldSubPlanName),
		Months:               fm.integer(FieldMonths),
		GiftMonths:           fm.integer(FieldGiftMonths),
		RecipientID:          fm.text(FieldRecipientID),
		RecipientLogin:       fm.text(FieldRecipientLogin),
		RecipientDisplayName: fm.text(FieldRecipientDisplayName),
		OriginID:             fm.text(FieldOriginID),
		FunString:            fm.text(FieldFunString),
		Theme:                fm[FieldGiftTheme].GiftTheme(),
		CommunityGiftID:      fm.text(FieldCommunityGiftID),
	}
}

func subMysteryGift(fm FieldMap, cf commandFields) SubMysteryGift {
	return SubMysteryGift{
		UserNotice:  userNotice(fm, cf),
		Plan:        fm[FieldSubPlan].SubPlan(),
		Count:       fm.integer(FieldMassGiftCount),
		SenderTotal: fm.integer(FieldSenderCount),
		OriginID:    fm.text(FieldOriginID),
		Theme:       fm[FieldGiftTheme].GiftTheme(),
	}
}

// assemble projects the merged tag and command fields onto the struct shape
// for the resolved kind. Command fields win on collision; fields not
// declared for the kind are dropped; optional fields default to their zero
// values. wireID is the raw msg-id, needed by the kinds folded from on/off
// notice pairs.
func assemble(kind Kind, fm FieldMap, cf commandFields, wireID string) (Event, error) {
	if kind != KindWhisper && cf.Channel == "" {
		return nil, fmt.Errorf("%w: channel for %s", ErrMissingRequiredField, kind)
	}
	modeOn := wireID != "" && !strings.HasSuffix(wireID, "_off")

	switch kind {
	case KindMessage, KindChatAction:
		return Message{
			ID:               fm.text(FieldID),
			Channel:          cf.Channel,
			RoomID:           fm.text(FieldRoomID),
			Sender:           senderUser(fm, cf.Sender),
			Text:             cf.Text,
			Action:           cf.Action,
			Highlighted:      wireID == "highlighted-message",
			FirstMessage:     fm.boolean(FieldFirstMsg),
			ReturningChatter: fm.boolean(FieldReturningChatter),
			Bits:             fm.integer(FieldBits),
			Emotes:           fm.emoteList(FieldEmotes),
			SentAt:           fm.timestamp(FieldSentTS),
			Nonce:            fm.text(FieldClientNonce),
			CustomRewardID:   fm.text(FieldCustomRewardID),
			Reply:            replyParent(fm),
		}, nil

	case KindWhisper:
		return Whisper{
			ID:       fm.text(FieldMessageID),
			ThreadID: fm.text(FieldThreadID),
			From:     senderUser(fm, cf.Sender),
			Target:   cf.Target,
			Text:     cf.Text,
			Emotes:   fm.emoteList(FieldEmotes),
		}, nil

	case KindBan:
		duration := DurationPermanent
		if fm.has(FieldBanDuration) {
			duration = BanDuration(fm.integer(FieldBanDuration))
		}
		return Ban{
			Channel:      cf.Channel,
			RoomID:       fm.text(FieldRoomID),
			TargetLogin:  cf.Target,
			TargetUserID: fm.text(FieldTargetUserID),
			Duration:     duration,
			SentAt:       fm.timestamp(FieldSentTS),
		}, nil

	case KindRoomState:
		return RoomState{
			Channel:       cf.Channel,
			RoomID:        fm.text(FieldRoomID),
			EmoteOnly:     optBool(fm, FieldEmoteOnly),
			UniqueOnly:    optBool(fm, FieldUniqueMode),
			SubsOnly:      optBool(fm, FieldSubsOnly),
			FollowersOnly: optInt(fm, FieldFollowersOnly),
			Slow:          optInt(fm, FieldSlowSeconds),
		}, nil

	case KindSub:
		return Sub{
			UserNotice:         userNotice(fm, cf),
			Plan:               fm[FieldSubPlan].SubPlan(),
			PlanName:           fm.text(FieldSubPlanName),
			CumulativeMonths:   fm.integer(FieldCumulativeMonths),
			MultimonthDuration: fm.integer(FieldMultimonthDuration),
			MultimonthTenure:   fm.integer(FieldMultimonthTenure),
			WasGifted:          fm.boolean(FieldWasGifted),
		}, nil

	case KindResub:
		return Resub{
			UserNotice:        userNotice(fm, cf),
			Plan:              fm[FieldSubPlan].SubPlan(),
			PlanName:          fm.text(FieldSubPlanName),
			CumulativeMonths:  fm.integer(FieldCumulativeMonths),
			StreakMonths:      fm.integer(FieldStreakMonths),
			ShouldShareStreak: fm.boolean(FieldShouldShareStreak),
			WasGifted:         fm.boolean(FieldWasGifted),
			AnonGift:          fm.boolean(FieldAnonGift),
			GifterLogin:       fm.text(FieldGifterLogin),
			GifterName:        fm.text(FieldGifterName),
		}, nil

	case KindSubGift:
		return subGift(fm, cf), nil
	case KindAnonSubGift:
		return AnonSubGift{subGift(fm, cf)}, nil
	case KindSubMysteryGift:
		return subMysteryGift(fm, cf), nil
	case KindAnonSubMysteryGift:
		return AnonSubMysteryGift{subMysteryGift(fm, cf)}, nil

	case KindGiftPaidUpgrade:
		return GiftPaidUpgrade{
			UserNotice:     userNotice(fm, cf),
			GifterLogin:    fm.text(FieldSenderLogin),
			GifterName:     fm.text(FieldSenderName),
			PromoName:      fm.text(FieldPromoName),
			PromoGiftTotal: fm.integer(FieldPromoGiftTotal),
		}, nil

	case KindAnonGiftPaidUpgrade:
		return AnonGiftPaidUpgrade{
			UserNotice:     userNotice(fm, cf),
			PromoName:      fm.text(FieldPromoName),
			PromoGiftTotal: fm.integer(FieldPromoGiftTotal),
		}, nil

	case KindPrimePaidUpgrade:
		return PrimePaidUpgrade{
			UserNotice: userNotice(fm, cf),
			Plan:       fm[FieldSubPlan].SubPlan(),
		}, nil

	case KindRaid:
		return Raid{
			UserNotice:      userNotice(fm, cf),
			ViewerCount:     fm.integer(FieldViewerCount),
			ProfileImageURL: fm.text(FieldProfileImageURL),
		}, nil

	case KindUnraid:
		return Unraid{userNotice(fm, cf)}, nil

	case KindRitual:
		return Ritual{
			UserNotice: userNotice(fm, cf),
			Name:       fm.text(FieldRitualName),
		}, nil

	case KindBitsBadgeTier:
		return BitsBadgeTier{
			UserNotice: userNotice(fm, cf),
			Threshold:  fm.integer(FieldThreshold),
		}, nil

	case KindAnnouncement:
		return Announcement{
			UserNotice: userNotice(fm, cf),
			Color:      fm.text(FieldAnnouncementColor),
		}, nil

	case KindViewerMilestone:
		return ViewerMilestone{
			UserNotice:  userNotice(fm, cf),
			Category:    fm[FieldMilestoneCategory].MilestoneCategory(),
			MilestoneID: fm.text(FieldMilestoneID),
			Value:       fm.integer(FieldMilestoneValue),
			Reward:      fm.integer(FieldChannelPointsReward),
		}, nil

	case KindCharityDonation:
		return CharityDonation{
			UserNotice:  userNotice(fm, cf),
			CharityName: fm.text(FieldCharityName),
			Amount:      fm.integer(FieldDonationAmount),
			Exponent:    fm.integer(FieldDonationExponent),
			Currency:    fm.text(FieldDonationCurrency),
		}, nil

	case KindCommunityPayForward:
		return CommunityPayForward{
			UserNotice:             userNotice(fm, cf),
			PriorGifterAnonymous:   fm.boolean(FieldPriorGifterAnon),
			PriorGifterID:          fm.text(FieldPriorGifterID),
			PriorGifterLogin:       fm.text(FieldPriorGifterLogin),
			PriorGifterDisplayName: fm.text(FieldPriorGifterDisplayName),
		}, nil

	case KindStandardPayForward:
		return StandardPayForward{
			UserNotice:             userNotice(fm, cf),
			PriorGifterAnonymous:   fm.boolean(FieldPriorGifterAnon),
			PriorGifterID:          fm.text(FieldPriorGifterID),
			PriorGifterLogin:       fm.text(FieldPriorGifterLogin),
			PriorGifterDisplayName: fm.text(FieldPriorGifterDisplayName),
			RecipientID:            fm.text(FieldRecipientID),
			RecipientLogin:         fm.text(FieldRecipientLogin),
			RecipientDisplayName:   fm.text(FieldRecipientDisplayName),
		}, nil

	case KindExtendSub:
		return ExtendSub{
			UserNotice:      userNotice(fm, cf),
			Plan:            fm[FieldSubPlan].SubPlan(),
			Months:          fm.integer(FieldMonths),
			BenefitEndMonth: fm.integer(FieldSubBenefitEndMonth),
		}, nil

	case KindEmoteMode:
		return EmoteMode{Channel: cf.Channel, On: modeOn}, nil
	case KindFollowersMode:
		return FollowersMode{
			Channel: cf.Channel,
			On:      modeOn,
			NoDelay: wireID == "followers_on_zero",
		}, nil
	case KindUniqueMode:
		return UniqueMode{Channel: cf.Channel, On: modeOn}, nil
	case KindSlowMode:
		return SlowMode{Channel: cf.Channel, On: modeOn}, nil
	case KindSubsMode:
		return SubsMode{Channel: cf.Channel, On: modeOn}, nil

	default:
		// The remaining kinds are all NOTICE families sharing one shape.
		if !cf.HasText {
			return nil, fmt.Errorf("%w: notice text for %s", ErrMissingRequiredField, kind)
		}
		return Notice{kind: kind, Channel: cf.Channel, WireID: wireID, Text: cf.Text}, nil
	}
}
