package irc

import (
	"errors"
	"testing"
	"time"
)

func decodeWith(t *testing.T, tagString, line string) (Event, *diagRecorder) {
	t.Helper()
	rec := &diagRecorder{}
	dec := &Decoder{OnDiagnostic: rec.record}
	ev, err := dec.Decode(tagString, line)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if ev == nil {
		t.Fatal("Decode returned nil event")
	}
	return ev, rec
}

func TestDecodeMessage(t *testing.T) {
	ev, rec := decodeWith(t,
		"@badge-info=subscriber/47;badges=broadcaster/1,subscriber/0;color=#5DA5D9;display-name=ShyRyan;emotes=;first-msg=0;id=b34ccfc7-4977-403a-8a94-33c6bac34fb8;mod=0;room-id=713936733;subscriber=1;tmi-sent-ts=1642696567751;turbo=0;user-id=713936733;user-type=",
		"shyryan!shyryan@shyryan.tmi.twitch.tv PRIVMSG #shyryan :Hello World")

	if len(rec.diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", rec.diags)
	}
	msg, ok := ev.(Message)
	if !ok {
		t.Fatalf("event = %T, want Message", ev)
	}
	if msg.Kind() != KindMessage {
		t.Errorf("kind = %v, want %v", msg.Kind(), KindMessage)
	}
	if msg.Channel != "#shyryan" || msg.Text != "Hello World" {
		t.Errorf("channel/text = %q/%q", msg.Channel, msg.Text)
	}
	if msg.Sender.Login != "shyryan" || msg.Sender.DisplayName != "ShyRyan" {
		t.Errorf("sender = %+v", msg.Sender)
	}
	if !msg.Sender.Subscriber || msg.Sender.Mod {
		t.Errorf("sender flags = %+v", msg.Sender)
	}
	if msg.ID != "b34ccfc7-4977-403a-8a94-33c6bac34fb8" {
		t.Errorf("id = %q", msg.ID)
	}
	if want := time.UnixMilli(1642696567751).UTC(); !msg.SentAt.Equal(want) {
		t.Errorf("sent_at = %v, want %v", msg.SentAt, want)
	}
	if len(msg.Sender.Badges) != 2 || msg.Sender.Badges[0].Name != "broadcaster" {
		t.Errorf("badges = %v", msg.Sender.Badges)
	}
	if msg.Emotes == nil || len(msg.Emotes) != 0 {
		t.Errorf("emotes = %v, want empty list for empty tag", msg.Emotes)
	}
}

func TestDecodeChatAction(t *testing.T) {
	ev, _ := decodeWith(t, "@display-name=Ronni",
		"ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :\x01ACTION waves to everyone\x01")
	msg, ok := ev.(Message)
	if !ok {
		t.Fatalf("event = %T, want Message", ev)
	}
	if msg.Kind() != KindChatAction {
		t.Errorf("kind = %v, want %v", msg.Kind(), KindChatAction)
	}
	if msg.Text != "waves to everyone" {
		t.Errorf("text = %q, framing should be stripped", msg.Text)
	}
}

func TestDecodeHighlightedMessage(t *testing.T) {
	ev, _ := decodeWith(t, "@msg-id=highlighted-message;display-name=Ronni",
		"ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :check this out")
	msg, ok := ev.(Message)
	if !ok {
		t.Fatalf("event = %T, want Message", ev)
	}
	if msg.Kind() != KindMessage || !msg.Highlighted {
		t.Errorf("kind=%v highlighted=%v, want Message with highlighted flag", msg.Kind(), msg.Highlighted)
	}
}

func TestDecodeWhisper(t *testing.T) {
	ev, _ := decodeWith(t, "@badges=;color=#00FF7F;display-name=PetsGoMoo;message-id=306;thread-id=12345_67890;user-id=87654321",
		"petsgomoo!petsgomoo@petsgomoo.tmi.twitch.tv WHISPER foo :hello")
	w, ok := ev.(Whisper)
	if !ok {
		t.Fatalf("event = %T, want Whisper", ev)
	}
	if w.From.Login != "petsgomoo" || w.Target != "foo" || w.Text != "hello" {
		t.Errorf("whisper = %+v", w)
	}
	if w.ID != "306" || w.ThreadID != "12345_67890" {
		t.Errorf("ids = %q/%q", w.ID, w.ThreadID)
	}
}

func TestDecodeTimeout(t *testing.T) {
	ev, _ := decodeWith(t, "@ban-duration=600;room-id=11148817;target-user-id=87654321;tmi-sent-ts=1642719320727",
		"tmi.twitch.tv CLEARCHAT #dallas :ronni")
	ban, ok := ev.(Ban)
	if !ok {
		t.Fatalf("event = %T, want Ban", ev)
	}
	if ban.TargetLogin != "ronni" || ban.Channel != "#dallas" {
		t.Errorf("ban = %+v", ban)
	}
	if ban.Duration != 600 || ban.Duration.Permanent() {
		t.Errorf("duration = %v, want 600s timeout", ban.Duration)
	}
	if ban.Duration.Seconds() != 10*time.Minute {
		t.Errorf("seconds = %v", ban.Duration.Seconds())
	}
}

func TestDecodePermanentBan(t *testing.T) {
	// no ban-duration tag means permanent, distinct from zero and absent
	ev, _ := decodeWith(t, "@room-id=11148817;target-user-id=87654321",
		"tmi.twitch.tv CLEARCHAT #dallas :ronni")
	ban, ok := ev.(Ban)
	if !ok {
		t.Fatalf("event = %T, want Ban", ev)
	}
	if ban.Duration != DurationPermanent || !ban.Duration.Permanent() {
		t.Errorf("duration = %v, want permanent sentinel", ban.Duration)
	}
}

func TestDecodeZeroBanDurationIsNotPermanent(t *testing.T) {
	ev, _ := decodeWith(t, "@ban-duration=0;room-id=1", "tmi.twitch.tv CLEARCHAT #dallas :ronni")
	ban := ev.(Ban)
	if ban.Duration.Permanent() {
		t.Error("explicit zero duration must not read as permanent")
	}
}

func TestDecodeRoomState(t *testing.T) {
	ev, _ := decodeWith(t, "@emote-only=0;followers-only=-1;r9k=0;room-id=11148817;slow=0;subs-only=0",
		"tmi.twitch.tv ROOMSTATE #dallas")
	rs, ok := ev.(RoomState)
	if !ok {
		t.Fatalf("event = %T, want RoomState", ev)
	}
	if rs.EmoteOnly == nil || *rs.EmoteOnly {
		t.Errorf("emote_only = %v", rs.EmoteOnly)
	}
	if rs.FollowersOnly == nil || *rs.FollowersOnly != -1 {
		t.Errorf("followers_only = %v", rs.FollowersOnly)
	}
	if rs.Slow == nil || *rs.Slow != 0 {
		t.Errorf("slow = %v", rs.Slow)
	}
}

func TestDecodeRoomStatePartialUpdate(t *testing.T) {
	ev, _ := decodeWith(t, "@room-id=11148817;slow=10", "tmi.twitch.tv ROOMSTATE #dallas")
	rs := ev.(RoomState)
	if rs.Slow == nil || *rs.Slow != 10 {
		t.Errorf("slow = %v, want 10", rs.Slow)
	}
	if rs.EmoteOnly != nil || rs.SubsOnly != nil || rs.FollowersOnly != nil {
		t.Errorf("absent settings must stay nil: %+v", rs)
	}
}

func TestDecodeEmoteModeNotice(t *testing.T) {
	on, _ := decodeWith(t, "@msg-id=emote_only_on",
		"tmi.twitch.tv NOTICE #dallas :This room is now in emote-only mode.")
	em, ok := on.(EmoteMode)
	if !ok {
		t.Fatalf("event = %T, want EmoteMode", on)
	}
	if em.Kind() != KindEmoteMode || !em.On {
		t.Errorf("emote mode = %+v", em)
	}

	off, _ := decodeWith(t, "@msg-id=emote_only_off",
		"tmi.twitch.tv NOTICE #dallas :This room is no longer in emote-only mode.")
	em = off.(EmoteMode)
	if em.Kind() != KindEmoteMode || em.On {
		t.Errorf("emote mode = %+v, want same kind with On=false", em)
	}
}

func TestDecodeFollowersModeVariants(t *testing.T) {
	zero, _ := decodeWith(t, "@msg-id=followers_on_zero",
		"tmi.twitch.tv NOTICE #dallas :This room is now in followers-only mode.")
	fmode := zero.(FollowersMode)
	if !fmode.On || !fmode.NoDelay {
		t.Errorf("followers_on_zero = %+v", fmode)
	}

	off, _ := decodeWith(t, "@msg-id=followers_off",
		"tmi.twitch.tv NOTICE #dallas :This room is no longer in followers-only mode.")
	fmode = off.(FollowersMode)
	if fmode.On || fmode.NoDelay {
		t.Errorf("followers_off = %+v", fmode)
	}
}

func TestDecodeModerationNotice(t *testing.T) {
	ev, _ := decodeWith(t, "@msg-id=already_banned",
		"tmi.twitch.tv NOTICE #dallas :ronni is already banned in this channel.")
	n, ok := ev.(Notice)
	if !ok {
		t.Fatalf("event = %T, want Notice", ev)
	}
	if n.Kind() != KindAlreadyBanned {
		t.Errorf("kind = %v, want %v", n.Kind(), KindAlreadyBanned)
	}
	if n.WireID != "already_banned" || n.Channel != "#dallas" {
		t.Errorf("notice = %+v", n)
	}
}

func TestDecodeResub(t *testing.T) {
	ev, rec := decodeWith(t,
		`@badge-info=subscriber/6;badges=subscriber/6;color=#008000;display-name=Ronni;id=db25007f-7a18-43eb-9379-80131e44d633;login=ronni;mod=0;msg-id=resub;msg-param-cumulative-months=6;msg-param-streak-months=2;msg-param-should-share-streak=1;msg-param-sub-plan=Prime;msg-param-sub-plan-name=Prime;room-id=12345678;subscriber=1;system-msg=ronni\shas\ssubscribed\sfor\s6\smonths!;tmi-sent-ts=1507246572675;user-id=87654321`,
		"tmi.twitch.tv USERNOTICE #dallas :Great stream -- keep it up!")

	if len(rec.diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", rec.diags)
	}
	resub, ok := ev.(Resub)
	if !ok {
		t.Fatalf("event = %T, want Resub", ev)
	}
	if resub.Plan != SubPlanPrime || resub.CumulativeMonths != 6 || resub.StreakMonths != 2 {
		t.Errorf("resub = %+v", resub)
	}
	if !resub.ShouldShareStreak {
		t.Error("should_share_streak not set")
	}
	if resub.SystemMsg != "ronni has subscribed for 6 months!" {
		t.Errorf("system_msg = %q", resub.SystemMsg)
	}
	if resub.Text != "Great stream -- keep it up!" {
		t.Errorf("text = %q", resub.Text)
	}
	if resub.Sender.Login != "ronni" {
		t.Errorf("sender login = %q", resub.Sender.Login)
	}
}

func TestDecodeRaid(t *testing.T) {
	ev, _ := decodeWith(t,
		"@badge-info=;badges=turbo/1;color=#9ACD32;display-name=TestChannel;id=3d830f12-795c-447d-af3c-ea05e40fbddb;login=testchannel;msg-id=raid;msg-param-displayName=TestChannel;msg-param-login=testchannel;msg-param-viewerCount=15;room-id=56379257;system-msg=15\\sraiders\\sfrom\\sTestChannel\\shave\\sjoined!;tmi-sent-ts=1507246572675;user-id=123456",
		"tmi.twitch.tv USERNOTICE #othertestchannel")
	raid, ok := ev.(Raid)
	if !ok {
		t.Fatalf("event = %T, want Raid", ev)
	}
	if raid.ViewerCount != 15 {
		t.Errorf("viewer_count = %d, want 15", raid.ViewerCount)
	}
	if raid.Sender.Login != "testchannel" || raid.Sender.DisplayName != "TestChannel" {
		t.Errorf("sender = %+v", raid.Sender)
	}
	if raid.Text != "" {
		t.Errorf("raid carries no user text, got %q", raid.Text)
	}
}

func TestDecodeSubMysteryGift(t *testing.T) {
	ev, _ := decodeWith(t,
		"@badges=sub-gifter/5;display-name=Gifter;login=gifter;msg-id=submysterygift;msg-param-mass-gift-count=5;msg-param-origin-id=abc;msg-param-sender-count=25;msg-param-sub-plan=1000;room-id=1;tmi-sent-ts=1507246572675;user-id=2",
		"tmi.twitch.tv USERNOTICE #dallas")
	gift, ok := ev.(SubMysteryGift)
	if !ok {
		t.Fatalf("event = %T, want SubMysteryGift", ev)
	}
	if gift.Count != 5 || gift.SenderTotal != 25 || gift.Plan != SubPlanTier1 {
		t.Errorf("gift = %+v", gift)
	}
}

func TestDecodeAnonSubGiftDistinctKind(t *testing.T) {
	ev, _ := decodeWith(t,
		"@login=ananonymousgifter;msg-id=anonsubgift;msg-param-months=1;msg-param-recipient-user-name=ronni;msg-param-sub-plan=1000;room-id=1",
		"tmi.twitch.tv USERNOTICE #dallas")
	if ev.Kind() != KindAnonSubGift {
		t.Errorf("kind = %v, want %v", ev.Kind(), KindAnonSubGift)
	}
	gift, ok := ev.(AnonSubGift)
	if !ok {
		t.Fatalf("event = %T, want AnonSubGift", ev)
	}
	if gift.RecipientLogin != "ronni" {
		t.Errorf("recipient = %q", gift.RecipientLogin)
	}
}

func TestDecodeViewerMilestone(t *testing.T) {
	ev, _ := decodeWith(t,
		"@display-name=Viewer;login=viewer;msg-id=viewermilestone;msg-param-category=watch-streak;msg-param-copoReward=450;msg-param-id=xxx;msg-param-value=10;room-id=1",
		"tmi.twitch.tv USERNOTICE #dallas :so close to double digits!")
	m, ok := ev.(ViewerMilestone)
	if !ok {
		t.Fatalf("event = %T, want ViewerMilestone", ev)
	}
	if m.Category != MilestoneWatchStreak || m.Value != 10 || m.Reward != 450 {
		t.Errorf("milestone = %+v", m)
	}
}

func TestDecodeUnknownMsgID(t *testing.T) {
	ev, rec := decodeWith(t, "@msg-id=some_future_notice",
		"tmi.twitch.tv NOTICE #dallas :something new")
	un, ok := ev.(Unrecognized)
	if !ok {
		t.Fatalf("event = %T, want Unrecognized", ev)
	}
	if un.Kind() != KindUnrecognized {
		t.Errorf("kind = %v", un.Kind())
	}
	if !errors.Is(un.Reason, ErrUnknownEventID) {
		t.Errorf("reason = %v, want ErrUnknownEventID", un.Reason)
	}
	if len(rec.diags) != 1 || rec.diags[0].Kind != DiagUnknownEventID {
		t.Errorf("diagnostics = %v, want one unknown-event-id", rec.diags)
	}
	if un.RawLine == "" {
		t.Error("raw line not preserved")
	}
}

func TestDecodeUnknownCommand(t *testing.T) {
	ev, rec := decodeWith(t, "", "tmi.twitch.tv GLOBALUSERSTATE")
	if _, ok := ev.(Unrecognized); !ok {
		t.Fatalf("event = %T, want Unrecognized", ev)
	}
	if len(rec.diags) != 1 || rec.diags[0].Kind != DiagUnknownEventID {
		t.Errorf("diagnostics = %v", rec.diags)
	}
}

func TestDecodeMalformedArgsFallsBack(t *testing.T) {
	// PRIVMSG without the ' :' body separator cannot be classified
	ev, _ := decodeWith(t, "@display-name=Ronni",
		"ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas")
	un, ok := ev.(Unrecognized)
	if !ok {
		t.Fatalf("event = %T, want Unrecognized", ev)
	}
	if !errors.Is(un.Reason, ErrMalformedCommandArgs) {
		t.Errorf("reason = %v, want ErrMalformedCommandArgs", un.Reason)
	}
}

func TestDecodeMalformedTagStringHardFailure(t *testing.T) {
	dec := &Decoder{OnDiagnostic: func(Diagnostic) {}}
	_, err := dec.Decode("@=broken", "ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :hi")
	if !errors.Is(err, ErrMalformedTagString) {
		t.Errorf("err = %v, want ErrMalformedTagString", err)
	}
}

func TestDecodeReplyParent(t *testing.T) {
	ev, _ := decodeWith(t,
		`@display-name=Ronni;reply-parent-display-name=Dallas;reply-parent-msg-body=original\smessage;reply-parent-msg-id=abc-123;reply-parent-user-id=1;reply-parent-user-login=dallas`,
		"ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :replying")
	msg := ev.(Message)
	if msg.Reply == nil {
		t.Fatal("reply parent not populated")
	}
	if msg.Reply.MsgID != "abc-123" || msg.Reply.Body != "original message" {
		t.Errorf("reply = %+v", msg.Reply)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	tags := "@badges=broadcaster/1;color=#5DA5D9;display-name=ShyRyan"
	line := "shyryan!shyryan@shyryan.tmi.twitch.tv PRIVMSG #shyryan :Hello World"
	first, _ := decodeWith(t, tags, line)
	second, _ := decodeWith(t, tags, line)
	m1, m2 := first.(Message), second.(Message)
	if m1.Channel != m2.Channel || m1.Text != m2.Text || m1.Sender.Login != m2.Sender.Login {
		t.Error("repeated decode of identical input differs")
	}
}
