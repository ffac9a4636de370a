package irc

// Field is a canonical field identifier. The vocabulary is closed: every
// supported raw tag key maps onto exactly one Field, and a few raw keys are
// synonyms for the same Field (e.g. login and msg-param-login).
type Field string

const (
	FieldBadgeInfo       Field = "badge_info"
	FieldBadges          Field = "badges"
	FieldSourceBadgeInfo Field = "source_badge_info"
	FieldSourceBadges    Field = "source_badges"
	FieldEmotes          Field = "emotes"

	FieldColor          Field = "color"
	FieldDisplayName    Field = "display_name"
	FieldLogin          Field = "login"
	FieldID             Field = "id"
	FieldUserID         Field = "user_id"
	FieldRoomID         Field = "room_id"
	FieldTargetUserID   Field = "target_user_id"
	FieldTargetMsgID    Field = "target_msg_id"
	FieldUserType       Field = "user_type"
	FieldFlags          Field = "flags"
	FieldClientNonce    Field = "client_nonce"
	FieldCustomRewardID Field = "custom_reward_id"
	FieldMsgID          Field = "msg_id"
	FieldMessageID      Field = "message_id"
	FieldThreadID       Field = "thread_id"
	FieldEmoteSets      Field = "emote_sets"
	FieldSystemMsg      Field = "system_msg"
	FieldSourceID       Field = "source_id"
	FieldSourceRoomID   Field = "source_room_id"

	FieldReplyParentMsgID           Field = "reply_parent_msg_id"
	FieldReplyParentUserID          Field = "reply_parent_user_id"
	FieldReplyParentUserLogin       Field = "reply_parent_user_login"
	FieldReplyParentDisplayName     Field = "reply_parent_display_name"
	FieldReplyParentMsgBody         Field = "reply_parent_msg_body"
	FieldReplyThreadParentMsgID     Field = "reply_thread_parent_msg_id"
	FieldReplyThreadParentUserLogin Field = "reply_thread_parent_user_login"

	FieldSubPlan                Field = "sub_plan"
	FieldSubPlanName            Field = "sub_plan_name"
	FieldRecipientID            Field = "recipient_id"
	FieldRecipientLogin         Field = "recipient_login"
	FieldRecipientDisplayName   Field = "recipient_display_name"
	FieldSenderLogin            Field = "sender_login"
	FieldSenderName             Field = "sender_name"
	FieldGifterLogin            Field = "gifter_login"
	FieldGifterName             Field = "gifter_name"
	FieldPriorGifterID          Field = "prior_gifter_id"
	FieldPriorGifterLogin       Field = "prior_gifter_login"
	FieldPriorGifterDisplayName Field = "prior_gifter_display_name"
	FieldRitualName             Field = "ritual_name"
	FieldPromoName              Field = "promo_name"
	FieldOriginID               Field = "origin_id"
	FieldFunString              Field = "fun_string"
	FieldAnnouncementColor      Field = "announcement_color"
	FieldGiftTheme              Field = "gift_theme"
	FieldMilestoneCategory      Field = "milestone_category"
	FieldMilestoneID            Field = "milestone_id"
	FieldGoalContributionType   Field = "goal_contribution_type"
	FieldGoalDescription        Field = "goal_description"
	FieldCharityName            Field = "charity_name"
	FieldDonationCurrency       Field = "donation_currency"
	FieldDomain                 Field = "domain"
	FieldTriggerType            Field = "trigger_type"
	FieldProfileImageURL        Field = "profile_image_url"
	FieldCommunityGiftID        Field = "community_gift_id"

	FieldBits                  Field = "bits"
	FieldBanDuration           Field = "ban_duration"
	FieldCumulativeMonths      Field = "cumulative_months"
	FieldMonths                Field = "months"
	FieldStreakMonths          Field = "streak_months"
	FieldGiftMonths            Field = "gift_months"
	FieldMultimonthDuration    Field = "multimonth_duration"
	FieldMultimonthTenure      Field = "multimonth_tenure"
	FieldSubBenefitEndMonth    Field = "sub_benefit_end_month"
	FieldViewerCount           Field = "viewer_count"
	FieldMassGiftCount         Field = "mass_gift_count"
	FieldSenderCount           Field = "sender_count"
	FieldPromoGiftTotal        Field = "promo_gift_total"
	FieldThreshold             Field = "threshold"
	FieldMilestoneValue        Field = "milestone_value"
	FieldChannelPointsReward   Field = "channel_points_reward"
	FieldGoalCurrent           Field = "goal_current_contributions"
	FieldGoalTarget            Field = "goal_target_contributions"
	FieldGoalUserContributions Field = "goal_user_contributions"
	FieldDonationAmount        Field = "donation_amount"
	FieldDonationExponent      Field = "donation_exponent"
	FieldMinCheerAmount        Field = "min_cheer_amount"
	FieldSelectedCount         Field = "selected_count"
	FieldTriggerAmount         Field = "trigger_amount"
	FieldSlowSeconds           Field = "slow_seconds"
	FieldFollowersOnly         Field = "followers_only"

	FieldMod               Field = "mod"
	FieldSubscriber        Field = "subscriber"
	FieldTurbo             Field = "turbo"
	FieldVIP               Field = "vip"
	FieldFirstMsg          Field = "first_msg"
	FieldReturningChatter  Field = "returning_chatter"
	FieldEmoteOnly         Field = "emote_only"
	FieldUniqueMode        Field = "unique_mode"
	FieldSubsOnly          Field = "subs_only"
	FieldShouldShareStreak Field = "should_share_streak"
	FieldSourceOnly        Field = "source_only"
	FieldWasGifted         Field = "was_gifted"
	FieldAnonGift          Field = "anon_gift"
	FieldPriorGifterAnon   Field = "prior_gifter_anonymous"

	FieldSentTS Field = "sent_ts"
)

type fieldSpec struct {
	field  Field
	coerce coerceFn
}

// fieldTable maps every supported raw tag key to its canonical field and
// coercion rule. Built once at init, read-only afterwards.
var fieldTable = map[string]fieldSpec{
	"badge-info":        {FieldBadgeInfo, coerceBadges},
	"badges":            {FieldBadges, coerceBadges},
	"source-badge-info": {FieldSourceBadgeInfo, coerceBadges},
	"source-badges":     {FieldSourceBadges, coerceBadges},
	"emotes":            {FieldEmotes, coerceEmotes},

	"color":            {FieldColor, coerceText},
	"display-name":     {FieldDisplayName, coerceText},
	"id":               {FieldID, coerceText},
	"user-id":          {FieldUserID, coerceText},
	"room-id":          {FieldRoomID, coerceText},
	"target-user-id":   {FieldTargetUserID, coerceText},
	"target-msg-id":    {FieldTargetMsgID, coerceText},
	"user-type":        {FieldUserType, coerceEnum(ValueUserType, userTypes)},
	"flags":            {FieldFlags, coerceText},
	"client-nonce":     {FieldClientNonce, coerceText},
	"custom-reward-id": {FieldCustomRewardID, coerceText},
	"msg-id":           {FieldMsgID, coerceText},
	"message-id":       {FieldMessageID, coerceText},
	"thread-id":        {FieldThreadID, coerceText},
	"emote-sets":       {FieldEmoteSets, coerceText},
	"system-msg":       {FieldSystemMsg, coerceText},
	"source-id":        {FieldSourceID, coerceText},
	"source-room-id":   {FieldSourceRoomID, coerceText},

	"reply-parent-msg-id":            {FieldReplyParentMsgID, coerceText},
	"reply-parent-user-id":           {FieldReplyParentUserID, coerceText},
	"reply-parent-user-login":        {FieldReplyParentUserLogin, coerceText},
	"reply-parent-display-name":      {FieldReplyParentDisplayName, coerceText},
	"reply-parent-msg-body":          {FieldReplyParentMsgBody, coerceText},
	"reply-thread-parent-msg-id":     {FieldReplyThreadParentMsgID, coerceText},
	"reply-thread-parent-user-login": {FieldReplyThreadParentUserLogin, coerceText},

	// login synonyms: USERNOTICE carries the sender login under either key
	// depending on the notice family.
	"login":           {FieldLogin, coerceText},
	"msg-param-login": {FieldLogin, coerceText},
	// same for the display name on raids.
	"msg-param-displayName": {FieldDisplayName, coerceText},

	"msg-param-sub-plan":                  {FieldSubPlan, coerceEnum(ValueSubPlan, subPlans)},
	"msg-param-sub-plan-name":             {FieldSubPlanName, coerceText},
	"msg-param-recipient-id":              {FieldRecipientID, coerceText},
	"msg-param-recipient-user-name":       {FieldRecipientLogin, coerceText},
	"msg-param-recipient-display-name":    {FieldRecipientDisplayName, coerceText},
	"msg-param-sender-login":              {FieldSenderLogin, coerceText},
	"msg-param-sender-name":               {FieldSenderName, coerceText},
	"msg-param-gifter-login":              {FieldGifterLogin, coerceText},
	"msg-param-gifter-name":               {FieldGifterName, coerceText},
	"msg-param-prior-gifter-id":           {FieldPriorGifterID, coerceText},
	"msg-param-prior-gifter-user-name":    {FieldPriorGifterLogin, coerceText},
	"msg-param-prior-gifter-display-name": {FieldPriorGifterDisplayName, coerceText},
	"msg-param-ritual-name":               {FieldRitualName, coerceText},
	"msg-param-promo-name":                {FieldPromoName, coerceText},
	"msg-param-origin-id":                 {FieldOriginID, coerceText},
	"msg-param-fun-string":                {FieldFunString, coerceText},
	"msg-param-color":                     {FieldAnnouncementColor, coerceText},
	"msg-param-gift-theme":                {FieldGiftTheme, coerceEnum(ValueGiftTheme, giftThemes)},
	"msg-param-category":                  {FieldMilestoneCategory, coerceEnum(ValueMilestoneCategory, milestoneCategories)},
	"msg-param-id":                        {FieldMilestoneID, coerceText},
	"msg-param-goal-contribution-type":    {FieldGoalContributionType, coerceEnum(ValueContributionType, contributionTypes)},
	"msg-param-goal-description":          {FieldGoalDescription, coerceText},
	"msg-param-charity-name":              {FieldCharityName, coerceText},
	"msg-param-donation-currency":         {FieldDonationCurrency, coerceText},
	"msg-param-domain":                    {FieldDomain, coerceText},
	"msg-param-trigger-type":              {FieldTriggerType, coerceText},
	"msg-param-profileImageURL":           {FieldProfileImageURL, coerceText},
	"msg-param-community-gift-id":         {FieldCommunityGiftID, coerceText},

	"bits":                                 {FieldBits, coerceInt},
	"ban-duration":                         {FieldBanDuration, coerceInt},
	"msg-param-cumulative-months":          {FieldCumulativeMonths, coerceInt},
	"msg-param-months":                     {FieldMonths, coerceInt},
	"msg-param-streak-months":              {FieldStreakMonths, coerceInt},
	"msg-param-gift-months":                {FieldGiftMonths, coerceInt},
	"msg-param-multimonth-duration":        {FieldMultimonthDuration, coerceInt},
	"msg-param-multimonth-tenure":          {FieldMultimonthTenure, coerceInt},
	"msg-param-sub-benefit-end-month":      {FieldSubBenefitEndMonth, coerceInt},
	"msg-param-viewerCount":                {FieldViewerCount, coerceInt},
	"msg-param-mass-gift-count":            {FieldMassGiftCount, coerceInt},
	"msg-param-sender-count":               {FieldSenderCount, coerceInt},
	"msg-param-promo-gift-total":           {FieldPromoGiftTotal, coerceInt},
	"msg-param-threshold":                  {FieldThreshold, coerceInt},
	"msg-param-value":                      {FieldMilestoneValue, coerceInt},
	"msg-param-copoReward":                 {FieldChannelPointsReward, coerceInt},
	"msg-param-goal-current-contributions": {FieldGoalCurrent, coerceInt},
	"msg-param-goal-target-contributions":  {FieldGoalTarget, coerceInt},
	"msg-param-goal-user-contributions":    {FieldGoalUserContributions, coerceInt},
	"msg-param-donation-amount":            {FieldDonationAmount, coerceInt},
	"msg-param-exponent":                   {FieldDonationExponent, coerceInt},
	"msg-param-min-cheer-amount":           {FieldMinCheerAmount, coerceInt},
	"msg-param-selected-count":             {FieldSelectedCount, coerceInt},
	"msg-param-trigger-amount":             {FieldTriggerAmount, coerceInt},
	"slow":                                 {FieldSlowSeconds, coerceInt},
	"followers-only":                       {FieldFollowersOnly, coerceInt},

	"mod":                           {FieldMod, coerceBool},
	"subscriber":                    {FieldSubscriber, coerceBool},
	"turbo":                         {FieldTurbo, coerceBool},
	"vip":                           {FieldVIP, coerceBool},
	"first-msg":                     {FieldFirstMsg, coerceBool},
	"returning-chatter":             {FieldReturningChatter, coerceBool},
	"emote-only":                    {FieldEmoteOnly, coerceBool},
	"r9k":                           {FieldUniqueMode, coerceBool},
	"subs-only":                     {FieldSubsOnly, coerceBool},
	"msg-param-should-share-streak": {FieldShouldShareStreak, coerceBool},
	"source-only":                   {FieldSourceOnly, coerceBool},
	// the gift flags use the word "true" on the wire instead of "1"
	"msg-param-was-gifted":             {FieldWasGifted, coerceBoolWord},
	"msg-param-anon-gift":              {FieldAnonGift, coerceBoolWord},
	"msg-param-prior-gifter-anonymous": {FieldPriorGifterAnon, coerceBoolWord},

	"tmi-sent-ts": {FieldSentTS, coerceTimestamp},
}
