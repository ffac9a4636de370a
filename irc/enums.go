package irc

// SubPlan identifies a subscription tier.
type SubPlan int

const (
	SubPlanUnknown SubPlan = iota
	SubPlanPrime
	SubPlanTier1
	SubPlanTier2
	SubPlanTier3
)

// String returns a human-readable name for the plan.
func (p SubPlan) String() string {
	switch p {
	case SubPlanPrime:
		return "prime"
	case SubPlanTier1:
		return "tier1"
	case SubPlanTier2:
		return "tier2"
	case SubPlanTier3:
		return "tier3"
	default:
		return "unknown"
	}
}

var subPlans = map[string]SubPlan{
	"Prime": SubPlanPrime,
	"1000":  SubPlanTier1,
	"2000":  SubPlanTier2,
	"3000":  SubPlanTier3,
}

// UserType is the privilege level Twitch attaches to a sender. An empty
// user-type tag means a regular user.
type UserType int

const (
	UserTypeNormal UserType = iota
	UserTypeMod
	UserTypeGlobalMod
	UserTypeAdmin
	UserTypeStaff
	UserTypeUnknown
)

func (u UserType) String() string {
	switch u {
	case UserTypeNormal:
		return "normal"
	case UserTypeMod:
		return "mod"
	case UserTypeGlobalMod:
		return "global_mod"
	case UserTypeAdmin:
		return "admin"
	case UserTypeStaff:
		return "staff"
	default:
		return "unknown"
	}
}

var userTypes = map[string]UserType{
	"":           UserTypeNormal,
	"mod":        UserTypeMod,
	"global_mod": UserTypeGlobalMod,
	"admin":      UserTypeAdmin,
	"staff":      UserTypeStaff,
}

// GiftTheme is the cosmetic theme attached to gifted subscriptions.
type GiftTheme int

const (
	GiftThemeUnknown GiftTheme = iota
	GiftThemeLove
	GiftThemeParty
	GiftThemeLUL
	GiftThemeBibleThump
)

func (g GiftTheme) String() string {
	switch g {
	case GiftThemeLove:
		return "love"
	case GiftThemeParty:
		return "party"
	case GiftThemeLUL:
		return "lul"
	case GiftThemeBibleThump:
		return "biblethump"
	default:
		return "unknown"
	}
}

var giftThemes = map[string]GiftTheme{
	"love":       GiftThemeLove,
	"party":      GiftThemeParty,
	"lul":        GiftThemeLUL,
	"biblethump": GiftThemeBibleThump,
}

// MilestoneCategory classifies a viewermilestone notice.
type MilestoneCategory int

const (
	MilestoneUnknown MilestoneCategory = iota
	MilestoneWatchStreak
)

func (m MilestoneCategory) String() string {
	if m == MilestoneWatchStreak {
		return "watch-streak"
	}
	return "unknown"
}

var milestoneCategories = map[string]MilestoneCategory{
	"watch-streak": MilestoneWatchStreak,
}

// ContributionType classifies what a goal contribution counts.
type ContributionType int

const (
	ContributionUnknown ContributionType = iota
	ContributionSubs
	ContributionSubPoints
	ContributionNewSubs
	ContributionBits
)

func (c ContributionType) String() string {
	switch c {
	case ContributionSubs:
		return "subs"
	case ContributionSubPoints:
		return "sub_points"
	case ContributionNewSubs:
		return "new_subs"
	case ContributionBits:
		return "bits"
	default:
		return "unknown"
	}
}

var contributionTypes = map[string]ContributionType{
	"SUBS":       ContributionSubs,
	"SUB_POINTS": ContributionSubPoints,
	"NEW_SUBS":   ContributionNewSubs,
	"BITS":       ContributionBits,
}
