package registration

import "strings"

// Checkbox group field names shared by the wizard steps.
const (
	GroupInterests         = "interests"
	GroupParticipationType = "participationType"
	GroupSupportNeeded     = "supportNeeded"
)

// FormData accumulates everything the wizard collects. Fields for every
// category coexist in one record; the additional-info step only fills the
// slice relevant to the chosen category and the rest stay zero-valued.
type FormData struct {
	// Personal info (step 3).
	Name     string
	Email    string
	Phone    string
	Location string
	Website  string
	Referral string

	// Checkbox groups, keyed by option id.
	Interests         map[string]bool
	ParticipationType map[string]bool
	SupportNeeded     map[string]bool

	// Startup extras (step 4).
	StartupName   string
	StartupStage  string
	ProblemSolved string
	TeamSize      string

	// Sponsor extras.
	CompanyName   string
	SponsorBudget string
	BrandGoals    string

	// Ecosystem extras.
	Organization string
	Expertise    string
	NomadOrigin  string
	NomadMonths  string

	// Attendee extras.
	Occupation string
	HeardAbout string

	// Free text shared across categories.
	Comments string

	// Consent (step 5).
	AcceptedTerms     bool
	AcceptedMarketing bool
}

// ToggleGroupField returns a copy of data with one key of a checkbox group
// flipped to value. Unknown groups leave the data unchanged. Each wizard step
// shares this single helper instead of re-implementing the update.
func ToggleGroupField(data FormData, group string, key string, value bool) FormData {
	key = strings.TrimSpace(key)
	if key == "" {
		return data
	}
	switch group {
	case GroupInterests:
		data.Interests = setGroupKey(data.Interests, key, value)
	case GroupParticipationType:
		data.ParticipationType = setGroupKey(data.ParticipationType, key, value)
	case GroupSupportNeeded:
		data.SupportNeeded = setGroupKey(data.SupportNeeded, key, value)
	}
	return data
}

func setGroupKey(group map[string]bool, key string, value bool) map[string]bool {
	next := make(map[string]bool, len(group)+1)
	for k, v := range group {
		next[k] = v
	}
	next[key] = value
	return next
}

// SelectedGroupKeys returns the enabled keys of a checkbox group in stable order.
func SelectedGroupKeys(group map[string]bool, order []string) []string {
	var selected []string
	for _, key := range order {
		if group[key] {
			selected = append(selected, key)
		}
	}
	return selected
}
