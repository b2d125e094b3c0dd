package domain

import "slices"

// Option is a selectable choice in the preferences form. Value is what the
// draft stores, Label is what the form shows.
type Option struct {
	Value string
	Label string
}

// Draft field names as they appear in the form.
const (
	FieldName              = "name"
	FieldFreeTextInterests = "free_text_interests"
	FieldInterests         = "interests"
	FieldCauses            = "causes"
	FieldIncome            = "income"
	FieldComfortLevel      = "comfort_level"
	FieldFrequency         = "frequency"
	FieldGeography         = "geography"
)

var (
	InterestOptions = []string{
		"health", "education", "environment", "animals", "technology",
		"arts", "sports", "children", "elderly", "community",
	}

	CauseOptions = []string{
		"Water & Sanitation", "Education", "Environment", "Hunger Relief",
		"Animal Welfare", "Healthcare", "Disaster Relief", "Human Rights",
	}

	IncomeBands = []Option{
		{Value: "0-2000", Label: "$0 - $2,000"},
		{Value: "2000-4000", Label: "$2,000 - $4,000"},
		{Value: "4000-6000", Label: "$4,000 - $6,000"},
		{Value: "6000-10000", Label: "$6,000 - $10,000"},
		{Value: "10000+", Label: "$10,000+"},
	}

	ComfortLevels = []Option{
		{Value: "starting", Label: "Just starting out"},
		{Value: "occasional", Label: "Occasional donor"},
		{Value: "regular", Label: "Regular supporter"},
	}

	Frequencies = []Option{
		{Value: "weekly", Label: "Weekly"},
		{Value: "monthly", Label: "Monthly"},
		{Value: "quarterly", Label: "Quarterly"},
	}

	Geographies = []Option{
		{Value: "local", Label: "Local community"},
		{Value: "national", Label: "National"},
		{Value: "global", Label: "Global"},
	}
)

// PreferencesDraft is the transient donor profile collected by the
// preferences form. Every field is optional and independent of the others.
type PreferencesDraft struct {
	Name              string   `json:"name"`
	FreeTextInterests string   `json:"free_text_interests"`
	Interests         []string `json:"interests"`
	Causes            []string `json:"causes"`
	Income            string   `json:"income"`
	ComfortLevel      string   `json:"comfort_level"`
	Frequency         string   `json:"frequency"`
	Geography         string   `json:"geography"`
}

// NewPreferencesDraft returns an empty draft.
func NewPreferencesDraft() *PreferencesDraft {
	return &PreferencesDraft{
		Interests: []string{},
		Causes:    []string{},
	}
}

// Set assigns a single-valued field. Free-text fields take any value. Closed
// option fields take a known option value or "" to clear; anything else
// leaves the field as it was. It reports whether the draft changed.
func (d *PreferencesDraft) Set(field, value string) bool {
	var target *string
	var options []Option
	switch field {
	case FieldName:
		target = &d.Name
	case FieldFreeTextInterests:
		target = &d.FreeTextInterests
	case FieldIncome:
		target, options = &d.Income, IncomeBands
	case FieldComfortLevel:
		target, options = &d.ComfortLevel, ComfortLevels
	case FieldFrequency:
		target, options = &d.Frequency, Frequencies
	case FieldGeography:
		target, options = &d.Geography, Geographies
	default:
		return false
	}
	if options != nil && value != "" && !hasOption(options, value) {
		return false
	}
	if *target == value {
		return false
	}
	*target = value
	return true
}

// Toggle flips membership of option in a multi-select field. Selection order
// is preserved; toggling the same option twice restores the previous set.
// Unknown fields and options are ignored.
func (d *PreferencesDraft) Toggle(field, option string) bool {
	var set *[]string
	var allowed []string
	switch field {
	case FieldInterests:
		set, allowed = &d.Interests, InterestOptions
	case FieldCauses:
		set, allowed = &d.Causes, CauseOptions
	default:
		return false
	}
	if !slices.Contains(allowed, option) {
		return false
	}
	if i := slices.Index(*set, option); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
	} else {
		*set = append(*set, option)
	}
	return true
}

// Has reports whether option is selected in a multi-select field.
func (d *PreferencesDraft) Has(field, option string) bool {
	switch field {
	case FieldInterests:
		return slices.Contains(d.Interests, option)
	case FieldCauses:
		return slices.Contains(d.Causes, option)
	}
	return false
}

// Clone returns a deep copy so the draft can leave the visit safely.
func (d *PreferencesDraft) Clone() PreferencesDraft {
	c := *d
	c.Interests = slices.Clone(d.Interests)
	c.Causes = slices.Clone(d.Causes)
	return c
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
