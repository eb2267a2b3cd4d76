// Package diet provides diet profiles and daily calorie target strategies.
package diet

import (
	"fmt"
	"strings"
)

// Gender is the biological sex used by the BMR equations.
type Gender int

// Gender values.
const (
	Male Gender = iota
	Female
)

// String returns the lowercase name of the gender.
func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// ParseGender parses a gender name, case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Male, fmt.Errorf("unknown gender %q (want male or female)", s)
	}
}

// ActivityLevel grades how active the user is, for the BMR multiplier.
type ActivityLevel int

// Activity levels from least to most active.
const (
	Sedentary ActivityLevel = iota
	LightlyActive
	ModeratelyActive
	VeryActive
	ExtraActive
)

var activityNames = map[ActivityLevel]string{
	Sedentary:        "sedentary",
	LightlyActive:    "lightly_active",
	ModeratelyActive: "moderately_active",
	VeryActive:       "very_active",
	ExtraActive:      "extra_active",
}

// String returns the snake_case name of the activity level.
func (a ActivityLevel) String() string {
	if name, ok := activityNames[a]; ok {
		return name
	}
	return "sedentary"
}

// ParseActivityLevel parses an activity level name, case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for level, name := range activityNames {
		if normalized == name {
			return level, nil
		}
	}
	return Sedentary, fmt.Errorf("unknown activity level %q", s)
}

// Multiplier returns the factor applied to BMR for this activity level.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case Sedentary:
		return 1.2
	case LightlyActive:
		return 1.375
	case ModeratelyActive:
		return 1.55
	case VeryActive:
		return 1.725
	case ExtraActive:
		return 1.9
	default:
		return 1.2
	}
}

// Profile is a user's diet profile for calorie calculations.
type Profile struct {
	Gender   Gender
	WeightKG float64
	HeightCM float64
	Age      int
	Activity ActivityLevel
}
