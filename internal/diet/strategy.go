package diet

import "fmt"

// TargetStrategy calculates a recommended daily calorie intake from a
// profile. New calculation methods implement this interface.
type TargetStrategy interface {
	DailyTarget(profile Profile) float64
	Name() string
}

// HarrisBenedict implements the Harris-Benedict BMR equation.
type HarrisBenedict struct{}

// DailyTarget returns the Harris-Benedict daily calorie target.
func (HarrisBenedict) DailyTarget(profile Profile) float64 {
	var bmr float64
	if profile.Gender == Male {
		bmr = 88.362 +
			13.397*profile.WeightKG +
			4.799*profile.HeightCM -
			5.677*float64(profile.Age)
	} else {
		bmr = 447.593 +
			9.247*profile.WeightKG +
			3.098*profile.HeightCM -
			4.330*float64(profile.Age)
	}
	return bmr * profile.Activity.Multiplier()
}

// Name returns the strategy name.
func (HarrisBenedict) Name() string { return "Harris-Benedict Equation" }

// MifflinStJeor implements the Mifflin-St Jeor BMR equation.
type MifflinStJeor struct{}

// DailyTarget returns the Mifflin-St Jeor daily calorie target.
func (MifflinStJeor) DailyTarget(profile Profile) float64 {
	var bmr float64
	if profile.Gender == Male {
		bmr = 10*profile.WeightKG +
			6.25*profile.HeightCM -
			5*float64(profile.Age) + 5
	} else {
		bmr = 10*profile.WeightKG +
			6.25*profile.HeightCM -
			5*float64(profile.Age) - 161
	}
	return bmr * profile.Activity.Multiplier()
}

// Name returns the strategy name.
func (MifflinStJeor) Name() string { return "Mifflin-St Jeor Equation" }

// Strategies returns all available target strategies, default first.
func Strategies() []TargetStrategy {
	return []TargetStrategy{HarrisBenedict{}, MifflinStJeor{}}
}

// StrategyByName resolves a strategy by its short config name:
// "harris-benedict" or "mifflin-st-jeor". Empty selects the default.
func StrategyByName(name string) (TargetStrategy, error) {
	switch name {
	case "", "harris-benedict":
		return HarrisBenedict{}, nil
	case "mifflin-st-jeor":
		return MifflinStJeor{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want harris-benedict or mifflin-st-jeor)", name)
	}
}
