package main

import "errors"

// Calculation failure tags. Handlers branch on these with errors.Is to pick
// the right status and metric label.
var (
	errInvalidActivityLevel = errors.New("invalid activity level")
	errInvalidResult        = errors.New("invalid calculation result")
)

// activityMultipliers maps activity level names to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"Sedentary":         1.2,   // Little or no exercise
	"Lightly Active":    1.375, // Light exercise 1-3 days/week
	"Moderately Active": 1.55,  // Moderate exercise 3-5 days/week
	"Very Active":       1.725, // Heavy exercise 6-7 days/week
	"Extremely Active":  1.9,   // Very heavy exercise, physical job
}

// computeBMRTDEE computes BMR (Mifflin-St Jeor) and TDEE from biometric inputs.
// Any gender other than "Male" takes the female constant. On failure both
// values are zero — there is no partial result.
//
// The non-positive guard looks unreachable behind validateInputs but isn't:
// minimal height/weight with an age past ~90 drives the female BMR below zero,
// so it is surfaced as errInvalidResult rather than producing nonsense.
func computeBMRTDEE(weightKG, heightCM float64, age int, gender, activityLevel string) (bmr, tdee float64, err error) {
	bmr = 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == "Male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, found := activityMultipliers[activityLevel]
	if !found {
		return 0, 0, errInvalidActivityLevel
	}
	tdee = bmr * mult

	if bmr <= 0 || tdee <= 0 {
		return 0, 0, errInvalidResult
	}
	return bmr, tdee, nil
}
