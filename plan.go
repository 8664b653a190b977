package main

import "fmt"

// Macro arithmetic constants: protein target per kg body weight and the
// kcal-per-gram densities used to turn calorie fractions into grams.
const (
	proteinPerKG  = 2.2
	kcalPerGCarbs = 4.0
	kcalPerGFat   = 9.0
)

// generalHealthGoal is the fallback branch: any unrecognized goal lands here
// without an error, a deliberate permissive default.
const generalHealthGoal = "General Health"

// goalPolicy declares one goal's calorie rule, macro fractions, and narrative
// texts. Keeping the four policies in one table makes them directly comparable
// and easy to extend.
type goalPolicy struct {
	targetCalories func(tdee float64) float64
	carbFrac       float64 // fraction of target calories from carbs
	fatFrac        float64 // fraction of target calories from fat
	hasMacros      bool
	dietFocus      string
	exerciseText   string
}

var goalPolicies = map[string]goalPolicy{
	"Weight Loss": {
		// Deficit of 500 kcal with a 1200 kcal floor
		targetCalories: func(tdee float64) float64 { return max(1200, tdee-500) },
		carbFrac:       0.40,
		fatFrac:        0.25,
		hasMacros:      true,
		dietFocus: `Focus on:
- High protein foods (lean meat, fish, eggs)
- Fiber-rich vegetables
- Complex carbohydrates
- Limited processed foods`,
		exerciseText: `Weekly Schedule:
- 3-4 days of moderate-intensity cardio (30-45 minutes)
- 2-3 days of strength training
- Include rest days for recovery`,
	},
	"Muscle Gain": {
		// Surplus of 500 kcal, no cap
		targetCalories: func(tdee float64) float64 { return tdee + 500 },
		carbFrac:       0.50,
		fatFrac:        0.25,
		hasMacros:      true,
		dietFocus: `Focus on:
- High protein foods every 3-4 hours
- Complex carbohydrates
- Healthy fats
- Pre and post-workout nutrition`,
		exerciseText: `Weekly Schedule:
- 4-5 days of strength training
- Focus on compound exercises
- Progressive overload
- 1-2 days of light cardio
- Proper rest between sessions`,
	},
	"Maintenance": {
		targetCalories: func(tdee float64) float64 { return tdee },
		carbFrac:       0.45,
		fatFrac:        0.30,
		hasMacros:      true,
		dietFocus: `Focus on:
- Balanced macro distribution
- Whole, unprocessed foods
- Regular meal timing
- Adequate hydration`,
		exerciseText: `Weekly Schedule:
- 3-4 days of strength training
- 2-3 days of moderate cardio
- Mix of activities for variety
- Active recovery days`,
	},
	generalHealthGoal: {
		// Narrative guidance only, no macro breakdown
		targetCalories: func(tdee float64) float64 { return tdee },
		dietFocus: `Focus on:
- Balanced, nutrient-dense meals
- Variety of fruits and vegetables
- Whole grains and lean proteins
- Mindful eating habits`,
		exerciseText: `Weekly Schedule:
- Daily physical activity
- Mix of cardio and strength training
- Focus on enjoyable activities
- Stay consistent with routine`,
	},
}

// resolveGoal maps a raw goal string to its policy name, falling back to
// General Health for anything unrecognized.
func resolveGoal(goal string) string {
	if _, ok := goalPolicies[goal]; ok {
		return goal
	}
	return generalHealthGoal
}

// generatePlan maps a goal, TDEE, and body weight into a calorie target, macro
// split, and the two narrative texts. A nil tdee (upstream calculation failed)
// yields the degraded zero-calorie plan rather than an error — the caller has
// already surfaced the failure.
func generatePlan(goal string, tdee *float64, weightKG float64) plan {
	if tdee == nil {
		return plan{
			TargetCalories: 0,
			DietText:       "Unable to generate diet plan.",
			ExerciseText:   "Unable to generate exercise plan.",
		}
	}

	p := goalPolicies[resolveGoal(goal)]
	calories := p.targetCalories(*tdee)

	result := plan{
		TargetCalories: calories,
		DietText:       p.dietFocus,
		ExerciseText:   p.exerciseText,
	}

	if p.hasMacros {
		m := macroSplit{
			ProteinG: weightKG * proteinPerKG,
			CarbsG:   calories * p.carbFrac / kcalPerGCarbs,
			FatsG:    calories * p.fatFrac / kcalPerGFat,
		}
		result.Macros = &m
		result.DietText = fmt.Sprintf(`Daily Targets:
- Calories: %.0f kcal
- Protein: %.0fg
- Carbs: %.0fg
- Fats: %.0fg

%s`, calories, m.ProteinG, m.CarbsG, m.FatsG, p.dietFocus)
	}

	return result
}
