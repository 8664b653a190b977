package main

import "time"

// DateTime wraps time.Time to serialize as "YYYY-MM-DD HH:MM:SS" in JSON —
// the capture-time format shown in the history list and CSV export.
type DateTime struct{ time.Time }

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02 15:04:05") + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02 15:04:05"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// userProfile is the validated biometric/lifestyle input a calculation runs on.
// Immutable once the pipeline starts — handlers build it from the request and
// only read from it afterwards.
type userProfile struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// macroSplit is the daily macro allocation in grams.
type macroSplit struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// plan is the generated recommendation for a goal. Macros is nil for the
// General Health goal, which gets narrative guidance without a macro breakdown.
type plan struct {
	TargetCalories float64     `json:"target_calories"`
	Macros         *macroSplit `json:"macros,omitempty"`
	DietText       string      `json:"diet_text"`
	ExerciseText   string      `json:"exercise_text"`
}

// historyRecord is one entry in a session's append-only calculation history.
// Goal keeps the raw client value (even unrecognized ones), matching what the
// user actually selected.
type historyRecord struct {
	Timestamp DateTime `json:"timestamp"`
	Name      string   `json:"name"`
	BMR       float64  `json:"bmr"`
	TDEE      float64  `json:"tdee"`
	Goal      string   `json:"goal"`
	Calories  float64  `json:"calories"`
}

// exportRow is one line of the flattened Section/Field/Value snapshot used for
// the CSV download.
type exportRow struct {
	Section string
	Field   string
	Value   string
}

/* ─── Request / response types ───────────────────────────────────────── */

// planRequest is the request body for POST /api/plan and POST /api/plan/export.
// SleepHours and MealsPerDay are pointers so "not provided" is distinguishable
// from zero; they default to 8 and 3.
type planRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	SleepHours    *int    `json:"sleep_hours"`
	MealsPerDay   *int    `json:"meals_per_day"`
}

// dailyRoutine echoes the sleep/meal schedule back in the plan response.
type dailyRoutine struct {
	SleepHours  int `json:"sleep_hours"`
	MealsPerDay int `json:"meals_per_day"`
}

// planResponse is the response body for POST /api/plan.
type planResponse struct {
	Message   string       `json:"message"`
	Profile   userProfile  `json:"profile"`
	BMR       float64      `json:"bmr"`
	TDEE      float64      `json:"tdee"`
	Plan      plan         `json:"plan"`
	Routine   dailyRoutine `json:"routine"`
	Timestamp DateTime     `json:"timestamp"`
}
