package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// buildExportRows flattens one calculation into Section/Field/Value rows:
// personal info, calculation summary, then the two plan narratives. Pure data
// transformation, no calculation.
func buildExportRows(profile userProfile, bmr, tdee float64, p plan) []exportRow {
	return []exportRow{
		{"Personal Information", "Name", profile.Name},
		{"Personal Information", "Age", fmt.Sprintf("%d", profile.Age)},
		{"Personal Information", "Gender", profile.Gender},
		{"Personal Information", "Height (cm)", fmt.Sprintf("%g", profile.HeightCM)},
		{"Personal Information", "Weight (kg)", fmt.Sprintf("%g", profile.WeightKG)},
		{"Personal Information", "Activity Level", profile.ActivityLevel},
		{"Personal Information", "Goal", profile.Goal},
		{"Calculations", "BMR", fmt.Sprintf("%.2f kcal/day", bmr)},
		{"Calculations", "TDEE", fmt.Sprintf("%.2f kcal/day", tdee)},
		{"Calculations", "Target Calories", fmt.Sprintf("%.2f kcal/day", p.TargetCalories)},
		{"Plans", "Diet Plan", p.DietText},
		{"Plans", "Exercise Plan", p.ExerciseText},
	}
}

// renderCSV writes the export rows as delimited text with a header line.
// encoding/csv handles the quoting of the multi-line plan narratives.
func renderCSV(rows []exportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Section", "Field", "Value"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Section, r.Field, r.Value}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportFileName builds fitness_plan_<name>_<YYYYMMDD>.csv with the name
// reduced to header-safe characters.
func exportFileName(name string, now time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))
	return fmt.Sprintf("fitness_plan_%s_%s.csv", safe, now.Format("20060102"))
}

// exportPlan runs the same pipeline as createPlan and responds with the
// flattened snapshot as a CSV attachment instead of JSON. The calculation is
// recorded in history like any other — a download is still a calculation.
// POST /api/plan/export.
func (h *Handler) exportPlan(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, ok := h.runPipeline(c, body)
	if !ok {
		return
	}

	rows := buildExportRows(resp.Profile, resp.BMR, resp.TDEE, resp.Plan)
	data, err := renderCSV(rows)
	if err != nil {
		log.Printf("[export] CSV render error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to render export")
		return
	}

	filename := exportFileName(resp.Profile.Name, resp.Timestamp.Time)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
