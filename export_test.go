package main

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"
)

/* ─── Snapshot tests ─────────────────────────────────────────────────── */

// TestBuildExportRows verifies the flattened snapshot covers all three
// sections with the kcal/day formatting from the calculation summary.
func TestBuildExportRows(t *testing.T) {
	profile := userProfile{
		Name: "Jo", Age: 30, Gender: "Male",
		HeightCM: 175, WeightKG: 70,
		ActivityLevel: "Sedentary", Goal: "Weight Loss",
	}
	p := generatePlan("Weight Loss", floatPtr(1978.5), 70)

	rows := buildExportRows(profile, 1648.75, 1978.5, p)

	find := func(section, field string) string {
		t.Helper()
		for _, r := range rows {
			if r.Section == section && r.Field == field {
				return r.Value
			}
		}
		t.Fatalf("no row for %s / %s", section, field)
		return ""
	}

	if v := find("Personal Information", "Name"); v != "Jo" {
		t.Errorf("Name = %q", v)
	}
	if v := find("Personal Information", "Height (cm)"); v != "175" {
		t.Errorf("Height = %q", v)
	}
	if v := find("Calculations", "BMR"); v != "1648.75 kcal/day" {
		t.Errorf("BMR = %q", v)
	}
	if v := find("Calculations", "TDEE"); v != "1978.50 kcal/day" {
		t.Errorf("TDEE = %q", v)
	}
	if v := find("Calculations", "Target Calories"); v != "1478.50 kcal/day" {
		t.Errorf("Target Calories = %q", v)
	}
	if v := find("Plans", "Diet Plan"); !strings.Contains(v, "Daily Targets:") {
		t.Errorf("Diet Plan snapshot missing targets:\n%s", v)
	}
}

// TestExportFileName verifies the fitness_plan_<name>_<YYYYMMDD>.csv pattern
// and that unsafe characters are replaced.
func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if got := exportFileName("Jo", now); got != "fitness_plan_Jo_20260830.csv" {
		t.Errorf("filename = %q", got)
	}
	if got := exportFileName(`Jo "the Lifter"/III`, now); strings.ContainsAny(got, `"/ `) {
		t.Errorf("filename contains unsafe characters: %q", got)
	}
}

/* ─── Endpoint tests ─────────────────────────────────────────────────── */

func TestExport_CSVResponse(t *testing.T) {
	router := setupTestRouter()
	token := newTestSession(t, router)

	w := doJSON(router, "POST", "/api/plan/export", token, validPlanBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "fitness_plan_Jo_") || !strings.HasSuffix(cd, `.csv"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("response is not valid CSV: %v", err)
	}
	if len(records) == 0 || strings.Join(records[0], ",") != "Section,Field,Value" {
		t.Fatalf("unexpected CSV header: %v", records[0])
	}

	// Multi-line plan narratives must survive the CSV round trip
	var dietPlan string
	for _, rec := range records[1:] {
		if rec[0] == "Plans" && rec[1] == "Diet Plan" {
			dietPlan = rec[2]
		}
	}
	if !strings.Contains(dietPlan, "Daily Targets:") {
		t.Errorf("diet plan lost in CSV round trip: %q", dietPlan)
	}
}

// TestExport_AppendsHistory verifies an export counts as a calculation and
// lands in the session history.
func TestExport_AppendsHistory(t *testing.T) {
	router := setupTestRouter()
	token := newTestSession(t, router)

	if w := doJSON(router, "POST", "/api/plan/export", token, validPlanBody); w.Code != http.StatusOK {
		t.Fatalf("export failed: %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(router, "GET", "/api/history", token, "")
	if !strings.Contains(w.Body.String(), `"name":"Jo"`) {
		t.Errorf("history missing export record: %s", w.Body.String())
	}
}

// TestExport_ValidationError verifies the export path enforces the same
// validation as the plan path.
func TestExport_ValidationError(t *testing.T) {
	router := setupTestRouter()
	token := newTestSession(t, router)

	body := `{"name":"Jo","age":30,"gender":"Male","height_cm":175,"weight_kg":29,"activity_level":"Sedentary","goal":"Weight Loss"}`
	w := doJSON(router, "POST", "/api/plan/export", token, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "minimum 30 kg") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}
