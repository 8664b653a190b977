package main

import "testing"

// TestValidateInputs walks the ordered rules: first failure wins, and the
// user-facing messages are exact.
func TestValidateInputs(t *testing.T) {
	cases := []struct {
		name     string
		inName   string
		age      int
		heightCM float64
		weightKG float64
		want     string // empty means no error expected
	}{
		{"all valid", "Jo", 25, 170, 70, ""},
		{"empty name", "", 25, 170, 70, "Please enter your name."},
		{"whitespace name", "   ", 25, 170, 70, "Please enter your name."},
		{"zero age", "Jo", 0, 170, 70, "Please enter a valid age."},
		{"negative age", "Jo", -3, 170, 70, "Please enter a valid age."},
		{"height below minimum", "Jo", 25, 49, 70, "Please enter a valid height (minimum 50 cm)."},
		{"weight below minimum", "Jo", 25, 170, 29, "Please enter a valid weight (minimum 30 kg)."},
		{"boundary height", "Jo", 25, 50, 70, ""},
		{"boundary weight", "Jo", 25, 170, 30, ""},
		{"boundary age", "Jo", 1, 170, 70, ""},
		// Name is checked before age, age before height, height before weight
		{"name wins over age", "", 0, 49, 29, "Please enter your name."},
		{"age wins over height", "Jo", 0, 49, 29, "Please enter a valid age."},
		{"height wins over weight", "Jo", 25, 49, 29, "Please enter a valid height (minimum 50 cm)."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateInputs(tc.inName, tc.age, tc.heightCM, tc.weightKG)
			if tc.want == "" {
				if err != nil {
					t.Errorf("expected no error, got %q", err.Error())
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.want)
			}
			if err.Error() != tc.want {
				t.Errorf("error = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}
