package main

import (
	"errors"
	"strings"
)

// Minimum plausible values for the biometric inputs. Anything below these is
// rejected before the calculator runs.
const (
	minHeightCM = 50
	minWeightKG = 30
)

// validateInputs checks the raw form fields in order and returns the first
// failure as a user-facing error, or nil when everything passes. Pure —
// no side effects, safe to call repeatedly.
func validateInputs(name string, age int, heightCM, weightKG float64) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Please enter your name.")
	}
	if age < 1 {
		return errors.New("Please enter a valid age.")
	}
	if heightCM < minHeightCM {
		return errors.New("Please enter a valid height (minimum 50 cm).")
	}
	if weightKG < minWeightKG {
		return errors.New("Please enter a valid weight (minimum 30 kg).")
	}
	return nil
}
