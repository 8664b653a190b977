// CLI tool to generate a fitness plan against a running planner API.
// Prompts for the profile on stdin, creates a session, and prints the result.
// Usage: go run ./cmd/plancli (set PLANNER_API_URL or default localhost:3000)
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func main() {
	godotenv.Load()

	baseURL := os.Getenv("PLANNER_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	reader := bufio.NewReader(os.Stdin)

	name := prompt(reader, "Name: ")
	age := promptInt(reader, "Age: ")
	gender := prompt(reader, "Gender (Male/Female): ")
	height := promptFloat(reader, "Height (cm): ")
	weight := promptFloat(reader, "Weight (kg): ")
	activity := prompt(reader, "Activity level (Sedentary, Lightly Active, Moderately Active, Very Active, Extremely Active): ")
	goal := prompt(reader, "Goal (Weight Loss, Muscle Gain, Maintenance, General Health): ")

	token, err := createSession(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	reqBody := map[string]interface{}{
		"name":           name,
		"age":            age,
		"gender":         gender,
		"height_cm":      height,
		"weight_kg":      weight,
		"activity_level": activity,
		"goal":           goal,
	}
	bodyBytes, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", baseURL+"/api/plan", bytes.NewReader(bodyBytes))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calling API: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			fmt.Fprintf(os.Stderr, "%s\n", apiErr.Error)
		} else {
			fmt.Fprintf(os.Stderr, "API returned status %d\n", resp.StatusCode)
		}
		os.Exit(1)
	}

	var result struct {
		Message string  `json:"message"`
		BMR     float64 `json:"bmr"`
		TDEE    float64 `json:"tdee"`
		Plan    struct {
			TargetCalories float64 `json:"target_calories"`
			Macros         *struct {
				ProteinG float64 `json:"protein_g"`
				CarbsG   float64 `json:"carbs_g"`
				FatsG    float64 `json:"fats_g"`
			} `json:"macros"`
			DietText     string `json:"diet_text"`
			ExerciseText string `json:"exercise_text"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nHello, %s!\n\n", name)
	fmt.Printf("  BMR:             %.0f kcal/day\n", result.BMR)
	fmt.Printf("  TDEE:            %.0f kcal/day\n", result.TDEE)
	fmt.Printf("  Target Calories: %.0f kcal/day\n", result.Plan.TargetCalories)
	if m := result.Plan.Macros; m != nil {
		fmt.Printf("  Protein: %.0fg  Carbs: %.0fg  Fats: %.0fg\n", m.ProteinG, m.CarbsG, m.FatsG)
	}
	fmt.Printf("\nDiet Plan\n---------\n%s\n", result.Plan.DietText)
	fmt.Printf("\nExercise Plan\n-------------\n%s\n", result.Plan.ExerciseText)
	fmt.Printf("\n%s\n", result.Message)
}

// createSession mints a session token on the API.
func createSession(baseURL string) (string, error) {
	resp, err := httpClient.Post(baseURL+"/api/session", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("session endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Token == "" {
		return "", fmt.Errorf("no token in session response")
	}
	return body.Token, nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(reader *bufio.Reader, label string) int {
	for {
		v, err := strconv.Atoi(prompt(reader, label))
		if err == nil {
			return v
		}
		fmt.Println("Please enter a whole number.")
	}
}

func promptFloat(reader *bufio.Reader, label string) float64 {
	for {
		v, err := strconv.ParseFloat(prompt(reader, label), 64)
		if err == nil {
			return v
		}
		fmt.Println("Please enter a number.")
	}
}
