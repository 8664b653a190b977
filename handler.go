package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler holds shared dependencies (session store) for all route handlers.
type Handler struct {
	sessions *sessionStore
}

func newHandler() *Handler {
	return &Handler{sessions: newSessionStore()}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/api/session", h.createSession)

	// Session-scoped routes
	api := router.Group("/api", h.sessionMiddleware())
	api.POST("/plan", h.createPlan)
	api.GET("/history", h.getHistory)
	api.POST("/plan/export", h.exportPlan)
}

/* ─── Plan pipeline ──────────────────────────────────────────────────── */

// runPipeline executes validate → compute → generate → record for one request
// and appends the history record on success. Shared by createPlan and
// exportPlan. The error, when non-nil, has already been written to the client.
func (h *Handler) runPipeline(c *gin.Context, body planRequest) (planResponse, bool) {
	if err := validateInputs(body.Name, body.Age, body.HeightCM, body.WeightKG); err != nil {
		validationFailures.Inc()
		apiError(c, http.StatusBadRequest, err.Error())
		return planResponse{}, false
	}

	bmr, tdee, err := computeBMRTDEE(body.WeightKG, body.HeightCM, body.Age, body.Gender, body.ActivityLevel)
	if err != nil {
		calculationFailures.WithLabelValues(failureReason(err)).Inc()
		apiError(c, http.StatusUnprocessableEntity, "Error in calculations: "+err.Error())
		return planResponse{}, false
	}

	generated := generatePlan(body.Goal, &tdee, body.WeightKG)
	now := time.Now()

	record := historyRecord{
		Timestamp: DateTime{now},
		Name:      body.Name,
		BMR:       bmr,
		TDEE:      tdee,
		Goal:      body.Goal,
		Calories:  generated.TargetCalories,
	}
	token := c.GetString("session_token")
	if !h.sessions.appendRecord(token, record) {
		// Token passed the middleware, so the session vanished mid-request.
		apiError(c, http.StatusUnauthorized, "invalid session token")
		return planResponse{}, false
	}

	plansGenerated.WithLabelValues(resolveGoal(body.Goal)).Inc()

	return planResponse{
		Message: "Plan generated successfully! Good luck on your fitness journey!",
		Profile: userProfile{
			Name:          body.Name,
			Age:           body.Age,
			Gender:        body.Gender,
			HeightCM:      body.HeightCM,
			WeightKG:      body.WeightKG,
			ActivityLevel: body.ActivityLevel,
			Goal:          body.Goal,
		},
		BMR:       bmr,
		TDEE:      tdee,
		Plan:      generated,
		Routine:   resolveRoutine(body),
		Timestamp: DateTime{now},
	}, true
}

// failureReason maps a calculator error to its metric label.
func failureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, errInvalidActivityLevel):
		return "invalid_activity_level"
	case errors.Is(err, errInvalidResult):
		return "invalid_result"
	default:
		return "unknown"
	}
}

// resolveRoutine applies the sleep/meal defaults and clamps to the form's
// slider ranges (1-12 hours, 1-6 meals).
func resolveRoutine(body planRequest) dailyRoutine {
	r := dailyRoutine{SleepHours: 8, MealsPerDay: 3}
	if body.SleepHours != nil {
		r.SleepHours = min(12, max(1, *body.SleepHours))
	}
	if body.MealsPerDay != nil {
		r.MealsPerDay = min(6, max(1, *body.MealsPerDay))
	}
	return r
}

// createPlan runs the full calculation pipeline for one profile submission.
// POST /api/plan.
func (h *Handler) createPlan(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, ok := h.runPipeline(c, body)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, resp)
}
