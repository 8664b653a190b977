package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the calculation pipeline, exposed on /metrics.
var (
	plansGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitness_planner_plans_generated_total",
		Help: "Total number of plans generated, by resolved goal",
	}, []string{"goal"})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitness_planner_validation_failures_total",
		Help: "Total number of rejected profile submissions",
	})

	calculationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitness_planner_calculation_failures_total",
		Help: "Total number of BMR/TDEE calculation failures, by reason",
	}, []string{"reason"})
)
