package config

import "time"

const (
	// Severity score thresholds. A clamped score maps to a tier:
	// >= ThresholdHigh -> high, >= ThresholdMedium -> medium,
	// >= ThresholdLow -> low, otherwise none.
	ThresholdHigh   = 0.7
	ThresholdMedium = 0.4
	ThresholdLow    = 0.2

	// Escalation
	EscalationSeverity        = "high" // computed severity that auto-creates an alert
	AlertQueueRefreshInterval = 30 * time.Second

	// Moderation
	RejectMuteDuration = 24 * time.Hour
)

// TierWeights is the score increment contributed by each matched
// keyword of a given tier.
var TierWeights = map[string]float64{
	"high":   0.3,
	"medium": 0.2,
	"low":    0.1,
}
