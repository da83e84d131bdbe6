// Package classifier maps user-authored text to a crisis severity
// tier using static per-language keyword tables. It is a deliberate
// design simplification: a case-folded substring scan with no
// stemming, tokenization or negation handling.
package classifier

import (
	"strings"

	"manmitra/backend/internal/config"
)

// Lang is a supported keyword-table language. Unknown languages fall
// back to LangEN; this is a documented default, not an error.
type Lang string

const (
	LangEN Lang = "en"
	LangHI Lang = "hi"
	LangUR Lang = "ur"
)

// Severity tiers, lowest to highest.
const (
	SeverityNone   = "none"
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Reason strings attached per matched keyword.
const (
	ReasonHigh   = "High-risk language detected"
	ReasonMedium = "Potentially harmful language"
	ReasonLow    = "Mild concern"
)

// tiers in evaluation order: high before medium before low.
var tiers = []struct {
	name   string
	reason string
}{
	{SeverityHigh, ReasonHigh},
	{SeverityMedium, ReasonMedium},
	{SeverityLow, ReasonLow},
}

var severityRank = map[string]int{
	SeverityNone:   0,
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

// AtLeast reports whether severity is at least min on the tier scale.
func AtLeast(severity, min string) bool {
	return severityRank[severity] >= severityRank[min]
}

// Result is the outcome of classifying one piece of text.
type Result struct {
	// Score is the accumulated keyword score, clamped to [0, 1].
	Score float64
	// Severity is the discrete tier derived from the matches.
	Severity string
	// Reasons holds one human-readable reason per matched keyword,
	// in match order (high tier first).
	Reasons []string
}

// Classify scans text against the keyword tables for lang and returns
// the severity tier and matched reasons. It is a pure function of
// (text, lang): no side effects, identical input gives identical
// output. Matching a keyword of a tier always yields at least that
// tier's severity; accumulated score can only raise it further.
func Classify(text string, lang Lang) Result {
	tables, ok := keywordTables[lang]
	if !ok {
		tables = keywordTables[LangEN]
	}

	folded := strings.ToLower(text)

	var score float64
	var reasons []string
	matched := SeverityNone

	for _, tier := range tiers {
		for _, kw := range tables[tier.name] {
			if strings.Contains(folded, kw) {
				score += config.TierWeights[tier.name]
				reasons = append(reasons, tier.reason)
				if severityRank[tier.name] > severityRank[matched] {
					matched = tier.name
				}
			}
		}
	}

	if score > 1 {
		score = 1
	}

	severity := severityFromScore(score)
	if severityRank[matched] > severityRank[severity] {
		severity = matched
	}

	return Result{Score: score, Severity: severity, Reasons: reasons}
}

func severityFromScore(score float64) string {
	switch {
	case score >= config.ThresholdHigh:
		return SeverityHigh
	case score >= config.ThresholdMedium:
		return SeverityMedium
	case score >= config.ThresholdLow:
		return SeverityLow
	default:
		return SeverityNone
	}
}
