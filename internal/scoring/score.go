package scoring

import (
	"math"
	"strconv"
	"strings"

	"boardpulse/internal/domains"
	"boardpulse/internal/registry"
)

// Performance bands, inclusive on the lower bound of each band.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandFair      = "Fair"
	BandPoor      = "Poor"
)

var likertScoreByLabel = map[string]int{
	"strongly agree":    5,
	"agree":             4,
	"neutral":           3,
	"disagree":          2,
	"strongly disagree": 1,
}

func PerformanceBand(percentage float64) string {
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGood
	case percentage >= 40:
		return BandFair
	default:
		return BandPoor
	}
}

func hasFivePointOptions(q domains.SurveyQuestion) bool {
	if len(q.Options) != 5 {
		return false
	}
	return strings.Join(q.Options, ",") == "1,2,3,4,5"
}

// IsScoreable reports whether a question's answer maps to a 1-5 score.
// Legacy payloads carry five-point selects typed as something else, so
// an exact "1".."5" option list also counts.
func IsScoreable(q domains.SurveyQuestion) bool {
	if q.Type == domains.QuestionLikertAgree || q.Type == domains.QuestionRating5 {
		return true
	}
	return hasFivePointOptions(q)
}

// QuestionScore maps one stored answer to its 1-5 score. The boolean is
// false for list answers, unanswered questions, out-of-range ratings and
// unrecognized likert labels; such answers never count toward the
// denominator.
func QuestionScore(q domains.SurveyQuestion, value domains.AnswerValue) (float64, bool) {
	if value.List != nil || value.IsNull() {
		return 0, false
	}

	switch {
	case q.Type == domains.QuestionRating5 || hasFivePointOptions(q):
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
		if err != nil || parsed < 1 || parsed > 5 {
			return 0, false
		}
		return parsed, true
	case q.Type == domains.QuestionLikertAgree:
		score, ok := likertScoreByLabel[strings.ToLower(strings.TrimSpace(value.String()))]
		return float64(score), ok
	default:
		return 0, false
	}
}

// SubmitTimeOverall computes the percentage stamped into a submission
// at submit time. Unlike report-time scoring, the denominator counts
// every scoreable question, answered or not; that convention came from
// the submitting client and stored values must keep matching it.
func SubmitTimeOverall(survey domains.SurveyDefinition, answers domains.AnswerMap) float64 {
	earned := 0.0
	total := 0
	for _, section := range survey.Sections {
		for _, question := range section.Questions {
			if !IsScoreable(question) {
				continue
			}
			total++
			if score, ok := QuestionScore(question, answers[question.Key]); ok {
				earned += score
			}
		}
	}
	if total == 0 {
		return 0
	}
	return (earned / (float64(total) * 5)) * 100
}

// StoredOverall reads back the submit-time overall percentage persisted
// under the survey family's storage key. A stored value that parses as a
// finite number is authoritative, recomputing against a later schema
// edit would drift from what the respondent saw.
func StoredOverall(survey domains.SurveyDefinition, answers domains.AnswerMap) (float64, bool) {
	meta := registry.OverallMeta(survey)
	value, found := answers[meta.Key]
	if !found || value.Text == nil {
		return 0, false
	}
	trimmed := strings.TrimSpace(*value.Text)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}
