package scoring

import (
	"boardpulse/internal/domains"
	"boardpulse/internal/registry"
)

// Distribution slice order and colors, fixed for the reporting layer.
var bands = []struct {
	label string
	color string
}{
	{BandExcellent, "#1f9d55"},
	{BandGood, "#2f7ed8"},
	{BandFair, "#d9a441"},
	{BandPoor, "#d64545"},
}

type sectionTally struct {
	sum   float64
	count int
}

type submissionScore struct {
	sum       float64
	count     int
	sections  []sectionTally
	stored    float64
	hasStored bool
}

func scoreOne(survey domains.SurveyDefinition, answers domains.AnswerMap) submissionScore {
	score := submissionScore{sections: make([]sectionTally, len(survey.Sections))}
	if stored, ok := StoredOverall(survey, answers); ok {
		score.stored = stored
		score.hasStored = true
	}

	for si, section := range survey.Sections {
		for _, question := range section.Questions {
			if !IsScoreable(question) {
				continue
			}
			value, ok := QuestionScore(question, answers[question.Key])
			if !ok {
				continue
			}
			score.sum += value
			score.count++
			score.sections[si].sum += value
			score.sections[si].count++
		}
	}
	return score
}

// overall resolves the submission's overall percentage: the stored
// submit-time value when present, a fresh computation otherwise. The
// boolean is false when nothing scoreable was answered and no value was
// stored; such submissions contribute no overall score.
func (s submissionScore) overall() (float64, bool) {
	if s.hasStored {
		return s.stored, true
	}
	if s.count == 0 {
		return 0, false
	}
	return (s.sum / (float64(s.count) * 5)) * 100, true
}

// ScoreSubmission derives the per-submission result: overall percentage,
// performance band and per-section averages. Pure and idempotent, it is
// recomputed on every read and never persisted.
func ScoreSubmission(survey domains.SurveyDefinition, answers domains.AnswerMap) domains.ScoreResult {
	score := scoreOne(survey, answers)

	var result domains.ScoreResult
	for si, section := range survey.Sections {
		tally := score.sections[si]
		if tally.count == 0 {
			continue
		}
		result.SectionAverages = append(result.SectionAverages, domains.SectionAverage{
			SectionTitle: section.Title,
			Percentage:   (tally.sum / (float64(tally.count) * 5)) * 100,
			Responses:    tally.count,
		})
	}

	overall, ok := score.overall()
	if !ok {
		return result
	}
	result.OverallPercentage = overall
	result.PerformanceBand = PerformanceBand(overall)
	result.Scored = true
	return result
}

// Analyze aggregates a survey's submissions into the reporting payload:
// band distribution, pooled section averages and the mean of the
// per-submission overall percentages. Submissions with zero scoreable
// answers are excluded from the count and the mean, not treated as 0%.
func Analyze(survey domains.SurveyDefinition, submissions []domains.Submission) domains.ResultsAnalysis {
	meta := registry.OverallMeta(survey)

	sectionAcc := make([]sectionTally, len(survey.Sections))
	bandCounts := map[string]int{}
	scoredCount := 0
	totalPercentage := 0.0

	for _, submission := range submissions {
		answers := ExtractAnswers(submission.Data)
		score := scoreOne(survey, answers)

		for si := range sectionAcc {
			sectionAcc[si].sum += score.sections[si].sum
			sectionAcc[si].count += score.sections[si].count
		}

		if overall, ok := score.overall(); ok {
			scoredCount++
			totalPercentage += overall
			bandCounts[PerformanceBand(overall)]++
		}
	}

	var sectionAverages []domains.SectionAverage
	for si, section := range survey.Sections {
		tally := sectionAcc[si]
		if tally.count == 0 {
			continue
		}
		sectionAverages = append(sectionAverages, domains.SectionAverage{
			SectionTitle: section.Title,
			Percentage:   (tally.sum / (float64(tally.count) * 5)) * 100,
			Responses:    tally.count,
		})
	}

	distribution := make([]domains.DistributionSlice, 0, len(bands))
	for _, band := range bands {
		distribution = append(distribution, domains.DistributionSlice{
			Label: band.label,
			Count: bandCounts[band.label],
			Color: band.color,
		})
	}

	analysis := domains.ResultsAnalysis{
		SectionAverages:       sectionAverages,
		Distribution:          distribution,
		ScoredSubmissionCount: scoredCount,
		OverallLabel:          meta.Label,
	}
	if scoredCount > 0 {
		analysis.OverallAveragePercentage = totalPercentage / float64(scoredCount)
	}
	return analysis
}

// MergeCounts reconciles two independently maintained per-survey count
// tallies by taking the element-wise maximum under normalized slug keys.
// A stale zero from one source never overwrites a later nonzero number
// from the other.
func MergeCounts(primary, fallback map[string]int) map[string]int {
	merged := make(map[string]int, len(primary)+len(fallback))
	byNormalized := make(map[string]string, len(primary)+len(fallback))

	put := func(slug string, count int) {
		normalized := registry.Normalize(slug)
		canonical, seen := byNormalized[normalized]
		if !seen {
			canonical = registry.CanonicalSlug(slug)
			byNormalized[normalized] = canonical
		}
		if count > merged[canonical] {
			merged[canonical] = count
		} else if _, exists := merged[canonical]; !exists {
			merged[canonical] = count
		}
	}

	for slug, count := range primary {
		put(slug, count)
	}
	for slug, count := range fallback {
		put(slug, count)
	}
	return merged
}
