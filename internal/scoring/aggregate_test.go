package scoring

import (
	"encoding/json"
	"testing"

	"boardpulse/internal/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRatingSurvey() domains.SurveyDefinition {
	return domains.SurveyDefinition{
		Slug:  "pulse-check",
		Title: "Pulse Check",
		Sections: []domains.SurveySection{
			{
				Title: "Section A",
				Questions: []domains.SurveyQuestion{
					ratingQuestion("q1"),
					ratingQuestion("q2"),
					{Key: "comments", Type: domains.QuestionLongText},
				},
			},
		},
	}
}

func submissionWith(t *testing.T, answers map[string]any) domains.Submission {
	t.Helper()
	data, err := json.Marshal(map[string]any{"answers": answers})
	require.NoError(t, err)
	return domains.Submission{ID: "s", SurveySlug: "pulse-check", Data: data}
}

func TestScoreSubmissionFullSection(t *testing.T) {
	survey := twoRatingSurvey()
	result := ScoreSubmission(survey, domains.AnswerMap{
		"q1": domains.StringAnswer("5"),
		"q2": domains.StringAnswer("3"),
	})

	require.True(t, result.Scored)
	assert.InDelta(t, 80.0, result.OverallPercentage, 1e-9)
	assert.Equal(t, BandExcellent, result.PerformanceBand)

	require.Len(t, result.SectionAverages, 1)
	assert.InDelta(t, 80.0, result.SectionAverages[0].Percentage, 1e-9)
	assert.Equal(t, 2, result.SectionAverages[0].Responses)
}

func TestScoreSubmissionPartialAnswers(t *testing.T) {
	survey := twoRatingSurvey()
	result := ScoreSubmission(survey, domains.AnswerMap{
		"q1": domains.StringAnswer("1"),
	})

	require.True(t, result.Scored)
	assert.InDelta(t, 20.0, result.OverallPercentage, 1e-9)
	assert.Equal(t, BandPoor, result.PerformanceBand)
	require.Len(t, result.SectionAverages, 1)
	assert.Equal(t, 1, result.SectionAverages[0].Responses)
}

func TestScoreSubmissionNothingScoreable(t *testing.T) {
	survey := twoRatingSurvey()
	result := ScoreSubmission(survey, domains.AnswerMap{
		"comments": domains.StringAnswer("all good"),
	})

	assert.False(t, result.Scored)
	assert.Empty(t, result.SectionAverages)
}

func TestScoreSubmissionStoredOverallWins(t *testing.T) {
	survey := twoRatingSurvey()
	result := ScoreSubmission(survey, domains.AnswerMap{
		"q1":                 domains.StringAnswer("1"),
		"overall_percentage": domains.StringAnswer("95.0"),
	})

	require.True(t, result.Scored)
	assert.InDelta(t, 95.0, result.OverallPercentage, 1e-9)
	assert.Equal(t, BandExcellent, result.PerformanceBand)
}

func TestAnalyzeDistributionAndMean(t *testing.T) {
	survey := twoRatingSurvey()
	submissions := []domains.Submission{
		// 90% stored, Excellent.
		submissionWith(t, map[string]any{"overall_percentage": "90"}),
		// (5+... ) computed: q1=3 q2=2 -> 50%, Fair.
		submissionWith(t, map[string]any{"q1": "3", "q2": "2"}),
		// Nothing scoreable; excluded entirely.
		submissionWith(t, map[string]any{"comments": "n/a"}),
	}

	analysis := Analyze(survey, submissions)

	assert.Equal(t, 2, analysis.ScoredSubmissionCount)
	assert.InDelta(t, 70.0, analysis.OverallAveragePercentage, 1e-9)

	counts := map[string]int{}
	for _, slice := range analysis.Distribution {
		counts[slice.Label] = slice.Count
	}
	assert.Equal(t, map[string]int{BandExcellent: 1, BandGood: 0, BandFair: 1, BandPoor: 0}, counts)
	assert.Equal(t, "Overall Percentage", analysis.OverallLabel)
}

func TestAnalyzeSectionAveragesPooled(t *testing.T) {
	survey := twoRatingSurvey()
	submissions := []domains.Submission{
		submissionWith(t, map[string]any{"q1": "5"}),
		submissionWith(t, map[string]any{"q1": "3", "q2": "4"}),
	}

	analysis := Analyze(survey, submissions)
	require.Len(t, analysis.SectionAverages, 1)

	// Pooled totals, not per-submission means: (5+3+4)/(3*5)*100.
	assert.InDelta(t, 80.0, analysis.SectionAverages[0].Percentage, 1e-9)
	assert.Equal(t, 3, analysis.SectionAverages[0].Responses)
}

func TestAnalyzeEmptySectionOmitted(t *testing.T) {
	survey := twoRatingSurvey()
	survey.Sections = append(survey.Sections, domains.SurveySection{
		Title:     "Section B",
		Questions: []domains.SurveyQuestion{ratingQuestion("q3")},
	})

	analysis := Analyze(survey, []domains.Submission{
		submissionWith(t, map[string]any{"q1": "4"}),
	})

	require.Len(t, analysis.SectionAverages, 1)
	assert.Equal(t, "Section A", analysis.SectionAverages[0].SectionTitle)
}

func TestAnalyzeOutOfRangeRatingExcluded(t *testing.T) {
	survey := twoRatingSurvey()
	analysis := Analyze(survey, []domains.Submission{
		submissionWith(t, map[string]any{"q1": "6", "q2": "0"}),
	})

	assert.Equal(t, 0, analysis.ScoredSubmissionCount)
	assert.Empty(t, analysis.SectionAverages)
}

func TestAnalyzeFlatPayload(t *testing.T) {
	survey := twoRatingSurvey()
	data, err := json.Marshal(map[string]any{"q1": "5", "q2": "5"})
	require.NoError(t, err)

	analysis := Analyze(survey, []domains.Submission{{ID: "s", Data: data}})
	assert.Equal(t, 1, analysis.ScoredSubmissionCount)
	assert.InDelta(t, 100.0, analysis.OverallAveragePercentage, 1e-9)
}

func TestMergeCounts(t *testing.T) {
	primary := map[string]int{"board-evaluation": 0, "peer-evaluation": 2}
	fallback := map[string]int{"board_evaluation": 3, "peer-evaluation": 1}

	merged := MergeCounts(primary, fallback)

	// Element-wise max under normalized slug keys; zero never wins.
	assert.Equal(t, 3, merged["board-evaluation"])
	assert.Equal(t, 2, merged["peer-evaluation"])
	assert.Len(t, merged, 2)
}
