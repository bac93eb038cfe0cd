package scoring

import (
	"testing"

	"boardpulse/internal/domains"
	"boardpulse/internal/registry"

	"github.com/stretchr/testify/assert"
)

func ratingQuestion(key string) domains.SurveyQuestion {
	return domains.SurveyQuestion{Key: key, Type: domains.QuestionRating5, Options: registry.RatingOptions}
}

func likertQuestion(key string) domains.SurveyQuestion {
	return domains.SurveyQuestion{Key: key, Type: domains.QuestionLikertAgree, Options: registry.AgreeOptions}
}

func TestIsScoreable(t *testing.T) {
	assert.True(t, IsScoreable(ratingQuestion("r")))
	assert.True(t, IsScoreable(likertQuestion("l")))
	assert.False(t, IsScoreable(domains.SurveyQuestion{Type: domains.QuestionLongText}))
	assert.False(t, IsScoreable(domains.SurveyQuestion{Type: domains.QuestionMultiSelect, Options: []string{"a", "b"}}))

	// Legacy five-point selects score even without the rating type.
	legacy := domains.SurveyQuestion{Type: domains.QuestionSingleSelect, Options: []string{"1", "2", "3", "4", "5"}}
	assert.True(t, IsScoreable(legacy))

	reordered := domains.SurveyQuestion{Type: domains.QuestionSingleSelect, Options: []string{"5", "4", "3", "2", "1"}}
	assert.False(t, IsScoreable(reordered))
}

func TestQuestionScoreRating(t *testing.T) {
	q := ratingQuestion("r")

	score, ok := QuestionScore(q, domains.StringAnswer("4"))
	assert.True(t, ok)
	assert.Equal(t, 4.0, score)

	for _, out := range []string{"6", "0", "-1", "abc", ""} {
		_, ok := QuestionScore(q, domains.StringAnswer(out))
		assert.False(t, ok, "value %q should not score", out)
	}

	_, ok = QuestionScore(q, domains.NullAnswer())
	assert.False(t, ok)
	_, ok = QuestionScore(q, domains.ListAnswer("4"))
	assert.False(t, ok)
}

func TestQuestionScoreLikert(t *testing.T) {
	q := likertQuestion("l")

	cases := []struct {
		value string
		want  float64
	}{
		{"Strongly Agree", 5},
		{" Strongly Agree ", 5},
		{"sTrOnGlY aGrEe", 5},
		{"Agree", 4},
		{"Neutral", 3},
		{"Disagree", 2},
		{"Strongly Disagree", 1},
	}
	for _, c := range cases {
		score, ok := QuestionScore(q, domains.StringAnswer(c.value))
		assert.True(t, ok, "value %q", c.value)
		assert.Equal(t, c.want, score, "value %q", c.value)
	}

	_, ok := QuestionScore(q, domains.StringAnswer("Somewhat Agree"))
	assert.False(t, ok)
}

func TestPerformanceBandBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79.9, BandGood},
		{60, BandGood},
		{59.9, BandFair},
		{40, BandFair},
		{39.9, BandPoor},
		{0, BandPoor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PerformanceBand(c.pct), "pct=%v", c.pct)
	}
}

func TestStoredOverall(t *testing.T) {
	board, _ := registry.GetSurveyBySlug("board-evaluation")

	value, ok := StoredOverall(board, domains.AnswerMap{"overall_percentage_a": domains.StringAnswer("87.5")})
	assert.True(t, ok)
	assert.Equal(t, 87.5, value)

	// The peer key is not read for a board survey.
	_, ok = StoredOverall(board, domains.AnswerMap{"overall_percentage_b": domains.StringAnswer("87.5")})
	assert.False(t, ok)

	for _, bad := range []string{"", "  ", "NaN", "Inf", "not-a-number"} {
		_, ok := StoredOverall(board, domains.AnswerMap{"overall_percentage_a": domains.StringAnswer(bad)})
		assert.False(t, ok, "stored %q", bad)
	}
}
