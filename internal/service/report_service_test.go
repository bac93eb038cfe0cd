package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"boardpulse/internal/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewUsesGroupedTally(t *testing.T) {
	store := &fakeSubmissionStore{
		counts: map[string]int{"board_evaluation": 3, "peer-evaluation": 1},
	}
	svc := NewReportService(store, time.Second)

	overview, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, overview.CountsBySurveySlug["board-evaluation"])
	assert.Equal(t, 1, overview.CountsBySurveySlug["peer-evaluation"])
	assert.False(t, overview.Partial)
	assert.Equal(t, 0, store.listCalls, "fallback recount should not run when the tally succeeds")
}

func TestOverviewFallsBackToRecountOnTallyFailure(t *testing.T) {
	store := &fakeSubmissionStore{
		countErr: errors.New("relation lost"),
		submissions: []domains.Submission{
			{ID: "a", SurveySlug: "board-evaluation"},
			{ID: "b", SurveySlug: "board_evaluation"},
		},
	}
	svc := NewReportService(store, time.Second)

	overview, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.CountsBySurveySlug["board-evaluation"])
	assert.True(t, overview.Partial)
	assert.Positive(t, store.listCalls)
}

func TestOverviewRecountsWhenTallyIsEmpty(t *testing.T) {
	store := &fakeSubmissionStore{
		counts: map[string]int{},
		submissions: []domains.Submission{
			{ID: "a", SurveySlug: "board-evaluation"},
		},
	}
	svc := NewReportService(store, time.Second)

	overview, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, overview.CountsBySurveySlug["board-evaluation"])
}

func TestOverviewAllSourcesDown(t *testing.T) {
	store := &fakeSubmissionStore{
		countErr: errors.New("down"),
		listErr:  errors.New("down"),
	}
	svc := NewReportService(store, time.Second)

	_, err := svc.Overview(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoUsableSource)
}

func TestOverviewFiltersAndStripsRecent(t *testing.T) {
	store := &fakeSubmissionStore{
		counts: map[string]int{"board-evaluation": 2},
		submissions: []domains.Submission{
			{ID: "a", SurveySlug: "board_evaluation", Data: []byte(`{"answers":{}}`)},
			{ID: "b", SurveySlug: "peer-evaluation", Data: []byte(`{"answers":{}}`)},
		},
	}
	svc := NewReportService(store, time.Second)

	overview, err := svc.Overview(context.Background(), "board")
	require.NoError(t, err)

	require.Len(t, overview.Surveys, 1)
	assert.Equal(t, "board-evaluation", overview.Surveys[0].Slug)

	require.Len(t, overview.RecentSubmissions, 1)
	assert.Equal(t, "board-evaluation", overview.RecentSubmissions[0].SurveySlug)
	assert.Nil(t, overview.RecentSubmissions[0].Data, "overview rows must not carry raw payloads")
}

func TestResultsNormalizesDriftedSlugs(t *testing.T) {
	store := &fakeSubmissionStore{submissions: []domains.Submission{
		{ID: "a", SurveySlug: "board_evaluation"},
		{ID: "b", SurveySlug: "board-evaluation"},
	}}
	svc := NewReportService(store, time.Second)

	results, err := svc.Results(context.Background(), "Board-Evaluation")
	require.NoError(t, err)

	assert.Equal(t, "board-evaluation", results.Survey.Slug)
	require.Len(t, results.Submissions, 2)
	for _, submission := range results.Submissions {
		assert.Equal(t, "board-evaluation", submission.SurveySlug)
	}
}

func TestResultsFetchIsTimeoutBounded(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewReportService(store, time.Second)

	_, err := svc.Results(context.Background(), "board-evaluation")
	require.NoError(t, err)

	require.Len(t, store.listCtxDeadlines, 1)
	assert.True(t, store.listCtxDeadlines[0], "submission fetch must carry a deadline")
}

func TestResultsUnknownSurvey(t *testing.T) {
	svc := NewReportService(&fakeSubmissionStore{}, time.Second)

	_, err := svc.Results(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestAnalysisScoresSubmissions(t *testing.T) {
	store := &fakeSubmissionStore{submissions: []domains.Submission{
		{ID: "a", SurveySlug: "board-evaluation", Data: answersJSON(map[string]any{
			"board_composition_diverse_mix": "Strongly Agree",
		})},
	}}
	svc := NewReportService(store, time.Second)

	analysis, err := svc.Analysis(context.Background(), "board-evaluation")
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.ScoredSubmissionCount)
	assert.InDelta(t, 100.0, analysis.OverallAveragePercentage, 0.01)
	assert.Equal(t, "Overall Percentage A", analysis.OverallLabel)
}

func TestSubmissionByID(t *testing.T) {
	store := &fakeSubmissionStore{submissions: []domains.Submission{
		{ID: "sub-9", SurveySlug: "board_evaluation", Data: answersJSON(nil)},
	}}
	svc := NewReportService(store, time.Second)

	detail, err := svc.SubmissionByID(context.Background(), "sub-9")
	require.NoError(t, err)

	assert.Equal(t, "board-evaluation", detail.Submission.SurveySlug)
	assert.Equal(t, "board-evaluation", detail.Survey.Slug)
	assert.NotEmpty(t, detail.Survey.Sections)
}
