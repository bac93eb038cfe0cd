package service

import (
	"context"
	"encoding/json"
	"testing"

	"boardpulse/internal/domains"
	"boardpulse/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCanonicalizesSlugAndStampsOverall(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(store)

	_, err := svc.Submit(context.Background(), "Board_Evaluation", 7, answersJSON(map[string]any{
		"board_composition_diverse_mix": "Strongly Agree",
	}))
	require.NoError(t, err)
	require.Len(t, store.saved, 1)

	assert.Equal(t, "board-evaluation", store.saved[0].SurveySlug)
	assert.Equal(t, int64(7), store.saved[0].AccountID)

	answers := scoring.ExtractAnswers(store.saved[0].Data)
	stamped, ok := answers["overall_percentage_a"]
	require.True(t, ok)
	assert.NotEmpty(t, stamped.String())
}

func TestSubmitKeepsClientOverall(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(store)

	_, err := svc.Submit(context.Background(), "board-evaluation", 1, answersJSON(map[string]any{
		"board_composition_diverse_mix": "Agree",
		"overall_percentage_a":          "83.3",
	}))
	require.NoError(t, err)

	answers := scoring.ExtractAnswers(store.saved[0].Data)
	assert.Equal(t, "83.3", answers["overall_percentage_a"].String())
}

func TestSubmitUnknownSurvey(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionStore{})

	_, err := svc.Submit(context.Background(), "no-such-survey", 1, answersJSON(nil))
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestSubmitAcceptsFlatPayload(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(store)

	flat, _ := json.Marshal(map[string]any{"board_composition_diverse_mix": "Disagree"})
	_, err := svc.Submit(context.Background(), "board-evaluation", 1, flat)
	require.NoError(t, err)

	answers := scoring.ExtractAnswers(store.saved[0].Data)
	assert.Equal(t, "Disagree", answers["board_composition_diverse_mix"].String())
}

func TestListMineCanonicalizesSlugs(t *testing.T) {
	account := int64(4)
	store := &fakeSubmissionStore{submissions: []domains.Submission{
		{ID: "a", SurveySlug: "board_evaluation", AccountID: &account},
	}}
	svc := NewSubmissionService(store)

	mine, err := svc.ListMine(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "board-evaluation", mine[0].SurveySlug)
}

func TestImportProbesContainersAndSkipsEmpties(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(store)

	payload, _ := json.Marshal(map[string]any{
		"rows": []any{
			map[string]any{"answers": map[string]any{"board_composition_diverse_mix": "Agree"}},
			map[string]any{},
			map[string]any{"vision_strategy": "Strongly Agree"},
		},
	})

	imported, err := svc.Import(context.Background(), "board-evaluation", 2, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Len(t, store.saved, 2)
}

func TestImportNothingUsable(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionStore{})

	_, err := svc.Import(context.Background(), "board-evaluation", 2, json.RawMessage(`{"rows":[]}`))
	assert.ErrorIs(t, err, ErrEmptyImport)
}
