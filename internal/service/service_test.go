package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"boardpulse/internal/domains"
)

// fakeSubmissionStore backs the service tests for both the read and
// write sides of the submission provider.
type fakeSubmissionStore struct {
	submissions []domains.Submission
	saved       []domains.SubmissionToSave

	saveErr   error
	listErr   error
	recentErr error
	countErr  error
	counts    map[string]int

	listCalls        int
	countCalls       int
	listCtxDeadlines []bool
}

func (f *fakeSubmissionStore) SaveSubmission(_ context.Context, toSave domains.SubmissionToSave) (domains.Submission, error) {
	if f.saveErr != nil {
		return domains.Submission{}, f.saveErr
	}
	f.saved = append(f.saved, toSave)
	return domains.Submission{
		ID:         "sub-1",
		SurveySlug: toSave.SurveySlug,
		Data:       toSave.Data,
		CreatedAt:  time.Now(),
	}, nil
}

func (f *fakeSubmissionStore) ListByAccount(_ context.Context, accountID int64) ([]domains.Submission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domains.Submission
	for _, s := range f.submissions {
		if s.AccountID != nil && *s.AccountID == accountID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionStore) ListBySurveySlugs(ctx context.Context, slugs []string) ([]domains.Submission, error) {
	f.listCalls++
	_, hasDeadline := ctx.Deadline()
	f.listCtxDeadlines = append(f.listCtxDeadlines, hasDeadline)
	if f.listErr != nil {
		return nil, f.listErr
	}
	wanted := map[string]bool{}
	for _, slug := range slugs {
		wanted[slug] = true
	}
	var out []domains.Submission
	for _, s := range f.submissions {
		if wanted[s.SurveySlug] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionStore) ListRecent(_ context.Context, limit int) ([]domains.Submission, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if len(f.submissions) > limit {
		return f.submissions[:limit], nil
	}
	return f.submissions, nil
}

func (f *fakeSubmissionStore) GetSubmissionByID(_ context.Context, id string) (domains.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return domains.Submission{}, errors.New("not found")
}

func (f *fakeSubmissionStore) CountBySurveySlug(_ context.Context) (map[string]int, error) {
	f.countCalls++
	if f.countErr != nil {
		return nil, f.countErr
	}
	return f.counts, nil
}

func answersJSON(pairs map[string]any) json.RawMessage {
	data, _ := json.Marshal(map[string]any{"answers": pairs})
	return data
}
