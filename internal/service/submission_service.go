package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"boardpulse/internal/domains"
	"boardpulse/internal/registry"
	"boardpulse/internal/scoring"
)

type SubmissionService struct {
	provider SubmissionWriter
}

type SubmissionWriter interface {
	SaveSubmission(ctx context.Context, toSave domains.SubmissionToSave) (domains.Submission, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domains.Submission, error)
}

func NewSubmissionService(provider SubmissionWriter) *SubmissionService {
	return &SubmissionService{provider: provider}
}

// Submit stores one survey submission. The payload may arrive in the
// nested or flat answer shape; it is canonicalized to `{"answers":...}`
// before persisting, and the family-specific overall percentage is
// stamped server-side when the client did not send one.
func (s *SubmissionService) Submit(ctx context.Context, slug string, accountID int64, payload json.RawMessage) (domains.Submission, error) {
	survey, ok := registry.GetSurveyBySlug(slug)
	if !ok {
		return domains.Submission{}, ErrSurveyNotFound
	}

	answers := scoring.ExtractAnswers(payload)
	stampOverall(survey, answers)

	data, err := json.Marshal(struct {
		Answers domains.AnswerMap `json:"answers"`
	}{Answers: answers})
	if err != nil {
		return domains.Submission{}, fmt.Errorf("encode answers: %w", err)
	}

	saved, err := s.provider.SaveSubmission(ctx, domains.SubmissionToSave{
		SurveySlug: survey.Slug,
		AccountID:  accountID,
		Data:       data,
	})
	if err != nil {
		slog.Error("save submission failed", "err", err, "survey", survey.Slug)
		return domains.Submission{}, err
	}
	return saved, nil
}

func (s *SubmissionService) ListMine(ctx context.Context, accountID int64) ([]domains.Submission, error) {
	submissions, err := s.provider.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for i := range submissions {
		submissions[i].SurveySlug = registry.CanonicalSlug(submissions[i].SurveySlug)
	}
	return submissions, nil
}

// Import restores submissions exported from an earlier system. The
// payload may be a bare array or wrap its list under any of the known
// container fields; each item is extracted with the same shape
// tolerance as live submissions. Items with empty answer maps are
// skipped rather than failing the batch.
func (s *SubmissionService) Import(ctx context.Context, slug string, accountID int64, payload json.RawMessage) (int, error) {
	survey, ok := registry.GetSurveyBySlug(slug)
	if !ok {
		return 0, ErrSurveyNotFound
	}

	items := scoring.ExtractSubmissionList(payload)
	if items == nil {
		return 0, ErrEmptyImport
	}

	imported := 0
	for _, item := range items {
		answers := scoring.ExtractAnswers(item)
		if len(answers) == 0 {
			continue
		}
		stampOverall(survey, answers)

		data, err := json.Marshal(struct {
			Answers domains.AnswerMap `json:"answers"`
		}{Answers: answers})
		if err != nil {
			continue
		}

		if _, err := s.provider.SaveSubmission(ctx, domains.SubmissionToSave{
			SurveySlug: survey.Slug,
			AccountID:  accountID,
			Data:       data,
		}); err != nil {
			slog.Error("import submission failed", "err", err, "survey", survey.Slug)
			continue
		}
		imported++
	}

	if imported == 0 {
		return 0, ErrEmptyImport
	}
	return imported, nil
}

// stampOverall writes the submit-time overall percentage under the
// survey family's storage key, unless the payload already carries a
// usable one. Imported legacy rows with nothing scoreable are left
// unstamped so they are not misread as a 0% score.
func stampOverall(survey domains.SurveyDefinition, answers domains.AnswerMap) {
	if _, ok := scoring.StoredOverall(survey, answers); ok {
		return
	}
	if !scoring.ScoreSubmission(survey, answers).Scored {
		return
	}
	overall := scoring.SubmitTimeOverall(survey, answers)
	meta := registry.OverallMeta(survey)
	answers[meta.Key] = domains.StringAnswer(strconv.FormatFloat(overall, 'f', 1, 64))
}
