package service

import (
	"context"
	"strings"
	"time"

	"boardpulse/internal/domains"
	"boardpulse/internal/registry"
	"boardpulse/internal/scoring"
)

type ExportService struct {
	provider     SubmissionReader
	fetchTimeout time.Duration
}

func NewExportService(provider SubmissionReader, fetchTimeout time.Duration) *ExportService {
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &ExportService{provider: provider, fetchTimeout: fetchTimeout}
}

// CSVExport renders one survey's submissions as CSV. Every cell is
// quoted, with embedded quotes doubled; downstream spreadsheet imports
// rely on that.
func (s *ExportService) CSVExport(ctx context.Context, slug string) (filename string, body []byte, err error) {
	survey, ok := registry.GetSurveyBySlug(slug)
	if !ok {
		return "", nil, ErrSurveyNotFound
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	submissions, err := s.provider.ListBySurveySlugs(fetchCtx, registry.SlugVariants(slug))
	if err != nil {
		return "", nil, err
	}

	normalized := registry.Normalize(survey.Slug)
	keys := survey.QuestionKeys()

	var b strings.Builder
	writeCSVRow(&b, append([]string{"submission_id", "submitted_at", "user_email"}, keys...))

	for _, submission := range submissions {
		if registry.Normalize(submission.SurveySlug) != normalized {
			continue
		}

		email := ""
		if submission.User != nil {
			email = submission.User.Email
		}
		row := []string{
			submission.ID,
			submission.CreatedAt.UTC().Format(time.RFC3339),
			email,
		}

		answers := scoring.ExtractAnswers(submission.Data)
		for _, key := range keys {
			row = append(row, cellText(answers[key]))
		}
		writeCSVRow(&b, row)
	}

	return survey.Slug + "-submissions.csv", []byte(b.String()), nil
}

func cellText(value domains.AnswerValue) string {
	if value.List != nil {
		return strings.Join(value.List, "; ")
	}
	return value.String()
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
