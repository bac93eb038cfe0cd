package providers

import (
	"context"
	"fmt"

	"boardpulse/internal/domains"
	"boardpulse/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmissionProvider struct {
	db *pgxpool.Pool
}

func NewSubmissionProvider(db *pgxpool.Pool) *SubmissionProvider {
	return &SubmissionProvider{
		db: db,
	}
}

const submissionSelect = `
          SELECT s.id, s.survey_slug, s.account_id, s.data, s.created_at, a.email
          FROM submissions s
          LEFT JOIN accounts a ON a.id = s.account_id`

func (p *SubmissionProvider) SaveSubmission(ctx context.Context, toSave domains.SubmissionToSave) (domains.Submission, error) {
	id := uuid.NewString()

	var saved domains.Submission
	if err := p.db.QueryRow(ctx,
		`INSERT INTO submissions (id, survey_slug, account_id, data, created_at)
         VALUES ($1, $2, $3, $4, NOW())
         RETURNING id, survey_slug, account_id, data, created_at`,
		id, toSave.SurveySlug, toSave.AccountID, toSave.Data,
	).Scan(&saved.ID, &saved.SurveySlug, &saved.AccountID, &saved.Data, &saved.CreatedAt); err != nil {
		return domains.Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return saved, nil
}

func (p *SubmissionProvider) ListBySurveySlugs(ctx context.Context, slugs []string) ([]domains.Submission, error) {
	rows, err := p.db.Query(ctx,
		submissionSelect+` WHERE s.survey_slug = ANY($1) ORDER BY s.created_at DESC`,
		slugs,
	)
	if err != nil {
		return nil, fmt.Errorf("select submissions by slugs: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (p *SubmissionProvider) ListRecent(ctx context.Context, limit int) ([]domains.Submission, error) {
	rows, err := p.db.Query(ctx,
		submissionSelect+` ORDER BY s.created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select recent submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (p *SubmissionProvider) ListByAccount(ctx context.Context, accountID int64) ([]domains.Submission, error) {
	rows, err := p.db.Query(ctx,
		submissionSelect+` WHERE s.account_id = $1 ORDER BY s.created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("select submissions by account: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (p *SubmissionProvider) GetSubmissionByID(ctx context.Context, id string) (domains.Submission, error) {
	rows, err := p.db.Query(ctx,
		submissionSelect+` WHERE s.id = $1`,
		id,
	)
	if err != nil {
		return domains.Submission{}, fmt.Errorf("select submission by id: %w", err)
	}
	defer rows.Close()

	submissions, err := collectSubmissions(rows)
	if err != nil {
		return domains.Submission{}, err
	}
	if len(submissions) == 0 {
		return domains.Submission{}, storage.ErrNotFound
	}
	return submissions[0], nil
}

// CountBySurveySlug is the primary grouped tally. Slugs are returned as
// stored, historical variants included; the caller reconciles them under
// normalized keys.
func (p *SubmissionProvider) CountBySurveySlug(ctx context.Context) (map[string]int, error) {
	rows, err := p.db.Query(ctx,
		`SELECT survey_slug, COUNT(*) FROM submissions GROUP BY survey_slug`,
	)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slug string
		var count int
		if err := rows.Scan(&slug, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[slug] = count
	}
	return counts, rows.Err()
}

func collectSubmissions(rows pgx.Rows) ([]domains.Submission, error) {
	var submissions []domains.Submission
	for rows.Next() {
		var submission domains.Submission
		var email *string
		if err := rows.Scan(
			&submission.ID,
			&submission.SurveySlug,
			&submission.AccountID,
			&submission.Data,
			&submission.CreatedAt,
			&email,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if email != nil {
			submission.User = &domains.SubmissionUser{Email: *email}
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return submissions, nil
}
