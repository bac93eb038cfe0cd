package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"boardpulse/internal/domains"
	"boardpulse/internal/registry"
	"boardpulse/internal/scoring"
	"boardpulse/internal/storage"

	"golang.org/x/sync/errgroup"
)

const recentSubmissionLimit = 50

type ReportService struct {
	provider     SubmissionReader
	fetchTimeout time.Duration
}

type SubmissionReader interface {
	ListBySurveySlugs(ctx context.Context, slugs []string) ([]domains.Submission, error)
	ListRecent(ctx context.Context, limit int) ([]domains.Submission, error)
	GetSubmissionByID(ctx context.Context, id string) (domains.Submission, error)
	CountBySurveySlug(ctx context.Context) (map[string]int, error)
}

func NewReportService(provider SubmissionReader, fetchTimeout time.Duration) *ReportService {
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &ReportService{provider: provider, fetchTimeout: fetchTimeout}
}

// Overview builds the admin landing payload: definitions, recent
// submissions and reconciled per-survey counts, all optionally filtered
// by a search term.
func (s *ReportService) Overview(ctx context.Context, q string) (domains.Overview, error) {
	q = strings.ToLower(strings.TrimSpace(q))

	surveys := registry.Surveys()
	if q != "" {
		var filtered []domains.SurveyDefinition
		for _, survey := range surveys {
			if strings.Contains(strings.ToLower(survey.Title), q) ||
				strings.Contains(strings.ToLower(survey.Description), q) {
				filtered = append(filtered, survey)
			}
		}
		surveys = filtered
	}

	recent, err := s.provider.ListRecent(ctx, recentSubmissionLimit)
	if err != nil {
		slog.Error("list recent submissions failed", "err", err)
		recent = nil
	}
	var recentOut []domains.Submission
	for _, submission := range recent {
		submission.SurveySlug = registry.CanonicalSlug(submission.SurveySlug)
		if q != "" && !matchesQuery(submission, q) {
			continue
		}
		submission.Data = nil
		recentOut = append(recentOut, submission)
	}

	counts, partial, err := s.reconciledCounts(ctx)
	if err != nil {
		return domains.Overview{}, err
	}

	return domains.Overview{
		Surveys:            surveys,
		RecentSubmissions:  recentOut,
		CountsBySurveySlug: counts,
		Partial:            partial,
	}, nil
}

func matchesQuery(submission domains.Submission, q string) bool {
	if strings.Contains(strings.ToLower(submission.SurveySlug), q) {
		return true
	}
	if submission.User != nil && strings.Contains(strings.ToLower(submission.User.Email), q) {
		return true
	}
	return strings.Contains(strings.ToLower(submission.ID), q)
}

// countSource is one named strategy for producing per-survey counts.
// Sources are tried in order; each either succeeds with a full map or
// fails as a whole.
type countSource struct {
	name  string
	fetch func(ctx context.Context) (map[string]int, bool, error)
}

// reconciledCounts runs the grouped tally and, when it fails or reports
// no submissions at all, recounts from per-survey listings, merging the
// two by element-wise maximum so a stale zero never overwrites a later
// nonzero number. Only both sources failing is an error.
func (s *ReportService) reconciledCounts(ctx context.Context) (map[string]int, bool, error) {
	sources := []countSource{
		{name: "grouped-tally", fetch: s.groupedCounts},
		{name: "per-survey-listing", fetch: s.recountPerSurvey},
	}

	merged := map[string]int{}
	partial := false
	succeeded := 0

	for i, source := range sources {
		counts, sourcePartial, err := source.fetch(ctx)
		if err != nil {
			slog.Error("count source failed", "source", source.name, "err", err)
			partial = true
			continue
		}
		succeeded++
		partial = partial || sourcePartial
		merged = scoring.MergeCounts(merged, counts)

		// The fallback recount only runs when the primary tally failed
		// or claims an empty dataset.
		if i == 0 && total(counts) > 0 {
			break
		}
	}

	if succeeded == 0 {
		return nil, false, ErrNoUsableSource
	}
	return merged, partial, nil
}

func total(counts map[string]int) int {
	sum := 0
	for _, count := range counts {
		sum += count
	}
	return sum
}

func (s *ReportService) groupedCounts(ctx context.Context) (map[string]int, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	counts, err := s.provider.CountBySurveySlug(ctx)
	if err != nil {
		return nil, false, err
	}
	return counts, false, nil
}

// recountPerSurvey lists each survey's submissions concurrently, each
// fetch bounded by its own timeout. One survey failing drops only that
// survey's contribution and marks the result partial; every survey
// failing is an error.
func (s *ReportService) recountPerSurvey(ctx context.Context) (map[string]int, bool, error) {
	surveys := registry.Surveys()

	var mu sync.Mutex
	counts := make(map[string]int, len(surveys))
	failures := 0

	g, gctx := errgroup.WithContext(ctx)
	for _, survey := range surveys {
		survey := survey
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
			defer cancel()

			submissions, err := s.provider.ListBySurveySlugs(fetchCtx, registry.SlugVariants(survey.Slug))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("recount survey failed", "survey", survey.Slug, "err", err)
				failures++
				return nil
			}

			normalized := registry.Normalize(survey.Slug)
			count := 0
			for _, submission := range submissions {
				if registry.Normalize(submission.SurveySlug) == normalized {
					count++
				}
			}
			counts[survey.Slug] = count
			return nil
		})
	}
	_ = g.Wait()

	if failures == len(surveys) && len(surveys) > 0 {
		return nil, false, ErrNoUsableSource
	}
	return counts, failures > 0, nil
}

// Results returns a survey with its submissions, slug-normalized and
// newest first.
func (s *ReportService) Results(ctx context.Context, slug string) (domains.SurveyResults, error) {
	survey, ok := registry.GetSurveyBySlug(slug)
	if !ok {
		return domains.SurveyResults{}, ErrSurveyNotFound
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	submissions, err := s.provider.ListBySurveySlugs(fetchCtx, registry.SlugVariants(slug))
	if err != nil {
		return domains.SurveyResults{}, err
	}

	normalized := registry.Normalize(survey.Slug)
	var matched []domains.Submission
	for _, submission := range submissions {
		if registry.Normalize(submission.SurveySlug) != normalized {
			continue
		}
		submission.SurveySlug = survey.Slug
		matched = append(matched, submission)
	}

	return domains.SurveyResults{Survey: survey, Submissions: matched}, nil
}

// Analysis aggregates one survey's submissions into the reporting
// payload. Scores are derived fresh on every call.
func (s *ReportService) Analysis(ctx context.Context, slug string) (domains.ResultsAnalysis, error) {
	results, err := s.Results(ctx, slug)
	if err != nil {
		return domains.ResultsAnalysis{}, err
	}
	return scoring.Analyze(results.Survey, results.Submissions), nil
}

// SubmissionByID returns one submission together with its definition,
// normalized for display.
func (s *ReportService) SubmissionByID(ctx context.Context, id string) (domains.SubmissionDetail, error) {
	submission, err := s.provider.GetSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.SubmissionDetail{}, ErrSubmissionNotFound
		}
		return domains.SubmissionDetail{}, err
	}

	survey, ok := registry.GetSurveyBySlug(submission.SurveySlug)
	if !ok {
		return domains.SubmissionDetail{}, ErrSurveyNotFound
	}
	submission.SurveySlug = survey.Slug

	return domains.SubmissionDetail{
		Survey:     registry.NormalizedDefinition(survey),
		Submission: submission,
	}, nil
}
