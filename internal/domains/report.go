package domains

// SectionAverage reports the pooled score for one survey section across
// every scored answer, expressed as a 0-100 percentage.
type SectionAverage struct {
	SectionTitle string  `json:"sectionTitle"`
	Percentage   float64 `json:"percentage"`
	Responses    int     `json:"responses"`
}

// DistributionSlice is one performance band with its submission count.
type DistributionSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// ScoreResult is derived per submission on every read, never persisted.
// Scored is false when the submission answered no scoreable question, in
// which case the percentage and band carry no meaning.
type ScoreResult struct {
	OverallPercentage float64          `json:"overallPercentage"`
	PerformanceBand   string           `json:"performanceBand"`
	SectionAverages   []SectionAverage `json:"sectionAverages"`
	Scored            bool             `json:"scored"`
}

// ResultsAnalysis is the per-survey aggregate sent to the reporting
// layer.
type ResultsAnalysis struct {
	SectionAverages          []SectionAverage    `json:"sectionAverages"`
	Distribution             []DistributionSlice `json:"distribution"`
	OverallAveragePercentage float64             `json:"overallAveragePercentage"`
	ScoredSubmissionCount    int                 `json:"scoredSubmissionCount"`
	OverallLabel             string              `json:"overallLabel"`
}

// Overview is the admin landing payload. Partial is set when one of the
// count sources failed and the numbers were served from the surviving
// source alone.
type Overview struct {
	Surveys            []SurveyDefinition `json:"surveys"`
	RecentSubmissions  []Submission       `json:"recentSubmissions"`
	CountsBySurveySlug map[string]int     `json:"countsBySurveySlug"`
	Partial            bool               `json:"partial,omitempty"`
}

// SurveyResults pairs a definition with its normalized submissions.
type SurveyResults struct {
	Survey      SurveyDefinition `json:"survey"`
	Submissions []Submission     `json:"submissions"`
}

// SubmissionDetail is one submission with the definition it belongs to.
type SubmissionDetail struct {
	Survey     SurveyDefinition `json:"survey"`
	Submission Submission       `json:"submission"`
}
