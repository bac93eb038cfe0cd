package registry

import (
	"testing"

	"boardpulse/internal/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFamily(t *testing.T) {
	board, _ := GetSurveyBySlug("board-evaluation")
	peer, _ := GetSurveyBySlug("peer-evaluation")

	assert.Equal(t, FamilyBoard, DetectFamily(board))
	assert.Equal(t, FamilyPeer, DetectFamily(peer))

	// A renamed board survey is still recognized by its signature keys.
	renamed := board
	renamed.Slug = "legacy-board-form"
	assert.Equal(t, FamilyBoard, DetectFamily(renamed))

	generic := domains.SurveyDefinition{Slug: "pulse-check"}
	assert.Equal(t, FamilyGeneric, DetectFamily(generic))
}

func TestOverallMeta(t *testing.T) {
	board, _ := GetSurveyBySlug("board-evaluation")
	peer, _ := GetSurveyBySlug("peer-evaluation")

	assert.Equal(t, "overall_percentage_a", OverallMeta(board).Key)
	assert.Equal(t, "overall_percentage_b", OverallMeta(peer).Key)
	assert.Equal(t, "overall_percentage", OverallMeta(domains.SurveyDefinition{Slug: "other"}).Key)
}

func TestSectionLetterForQuestion(t *testing.T) {
	cases := []struct {
		q    domains.SurveyQuestion
		want SectionLetter
	}{
		{domains.SurveyQuestion{Key: "compliance_legal"}, "G"},
		{domains.SurveyQuestion{Key: "meetings_frequency"}, "B"},
		{domains.SurveyQuestion{Key: "improvement_areas"}, "H"},
		// Unknown key falls back to the numbering bands.
		{domains.SurveyQuestion{Key: "mystery", DisplayNumber: 12}, "A"},
		{domains.SurveyQuestion{Key: "mystery", DisplayNumber: 33}, "C"},
		{domains.SurveyQuestion{Key: "mystery", DisplayNumber: 47}, "G"},
		{domains.SurveyQuestion{Key: "mystery", DisplayNumber: 99}, "H"},
		// No key match and no number at all lands in H.
		{domains.SurveyQuestion{Key: "mystery"}, "H"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SectionLetterForQuestion(c.q), "key=%s n=%d", c.q.Key, c.q.DisplayNumber)
	}
}

func TestNormalizeBoardSectionTitle(t *testing.T) {
	section := domains.SurveySection{
		Title: "Section Z: Mislabeled",
		Questions: []domains.SurveyQuestion{
			{Key: "compliance_legal"},
			{Key: "risk_management"},
		},
	}
	assert.Equal(t, "Section G: Compliance & Risk Management", NormalizeBoardSectionTitle(section))

	untouched := domains.SurveySection{Title: "Custom Section", Questions: []domains.SurveyQuestion{{Key: "something_else"}}}
	assert.Equal(t, "Custom Section", NormalizeBoardSectionTitle(untouched))
}

func TestNormalizeBoardSectionsRegroupsDriftedDefinition(t *testing.T) {
	// A drifted two-section definition mixing questions across letters.
	sections := []domains.SurveySection{
		{
			Title: "First",
			Questions: []domains.SurveyQuestion{
				{Key: "transparency"},
				{Key: "meetings_frequency"},
				{Key: "consensus_suggestion"}, // hidden legacy key
			},
		},
		{
			Title: "Second",
			Questions: []domains.SurveyQuestion{
				{Key: "board_composition_diverse_mix"},
				{Key: "improvement_areas"},
			},
		},
	}

	normalized := NormalizeBoardSections(sections)
	require.Len(t, normalized, 4)
	assert.Equal(t, "Section A: Governance Framework", normalized[0].Title)
	assert.Equal(t, "Section B: Board Processes", normalized[1].Title)
	assert.Equal(t, "Section D: Communication and Reporting", normalized[2].Title)
	assert.Equal(t, "Section H: Recommendations", normalized[3].Title)

	for _, section := range normalized {
		for _, q := range section.Questions {
			assert.NotEqual(t, "consensus_suggestion", q.Key)
		}
	}
}

func TestNormalizedDefinitionBoardOrdering(t *testing.T) {
	board, _ := GetSurveyBySlug("board-evaluation")
	normalized := NormalizedDefinition(board)

	require.Len(t, normalized.Sections, 8)

	// Numbering must be strictly increasing across the regrouped sections.
	prev := 0
	for _, section := range normalized.Sections[:7] {
		for _, q := range section.Questions {
			if q.DisplayNumber == 0 {
				continue
			}
			assert.Greater(t, q.DisplayNumber, prev, "question %s out of order", q.Key)
			prev = q.DisplayNumber
		}
	}

	first := normalized.Sections[0].Questions[0]
	assert.Equal(t, "board_composition_diverse_mix", first.Key)
	assert.Equal(t, "Board Composition", first.Subheading)
}

func TestBoardSubheadingRiskManagementSuppressed(t *testing.T) {
	q := domains.SurveyQuestion{Key: "risk_management", Subheading: "Regulatory Compliance"}
	assert.Equal(t, "", BoardSubheading(q))
}
