package registry

import (
	"sort"

	"boardpulse/internal/domains"
)

// SurveyFamily selects which scoring convention and overall-percentage
// storage key apply to a definition.
type SurveyFamily string

const (
	FamilyBoard   SurveyFamily = "board"
	FamilyPeer    SurveyFamily = "peer"
	FamilyGeneric SurveyFamily = "generic"
)

// OverallPercentageMeta names the answer-map field a survey family
// persists its submit-time overall percentage under. The two evolved
// templates each wrote their own field, so reads must honor whichever
// was actually written.
type OverallPercentageMeta struct {
	Key   string
	Label string
}

// DetectFamily classifies a definition from its slug and question-key
// set, not from configuration. Signature board questions mark the board
// family even when the slug has drifted.
func DetectFamily(survey domains.SurveyDefinition) SurveyFamily {
	if survey.Slug == "board-evaluation" ||
		survey.HasQuestionKey("board_composition_diverse_mix") ||
		survey.HasQuestionKey("vision_strategy") ||
		survey.HasQuestionKey("compliance_legal") {
		return FamilyBoard
	}
	if survey.Slug == "peer-evaluation" {
		return FamilyPeer
	}
	return FamilyGeneric
}

func OverallMeta(survey domains.SurveyDefinition) OverallPercentageMeta {
	switch DetectFamily(survey) {
	case FamilyBoard:
		return OverallPercentageMeta{Key: "overall_percentage_a", Label: "Overall Percentage A"}
	case FamilyPeer:
		return OverallPercentageMeta{Key: "overall_percentage_b", Label: "Overall Percentage B"}
	default:
		return OverallPercentageMeta{Key: "overall_percentage", Label: "Overall Percentage"}
	}
}

// SectionLetter identifies a canonical board section. Section titles and
// orderings drifted across schema edits while question keys were largely
// preserved, so the letter is re-derived from the key (with a numeric
// band fallback) rather than trusted from the raw definition.
type SectionLetter string

var boardSectionTitles = map[SectionLetter]string{
	"A": "Section A: Governance Framework",
	"B": "Section B: Board Processes",
	"C": "Section C: Performance Review",
	"D": "Section D: Communication and Reporting",
	"E": "Section E: Stakeholder Engagement",
	"F": "Section F: Strategic Oversight",
	"G": "Section G: Compliance & Risk Management",
	"H": "Section H: Recommendations",
}

var boardSectionLetters = []SectionLetter{"A", "B", "C", "D", "E", "F", "G", "H"}

func BoardSectionTitle(letter SectionLetter) string {
	return boardSectionTitles[letter]
}

var boardSectionByKey = map[string]SectionLetter{
	"board_composition_diverse_mix":       "A",
	"board_composition_additional_skills": "A",
	"board_diversity_reflect":             "A",
	"board_diversity_importance":          "A",
	"board_composition_aligns":            "A",
	"board_guidelines_appointment":        "A",
	"board_size_appropriate":              "A",
	"board_size_effective":                "A",
	"board_understands_roles":             "A",
	"board_induction_training":            "A",
	"chairperson_facilitates":             "A",
	"chairperson_participation":           "A",
	"board_effective_governance":          "A",
	"committees_charters":                 "A",
	"committees_understanding":            "A",
	"committees_effective":                "A",
	"committees_report_back":              "A",
	"committees_integrate":                "A",
	"independent_directors_number":        "A",
	"independent_directors_contribute":    "A",

	"meetings_frequency":             "B",
	"meeting_materials":              "B",
	"agenda_clarity":                 "B",
	"attendance_rate":                "B",
	"meeting_effectiveness":          "B",
	"company_secretary_experience":   "B",
	"company_secretary_senior_staff": "B",
	"company_secretary_assists":      "B",
	"information_flow":               "B",
	"decision_making":                "B",
	"consensus_building":             "B",
	"consensus_suggestion":           "B",
	"conflict_resolution_process":    "B",
	"conflict_resolution_suggestion": "B",
	"conflict_handling":              "B",

	"board_self_assessment": "C",
	"director_contribution": "C",
	"directors_engaged":     "C",

	"transparency":   "D",
	"whistleblowing": "D",

	"stakeholder_interests":    "E",
	"stakeholder_engagement":   "E",
	"management_collaboration": "E",

	"vision_strategy":        "F",
	"strategic_oversight":    "F",
	"goal_setting":           "F",
	"succession_plan":        "F",
	"succession_plan_review": "F",
	"resource_allocation":    "F",

	"compliance_legal":     "G",
	"risk_management":      "G",
	"governance_framework": "G",
	"regulatory_knowledge": "G",

	"improvement_areas":   "H",
	"additional_comments": "H",
}

// boardDisplayNumberByKey restores the printed questionnaire numbering
// for payloads whose definitions lost their display numbers.
var boardDisplayNumberByKey = map[string]int{
	"board_composition_diverse_mix":    1,
	"board_diversity_reflect":          2,
	"board_diversity_importance":       3,
	"board_composition_aligns":         4,
	"board_guidelines_appointment":     5,
	"board_size_appropriate":           6,
	"board_size_effective":             7,
	"board_understands_roles":          8,
	"board_induction_training":         9,
	"chairperson_facilitates":          10,
	"chairperson_participation":        11,
	"board_effective_governance":       12,
	"committees_charters":              13,
	"committees_understanding":         14,
	"committees_effective":             15,
	"committees_report_back":           16,
	"committees_integrate":             17,
	"independent_directors_number":     18,
	"independent_directors_contribute": 19,
	"meetings_frequency":               20,
	"meeting_materials":                21,
	"agenda_clarity":                   22,
	"attendance_rate":                  23,
	"meeting_effectiveness":            24,
	"company_secretary_experience":     25,
	"company_secretary_senior_staff":   26,
	"company_secretary_assists":        27,
	"information_flow":                 28,
	"decision_making":                  29,
	"consensus_building":               30,
	"conflict_resolution_process":      31,
	"conflict_handling":                32,
	"board_self_assessment":            33,
	"director_contribution":            34,
	"directors_engaged":                35,
	"transparency":                     36,
	"whistleblowing":                   37,
	"stakeholder_interests":            38,
	"stakeholder_engagement":           39,
	"management_collaboration":         40,
	"vision_strategy":                  41,
	"strategic_oversight":              42,
	"goal_setting":                     43,
	"succession_plan":                  44,
	"succession_plan_review":           45,
	"resource_allocation":              46,
	"compliance_legal":                 47,
	"risk_management":                  48,
	"governance_framework":             49,
	"regulatory_knowledge":             50,
}

func BoardDisplayNumber(key string) (int, bool) {
	n, ok := boardDisplayNumberByKey[key]
	return n, ok
}

// ResolvedDisplayNumber prefers the definition's explicit number over the
// historical numbering table.
func ResolvedDisplayNumber(q domains.SurveyQuestion) int {
	if q.DisplayNumber > 0 {
		return q.DisplayNumber
	}
	if n, ok := boardDisplayNumberByKey[q.Key]; ok {
		return n
	}
	return 0
}

// SectionLetterForQuestion maps a board question to its canonical
// section: the key table first, then the question's resolved display
// number against the known numbering bands, then H.
func SectionLetterForQuestion(q domains.SurveyQuestion) SectionLetter {
	if letter, ok := boardSectionByKey[q.Key]; ok {
		return letter
	}
	if n := ResolvedDisplayNumber(q); n > 0 {
		switch {
		case n <= 19:
			return "A"
		case n <= 32:
			return "B"
		case n <= 35:
			return "C"
		case n <= 37:
			return "D"
		case n <= 40:
			return "E"
		case n <= 46:
			return "F"
		case n <= 50:
			return "G"
		}
	}
	return "H"
}

// boardSubheadingByKey restores sub-grouping labels lost from drifted
// definitions.
var boardSubheadingByKey = map[string]string{
	"board_composition_diverse_mix": "Board Composition",
	"board_diversity_reflect":       "Board Diversity",
	"board_size_appropriate":        "Board Structure",
	"board_understands_roles":       "Competence (Understanding of Roles and Responsibilities)",
	"board_induction_training":      "Induction & Training",
	"chairperson_facilitates":       "Role of Chairperson",
	"board_effective_governance":    "Overall Effectiveness",
	"committees_charters":           "Board Committees",
	"committees_integrate":          "Integration of Committees",
	"independent_directors_number":  "Independence",
	"meetings_frequency":            "Frequency",
	"meeting_materials":             "Preparation",
	"agenda_clarity":                "Agenda Setting",
	"attendance_rate":               "Attendance",
	"meeting_effectiveness":         "Meeting Effectiveness",
	"company_secretary_experience":  "Company Secretariat",
	"information_flow":              "Information Flow",
	"decision_making":               "Decision-Making Process",
	"consensus_building":            "Consensus Building",
	"conflict_resolution_process":   "Conflict Resolution",
	"board_self_assessment":         "Self-Assessment",
	"director_contribution":         "Individual Directors Assessment",
	"transparency":                  "Transparency",
	"whistleblowing":                "Feedback/Whistleblowing Mechanism",
	"stakeholder_interests":         "Stakeholder Interests",
	"vision_strategy":               "Vision and Strategy",
	"strategic_oversight":           "Strategic Oversight",
	"goal_setting":                  "Goal Setting",
	"succession_plan":               "Succession Planning",
	"resource_allocation":           "Resource Allocation",
	"compliance_legal":              "Compliance and Risk Management",
	"risk_management":               "Regulatory Compliance",
	"improvement_areas":             "Improvement Areas",
	"additional_comments":           "Additional Comments",
}

// BoardSubheading prefers the definition's own subheading, then the
// historical table. risk_management is excluded so its heading is not
// duplicated under Section G.
func BoardSubheading(q domains.SurveyQuestion) string {
	if q.Key == "risk_management" {
		return ""
	}
	if q.Subheading != "" {
		return q.Subheading
	}
	return boardSubheadingByKey[q.Key]
}

// Legacy keys kept in old payloads but never shown or scored anymore.
var hiddenBoardQuestionKeys = map[string]bool{
	"board_composition_additional_skills": true,
	"consensus_suggestion":                true,
}

func IsHiddenBoardQuestion(key string) bool {
	return hiddenBoardQuestionKeys[key]
}

// NormalizeBoardSectionTitle forces stable canonical headings when a
// stored definition carries the wrong letters for its question set.
func NormalizeBoardSectionTitle(section domains.SurveySection) string {
	keys := make(map[string]bool, len(section.Questions))
	for _, q := range section.Questions {
		keys[q.Key] = true
	}

	switch {
	case keys["improvement_areas"] || keys["additional_comments"]:
		return boardSectionTitles["H"]
	case keys["compliance_legal"] || keys["risk_management"] || keys["governance_framework"] || keys["regulatory_knowledge"]:
		return boardSectionTitles["G"]
	case keys["vision_strategy"] || keys["strategic_oversight"]:
		return boardSectionTitles["F"]
	case keys["stakeholder_interests"] || keys["management_collaboration"]:
		return boardSectionTitles["E"]
	case keys["transparency"] || keys["whistleblowing"]:
		return boardSectionTitles["D"]
	case keys["board_self_assessment"] || keys["director_contribution"]:
		return boardSectionTitles["C"]
	case keys["meetings_frequency"] || keys["conflict_handling"]:
		return boardSectionTitles["B"]
	case keys["board_composition_diverse_mix"] || keys["independent_directors_contribute"]:
		return boardSectionTitles["A"]
	}
	return section.Title
}

func NormalizePeerSectionTitle(section domains.SurveySection) string {
	for _, q := range section.Questions {
		if q.Key == "evaluation_date" || q.Key == "director_being_evaluated" {
			return "Section A - Respondent Context"
		}
	}
	return section.Title
}

// NormalizeBoardSections re-derives the canonical A-H grouping for a
// board definition whose sections drifted: questions are flattened,
// ordered by resolved display number, assigned to letters and regrouped
// under the canonical titles. Hidden legacy questions are dropped and
// empty letters omitted.
func NormalizeBoardSections(sections []domains.SurveySection) []domains.SurveySection {
	type entry struct {
		question      domains.SurveyQuestion
		sectionIndex  int
		questionIndex int
		number        int
	}

	var flattened []entry
	for si, section := range sections {
		for qi, question := range section.Questions {
			flattened = append(flattened, entry{
				question:      question,
				sectionIndex:  si,
				questionIndex: qi,
				number:        ResolvedDisplayNumber(question),
			})
		}
	}

	sort.SliceStable(flattened, func(i, j int) bool {
		a, b := flattened[i], flattened[j]
		aNum, bNum := a.number, b.number
		if aNum == 0 {
			aNum = int(^uint(0) >> 1)
		}
		if bNum == 0 {
			bNum = int(^uint(0) >> 1)
		}
		if aNum != bNum {
			return aNum < bNum
		}
		if a.sectionIndex != b.sectionIndex {
			return a.sectionIndex < b.sectionIndex
		}
		return a.questionIndex < b.questionIndex
	})

	grouped := make(map[SectionLetter][]domains.SurveyQuestion)
	for _, e := range flattened {
		if hiddenBoardQuestionKeys[e.question.Key] {
			continue
		}
		letter := SectionLetterForQuestion(e.question)
		grouped[letter] = append(grouped[letter], e.question)
	}

	var out []domains.SurveySection
	for _, letter := range boardSectionLetters {
		questions := grouped[letter]
		if len(questions) == 0 {
			continue
		}
		out = append(out, domains.SurveySection{
			Title:     boardSectionTitles[letter],
			Questions: questions,
		})
	}
	return out
}

// NormalizedDefinition rewrites a definition into its canonical visual
// shape for display: board surveys are regrouped into the stable A-H
// sections with restored numbering and subheadings, peer surveys get
// their Section A title fixed, anything else passes through untouched.
func NormalizedDefinition(survey domains.SurveyDefinition) domains.SurveyDefinition {
	switch DetectFamily(survey) {
	case FamilyBoard:
		relabeled := make([]domains.SurveySection, len(survey.Sections))
		for i, section := range survey.Sections {
			section.Title = NormalizeBoardSectionTitle(section)
			relabeled[i] = section
		}
		normalized := NormalizeBoardSections(relabeled)
		for si := range normalized {
			for qi := range normalized[si].Questions {
				q := &normalized[si].Questions[qi]
				if q.DisplayNumber == 0 {
					if n, ok := boardDisplayNumberByKey[q.Key]; ok {
						q.DisplayNumber = n
					}
				}
				q.Subheading = BoardSubheading(*q)
			}
		}
		survey.Sections = normalized
		return survey
	case FamilyPeer:
		sections := make([]domains.SurveySection, len(survey.Sections))
		for i, section := range survey.Sections {
			section.Title = NormalizePeerSectionTitle(section)
			sections[i] = section
		}
		survey.Sections = sections
		return survey
	default:
		return survey
	}
}
