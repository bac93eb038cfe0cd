package domains

type QuestionType string

const (
	QuestionLikertAgree  QuestionType = "likert_agree"
	QuestionRating5      QuestionType = "rating_5"
	QuestionShortText    QuestionType = "short_text"
	QuestionLongText     QuestionType = "long_text"
	QuestionDate         QuestionType = "date"
	QuestionSingleSelect QuestionType = "single_select"
	QuestionMultiSelect  QuestionType = "multi_select"
)

type SurveyQuestion struct {
	Key           string       `json:"key"`
	Label         string       `json:"label"`
	Type          QuestionType `json:"type"`
	Required      bool         `json:"required,omitempty"`
	Options       []string     `json:"options,omitempty"`
	Subheading    string       `json:"subheading,omitempty"`
	DisplayNumber int          `json:"displayNumber,omitempty"`
}

type SurveySection struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Questions   []SurveyQuestion `json:"questions"`
}

type SurveyDefinition struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Sections    []SurveySection `json:"sections"`
}

// QuestionKeys returns every question key across all sections, in
// definition order. Keys are unique within one definition.
func (s SurveyDefinition) QuestionKeys() []string {
	var keys []string
	for _, section := range s.Sections {
		for _, question := range section.Questions {
			keys = append(keys, question.Key)
		}
	}
	return keys
}

func (s SurveyDefinition) HasQuestionKey(key string) bool {
	for _, section := range s.Sections {
		for _, question := range section.Questions {
			if question.Key == key {
				return true
			}
		}
	}
	return false
}
