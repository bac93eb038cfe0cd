package domains

import (
	"encoding/json"
	"errors"
	"time"
)

type Submission struct {
	ID         string          `json:"id"`
	SurveySlug string          `json:"surveySlug"`
	AccountID  *int64          `json:"-"`
	User       *SubmissionUser `json:"user,omitempty"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type SubmissionUser struct {
	Email string `json:"email"`
}

type SubmissionToSave struct {
	SurveySlug string
	AccountID  int64
	Data       json.RawMessage
}

// AnswerValue is the canonical variant for one stored answer: a string,
// a list of strings, or null (unanswered). Historical payloads carry no
// other shapes worth keeping; decoding anything else fails so callers
// can drop the field.
type AnswerValue struct {
	Text *string
	List []string
}

var errAnswerShape = errors.New("answer value is not a string, string list, or null")

func StringAnswer(s string) AnswerValue {
	return AnswerValue{Text: &s}
}

func ListAnswer(items ...string) AnswerValue {
	if items == nil {
		items = []string{}
	}
	return AnswerValue{List: items}
}

func NullAnswer() AnswerValue {
	return AnswerValue{}
}

func (v AnswerValue) IsNull() bool {
	return v.Text == nil && v.List == nil
}

// String returns the single string value, or "" for lists and nulls.
func (v AnswerValue) String() string {
	if v.Text == nil {
		return ""
	}
	return *v.Text
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Text != nil:
		return json.Marshal(*v.Text)
	case v.List != nil:
		return json.Marshal(v.List)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := string(data)
	if trimmed == "null" {
		*v = AnswerValue{}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = AnswerValue{Text: &text}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*v = AnswerValue{List: list}
		return nil
	}

	return errAnswerShape
}

// AnswerMap is the canonical question-key to answer mapping produced by
// extraction, regardless of how the submission payload was stored.
type AnswerMap map[string]AnswerValue
