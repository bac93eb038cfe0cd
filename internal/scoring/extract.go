package scoring

import (
	"bytes"
	"encoding/json"

	"boardpulse/internal/domains"
)

// answersField is the one reserved name in flat submission payloads.
const answersField = "answers"

// ExtractAnswers reconciles an arbitrary submission payload into the
// canonical key-to-answer map. Payloads were stored in two shapes over
// time: `{"answers": {...}}` and a flat object whose top-level fields
// are the answers. Values that are not a string, a list of strings, or
// null are dropped silently. Extraction never fails; malformed input
// degrades to an empty map.
func ExtractAnswers(raw json.RawMessage) domains.AnswerMap {
	fields, ok := decodeObject(raw)
	if !ok {
		return domains.AnswerMap{}
	}

	if nested, found := fields[answersField]; found {
		if nestedFields, isObject := decodeObject(nested); isObject {
			return narrowValues(nestedFields, "")
		}
	}

	return narrowValues(fields, answersField)
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func narrowValues(fields map[string]json.RawMessage, reserved string) domains.AnswerMap {
	answers := make(domains.AnswerMap, len(fields))
	for key, raw := range fields {
		if key == reserved && reserved != "" {
			continue
		}
		var value domains.AnswerValue
		if err := value.UnmarshalJSON(raw); err != nil {
			continue
		}
		answers[key] = value
	}
	return answers
}

// submissionContainers is the ordered list of nested field names probed
// when a fallback source wraps its submission list. The first array
// found wins.
var submissionContainers = []string{"submissions", "rows", "items", "data"}

// ExtractSubmissionList discovers a submission array inside a payload
// from any of the upstream result sources: either the payload is the
// array itself, or the array sits under one of the known container
// fields. Returns nil when no array is found.
func ExtractSubmissionList(raw json.RawMessage) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		return decodeArray(trimmed)
	}

	fields, ok := decodeObject(trimmed)
	if !ok {
		return nil
	}
	for _, name := range submissionContainers {
		nested, found := fields[name]
		if !found {
			continue
		}
		if items := decodeArray(bytes.TrimSpace(nested)); items != nil {
			return items
		}
	}
	return nil
}

func decodeArray(trimmed []byte) []json.RawMessage {
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items
}
