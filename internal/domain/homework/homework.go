// internal/domain/homework/homework.go
package homework

import (
	"bytes"
	"encoding/json"
)

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

const (
	keyHomeworkName    = "homework_name"
	keyStatus          = "status"
	keyReviewerComment = "reviewer_comment"
)

// Verdicts maps every documented status to the text shown to the student.
// Anything outside this table is an undocumented status.
var Verdicts = map[Status]string{
	StatusApproved:  "Замечаний нет.",
	StatusReviewing: "Ревьювер проверяет работу.",
	StatusRejected:  "Есть замечания.",
}

// Verdict returns the verdict text for s and whether s is documented.
func Verdict(s Status) (string, bool) {
	v, ok := Verdicts[s]
	return v, ok
}

// Homework is a single record from the "homeworks" array.
// Name and ReviewerComment are nil when the key is absent or null.
type Homework struct {
	Name            *string
	Status          Status
	ReviewerComment *string
}

// ParseHomework decodes one element of the "homeworks" array. Only a
// non-object element is rejected. Fields of an unexpected JSON type keep
// their JSON text, so a numeric status ends up as an undocumented one.
func ParseHomework(raw json.RawMessage) (Homework, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Homework{}, ErrMalformedHomework
	}

	hw := Homework{
		Name:            fieldText(fields, keyHomeworkName),
		ReviewerComment: fieldText(fields, keyReviewerComment),
	}
	if status := fieldText(fields, keyStatus); status != nil {
		hw.Status = Status(*status)
	}
	return hw, nil
}

// fieldText returns a JSON string value as is and any other non-null value
// as its compact JSON text.
func fieldText(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		text := string(raw)
		return &text
	}
	text := buf.String()
	return &text
}

// Latest decodes the most recent record. The API lists newest first and
// older elements are never looked at. ok is false when there is nothing to
// report.
func Latest(records []json.RawMessage) (hw Homework, ok bool, err error) {
	if len(records) == 0 {
		return Homework{}, false, nil
	}
	hw, err = ParseHomework(records[0])
	if err != nil {
		return Homework{}, false, err
	}
	return hw, true, nil
}
