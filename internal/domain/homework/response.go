package homework

import (
	"encoding/json"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// CheckResponse validates the shape of a raw API document and returns the
// elements of its "homeworks" array, undecoded and in the order the API sent
// them.
func CheckResponse(raw json.RawMessage) ([]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, ErrResponseNotObject
	}

	rawHomeworks, hasHomeworks := doc[keyHomeworks]
	_, hasDate := doc[keyCurrentDate]
	if !hasHomeworks || !hasDate {
		return nil, ErrMissingResponseKeys
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawHomeworks, &items); err != nil || items == nil {
		return nil, ErrMissingResponseKeys
	}
	return items, nil
}
