package homework

import "errors"

// Response shape errors.
var (
	ErrResponseNotObject   = errors.New("api response is not a JSON object")
	ErrMissingResponseKeys = errors.New("api response lacks expected keys homeworks and current_date")
	ErrMalformedHomework   = errors.New("homework record is not a valid object")
)

// Record content errors.
var (
	ErrMissingHomeworkName = errors.New("homework_name key is missing in api response")
	ErrUndocumentedStatus  = errors.New("undocumented homework status in api response")
)
