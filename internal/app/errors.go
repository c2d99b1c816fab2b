package app

import (
	"errors"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"
)

// ErrSendMessage wraps any failure to deliver a Telegram message.
var ErrSendMessage = errors.New("failed to send message to the user")

// ErrorKind is the closed set of failures a poll cycle can end with.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindAPI
	KindValidation
	KindFormat
	KindSend
)

func (k ErrorKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindValidation:
		return "validation"
	case KindFormat:
		return "format"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

// ClassifyError maps a cycle error onto its kind.
func ClassifyError(err error) ErrorKind {
	var statusErr *practicum.StatusError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, practicum.ErrEndpointUnreachable),
		errors.Is(err, practicum.ErrInvalidBody),
		errors.As(err, &statusErr):
		return KindAPI
	case errors.Is(err, homework.ErrResponseNotObject),
		errors.Is(err, homework.ErrMissingResponseKeys),
		errors.Is(err, homework.ErrMalformedHomework):
		return KindValidation
	case errors.Is(err, homework.ErrMissingHomeworkName),
		errors.Is(err, homework.ErrUndocumentedStatus):
		return KindFormat
	case errors.Is(err, ErrSendMessage):
		return KindSend
	default:
		return KindUnknown
	}
}
