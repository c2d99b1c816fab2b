package app

import (
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const (
	noCommentPlaceholder = "коммента нет"
	messageTimeLayout    = "02-01-2006 15:04"
)

// StatusFormatter turns a homework record into the chat message.
type StatusFormatter struct {
	errorCache *ErrorCache
	now        func() time.Time
}

func NewStatusFormatter(errorCache *ErrorCache) *StatusFormatter {
	return &StatusFormatter{
		errorCache: errorCache,
		now:        time.Now,
	}
}

// Format builds the status message. A successful format resets the error
// cache, so the next failure is reported even if it was seen before.
func (f *StatusFormatter) Format(hw homework.Homework) (string, error) {
	if hw.Name == nil {
		return "", homework.ErrMissingHomeworkName
	}

	verdict, ok := homework.Verdict(hw.Status)
	if !ok {
		return "", fmt.Errorf("%w: %q", homework.ErrUndocumentedStatus, hw.Status)
	}

	comment := noCommentPlaceholder
	if hw.ReviewerComment != nil {
		comment = *hw.ReviewerComment
	}

	f.errorCache.Clear()

	return fmt.Sprintf(
		"%s\nРабота - \"%s\".\nВердикт - %s\nКомментарий - %s\n",
		f.now().Format(messageTimeLayout), *hw.Name, verdict, comment,
	), nil
}
