package app

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const failureMessagePrefix = "Сбой в работе программы: "

// HomeworkAPI is the source of raw status documents.
type HomeworkAPI interface {
	FetchStatuses(ctx context.Context, from int64) (json.RawMessage, error)
}

// Sleeper blocks between two poll iterations.
type Sleeper interface {
	Wait()
}

// StatusPoller polls the homework API and forwards status changes.
type StatusPoller struct {
	api       HomeworkAPI
	formatter *StatusFormatter
	notifier  NotificationService
	sleeper   Sleeper
	logger    *logrus.Entry
	now       func() time.Time

	// cursor is the from_date of the next request. It only moves forward
	// after a status message was delivered.
	cursor int64
}

func NewStatusPoller(
	api HomeworkAPI,
	formatter *StatusFormatter,
	notifier NotificationService,
	sleeper Sleeper,
	retryPeriod time.Duration,
	logger *logrus.Entry,
) *StatusPoller {
	p := &StatusPoller{
		api:       api,
		formatter: formatter,
		notifier:  notifier,
		sleeper:   sleeper,
		logger:    logger,
		now:       time.Now,
	}
	p.cursor = p.now().Add(-retryPeriod).Unix()
	return p
}

// Cursor returns the from_date the next cycle will use.
func (p *StatusPoller) Cursor() int64 {
	return p.cursor
}

// Run polls until ctx is done. The sleep after each iteration happens on
// every path, including failures and empty responses.
func (p *StatusPoller) Run(ctx context.Context) {
	p.logger.WithField("from_date", p.cursor).Info("Status polling started")
	for ctx.Err() == nil {
		p.iterate(ctx)
		p.sleeper.Wait()
	}
	p.logger.Info("Status polling stopped")
}

func (p *StatusPoller) iterate(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WithField("stack", string(debug.Stack())).Error("Recovered from panic in poll cycle")
			p.reportFailure(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := p.RunCycle(ctx); err != nil {
		p.reportFailure(err)
	}
}

// RunCycle performs a single fetch, validate, format and send pass.
// An empty homework list is not an error.
func (p *StatusPoller) RunCycle(ctx context.Context) error {
	raw, err := p.api.FetchStatuses(ctx, p.cursor)
	if err != nil {
		return err
	}

	p.logger.Debug("Checking Practicum API response")
	records, err := homework.CheckResponse(raw)
	if err != nil {
		return err
	}

	latest, ok, err := homework.Latest(records)
	if err != nil {
		return err
	}
	if !ok {
		p.logger.Debug("No new homework statuses in Practicum API response")
		return nil
	}

	message, err := p.formatter.Format(latest)
	if err != nil {
		return err
	}

	if err := p.notifier.NotifyStatus(message); err != nil {
		return err
	}

	p.cursor = p.now().Unix()
	return nil
}

func (p *StatusPoller) reportFailure(err error) {
	kind := ClassifyError(err)
	message := failureMessagePrefix + err.Error()

	log := p.logger.WithError(err).WithField("error_kind", kind.String())
	switch kind {
	case KindAPI, KindValidation, KindFormat:
		log.Error(message)
	case KindSend:
		log.Error("Status message was not delivered")
	case KindUnknown:
		log.Error("Unexpected failure in poll cycle")
	}

	if notifyErr := p.notifier.NotifyError(message); notifyErr != nil {
		p.logger.WithError(notifyErr).Error("Failed to report the failure to the user")
	}
}
