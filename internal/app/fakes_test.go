package app

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"
)

// --- fakes ---

type sentMessage struct {
	chatID string
	text   string
}

type fakeTelegram struct {
	sent    []sentMessage
	sendErr error
}

func (f *fakeTelegram) SendMessage(chatID string, text string, _ *telebot.SendOptions) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

type fakeAPI struct {
	fetchFn func(from int64) (json.RawMessage, error)
	calls   []int64
}

func (a *fakeAPI) FetchStatuses(_ context.Context, from int64) (json.RawMessage, error) {
	a.calls = append(a.calls, from)
	return a.fetchFn(from)
}

// stopAfter cancels the poll loop context after n waits.
type stopAfter struct {
	n      int
	waits  int
	cancel context.CancelFunc
}

func (s *stopAfter) Wait() {
	s.waits++
	if s.waits >= s.n {
		s.cancel()
	}
}

func newTestLogger() (*logrus.Entry, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(log), hook
}
