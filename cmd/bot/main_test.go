package main

import (
	"context"
	"testing"

	"homework_status_bot/internal/infra/logger"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingTokensExitsWithOne(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("LOG_LEVEL", "info")
	hook := test.NewLocal(logger.Log)

	code := run(context.Background())

	assert.Equal(t, 1, code)
	var missing []any
	for _, e := range hook.AllEntries() {
		if v, ok := e.Data["env_var"]; ok {
			missing = append(missing, v)
		}
	}
	assert.Equal(t, []any{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN"}, missing)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Program stopped: required configuration is missing", hook.LastEntry().Message)
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum")
	t.Setenv("TELEGRAM_TOKEN", "123456:token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("LOG_LEVEL", "info")
	hook := test.NewLocal(logger.Log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, run(ctx))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Status polling stopped", hook.LastEntry().Message)
}
