package sentry

import (
	"errors"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureTransport struct {
	events []*sentrygo.Event
}

func (t *captureTransport) Configure(_ sentrygo.ClientOptions) {}

func (t *captureTransport) SendEvent(e *sentrygo.Event) {
	t.events = append(t.events, e)
}

func (t *captureTransport) Flush(_ time.Duration) bool { return true }

func TestHook_Fire(t *testing.T) {
	tr := &captureTransport{}

	hook, err := NewHook(Options{Transport: tr}, logrus.ErrorLevel)
	require.NoError(t, err)

	log := logrus.New()
	log.AddHook(hook)

	log.WithError(errors.New("boom")).WithField("request_id", "1").Error("failed to do")
	log.Info("below the configured levels")

	require.Len(t, tr.events, 1)
	assert.Equal(t, sentrygo.LevelError, tr.events[0].Level)
	assert.Equal(t, "failed to do", tr.events[0].Message)
	assert.Equal(t, "1", tr.events[0].Extra["request_id"])
	require.Len(t, tr.events[0].Exception, 1)
	assert.Equal(t, "boom", tr.events[0].Exception[0].Value)
}

func TestHook_Levels(t *testing.T) {
	hook, err := NewHook(Options{}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)
	require.NoError(t, err)

	assert.Equal(t, []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}, hook.Levels())
}
