// Package sentry is a logrus hook which reports entries to sentry.
package sentry

import (
	"fmt"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Options ...
type Options = sentrygo.ClientOptions

// Hook reports logrus entries of the configured levels to sentry.
type Hook struct {
	client *sentrygo.Client
	levels []logrus.Level
}

// NewHook creates new instance of Hook.
func NewHook(opts Options, levels ...logrus.Level) (*Hook, error) {
	client, err := sentrygo.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &Hook{
		client: client,
		levels: levels,
	}, nil
}

// Levels ...
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *Hook) Fire(e *logrus.Entry) error {
	event := sentrygo.NewEvent()
	event.Level = toSentryLevel(e.Level)
	event.Message = e.Message
	event.Timestamp = e.Time

	for k, v := range e.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Exception = []sentrygo.Exception{{
					Type:  fmt.Sprintf("%T", err),
					Value: err.Error(),
				}}
				continue
			}
		}

		event.Extra[k] = v
	}

	h.client.CaptureEvent(event, nil, nil)

	// the process is about to die, don't lose the report
	if e.Level <= logrus.FatalLevel {
		h.client.Flush(2 * time.Second)
	}

	return nil
}

func toSentryLevel(l logrus.Level) sentrygo.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentrygo.LevelFatal
	case logrus.ErrorLevel:
		return sentrygo.LevelError
	case logrus.WarnLevel:
		return sentrygo.LevelWarning
	case logrus.InfoLevel:
		return sentrygo.LevelInfo
	}

	return sentrygo.LevelDebug
}
