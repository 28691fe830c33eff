package sender

import (
	"context"

	logger "github.com/sirupsen/logrus"
)

type Message struct {
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// LogSender only writes messages to the log. It is used for channels that
// have no provider credentials configured.
type LogSender struct {
	Channel string
}

func NewLogSender(channel string) *LogSender {
	return &LogSender{Channel: channel}
}

func (s *LogSender) Send(ctx context.Context, to string, msg Message) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	logger.WithFields(logger.Fields{
		"channel": s.Channel,
		"to":      to,
		"subject": msg.Subject,
	}).Info(msg.Body)
	return nil
}
