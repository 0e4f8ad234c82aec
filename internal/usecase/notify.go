package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"retail_assistant/internal/usecase/interfaces"
)

const defaultNotifyTimeout = 10 * time.Second

type notification struct {
	to      string
	subject string
	body    string
}

// notify sends one email bounded by timeout. A nil notifier, an empty
// recipient or a failed send all yield a NotificationError. The caller is
// released at the deadline even when the notifier ignores its context; the
// late send finishes in the background and its result is dropped.
func notify(ctx context.Context, n interfaces.INotifier, timeout time.Duration, msg notification) *NotificationError {
	failure := &NotificationError{Recipient: msg.to, Subject: msg.subject}
	if n == nil || strings.TrimSpace(msg.to) == "" {
		log.Printf("[notify][usecase] skipped to=%q subject=%q reason=not-configured", msg.to, msg.subject)
		return failure
	}
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sent := make(chan bool, 1)
	go func() {
		sent <- n.Send(sendCtx, msg.to, msg.subject, msg.body)
	}()

	select {
	case ok := <-sent:
		if !ok {
			log.Printf("[notify][usecase] send failed to=%s subject=%q", msg.to, msg.subject)
			return failure
		}
		return nil
	case <-sendCtx.Done():
		log.Printf("[notify][usecase] send timed out to=%s subject=%q timeout=%s", msg.to, msg.subject, timeout)
		return failure
	}
}

func warningsOf(errs ...*NotificationError) []string {
	var out []string
	for _, err := range errs {
		if err != nil {
			out = append(out, err.Error())
		}
	}
	return out
}
