package sender

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnknown        = errors.New("unknown provider error")
	ErrEmptyRecipient = errors.New("recipient is empty")
)

type ErrThrottle struct {
	RetryAfter time.Duration
}

func (e *ErrThrottle) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

type ErrRejected struct {
	Status int
	Body   string
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("provider rejected message with status %d: %s", e.Status, e.Body)
}

const defaultRetryAfter = time.Second

// checkResponse maps a provider response onto the package errors.
func checkResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w", &ErrThrottle{RetryAfter: parseRetryAfter(resp.Header().Get("Retry-After"))})
	case code >= 500:
		return fmt.Errorf("status %d %w", code, ErrUnknown)
	default:
		return fmt.Errorf("%w", &ErrRejected{Status: code, Body: resp.String()})
	}
}

func parseRetryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
