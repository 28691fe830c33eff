package sender

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 10 * time.Second

// EmailClient posts messages to a transactional email HTTP API
// authenticated with a bearer key.
type EmailClient struct {
	client *resty.Client
	from   string
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func NewEmailClient(address string, apiKey string, from string) *EmailClient {
	client := resty.New().
		SetBaseURL(address).
		SetAuthToken(apiKey).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")
	return &EmailClient{client: client, from: from}
}

func (c *EmailClient) Send(ctx context.Context, to string, msg Message) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(emailRequest{
			From:    c.from,
			To:      []string{to},
			Subject: msg.Subject,
			Text:    msg.Body,
		}).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("email request failed %w", err)
	}
	return checkResponse(resp)
}
