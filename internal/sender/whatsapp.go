package sender

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// WhatsAppClient sends text messages through the WhatsApp Business Cloud API.
type WhatsAppClient struct {
	client  *resty.Client
	phoneID string
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

func NewWhatsAppClient(address string, token string, phoneID string) *WhatsAppClient {
	client := resty.New().
		SetBaseURL(address).
		SetAuthToken(token).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")
	return &WhatsAppClient{client: client, phoneID: phoneID}
}

func (c *WhatsAppClient) Send(ctx context.Context, to string, msg Message) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("phoneID", c.phoneID).
		SetBody(whatsAppRequest{
			MessagingProduct: "whatsapp",
			// the API wants digits only
			To:   strings.TrimPrefix(to, "+"),
			Type: "text",
			Text: whatsAppText{Body: msg.Body},
		}).
		Post("/{phoneID}/messages")
	if err != nil {
		return fmt.Errorf("whatsapp request failed %w", err)
	}
	return checkResponse(resp)
}
