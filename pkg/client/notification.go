package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/model"
)

const notificationChannelsPath = "/api/v1/entities/notificationChannels"

// The entities API wraps notification channels in a JSON:API envelope; the
// SDK surface stays flat, so the wire documents are private.
type channelDocument struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Attributes channelAttributes `json:"attributes"`
}

type channelAttributes struct {
	Name               string                     `json:"name,omitempty"`
	DestinationType    string                     `json:"destinationType,omitempty"`
	Destination        json.RawMessage            `json:"destination,omitempty"`
	CustomDashboardURL string                     `json:"customDashboardUrl,omitempty"`
	AllowedRecipients  string                     `json:"allowedRecipients,omitempty"`
	Filters            []model.NotificationFilter `json:"notificationFilters,omitempty"`
}

type channelEnvelope struct {
	Data channelDocument `json:"data"`
}

type channelListEnvelope struct {
	Data []channelDocument `json:"data"`
}

func channelFromDocument(doc channelDocument) model.NotificationChannel {
	return model.NotificationChannel{
		ID:                 doc.ID,
		Type:               doc.Type,
		Name:               doc.Attributes.Name,
		DestinationType:    doc.Attributes.DestinationType,
		Destination:        doc.Attributes.Destination,
		CustomDashboardURL: doc.Attributes.CustomDashboardURL,
		AllowedRecipients:  doc.Attributes.AllowedRecipients,
		Filters:            doc.Attributes.Filters,
	}
}

func channelToDocument(channel model.NotificationChannel) channelDocument {
	return channelDocument{
		ID:   channel.ID,
		Type: "notificationChannel",
		Attributes: channelAttributes{
			Name:               channel.Name,
			DestinationType:    channel.DestinationType,
			Destination:        channel.Destination,
			CustomDashboardURL: channel.CustomDashboardURL,
			AllowedRecipients:  channel.AllowedRecipients,
			Filters:            channel.Filters,
		},
	}
}

// ListNotificationChannels returns all notification channels of the organization
func (c *Client) ListNotificationChannels(ctx context.Context) ([]model.NotificationChannel, error) {
	var envelope channelListEnvelope
	if err := c.do(ctx, http.MethodGet, notificationChannelsPath, nil, &envelope); err != nil {
		return nil, err
	}

	channels := make([]model.NotificationChannel, 0, len(envelope.Data))
	for _, doc := range envelope.Data {
		channels = append(channels, channelFromDocument(doc))
	}
	return channels, nil
}

// GetNotificationChannel fetches one notification channel by id
func (c *Client) GetNotificationChannel(ctx context.Context, id string) (*model.NotificationChannel, error) {
	var envelope channelEnvelope
	path := notificationChannelsPath + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	channel := channelFromDocument(envelope.Data)
	return &channel, nil
}

// CreateNotificationChannel creates a notification channel. SMTP destinations
// are validated against their schema before the request is sent.
func (c *Client) CreateNotificationChannel(ctx context.Context, channel model.NotificationChannel) (*model.NotificationChannel, error) {
	if channel.ID == "" {
		return nil, fmt.Errorf("notification channel id is required")
	}
	if channel.DestinationType == model.DestinationTypeSMTP && len(channel.Destination) > 0 {
		if err := validateRawDocument(channel.Destination, "SmtpDestination"); err != nil {
			return nil, err
		}
	}

	envelope := channelEnvelope{Data: channelToDocument(channel)}

	var created channelEnvelope
	if err := c.do(ctx, http.MethodPost, notificationChannelsPath, envelope, &created); err != nil {
		return nil, err
	}

	result := channelFromDocument(created.Data)
	return &result, nil
}

// DeleteNotificationChannel removes a notification channel by id
func (c *Client) DeleteNotificationChannel(ctx context.Context, id string) error {
	path := notificationChannelsPath + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
