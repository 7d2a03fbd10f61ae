package model

import (
	"encoding/json"
	"fmt"
)

// NotificationChannel is a configured destination for scheduled exports and
// alert notifications. Destination is kept raw because its shape depends on
// DestinationType; use DecodeDestination to get the typed variant.
type NotificationChannel struct {
	ID                 string               `json:"id"`
	Type               string               `json:"type"`
	Name               string               `json:"name,omitempty"`
	DestinationType    string               `json:"destinationType,omitempty"`
	Destination        json.RawMessage      `json:"destination,omitempty"`
	CustomDashboardURL string               `json:"customDashboardUrl,omitempty"`
	AllowedRecipients  string               `json:"allowedRecipients,omitempty"`
	Filters            []NotificationFilter `json:"notificationFilters,omitempty"`

	Extra ExtraProperties `json:"-"`
}

func (c NotificationChannel) MarshalJSON() ([]byte, error) {
	type plain NotificationChannel
	return marshalWithExtras(plain(c), c.Extra)
}

func (c *NotificationChannel) UnmarshalJSON(data []byte) error {
	type plain NotificationChannel
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*c = NotificationChannel(p)
	c.Extra = extras
	return nil
}

// DecodeDestination returns the typed destination for the channel's
// DestinationType: *SmtpDestination, *WebhookDestination or
// *InPlatformDestination.
func (c *NotificationChannel) DecodeDestination() (any, error) {
	if len(c.Destination) == 0 {
		return nil, nil
	}

	switch c.DestinationType {
	case DestinationTypeSMTP:
		var dest SmtpDestination
		if err := json.Unmarshal(c.Destination, &dest); err != nil {
			return nil, err
		}
		return &dest, nil
	case DestinationTypeWebhook:
		var dest WebhookDestination
		if err := json.Unmarshal(c.Destination, &dest); err != nil {
			return nil, err
		}
		return &dest, nil
	case DestinationTypeInPlatform:
		var dest InPlatformDestination
		if err := json.Unmarshal(c.Destination, &dest); err != nil {
			return nil, err
		}
		return &dest, nil
	default:
		return nil, fmt.Errorf("unknown destination type: %q", c.DestinationType)
	}
}

// SetDestination encodes a typed destination into the channel and records the
// matching destination type.
func (c *NotificationChannel) SetDestination(dest any) error {
	switch dest.(type) {
	case *SmtpDestination, SmtpDestination:
		c.DestinationType = DestinationTypeSMTP
	case *WebhookDestination, WebhookDestination:
		c.DestinationType = DestinationTypeWebhook
	case *InPlatformDestination, InPlatformDestination:
		c.DestinationType = DestinationTypeInPlatform
	default:
		return fmt.Errorf("unsupported destination type %T", dest)
	}

	raw, err := json.Marshal(dest)
	if err != nil {
		return err
	}
	c.Destination = raw
	return nil
}

// SmtpDestination describes an external SMTP server used to deliver
// notifications. Host, Port, Username, Password and FromEmail are required.
type SmtpDestination struct {
	Type          string `json:"type"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	FromEmail     string `json:"fromEmail"`
	FromEmailName string `json:"fromEmailName,omitempty"`

	Extra ExtraProperties `json:"-"`
}

func (d SmtpDestination) MarshalJSON() ([]byte, error) {
	type plain SmtpDestination
	return marshalWithExtras(plain(d), d.Extra)
}

func (d *SmtpDestination) UnmarshalJSON(data []byte) error {
	type plain SmtpDestination
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*d = SmtpDestination(p)
	d.Extra = extras
	return nil
}

// WebhookDestination delivers notifications to an HTTP endpoint. The token is
// write-only; reads report HasToken instead.
type WebhookDestination struct {
	Type     string  `json:"type"`
	URL      string  `json:"url" format:"uri"`
	Token    *string `json:"token,omitempty"`
	HasToken *bool   `json:"hasToken,omitempty"`
}

// InPlatformDestination delivers notifications inside the platform UI
type InPlatformDestination struct {
	Type string `json:"type"`
}

// NotificationFilter narrows which events reach the channel using a MAQL-like
// filter expression
type NotificationFilter struct {
	Filter string `json:"filter"`
}
