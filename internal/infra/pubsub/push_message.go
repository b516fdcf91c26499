package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"matjip/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// attrRequestID carries the originating request's ID for tracing across the queue.
const attrRequestID = "request_id"

// PushMessage is the JSON body a Pub/Sub push subscription POSTs to its endpoint.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event the way a push subscription would deliver it.
func NewPushMessage(event *service.ListingEvent, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// ListingEvent decodes the listing event carried in the message data.
func (m *PushMessage) ListingEvent() (*service.ListingEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.ListingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a listing event")
	}

	return &event, nil
}

// RequestID returns the tracing ID from the message attributes, or "" when absent.
func (m *PushMessage) RequestID() string {
	return m.Message.Attributes[attrRequestID]
}

// eventAttributes builds the message attributes used for subscription filtering and tracing.
func eventAttributes(event *service.ListingEvent) map[string]string {
	attributes := map[string]string{
		"type":       event.Type,
		"listing_id": strconv.FormatInt(event.ListingID, 10),
		"owner_id":   event.OwnerID,
		"location":   event.Location,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
