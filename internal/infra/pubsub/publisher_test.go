package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"matjip/config"
	"matjip/internal/domain/constants"
	"matjip/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.ListingEvent {
	return &service.ListingEvent{
		RequestID: "req-1",
		Type:      constants.EventListingCreated,
		ListingID: 42,
		OwnerID:   "0b9c2f7e-5d55-4a59-9a63-1f0e2d0d6c11",
		Location:  "홍대",
		ImagePath: "https://cdn.example.com/public/a.png",
	}
}

func TestLocalHTTPPublisher_PublishListingEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishListingEvent(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"type":       constants.EventListingCreated,
		"listing_id": "42",
		"owner_id":   "0b9c2f7e-5d55-4a59-9a63-1f0e2d0d6c11",
		"location":   "홍대",
		"request_id": "req-1",
	}, received.Message.Attributes)

	assert.Equal(t, "req-1", received.RequestID())

	decoded, err := received.ListingEvent()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), decoded)
}

func TestPushMessage_ListingEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: base64.StdEncoding.EncodeToString([]byte("nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = tt.data

			_, err := msg.ListingEvent()
			assert.Error(t, err)
		})
	}
}

func TestNewPushMessage(t *testing.T) {
	publishedAt := time.Date(2025, 1, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*60*60))

	msg, err := NewPushMessage(testEvent(), "sub", publishedAt)
	require.NoError(t, err)

	assert.Equal(t, "sub", msg.Subscription)
	assert.Equal(t, "2025-01-01T00:00:00Z", msg.Message.PublishTime)
	assert.NotEmpty(t, msg.Message.MessageID)
	assert.Equal(t, "42", msg.Message.Attributes["listing_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishListingEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", pubsub: nil, noop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.New(slog.DiscardHandler),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, isNoop := publisher.(*discardPublisher)
			assert.Equal(t, tt.noop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishListingEvent(context.Background(), testEvent()))
			}
		})
	}
}
