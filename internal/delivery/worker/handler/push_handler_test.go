package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"matjip/config"
	"matjip/internal/domain/constants"
	"matjip/internal/domain/service"
	"matjip/internal/infra/pubsub"
	mockService "matjip/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushRequest(t *testing.T, data string) *http.Request {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/local/subscriptions/listing-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func encodeEvent(t *testing.T, event service.ListingEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockService.MockQRCodeService, *mockService.MockAssetStore) {
	t.Helper()

	qr := mockService.NewMockQRCodeService(t)
	assets := mockService.NewMockAssetStore(t)
	cfg := &config.Config{Storage: &config.StorageConfig{CacheControl: "max-age=60"}}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
		QRCode: qr,
		Assets: assets,
	}), qr, assets
}

func TestPushHandler_HandlePush(t *testing.T) {
	png := []byte("png")

	tests := []struct {
		name       string
		data       func(t *testing.T) string
		setupMock  func(qr *mockService.MockQRCodeService, assets *mockService.MockAssetStore)
		wantStatus int
	}{
		{
			name: "created listing stores share code",
			data: func(t *testing.T) string {
				return encodeEvent(t, service.ListingEvent{Type: constants.EventListingCreated, ListingID: 42})
			},
			setupMock: func(qr *mockService.MockQRCodeService, assets *mockService.MockAssetStore) {
				qr.EXPECT().GenerateListingQR(int64(42)).Return(png, nil)
				assets.EXPECT().
					Upload(mock.Anything, "qr/42.png", png, service.UploadOptions{
						Overwrite:    true,
						ContentType:  "image/png",
						CacheControl: "max-age=60",
					}).
					Return("qr/42.png", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "upload failure is retried",
			data: func(t *testing.T) string {
				return encodeEvent(t, service.ListingEvent{Type: constants.EventListingUpdated, ListingID: 7})
			},
			setupMock: func(qr *mockService.MockQRCodeService, assets *mockService.MockAssetStore) {
				qr.EXPECT().GenerateListingQR(int64(7)).Return(png, nil)
				assets.EXPECT().Upload(mock.Anything, "qr/7.png", png, mock.Anything).Return("", errors.New("bucket down"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "render failure is acknowledged",
			data: func(t *testing.T) string {
				return encodeEvent(t, service.ListingEvent{Type: constants.EventListingCreated, ListingID: 0})
			},
			setupMock: func(qr *mockService.MockQRCodeService, _ *mockService.MockAssetStore) {
				qr.EXPECT().GenerateListingQR(int64(0)).Return(nil, errors.New("invalid listing ID"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown event type is ignored",
			data: func(t *testing.T) string {
				return encodeEvent(t, service.ListingEvent{Type: "listing.deleted", ListingID: 3})
			},
			setupMock:  func(*mockService.MockQRCodeService, *mockService.MockAssetStore) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid base64",
			data:       func(*testing.T) string { return "%%%" },
			setupMock:  func(*mockService.MockQRCodeService, *mockService.MockAssetStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid event json",
			data: func(*testing.T) string {
				return base64.StdEncoding.EncodeToString([]byte("not json"))
			},
			setupMock:  func(*mockService.MockQRCodeService, *mockService.MockAssetStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, qr, assets := newTestPushHandler(t)
			tt.setupMock(qr, assets)

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(newPushRequest(t, tt.data(t)), rec)

			require.NoError(t, handler.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushOutsideLocal(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	handler := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
		QRCode: mockService.NewMockQRCodeService(t),
		Assets: mockService.NewMockAssetStore(t),
	})
	require.True(t, handler.verifyPushAuth)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, ""), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShareQRKey(t *testing.T) {
	assert.Equal(t, "qr/42.png", ShareQRKey(42))
}
