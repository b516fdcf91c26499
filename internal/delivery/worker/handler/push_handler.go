// Package handler contains the Pub/Sub push handlers of the listing worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"matjip/config"
	deliverycontext "matjip/internal/delivery/context"
	"matjip/internal/domain/constants"
	"matjip/internal/domain/service"
	"matjip/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure that Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes listing events and pre-renders each listing's share QR code into the asset store
type PushHandler struct {
	verifyPushAuth bool
	cacheControl   string
	logger         *slog.Logger
	qrcode         service.QRCodeService
	assets         service.AssetStore
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	QRCode service.QRCodeService
	Assets service.AssetStore
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	var cacheControl string
	if params.Config.Storage != nil {
		cacheControl = params.Config.Storage.CacheControl
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		cacheControl:   cacheControl,
		logger:         params.Logger,
		qrcode:         params.QRCode,
		assets:         params.Assets,
	}
}

// ShareQRKey returns the asset key of a listing's pre-rendered share code.
func ShareQRKey(listingID int64) string {
	return constants.ShareQRPrefix + "/" + strconv.FormatInt(listingID, 10) + ".png"
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged; transient failures answer 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.ListingEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode listing event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing listing event",
		slog.String("type", event.Type),
		slog.Int64("listing_id", event.ListingID),
	)

	if err := h.processListingEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process listing event",
			slog.Int64("listing_id", event.ListingID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the push request itself
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ListingEvent) string {
	if requestID := pushMsg.RequestID(); requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) processListingEvent(ctx context.Context, event *service.ListingEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case constants.EventListingCreated, constants.EventListingUpdated:
	default:
		logger.Info("[Worker] Ignoring unknown event type", slog.String("type", event.Type))

		return nil
	}

	png, err := h.qrcode.GenerateListingQR(event.ListingID)
	if err != nil {
		return errors.Wrap(err, "failed to render share QR code")
	}

	key, err := h.assets.Upload(ctx, ShareQRKey(event.ListingID), png, service.UploadOptions{
		Overwrite:    true,
		ContentType:  "image/png",
		CacheControl: h.cacheControl,
	})
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to store share QR code"))
	}

	logger.Info("[Worker] Share QR code stored",
		slog.Int64("listing_id", event.ListingID),
		slog.String("key", key),
	)

	return nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is this push endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
