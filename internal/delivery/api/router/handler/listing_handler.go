// Package handler contains the HTTP handlers of the listing API.
package handler

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"matjip/config"
	"matjip/internal/delivery/api/response"
	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/usecase"
	"matjip/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying the listing image.
const imageFormField = "image"

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC    usecase.ListingUsecase
	SubmissionUC usecase.SubmissionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// ListingHandler holds dependencies for listing-related handlers
type ListingHandler struct {
	listingUC    usecase.ListingUsecase
	submissionUC usecase.SubmissionUsecase
	maxImageSize int64
	logger       *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	h := &ListingHandler{
		listingUC:    params.ListingUC,
		submissionUC: params.SubmissionUC,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Submission != nil {
		h.maxImageSize = params.Config.Submission.MaxImageSize
	}

	return h
}

// ListListingsRequest represents the query of the listing index
type ListListingsRequest struct {
	Location string `query:"location" validate:"omitempty,listing_location"`
	Limit    int    `query:"limit" validate:"gte=0,lte=100"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

// ListingForm represents the multipart form of a listing submission.
// Every submit carries the full draft; the image part is optional on update.
type ListingForm struct {
	StoreName string `form:"store_name"`
	Address   string `form:"address"`
	Location  string `form:"location"`
	Star      int    `form:"star"`
	Comment   string `form:"comment"`
}

// SubmitResponse is returned by a completed submission
type SubmitResponse struct {
	Listing  *entity.Listing `json:"listing"`
	Notice   entity.Notice   `json:"notice"`
	Redirect string          `json:"redirect"`
}

// ListListings handles the public listing index
func (h *ListingHandler) ListListings(c echo.Context) error {
	var req ListListingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listings, err := h.listingUC.ListListings(c.Request().Context(), entity.ListingFilter{
		Location: entity.Location(req.Location),
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

// GetListing handles the public listing detail
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := parseListingID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// GetListingQR handles rendering the share QR code of a listing
func (h *ListingHandler) GetListingQR(c echo.Context) error {
	id, err := parseListingID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.listingUC.ListingShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMyListings handles the current user's listings
func (h *ListingHandler) ListMyListings(c echo.Context) error {
	listings, err := h.listingUC.ListMyListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

// CreateListing handles submitting a new listing
func (h *ListingHandler) CreateListing(c echo.Context) error {
	session, err := h.listingUC.OpenDraft(c.Request().Context(), nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.submit(c, session, http.StatusCreated)
}

// UpdateListing handles submitting an edit of an existing listing
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := parseListingID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	session, err := h.listingUC.OpenDraft(c.Request().Context(), &id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.submit(c, session, http.StatusOK)
}

// submit copies the form into the session draft and runs one submit attempt.
func (h *ListingHandler) submit(c echo.Context, session *usecase.EditSession, successStatus int) error {
	var form ListingForm
	if err := c.Bind(&form); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing form")
	}

	session.SetFields(entity.ListingFields{
		StoreName: form.StoreName,
		Address:   form.Address,
		Location:  entity.Location(form.Location),
		Rating:    form.Star,
		Comment:   form.Comment,
	})

	asset, err := h.readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	session.AttachAsset(asset)

	presenter := &submitPresenter{}
	outcome := h.submissionUC.Submit(c.Request().Context(), session, presenter, presenter)
	if !outcome.Completed {
		return h.submitFailed(c, outcome)
	}

	return response.Success(c, successStatus, SubmitResponse{
		Listing:  outcome.Listing,
		Notice:   presenter.noticeOr(outcome.Notice),
		Redirect: presenter.routeOr(outcome.Route),
	})
}

func (h *ListingHandler) submitFailed(c echo.Context, outcome *usecase.SubmitOutcome) error {
	var appErr domainerrors.AppError
	if !errors.As(outcome.Err, &appErr) {
		return errors.WithStack(outcome.Err)
	}

	return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), map[string]any{
		"notice": outcome.Notice,
		"field":  appErr.Details(),
	})
}

// readImage loads the optional image part. A missing part yields a nil asset.
func (h *ListingHandler) readImage(c echo.Context) (*entity.PendingAsset, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("image")
	}

	if h.maxImageSize > 0 && fileHeader.Size > h.maxImageSize {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("limit " + util.FormatBytes(h.maxImageSize))
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == echo.MIMEOctetStream {
		contentType = ""
	}

	return &entity.PendingAsset{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func parseListingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid listing ID %q", c.Param("id"))
	}

	return id, nil
}

// submitPresenter captures the notice and route a submit reports so they can be returned in the response.
type submitPresenter struct {
	notice *entity.Notice
	route  string
}

func (p *submitPresenter) Notify(_ context.Context, notice entity.Notice) {
	p.notice = &notice
}

func (p *submitPresenter) GoTo(_ context.Context, route string) {
	p.route = route
}

func (p *submitPresenter) noticeOr(fallback entity.Notice) entity.Notice {
	if p.notice == nil {
		return fallback
	}

	return *p.notice
}

func (p *submitPresenter) routeOr(fallback string) string {
	if p.route == "" {
		return fallback
	}

	return p.route
}
