// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"matjip/config"
	deliverycontext "matjip/internal/delivery/context"
	"matjip/internal/domain/constants"
	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/domain/repository"
	"matjip/internal/domain/service"
	"matjip/internal/domain/validation"
	"matjip/internal/errors"
	"matjip/internal/usecase"
	"matjip/internal/util"

	"go.uber.org/fx"
)

const defaultImageExt = ".png"

var imageExtByType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// submissionService implements the SubmissionUsecase interface.
type submissionService struct {
	identity       service.IdentityProvider
	assets         service.AssetStore
	listings       repository.ListingRepository
	publisher      service.EventPublisher
	keyPrefix      string
	cacheControl   string
	maxImageSize   int64
	cleanupOrphans bool
	now            func() time.Time
	logger         *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	Identity  service.IdentityProvider
	Assets    service.AssetStore
	Listings  repository.ListingRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSubmissionService is the constructor for submissionService.
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	srv := &submissionService{
		identity:  params.Identity,
		assets:    params.Assets,
		listings:  params.Listings,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Storage != nil {
			srv.keyPrefix = cfg.Storage.Prefix
			srv.cacheControl = cfg.Storage.CacheControl
		}
		if cfg.Submission != nil {
			srv.maxImageSize = cfg.Submission.MaxImageSize
			srv.cleanupOrphans = cfg.Submission.CleanupOrphanedAssets
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit runs one attempt through Validating → ResolvingIdentity → UploadingAsset → PersistingRecord → Completed.
// Any failure returns the session to Idle with the draft untouched.
func (srv *submissionService) Submit(
	ctx context.Context,
	session *usecase.EditSession,
	notifier service.Notifier,
	navigator service.Navigator,
) *usecase.SubmitOutcome {
	if !session.Begin() {
		srv.log(ctx).Debug("Submit ignored, another attempt is running", slog.String("state", session.State().String()))

		return &usecase.SubmitOutcome{
			Err:    domainerrors.ErrSubmissionInProgress,
			Notice: failureNotice(session, domainerrors.ErrSubmissionInProgress),
		}
	}
	defer session.Reset()

	listing, err := srv.run(ctx, session)
	if err != nil {
		notice := failureNotice(session, err)
		srv.log(ctx).Warn("Listing submission failed",
			slog.Bool("edit", session.IsEdit()),
			slog.String("state", session.State().String()),
			slog.Any("error", err),
		)
		notifier.Notify(ctx, notice)

		return &usecase.SubmitOutcome{Notice: notice, Err: err}
	}

	outcome := &usecase.SubmitOutcome{
		Completed: true,
		Listing:   listing,
		Route:     constants.RouteIndex,
		Notice: entity.Notice{
			Kind:    entity.NoticeInfo,
			Title:   "업로드 성공",
			Message: "게시물이 성공적으로 작성되었습니다!",
		},
	}
	if session.IsEdit() {
		outcome.Route = constants.RouteMyPage
		outcome.Notice.Title = "수정 성공"
		outcome.Notice.Message = "게시물이 성공적으로 수정되었습니다!"
	}

	notifier.Notify(ctx, outcome.Notice)
	navigator.GoTo(ctx, outcome.Route)

	return outcome
}

func (srv *submissionService) run(ctx context.Context, session *usecase.EditSession) (*entity.Listing, error) {
	if err := srv.validate(session); err != nil {
		return nil, err
	}

	session.Advance(usecase.StateResolvingIdentity)
	identity, err := srv.resolveIdentity(ctx, session)
	if err != nil {
		return nil, err
	}

	var asset *entity.Asset
	if session.Draft.PendingAsset != nil {
		session.Advance(usecase.StateUploadingAsset)
		asset, err = srv.uploadAsset(ctx, session, identity)
		if err != nil {
			return nil, err
		}
	}

	session.Advance(usecase.StatePersistingRecord)
	listing, err := srv.persist(ctx, session, identity, asset)
	if err != nil {
		srv.handleOrphanedAsset(ctx, session, asset)

		return nil, err
	}

	session.Advance(usecase.StateCompleted)
	srv.publishEvent(ctx, session, listing)

	return listing, nil
}

// validate runs every guard that must pass before any collaborator is contacted.
func (srv *submissionService) validate(session *usecase.EditSession) error {
	draft := session.Draft

	if err := validation.ValidateRequired(draft); err != nil {
		return err
	}
	if err := validation.ValidateValues(draft); err != nil {
		return err
	}

	if session.IsEdit() {
		if !validation.HasChanges(draft, session.OriginalFields()) {
			return domainerrors.ErrNoChange
		}
	} else if draft.PendingAsset == nil || len(draft.PendingAsset.Data) == 0 {
		return domainerrors.ErrMissingAsset
	}

	if asset := draft.PendingAsset; asset != nil {
		if len(asset.Data) == 0 {
			return domainerrors.ErrMissingAsset
		}
		if srv.maxImageSize > 0 && int64(len(asset.Data)) > srv.maxImageSize {
			return domainerrors.ErrImageTooLarge.WithDetails("limit " + util.FormatBytes(srv.maxImageSize))
		}
	}

	return nil
}

func (srv *submissionService) resolveIdentity(ctx context.Context, session *usecase.EditSession) (*entity.Identity, error) {
	identity, err := srv.identity.CurrentUser(ctx)
	if err != nil {
		return nil, domainerrors.ErrAuthFailed.WrapMessage(err.Error())
	}

	if session.IsEdit() && session.Original.OwnerID != identity.UserID {
		return nil, domainerrors.ErrListingForbidden
	}

	return identity, nil
}

func (srv *submissionService) uploadAsset(ctx context.Context, session *usecase.EditSession, identity *entity.Identity) (*entity.Asset, error) {
	pending := session.Draft.PendingAsset

	contentType := pending.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(pending.Data)
	}

	key := srv.assetKey(session, identity, imageExt(contentType, pending.Filename))
	stored, err := srv.assets.Upload(ctx, key, pending.Data, service.UploadOptions{
		Overwrite:    session.IsEdit(),
		ContentType:  contentType,
		CacheControl: srv.cacheControl,
	})
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	url, err := srv.assets.PublicURL(ctx, stored)
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Listing image uploaded", slog.String("key", stored))

	return &entity.Asset{Key: stored, URL: url}, nil
}

// assetKey is {owner}_{unixMillis} for a new listing and {owner}_{listingID} for an edit,
// so an edit always overwrites the listing's previous image.
func (srv *submissionService) assetKey(session *usecase.EditSession, identity *entity.Identity, ext string) string {
	var name string
	if session.IsEdit() {
		name = fmt.Sprintf("%s_%d%s", identity.UserID, *session.Draft.ListingID, ext)
	} else {
		name = fmt.Sprintf("%s_%d%s", identity.UserID, srv.now().UnixMilli(), ext)
	}

	if srv.keyPrefix == "" {
		return name
	}

	return path.Join(srv.keyPrefix, name)
}

func (srv *submissionService) persist(
	ctx context.Context,
	session *usecase.EditSession,
	identity *entity.Identity,
	asset *entity.Asset,
) (*entity.Listing, error) {
	draft := session.Draft

	if !session.IsEdit() {
		listing := &entity.Listing{
			OwnerID:   identity.UserID,
			StoreName: draft.Fields.StoreName,
			Address:   draft.Fields.Address,
			Location:  draft.Fields.Location,
			Rating:    draft.Fields.Rating,
			Comment:   draft.Fields.Comment,
			ImagePath: asset.URL,
		}
		if err := srv.listings.CreateListing(ctx, listing); err != nil {
			return nil, domainerrors.ErrPersistFailed.WrapMessage(err.Error())
		}

		return listing, nil
	}

	patch := validation.Diff(draft.Fields, session.OriginalFields())
	if asset != nil {
		patch.ImagePath = &asset.URL
	}

	updated, err := srv.listings.UpdateListing(ctx, *draft.ListingID, identity.UserID, patch)
	if err != nil {
		return nil, domainerrors.ErrPersistFailed.WrapMessage(err.Error())
	}

	return updated, nil
}

// handleOrphanedAsset deals with an image that was uploaded but whose row write failed.
// An edit overwrote the previous image in place and cannot be undone.
func (srv *submissionService) handleOrphanedAsset(ctx context.Context, session *usecase.EditSession, asset *entity.Asset) {
	if asset == nil {
		return
	}

	logger := srv.log(ctx).With(slog.String("key", asset.Key), slog.Bool("edit", session.IsEdit()))

	if session.IsEdit() || !srv.cleanupOrphans {
		logger.Warn("Uploaded listing image is not referenced by any committed listing")

		return
	}

	if err := srv.assets.Delete(ctx, asset.Key); err != nil {
		logger.Error("Failed to delete orphaned listing image", slog.Any("error", err))

		return
	}

	logger.Info("Deleted orphaned listing image")
}

func (srv *submissionService) publishEvent(ctx context.Context, session *usecase.EditSession, listing *entity.Listing) {
	if srv.publisher == nil {
		return
	}

	eventType := constants.EventListingCreated
	if session.IsEdit() {
		eventType = constants.EventListingUpdated
	}

	event := &service.ListingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		ListingID: listing.ID,
		OwnerID:   listing.OwnerID.String(),
		Location:  listing.Location.String(),
		ImagePath: listing.ImagePath,
	}

	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("type", eventType),
			slog.Int64("listing_id", listing.ID),
			slog.Any("error", err),
		)
	}
}

func imageExt(contentType, filename string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	if ext, ok := imageExtByType[strings.TrimSpace(strings.ToLower(mediaType))]; ok {
		return ext
	}

	ext := strings.ToLower(path.Ext(filename))
	for _, known := range imageExtByType {
		if ext == known {
			return ext
		}
	}
	if ext == ".jpeg" {
		return ".jpg"
	}

	return defaultImageExt
}

// failureNotice turns a submission error into the notice shown to the user.
func failureNotice(session *usecase.EditSession, err error) entity.Notice {
	notice := entity.Notice{Kind: entity.NoticeError}

	var missing *domainerrors.MissingFieldError
	var appErr domainerrors.AppError
	switch {
	case errors.As(err, &missing):
		notice.Title = "□ 빈칸 채우기"
		notice.Message = missing.Message()
	case errors.Is(err, domainerrors.ErrNoChange):
		notice.Title = "수정된 부분이 없습니다!"
		notice.Message = "조금이라도 수정해야 됩니다"
	case errors.Is(err, domainerrors.ErrMissingAsset):
		notice.Title = "이미지를 반드시 업로드해야 합니다!"
		notice.Message = "맛집 추천에는 음식 사진이 필요합니다"
	case errors.As(err, &appErr):
		notice.Title = failureTitle(session)
		notice.Message = appErr.Message()
	default:
		notice.Title = failureTitle(session)
		notice.Message = domainerrors.ErrInternalError.Message()
	}

	return notice
}

func failureTitle(session *usecase.EditSession) string {
	if session.IsEdit() {
		return "게시물 수정 중 오류 발생"
	}

	return "게시물 작성 중 오류 발생"
}
