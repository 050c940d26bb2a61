package usecase

import (
	"context"
	"io"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/internal/domain/service"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/logger"
)

const imageFolder = "product-images"

// EditorUseCase backs the admin console: draft image management plus the
// create/replace/delete/toggle calls against the record gateway.
type EditorUseCase struct {
	productRepo repository.ProductRepository
	uploader    service.FileUploadService
}

func NewEditorUseCase(productRepo repository.ProductRepository, uploader service.FileUploadService) *EditorUseCase {
	return &EditorUseCase{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadFailure struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// AttachImages uploads each file in turn and appends the resulting public
// URLs to the draft's gallery, capped at MaxProductImages. Files are
// uploaded one at a time; a failing file is reported and skipped, the rest
// of the batch continues. If the draft had no primary image yet, the new
// gallery head becomes the primary.
func (uc *EditorUseCase) AttachImages(ctx context.Context, draft *entity.Draft, uploads []ImageUpload) []UploadFailure {
	var failures []UploadFailure
	var uploaded []string

	for _, up := range uploads {
		result, err := uc.uploader.UploadFile(ctx, up.Body, up.ContentType, up.Filename, imageFolder)
		if err != nil {
			logger.Error("Image upload failed for %s: %v", up.Filename, err)
			failures = append(failures, UploadFailure{Filename: up.Filename, Message: err.Error()})
			continue
		}
		uploaded = append(uploaded, result.URL)
	}

	merged := append(append([]string{}, draft.Images...), uploaded...)
	if len(merged) > entity.MaxProductImages {
		merged = merged[:entity.MaxProductImages]
	}
	draft.Images = merged
	if draft.ImageURL == "" && len(merged) > 0 {
		draft.ImageURL = merged[0]
	}

	return failures
}

// RemoveImage drops the gallery entry at index and recomputes the primary
// image as the new head, or clears it when the gallery empties.
func (uc *EditorUseCase) RemoveImage(draft *entity.Draft, index int) error {
	if index < 0 || index >= len(draft.Images) {
		return errors.BadRequest("Image index out of range", nil)
	}

	draft.Images = append(draft.Images[:index], draft.Images[index+1:]...)
	if len(draft.Images) > 0 {
		draft.ImageURL = draft.Images[0]
	} else {
		draft.ImageURL = ""
	}
	return nil
}

// Submit persists the draft: an insert when it has no ID, a full-record
// replace otherwise. Field validation happens at the HTTP surface before
// this is reachable. On gateway error the draft is untouched, leaving it
// open for retry.
func (uc *EditorUseCase) Submit(ctx context.Context, draft *entity.Draft) (*entity.Product, error) {
	if len(draft.Images) > entity.MaxProductImages {
		return nil, errors.BadRequest("A listing carries at most 5 images", nil)
	}

	imageURL := draft.ImageURL
	if len(draft.Images) > 0 {
		imageURL = draft.Images[0]
	}

	active := true
	if draft.IsActive != nil {
		active = *draft.IsActive
	}

	product := &entity.Product{
		ID:          draft.ID,
		Title:       draft.Title,
		Subtitle:    draft.Subtitle,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    draft.Category,
		ImageURL:    imageURL,
		Images:      draft.Images,
		Features:    draft.Features,
		PaymentLink: draft.PaymentLink,
		IsActive:    active,
	}

	if draft.ID == "" {
		if err := uc.productRepo.Create(ctx, product); err != nil {
			return nil, err
		}
		return product, nil
	}

	existing, err := uc.productRepo.GetByID(ctx, draft.ID)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete hard-deletes a listing. The caller must have collected an explicit
// confirmation; without it no gateway call is made. There is no undo.
func (uc *EditorUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errors.BadRequest("Deletion requires explicit confirmation", nil)
	}
	return uc.productRepo.Delete(ctx, id)
}

// ToggleActive flips only the active flag via a single-field update. This is
// deliberately not a full replace: a concurrent edit to any other field must
// not be clobbered by a visibility toggle.
func (uc *EditorUseCase) ToggleActive(ctx context.Context, product *entity.Product) error {
	return uc.productRepo.SetActive(ctx, product.ID, !product.IsActive)
}

// ListAll feeds the admin console table: every listing including drafts,
// newest first. Unlike the storefront there is no demo fallback here; an
// admin needs to see the gateway failing.
func (uc *EditorUseCase) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, false)
}

// GetByID fetches a single listing for editing, without fallback.
func (uc *EditorUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}
