package handler

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/usecase"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/logger"
	"dpmarketpro/pkg/response"
)

// DraftImageHandler manages the gallery of a draft under edit. The draft
// itself travels with each request; nothing is persisted until the console
// submits the full draft.
type DraftImageHandler struct {
	editorUseCase *usecase.EditorUseCase
	maxFileSize   int64
}

func NewDraftImageHandler(editorUseCase *usecase.EditorUseCase) *DraftImageHandler {
	return &DraftImageHandler{
		editorUseCase: editorUseCase,
		maxFileSize:   5 * 1024 * 1024,
	}
}

// AttachImages accepts a multipart form with a "draft" JSON field and one or
// more "images" files. Files are validated and uploaded in order; failures
// are reported per file while the rest of the batch continues.
func (h *DraftImageHandler) AttachImages(c echo.Context) error {
	if err := c.Request().ParseMultipartForm(h.maxFileSize * int64(entity.MaxProductImages)); err != nil {
		return response.Error(c, errors.BadRequest("Failed to parse form", err))
	}

	var draft entity.Draft
	draftField := c.FormValue("draft")
	if draftField == "" {
		return response.Error(c, errors.BadRequest("Missing draft field", nil))
	}
	if err := json.Unmarshal([]byte(draftField), &draft); err != nil {
		return response.Error(c, errors.BadRequest("Invalid draft payload", err))
	}

	form := c.Request().MultipartForm
	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No files provided", nil))
	}

	var uploads []usecase.ImageUpload
	var failures []usecase.UploadFailure

	for _, fileHeader := range files {
		if fileHeader.Size > h.maxFileSize {
			failures = append(failures, usecase.UploadFailure{
				Filename: fileHeader.Filename,
				Message:  fmt.Sprintf("file exceeds %dMB limit", h.maxFileSize/(1024*1024)),
			})
			continue
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !isAllowedImageType(contentType) {
			failures = append(failures, usecase.UploadFailure{
				Filename: fileHeader.Filename,
				Message:  "file type not supported",
			})
			continue
		}

		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file %s: %v", fileHeader.Filename, err)
			failures = append(failures, usecase.UploadFailure{
				Filename: fileHeader.Filename,
				Message:  "failed to read file",
			})
			continue
		}
		defer src.Close()

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: contentType,
			Body:        src,
		})
	}

	failures = append(failures, h.editorUseCase.AttachImages(c.Request().Context(), &draft, uploads)...)

	return response.Success(c, map[string]interface{}{
		"draft":    draft,
		"failures": failures,
	})
}

type removeImageRequest struct {
	Draft entity.Draft `json:"draft"`
	Index *int         `json:"index" validate:"required"`
}

func (h *DraftImageHandler) RemoveImage(c echo.Context) error {
	var req removeImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.editorUseCase.RemoveImage(&req.Draft, *req.Index); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"draft": req.Draft,
	})
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
