package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/internal/errors"
	"brainvault/internal/model"
	"brainvault/internal/service"
)

// ContentHandler handles content endpoints.
type ContentHandler struct {
	contentService service.ContentService
	logger         *zap.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{contentService: contentService, logger: logger}
}

// CreateContentRequest is the JSON form of a content submission. Multipart
// requests use the same field names plus a "file" part.
type CreateContentRequest struct {
	Title       string `json:"title" form:"title"`
	Type        string `json:"type" form:"type"`
	Link        string `json:"link" form:"link"`
	Description string `json:"description" form:"description"`
}

// DeleteContentRequest identifies the content to delete.
type DeleteContentRequest struct {
	ContentID string `json:"contentId" validate:"required"`
}

// ContentResponse wraps a single content item.
type ContentResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Content *model.Content `json:"content"`
}

// ContentListResponse wraps the caller's content.
type ContentListResponse struct {
	Success bool            `json:"success"`
	Content []model.Content `json:"content"`
}

// Create godoc
// @Summary Save content
// @Description Title and type are always required. Social types need link and description, documents need a file or a link, other needs a link or a description. Files must be PDF, DOC, DOCX, PPT or PPTX and at most 10 MiB.
// @Tags content
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body CreateContentRequest false "Content (JSON)"
// @Param file formData file false "Document upload (multipart)"
// @Success 201 {object} ContentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	var req CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}
	sub := service.Submission{
		Title:       req.Title,
		Type:        req.Type,
		Link:        req.Link,
		Description: req.Description,
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		switch {
		case err == nil:
			f, err := fh.Open()
			if err != nil {
				return fail(c, h.logger, err)
			}
			defer f.Close()
			sub.File = &service.FileUpload{
				Name:        fh.Filename,
				Size:        fh.Size,
				ContentType: fh.Header.Get(echo.HeaderContentType),
				Content:     f,
			}
		case !stderrors.Is(err, http.ErrMissingFile):
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Message: "invalid multipart body",
				Code:    "INVALID_REQUEST",
			})
		}
	}

	content, err := h.contentService.Create(c.Request().Context(), userID, sub)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, ContentResponse{Success: true, Message: "content added", Content: content})
}

// List godoc
// @Summary List own content
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param type query string false "Content type filter" Enums(linkedin, twitter, instagram, youtube, pinterest, documents, other)
// @Success 200 {object} ContentListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /content [get]
func (h *ContentHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	contents, err := h.contentService.List(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, ContentListResponse{Success: true, Content: contents})
}

// Delete godoc
// @Summary Delete own content
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteContentRequest true "Content id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /content [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	var req DeleteContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	contentID, err := uuid.Parse(strings.TrimSpace(req.ContentID))
	if err != nil {
		return fail(c, h.logger, errors.NewValidationError(errors.ErrInvalidContentID, "", "contentId"))
	}

	if err := h.contentService.Delete(c.Request().Context(), userID, contentID); err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "content deleted"})
}

// Download godoc
// @Summary Download a stored document
// @Tags content
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Content id"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /content/{id}/download [get]
func (h *ContentHandler) Download(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, h.logger, errors.NewValidationError(errors.ErrInvalidContentID, "", "id"))
	}

	content, err := h.contentService.Download(c.Request().Context(), userID, contentID)
	if err != nil {
		return fail(c, h.logger, err)
	}

	if err := c.Attachment(content.FilePath, content.FileName); err != nil {
		h.logger.Warn("stored file unavailable", zap.String("content_id", content.ID.String()), zap.Error(err))
		return fail(c, h.logger, errors.ErrFileNotFound)
	}
	return nil
}
