package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/internal/service"
)

// BrainHandler handles share link endpoints.
type BrainHandler struct {
	shareService service.ShareService
	logger       *zap.Logger
}

// NewBrainHandler creates a new brain handler.
func NewBrainHandler(shareService service.ShareService, logger *zap.Logger) *BrainHandler {
	return &BrainHandler{shareService: shareService, logger: logger}
}

// ShareRequest enables or disables the caller's public link.
type ShareRequest struct {
	Share *bool `json:"share" validate:"required"`
}

// ShareResponse carries the share hash when sharing is enabled.
type ShareResponse struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// Share godoc
// @Summary Enable or disable the public share link
// @Description Enabling returns the existing hash when one exists. Disabling removes it.
// @Tags brain
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ShareRequest true "Share flag"
// @Success 200 {object} ShareResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /brain/share [post]
func (h *BrainHandler) Share(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	var req ShareRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hash, err := h.shareService.Share(c.Request().Context(), userID, *req.Share)
	if err != nil {
		return fail(c, h.logger, err)
	}

	if !*req.Share {
		return c.JSON(http.StatusOK, ShareResponse{Success: true, Message: "share link removed"})
	}
	return c.JSON(http.StatusOK, ShareResponse{Success: true, Hash: hash})
}

// Get godoc
// @Summary Resolve a public share link
// @Tags brain
// @Produce json
// @Param shareLink path string true "Share hash"
// @Success 200 {object} service.PublicBrain
// @Failure 411 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /brain/{shareLink} [get]
func (h *BrainHandler) Get(c echo.Context) error {
	brain, err := h.shareService.Resolve(c.Request().Context(), c.Param("shareLink"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, brain)
}
