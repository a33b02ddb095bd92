package handlers

import (
	"errors"
	"net/http"

	request "orcamento_bot/internal/adapter/http/dto/request"
	response "orcamento_bot/internal/adapter/http/dto/response"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidHandoffPayload = pkg.NewDomainErrorSimple("INVALID_HANDOFF_INPUT", "Invalid handoff payload", http.StatusBadRequest)

// HandoffHandler lets operators take chats away from the bot and give them
// back without using the ops chat commands.
type HandoffHandler struct {
	usecase usecase.IHandoffUseCase
}

func NewHandoffHandler(uc usecase.IHandoffUseCase) *HandoffHandler {
	return &HandoffHandler{usecase: uc}
}

// List godoc
// @Summary List chats handed off to a human
// @Tags handoffs
// @Produce json
// @Success 200 {object} response.HandoffListResponse
// @Security Bearer
// @Router /handoffs [get]
func (h *HandoffHandler) List(c *gin.Context) {
	ids, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHandoffList(ids))
}

// Start godoc
// @Summary Hand a chat off to a human
// @Tags handoffs
// @Accept json
// @Produce json
// @Param payload body request.StartHandoffRequest true "Chat"
// @Success 201 {object} response.HandoffChangeResponse
// @Success 200 {object} response.HandoffChangeResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /handoffs [post]
func (h *HandoffHandler) Start(c *gin.Context) {
	var payload request.StartHandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHandoffPayload.HTTPStatus, errInvalidHandoffPayload.ToHTTPError())
		return
	}
	chatID, err := usecase.NormalizeChatID(payload.ChatID)
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	started, err := h.usecase.StartHandoff(c.Request.Context(), chatID)
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if started {
		status = http.StatusCreated
	}
	c.JSON(status, response.HandoffChangeResponse{ChatID: chatID, Active: true, Changed: started})
}

// End godoc
// @Summary Return a chat to the bot
// @Tags handoffs
// @Produce json
// @Param chat_id path string true "Chat ID"
// @Success 200 {object} response.HandoffChangeResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /handoffs/{chat_id} [delete]
func (h *HandoffHandler) End(c *gin.Context) {
	chatID, err := usecase.NormalizeChatID(c.Param("chat_id"))
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ended, err := h.usecase.EndHandoff(c.Request.Context(), chatID)
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.HandoffChangeResponse{ChatID: chatID, Active: false, Changed: ended})
}

func mapHandoffError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHandoffTarget):
		return pkg.NewDomainErrorSimple("INVALID_CHAT_ID", "Invalid chat id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
