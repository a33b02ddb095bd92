package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"orcamento_bot/internal/adapter/chat"
	response "orcamento_bot/internal/adapter/http/dto/response"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/internal/usecase/interfaces"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
	// queue runs resets on the chat worker so they never race a step.
	queue interfaces.IChatQueue
}

func NewSessionHandler(uc usecase.ISessionUseCase, queue interfaces.IChatQueue) *SessionHandler {
	return &SessionHandler{usecase: uc, queue: queue}
}

// Get godoc
// @Summary Show the conversation state of a chat
// @Tags sessions
// @Produce json
// @Param chat_id path string true "Chat ID"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /sessions/{chat_id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	chatID := strings.TrimSpace(c.Param("chat_id"))
	if chatID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	s, err := h.usecase.Get(c.Request.Context(), chatID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Reset godoc
// @Summary Restart the conversation of a chat
// @Tags sessions
// @Produce json
// @Param chat_id path string true "Chat ID"
// @Success 202 {object} response.MessageAcceptedResponse
// @Security Bearer
// @Router /sessions/{chat_id} [delete]
func (h *SessionHandler) Reset(c *gin.Context) {
	chatID := strings.TrimSpace(c.Param("chat_id"))
	if chatID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	if h.queue == nil {
		if err := h.usecase.Reset(c.Request.Context(), chatID); err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MessageAcceptedResponse{ChatID: chatID, Status: "reset"})
		return
	}

	err := h.queue.Enqueue(chatID, func(ctx context.Context) {
		if err := h.usecase.Reset(context.WithoutCancel(ctx), chatID); err != nil {
			log.Printf("[session][handler] reset failed chat_id=%s err=%v", chatID, err)
		}
	})
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, response.MessageAcceptedResponse{ChatID: chatID, Status: "queued"})
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, chat.ErrChatQueueFull):
		return pkg.NewDomainErrorSimple("CHAT_QUEUE_FULL", "Too many pending messages for this chat", http.StatusTooManyRequests)
	case errors.Is(err, chat.ErrDispatcherClosed):
		return pkg.NewDomainErrorSimple("SHUTTING_DOWN", "Bot is shutting down", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
