package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"orcamento_bot/internal/adapter/chat"
	request "orcamento_bot/internal/adapter/http/dto/request"
	response "orcamento_bot/internal/adapter/http/dto/response"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)

// MessageHandler receives customer messages pushed by a webhook gateway.
type MessageHandler struct {
	dispatcher IMessageDispatcher
	now        func() time.Time
}

func NewMessageHandler(d IMessageDispatcher) *MessageHandler {
	return &MessageHandler{dispatcher: d, now: time.Now}
}

// Receive godoc
// @Summary Receive an inbound chat message
// @Tags messages
// @Accept json
// @Produce json
// @Param payload body request.InboundMessageRequest true "Inbound message"
// @Success 202 {object} response.MessageAcceptedResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 429 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /messages [post]
func (h *MessageHandler) Receive(c *gin.Context) {
	var payload request.InboundMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}
	msg, err := payload.ToEntity(h.now().UTC())
	if err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	if err := h.dispatcher.Dispatch(msg); err != nil {
		log.Printf("[message][handler] dispatch failed chat_id=%s err=%v", msg.ChatID, err)
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.MessageAcceptedResponse{ChatID: msg.ChatID, Status: "queued"})
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, chat.ErrEmptyChatID):
		return errInvalidMessagePayload
	case errors.Is(err, chat.ErrChatQueueFull):
		return pkg.NewDomainErrorSimple("CHAT_QUEUE_FULL", "Too many pending messages for this chat", http.StatusTooManyRequests)
	case errors.Is(err, chat.ErrDispatcherClosed):
		return pkg.NewDomainErrorSimple("SHUTTING_DOWN", "Bot is shutting down", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
