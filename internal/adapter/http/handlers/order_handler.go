package handlers

import (
	"errors"
	"net/http"

	response "orcamento_bot/internal/adapter/http/dto/response"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the submission log to operators.
type OrderHandler struct {
	usecase usecase.IOrderSubmissionUseCase
}

func NewOrderHandler(uc usecase.IOrderSubmissionUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetByID godoc
// @Summary Show one order submission
// @Tags orders
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.OrderSubmissionResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSubmission(sub))
}

// ListByChatID godoc
// @Summary List the order submissions of a chat
// @Tags orders
// @Produce json
// @Param chat_id query string true "Chat ID"
// @Success 200 {array} response.OrderSubmissionResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /orders [get]
func (h *OrderHandler) ListByChatID(c *gin.Context) {
	list, err := h.usecase.ListByChatID(c.Request.Context(), c.Query("chat_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSubmissions(list))
}

// Resubmit godoc
// @Summary Send a failed submission to the backend again
// @Tags orders
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.OrderSubmissionResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Security Bearer
// @Router /orders/{id}/resubmit [post]
func (h *OrderHandler) Resubmit(c *gin.Context) {
	sub, err := h.usecase.Resubmit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSubmission(sub))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderSubmissionID), errors.Is(err, usecase.ErrInvalidChatID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderSubmissionNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_SUBMITTED", "Order submission already sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderSubmissionFailed):
		return pkg.NewDomainError("ORDER_SUBMISSION_FAILED", "Backend rejected the order", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
