package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/marketplace-system/internal/api/metrics"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// MessageHandler handles HTTP requests for messaging operations.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /v1/messages.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  ports.MessageView
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.Send(c.Request().Context(), actor, ports.SendMessageInput{
		RecipientID: req.RecipientID,
		ProductID:   req.ProductID,
		Content:     req.Content,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, view)
}

// Inbox handles GET /v1/messages — the actor's messages, newest first.
//
// @Summary      List own messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.MessageView
// @Router       /v1/messages [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// UnreadCount handles GET /v1/messages/unread.
//
// @Summary      Count unread messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /v1/messages/unread [get]
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}

// ListForProduct handles GET /v1/products/:id/messages — the actor's own
// threads on the listing, oldest first.
//
// @Summary      List own messages on a listing
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product ID"
// @Success      200  {array}  ports.MessageView
// @Router       /v1/products/{id}/messages [get]
func (h *MessageHandler) ListForProduct(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForProduct(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Conversation handles GET /v1/conversations/:userId — the two-party
// product-scoped thread, oldest first.
//
// @Summary      Get a conversation
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userId      path   string  true  "Other participant"
// @Param        product_id  query  string  true  "Product ID"
// @Success      200  {array}  ports.MessageView
// @Router       /v1/conversations/{userId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.GetConversation(c.Request().Context(), actor, c.Param("userId"), c.QueryParam("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// MarkRead handles POST /v1/messages/:id/read.
//
// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Message ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.MarkRead(c.Request().Context(), actor, id); err != nil {
		return err
	}

	metrics.MessagesReadTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"read": id})
}
