package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/middleware"
)

// EmailDispatcher sends a single email.
type EmailDispatcher interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationHandler exposes the ad hoc administrative send endpoint. It
// forwards directly to the dispatcher, bypassing the event pipeline.
type NotificationHandler struct {
	dispatcher EmailDispatcher
}

func NewNotificationHandler(dispatcher EmailDispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

func (h *NotificationHandler) SendEmail(c *gin.Context) {
	to := c.Query("to")
	subject := c.Query("subject")
	text := c.Query("text")
	if to == "" || subject == "" || text == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "to, subject and text are required")
		return
	}

	if err := h.dispatcher.Send(c.Request.Context(), to, subject, text); err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to send email")
		return
	}

	c.String(http.StatusOK, "Email sent successfully to: %s", to)
}
