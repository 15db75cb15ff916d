package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
)

// POST /api/contact
func (h *Handler) ApiContact(ctx *gin.Context) {
	type requestBody struct {
		Name    string `json:"name" binding:"required,min=2,max=100"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone" binding:"omitempty,max=30"`
		Subject string `json:"subject" binding:"omitempty,max=200"`
		Message string `json:"message" binding:"required,min=5"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	msg := &ds.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Subject: body.Subject,
		Message: body.Message,
	}
	if err := h.Repository.CreateContactMessage(msg); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// missing SMTP credentials or a send failure still leaves the message stored
	notified := false
	if h.Mailer != nil {
		notified = h.Mailer.SendContactNotification(body.Name, body.Email, body.Phone, body.Subject, body.Message)
	}
	if notified {
		if err := h.Repository.MarkContactMessageNotified(msg.ID); err == nil {
			msg.Notified = true
		}
	}

	jsonResponse(ctx, gin.H{
		"message":  "thank you for reaching out, we will get back to you soon",
		"id":       msg.ID,
		"notified": notified,
	}, 1, gin.H{})
}
