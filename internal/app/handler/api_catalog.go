package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/diseases
func (h *Handler) ApiListDiseases(ctx *gin.Context) {
	diseases, err := h.Repository.GetActiveDiseases()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, diseases, int64(len(diseases)), gin.H{})
}

// GET /api/symptoms?search=
func (h *Handler) ApiListSymptoms(ctx *gin.Context) {
	search := ctx.Query("search")

	var err error
	var symptoms interface{}
	var count int64
	if search != "" {
		list, e := h.Repository.SearchSymptoms(search)
		symptoms, count, err = list, int64(len(list)), e
	} else {
		list, e := h.Repository.GetActiveSymptoms()
		symptoms, count, err = list, int64(len(list)), e
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, symptoms, count, gin.H{"search": search})
}
