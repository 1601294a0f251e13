package handler

import (
	"net/http"
	"time"

	service "supplier-ledger-backend/internal/services/reminder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	service *service.Service
}

func NewDocumentHandler(s *service.Service) *DocumentHandler {
	return &DocumentHandler{service: s}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var payload struct {
		Name           string `json:"name"`
		DepartmentName string `json:"department_name"`
		Deadline       string `json:"deadline"` // "YYYY-MM-DD"
		Status         string `json:"status"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	deadline, err := time.Parse("2006-01-02", payload.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline, expected YYYY-MM-DD"})
		return
	}

	doc, err := h.service.Create(payload.Name, payload.DepartmentName, deadline, payload.Status)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document created", "document": doc})
}

func (h *DocumentHandler) List(c *gin.Context) {
	overdueOnly := c.Query("overdue") == "true"

	docs, err := h.service.List(overdueOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": docs})
}

func (h *DocumentHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
		return
	}

	var payload struct {
		Name     string `json:"name"`
		Deadline string `json:"deadline"`
		Status   string `json:"status"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	deadline, err := time.Parse("2006-01-02", payload.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline, expected YYYY-MM-DD"})
		return
	}

	doc, err := h.service.Edit(id, payload.Name, deadline, payload.Status)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document updated", "document": doc})
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}
