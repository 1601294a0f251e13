package handler

import (
	"net/http"
	"time"

	service "supplier-ledger-backend/internal/services/spending"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpendingHandler struct {
	service *service.Service
}

func NewSpendingHandler(s *service.Service) *SpendingHandler {
	return &SpendingHandler{service: s}
}

type spendingPayload struct {
	Amount   float64 `json:"amount"`
	Kind     string  `json:"kind"` // income | expense
	Category string  `json:"category"`
	Date     string  `json:"date"` // "YYYY-MM-DD"
	Note     string  `json:"note"`
}

func (h *SpendingHandler) Create(c *gin.Context) {
	var payload spendingPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	spentAt, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	rec, err := h.service.Create(payload.Amount, payload.Kind, payload.Category, spentAt, payload.Note)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record created", "record": rec})
}

func (h *SpendingHandler) List(c *gin.Context) {
	recs, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": recs})
}

// Summary returns signed net totals grouped by month (default) or year.
func (h *SpendingHandler) Summary(c *gin.Context) {
	var (
		rows []service.PeriodNet
		err  error
	)
	switch c.DefaultQuery("by", "month") {
	case "month":
		rows, err = h.service.MonthlySummary()
	case "year":
		rows, err = h.service.YearlySummary()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be month or year"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

func (h *SpendingHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="spending.csv"`)
	if err := h.service.ExportCSV(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *SpendingHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}

	var payload spendingPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	spentAt, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	rec, err := h.service.Edit(id, payload.Amount, payload.Kind, payload.Category, spentAt, payload.Note)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record updated", "record": rec})
}

func (h *SpendingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
