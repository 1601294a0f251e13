package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"supplier-ledger-backend/internal/ledger"
	service "supplier-ledger-backend/internal/services/invoice"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *service.Service
}

func NewInvoiceHandler(s *service.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		SupplierName string  `json:"supplier_name"`
		ProductName  string  `json:"product_name"`
		Period       string  `json:"period"` // "YYYY-MM"
		Price        float64 `json:"price"`
		Quantity     int     `json:"quantity"`
		Paid         float64 `json:"paid"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	inv, err := h.service.Create(
		payload.SupplierName, payload.ProductName, payload.Period,
		payload.Price, payload.Quantity, payload.Paid,
	)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice created", "invoice": inv})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var supplierID *uuid.UUID
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier ID"})
			return
		}
		supplierID = &id
	}

	invoices, err := h.service.List(supplierID, c.Query("period"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": invoices})
}

func (h *InvoiceHandler) Summary(c *gin.Context) {
	summary, err := h.service.DebtSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *InvoiceHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload struct {
		Period   string  `json:"period"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		Paid     float64 `json:"paid"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	inv, err := h.service.Edit(id, payload.Price, payload.Quantity, payload.Paid, payload.Period)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice updated", "invoice": inv})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// Import ingests a CSV spreadsheet (supplier | product | period | price |
// quantity | paid, header row skipped) and applies it all-or-nothing.
func (h *InvoiceHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	rows, rowErrs := parseImportCSV(file)
	if len(rowErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "unparseable rows, nothing imported",
			"rows":  rowErrorDetails(rowErrs),
		})
		return
	}

	report, err := h.service.ImportRows(header.Filename, rows)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error":  err.Error(),
			"report": report,
			"rows":   rowErrorDetails(report.RowErrors),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "import completed", "report": report})
}

func (h *InvoiceHandler) GetBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}

	batch, err := h.service.GetBatch(batchID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "batch not found"})
		return
	}
	c.JSON(http.StatusOK, batch)
}

// parseImportCSV reads the upload into raw rows, keeping 1-based positions
// for any unparseable numeric fields.
func parseImportCSV(r io.Reader) ([]service.RawRow, []ledger.RowError) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header
	_, _ = reader.Read()

	var rows []service.RawRow
	var rowErrs []ledger.RowError
	rowNum := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrs = append(rowErrs, ledger.RowError{Row: rowNum, Err: fmt.Errorf("malformed csv: %v", err)})
			continue
		}
		if len(record) == 0 || strings.Join(record, "") == "" {
			continue
		}
		if len(record) < 6 {
			rowErrs = append(rowErrs, ledger.RowError{Row: rowNum, Err: fmt.Errorf("expected 6 columns, got %d", len(record))})
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			rowErrs = append(rowErrs, ledger.RowError{Row: rowNum, Err: fmt.Errorf("invalid price %q", record[3])})
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(record[4]))
		if err != nil {
			rowErrs = append(rowErrs, ledger.RowError{Row: rowNum, Err: fmt.Errorf("invalid quantity %q", record[4])})
			continue
		}
		paid, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		if err != nil {
			rowErrs = append(rowErrs, ledger.RowError{Row: rowNum, Err: fmt.Errorf("invalid paid amount %q", record[5])})
			continue
		}

		rows = append(rows, service.RawRow{
			SupplierName: strings.TrimSpace(record[0]),
			ProductName:  strings.TrimSpace(record[1]),
			Period:       strings.TrimSpace(record[2]),
			Price:        price,
			Quantity:     quantity,
			Paid:         paid,
		})
	}

	return rows, rowErrs
}

func rowErrorDetails(rowErrs []ledger.RowError) []ledger.RowErrorDetail {
	details := make([]ledger.RowErrorDetail, 0, len(rowErrs))
	for _, re := range rowErrs {
		details = append(details, ledger.RowErrorDetail{Row: re.Row, Reason: re.Err.Error()})
	}
	return details
}
