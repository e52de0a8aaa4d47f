package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/export"
	"gstinvoice/internal/query"
	"gstinvoice/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Create a new invoice; assigns the next invoice number and registers the client if unseen
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.CreateInvoiceInput true "Invoice details"
// @Success 201 {object} APIResponse{data=domain.Invoice} "Invoice created"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 409 {object} APIResponse "No firm profile configured"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description Filtered and sorted view of the invoice history with computed totals
// @Tags invoices
// @Produce json
// @Param client query string false "Case-insensitive client name substring"
// @Param start query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end query string false "End date (YYYY-MM-DD, inclusive)"
// @Param sort query string false "Sort field" Enums(invoiceNumber, clientName, date, dueDate, status) default(date)
// @Param dir query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} APIResponse{data=[]service.InvoiceListEntry}
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	filter, sortState, err := parseListParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	entries, err := h.invoiceService.List(c.Request.Context(), filter, sortState)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, entries, len(entries))
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} APIResponse{data=domain.Invoice}
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

type updateStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
// @Summary Update invoice status
// @Description Any status is reachable from any other
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body updateStatusRequest true "New status"
// @Success 200 {object} APIResponse{data=domain.Invoice}
// @Failure 400 {object} APIResponse "Unknown status"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

type previewRequest struct {
	LineItems []service.LineItemInput `json:"line_items"`
	Discount  domain.Discount         `json:"discount"`
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Compute live totals
// @Description Pure computation of subtotal, discount allocation, GST and grand total; no state is touched
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body previewRequest true "Line items and discount"
// @Success 200 {object} APIResponse{data=money.Breakdown}
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.invoiceService.Preview(req.LineItems, req.Discount))
}

// KnownItems handles GET /api/v1/items
// @Summary Known line items
// @Description Deduplicated, most-recent-wins index of previously used item descriptions
// @Tags invoices
// @Produce json
// @Success 200 {object} APIResponse{data=[]catalog.KnownItem}
// @Router /items [get]
func (h *InvoiceHandler) KnownItems(c *gin.Context) {
	items, err := h.invoiceService.KnownItems(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, items, len(items))
}

// Export handles GET /api/v1/invoices/export
// @Summary Export invoices
// @Description Export the filtered invoice list as CSV or XLSX
// @Tags invoices
// @Produce octet-stream
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Param client query string false "Case-insensitive client name substring"
// @Param start query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Router /invoices/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	filter, sortState, err := parseListParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	entries, err := h.invoiceService.List(c.Request.Context(), filter, sortState)
	if err != nil {
		HandleError(c, err)
		return
	}
	invoices := make([]domain.Invoice, 0, len(entries))
	for _, e := range entries {
		invoices = append(invoices, e.Invoice)
	}

	stamp := time.Now().Format("20060102-150405")
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewCSVWriter(&buf)
		if err := w.WriteHeader(); err == nil {
			err = w.WriteInvoices(invoices)
		}
		w.Flush()
		if err == nil {
			err = w.Error()
		}
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoices-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, invoices); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoices-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

func parseListParams(c *gin.Context) (query.Filter, query.Sort, error) {
	filter := query.Filter{ClientSubstring: c.Query("client")}

	if s := c.Query("start"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return query.Filter{}, query.Sort{}, err
		}
		filter.Start = d
	}
	if s := c.Query("end"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return query.Filter{}, query.Sort{}, err
		}
		filter.End = d
	}

	field, err := query.ParseField(c.DefaultQuery("sort", string(query.FieldDate)))
	if err != nil {
		return query.Filter{}, query.Sort{}, err
	}
	dir := c.DefaultQuery("dir", "desc")
	if dir != "asc" && dir != "desc" {
		return query.Filter{}, query.Sort{}, fmt.Errorf("dir must be asc or desc")
	}
	return filter, query.Sort{Field: field, Descending: dir == "desc"}, nil
}
