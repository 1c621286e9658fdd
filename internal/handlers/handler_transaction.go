package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/autohaus/dms_backend/internal/apperrors"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
	"github.com/autohaus/dms_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	invoiceService     portssvc.InvoiceSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, is portssvc.InvoiceSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		invoiceService:     is,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := newTransactionHandler(transactionService, invoiceService)

	rg.POST("/reservations", h.createReservation)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/payments", h.addPayment)
		transactions.POST("/:id/cancel", h.cancelTransaction)
		transactions.POST("/mark-overdue", h.markOverdue)
		transactions.GET("/:id/invoice", h.getInvoice)
	}
}

// createReservation godoc
// @Summary Create a reservation
// @Description Creates a RESERVATION transaction for an AVAILABLE vehicle. The customer is resolved by verbatim contact number and created on first contact. LEASING payment mode requires leasing terms.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Inventory item not found"
// @Failure 409 {object} map[string]string "Vehicle is not available"
// @Failure 500 {object} map[string]string "Failed to create reservation"
// @Security BearerAuth
// @Router /reservations [post]
func (h *transactionHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create reservation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("inventory_id", req.InventoryID))

	txn, err := h.transactionService.CreateReservation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is not available for reservation"})
		default:
			logger.Error("Failed to create reservation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		}
		return
	}

	logger.Info("Reservation created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a transaction with its full payment ledger.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction from service", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a token-paginated page of transactions, newest first, optionally filtered by status and type.
// @Tags transactions
// @Produce  json
// @Param   status query string false "Filter by status" Enums(PENDING, PARTIAL_PAID, FULLY_PAID, COMPLETED, OVERDUE, CANCELLED)
// @Param   type query string false "Filter by type" Enums(RESERVATION, SALE, LEASING, REFUND)
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	})
}

// addPayment godoc
// @Summary Record a payment
// @Description Appends a payment to the transaction's ledger, recomputes totals and applies status transitions. Settled and terminal transactions refuse further payments.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   payment body dto.AddPaymentRequest true "Payment details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is settled or terminal"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /transactions/{id}/payments [post]
func (h *transactionHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivedByUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Receiving user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.AddPayment(c.Request.Context(), transactionID, req, receivedByUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded", slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// cancelTransaction godoc
// @Summary Cancel a transaction
// @Description Moves a non-terminal transaction to CANCELLED and releases its reserved vehicle back to AVAILABLE.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already terminal"
// @Failure 500 {object} map[string]string "Failed to cancel transaction"
// @Security BearerAuth
// @Router /transactions/{id}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CancelTransaction(c.Request.Context(), transactionID, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to cancel transaction in service", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel transaction"})
		}
		return
	}

	logger.Info("Transaction cancelled", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// markOverdue godoc
// @Summary Sweep overdue transactions
// @Description Flips PENDING and PARTIAL_PAID transactions whose due date has passed into OVERDUE. Overdue transactions still accept payments.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   sweep body dto.MarkOverdueRequest false "Optional cutoff instant"
// @Success 200 {object} dto.MarkOverdueResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to mark overdue"
// @Security BearerAuth
// @Router /transactions/mark-overdue [post]
func (h *transactionHandler) markOverdue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The body is optional; bind it only when one was sent.
	var req dto.MarkOverdueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf := time.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	count, err := h.transactionService.MarkOverdue(c.Request.Context(), asOf, requestingUserID)
	if err != nil {
		logger.Error("Failed to mark overdue transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark overdue transactions"})
		return
	}

	logger.Info("Overdue sweep completed", slog.Int64("marked_overdue", count))
	c.JSON(http.StatusOK, dto.MarkOverdueResponse{MarkedOverdue: count})
}

// getInvoice godoc
// @Summary Build an invoice view
// @Description Assembles the display-ready invoice for a transaction. The bank layout requires leasing details.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   layout query string false "Invoice layout" Enums(customer, bank) default(customer)
// @Success 200 {object} dto.InvoiceView
// @Failure 400 {object} map[string]string "Unknown layout or missing leasing details"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to build invoice"
// @Security BearerAuth
// @Router /transactions/{id}/invoice [get]
func (h *transactionHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	layout := dto.InvoiceLayout(c.DefaultQuery("layout", string(dto.LayoutCustomer)))

	view, err := h.invoiceService.BuildInvoice(c.Request.Context(), transactionID, layout)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		default:
			logger.Error("Failed to build invoice", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
