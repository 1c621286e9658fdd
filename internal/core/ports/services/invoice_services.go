package services

import (
	"context"

	"github.com/autohaus/dms_backend/internal/dto"
)

// InvoiceSvcFacade assembles display-ready invoice view-models.
type InvoiceSvcFacade interface {
	// BuildInvoice loads the transaction, its customer and its inventory
	// item and flattens them into the view for the requested layout.
	BuildInvoice(ctx context.Context, transactionID string, layout dto.InvoiceLayout) (*dto.InvoiceView, error)
}
