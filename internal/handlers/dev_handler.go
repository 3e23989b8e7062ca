package handlers

import (
	"log/slog"
	"net/http"

	"teller-desk/internal/currency"
	"teller-desk/internal/dto"
	"teller-desk/internal/errors"
	"teller-desk/internal/services"

	"github.com/labstack/echo/v4"
)

// defaultDemoCustomers is used when count is omitted
const defaultDemoCustomers = 5

// DevHandler handles development-only endpoints
// These endpoints should only be registered in development environments
type DevHandler struct {
	ledger *LedgerHandler
}

// NewDevHandler creates a new development handler
func NewDevHandler(ledgerService services.LedgerServiceInterface, formatter currency.Formatter, logger *slog.Logger) *DevHandler {
	return &DevHandler{ledger: NewLedgerHandler(ledgerService, formatter, logger)}
}

// GenerateDemoCustomers opens accounts for fake holders
//
// Method: POST /api/v1/dev/customers/generate
// Environment: Development only
//
// Query parameters:
//   - count: Number of accounts to open (default: 5, max: 50)
//
// Success Response: 201 Created
//   - data.customers: The opened accounts
//   - data.count: Number of accounts opened
//
// Error Responses:
//   - 400: count out of range
//   - 500: Internal server error
func (h *DevHandler) GenerateDemoCustomers(c echo.Context) error {
	var req dto.GenerateDemoCustomersRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("count must be an integer"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	count := req.Count
	if count == 0 {
		count = defaultDemoCustomers
	}

	customers, err := h.ledger.ledgerService.GenerateDemoCustomers(c.Request().Context(), count)
	if err != nil {
		return h.ledger.sendLedgerError(c, err)
	}

	summaries := make([]dto.CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		summaries = append(summaries, dto.NewCustomerSummary(h.ledger.formatter, customer))
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.DemoCustomersResponse{
			Customers: summaries,
			Count:     len(summaries),
		},
		Message: "demo customers generated successfully",
	})
}
