package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"teller-desk/internal/currency"
	"teller-desk/internal/dto"
	"teller-desk/internal/errors"
	"teller-desk/internal/models"
	"teller-desk/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LedgerHandler serves the JSON API over the ledger
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
	formatter     currency.Formatter
	logger        *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService services.LedgerServiceInterface, formatter currency.Formatter, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		formatter:     formatter,
		logger:        logger,
	}
}

// GetBank returns the bank aggregates
// @Summary Get bank totals
// @Description Total balance held and cumulative loans disbursed
// @Tags Bank
// @Produce json
// @Success 200 {object} dto.BankResponse "Bank totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /bank [get]
func (h *LedgerHandler) GetBank(c echo.Context) error {
	bank, err := h.ledgerService.GetBank(c.Request().Context())
	if err != nil {
		return h.sendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBankResponse(h.formatter, bank))
}

// GetReconciliation checks the bank totals against the customer accounts
// @Summary Reconcile the ledger
// @Description Customer balances must equal the total balance plus loans not yet booked into it
// @Tags Bank
// @Produce json
// @Success 200 {object} dto.ReconciliationResponse "Reconciliation result"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /bank/reconciliation [get]
func (h *LedgerHandler) GetReconciliation(c echo.Context) error {
	result, err := h.ledgerService.Reconcile(c.Request().Context())
	if err != nil {
		return h.sendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewReconciliationResponse(h.formatter, result))
}

// ListCustomers returns every customer ordered by id
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {object} dto.CustomerListResponse "Customers"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [get]
func (h *LedgerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.ledgerService.GetCustomers(c.Request().Context())
	if err != nil {
		return h.sendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerListResponse(h.formatter, customers))
}

// OpenAccount opens an account with an initial deposit
// @Summary Open account
// @Description Creates a customer with the next sequential id and a derived account number
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.OpenAccountRequest true "Holder name and initial deposit"
// @Success 201 {object} dto.LedgerMutationResponse "Account opened"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [post]
func (h *LedgerHandler) OpenAccount(c echo.Context) error {
	var req dto.OpenAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	initialDeposit, err := currency.ParseAmount(req.InitialDeposit)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	customer, err := h.ledgerService.OpenAccount(c.Request().Context(), req.Name, initialDeposit)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, h.mutationResponse(customer, accountOpenedMessage(customer)))
}

// GetCustomer returns a customer with the passbook oldest first
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer with passbook"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{id} [get]
func (h *LedgerHandler) GetCustomer(c echo.Context) error {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.ledgerService.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(h.formatter, customer))
}

// GetPassbook returns the passbook newest first
// @Summary Get passbook
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.PassbookResponse "Passbook entries, newest first"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/passbook [get]
func (h *LedgerHandler) GetPassbook(c echo.Context) error {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	entries, err := h.ledgerService.GetPassbook(c.Request().Context(), customerID)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPassbookResponse(h.formatter, customerID, entries))
}

// GetBalanceHistory returns the balance chart series
// @Summary Get balance history
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.BalanceHistoryResponse "Dates and balances, oldest first"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/balance-history [get]
func (h *LedgerHandler) GetBalanceHistory(c echo.Context) error {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	history, err := h.ledgerService.GetBalanceHistory(c.Request().Context(), customerID)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceHistoryResponse(history))
}

// Deposit credits a customer
// @Summary Deposit
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.AmountRequest true "Amount"
// @Success 201 {object} dto.LedgerMutationResponse "Deposit posted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/deposits [post]
func (h *LedgerHandler) Deposit(c echo.Context) error {
	return h.post(c, h.ledgerService.Deposit)
}

// Withdraw debits a customer when the balance covers the amount
// @Summary Withdraw
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.AmountRequest true "Amount"
// @Success 201 {object} dto.LedgerMutationResponse "Withdrawal posted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Insufficient funds"
// @Router /customers/{id}/withdrawals [post]
func (h *LedgerHandler) Withdraw(c echo.Context) error {
	return h.post(c, h.ledgerService.Withdraw)
}

// DisburseLoan credits a loan to a customer. The bank total balance is unchanged.
// @Summary Disburse loan
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.AmountRequest true "Amount"
// @Success 201 {object} dto.LedgerMutationResponse "Loan disbursed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/loans [post]
func (h *LedgerHandler) DisburseLoan(c echo.Context) error {
	return h.post(c, h.ledgerService.DisburseLoan)
}

type postFunc func(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error)

func (h *LedgerHandler) post(c echo.Context, apply postFunc) error {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	var req dto.AmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	amount, err := currency.ParseAmount(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	customer, err := apply(ctx, customerID, amount)
	if err != nil {
		if stderrors.Is(err, services.ErrInsufficientFunds) {
			return h.sendInsufficientFunds(c, customerID, amount)
		}
		return h.sendLedgerError(c, err)
	}

	entry := customer.LastTransaction()
	return c.JSON(http.StatusCreated, h.mutationResponse(customer, postedMessage(h.formatter, customer, entry)))
}

func (h *LedgerHandler) mutationResponse(customer *models.Customer, message string) dto.LedgerMutationResponse {
	response := dto.LedgerMutationResponse{
		Customer: dto.NewCustomerResponse(h.formatter, customer),
		Message:  message,
	}
	if entry := customer.LastTransaction(); entry != nil {
		response.Transaction = dto.NewTransactionResponse(h.formatter, entry)
	}
	return response
}

func (h *LedgerHandler) sendInsufficientFunds(c echo.Context, customerID int64, amount decimal.Decimal) error {
	requested := "requested: " + h.formatter.Format(amount)

	customer, err := h.ledgerService.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return SendError(c, errors.TransactionInsufficientFunds, errors.WithDetails(requested))
	}

	return SendError(c, errors.TransactionInsufficientFunds,
		errors.WithMessage(insufficientFundsMessage(customer.Name)),
		errors.WithDetails(requested, "balance: "+h.formatter.Format(customer.Balance)),
	)
}

// sendLedgerError maps ledger service errors onto API error codes
func (h *LedgerHandler) sendLedgerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrInsufficientFunds):
		return SendError(c, errors.TransactionInsufficientFunds)
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidName):
		return SendError(c, errors.CustomerInvalidName)
	case stderrors.Is(err, services.ErrInvalidDemoCount):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	default:
		return h.sendSystemError(c, err)
	}
}

func (h *LedgerHandler) sendSystemError(c echo.Context, err error) error {
	h.logger.ErrorContext(c.Request().Context(), "ledger request failed",
		slog.String("trace_id", getTraceID(c)),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return SendSystemError(c, err)
}
