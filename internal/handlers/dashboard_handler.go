package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"teller-desk/internal/currency"
	"teller-desk/internal/dto"
	"teller-desk/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	dashboardTemplate = "dashboard"

	unexpectedFailureMessage = "Something went wrong. Please try again."
	unknownCustomerMessage   = "Customer not found."
)

type dashboardCustomer struct {
	dto.CustomerSummary
	Active bool
}

type dashboardView struct {
	Bank           dto.BankResponse
	Customers      []dashboardCustomer
	Selected       *dto.CustomerResponse
	Passbook       []dto.TransactionResponse
	ChartLabels    []string
	ChartData      []float64
	CurrencySymbol string
	Message        string
	CloseURL       string
}

// DashboardHandler serves the server-rendered teller dashboard. Every form
// posts a command and redirects back to GET / so the page always renders
// from the latest ledger snapshot.
type DashboardHandler struct {
	ledgerService services.LedgerServiceInterface
	formatter     currency.Formatter
	logger        *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(ledgerService services.LedgerServiceInterface, formatter currency.Formatter, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		ledgerService: ledgerService,
		formatter:     formatter,
		logger:        logger,
	}
}

// Show renders the dashboard. ?customer selects a customer and ?message
// shows a feedback banner.
func (h *DashboardHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()

	bank, err := h.ledgerService.GetBank(ctx)
	if err != nil {
		return err
	}

	customers, err := h.ledgerService.GetCustomers(ctx)
	if err != nil {
		return err
	}

	view := dashboardView{
		Bank:           dto.NewBankResponse(h.formatter, bank),
		Customers:      make([]dashboardCustomer, 0, len(customers)),
		CurrencySymbol: h.formatter.Symbol,
		Message:        c.QueryParam("message"),
		CloseURL:       "/",
	}

	var activeID int64
	if raw := c.QueryParam("customer"); raw != "" {
		if id, err := parsePositiveID(raw); err == nil {
			activeID = id
		}
	}

	if activeID > 0 {
		if err := h.loadSelected(c, activeID, &view); err != nil {
			return err
		}
	}

	for i := range customers {
		view.Customers = append(view.Customers, dashboardCustomer{
			CustomerSummary: dto.NewCustomerSummary(h.formatter, &customers[i]),
			Active:          view.Selected != nil && customers[i].ID == view.Selected.ID,
		})
	}

	return c.Render(http.StatusOK, dashboardTemplate, view)
}

func (h *DashboardHandler) loadSelected(c echo.Context, customerID int64, view *dashboardView) error {
	ctx := c.Request().Context()

	customer, err := h.ledgerService.GetCustomer(ctx, customerID)
	if stderrors.Is(err, services.ErrCustomerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	passbook, err := h.ledgerService.GetPassbook(ctx, customerID)
	if err != nil {
		return err
	}

	history, err := h.ledgerService.GetBalanceHistory(ctx, customerID)
	if err != nil {
		return err
	}

	selected := dto.NewCustomerResponse(h.formatter, customer)
	view.Selected = &selected
	view.Passbook = dto.NewPassbookResponse(h.formatter, customerID, passbook).Entries
	view.ChartLabels = history.Labels
	view.ChartData = make([]float64, 0, len(history.Data))
	for _, balance := range history.Data {
		view.ChartData = append(view.ChartData, balance.InexactFloat64())
	}
	view.CloseURL = customerURL(customerID)
	return nil
}

// OpenAccount handles the add-customer form
func (h *DashboardHandler) OpenAccount(c echo.Context) error {
	var req dto.OpenAccountRequest
	if err := c.Bind(&req); err != nil {
		return redirectToDashboard(c, 0, "Invalid input.")
	}

	if err := c.Validate(req); err != nil {
		return redirectToDashboard(c, 0, validationSummary(err))
	}

	initialDeposit, err := currency.ParseAmount(req.InitialDeposit)
	if err != nil {
		return redirectToDashboard(c, 0, "Invalid initial deposit.")
	}

	customer, err := h.ledgerService.OpenAccount(c.Request().Context(), req.Name, initialDeposit)
	if err != nil {
		return redirectToDashboard(c, 0, h.failureMessage(c, err, 0))
	}

	return redirectToDashboard(c, customer.ID, accountOpenedMessage(customer))
}

// Deposit handles the deposit form
func (h *DashboardHandler) Deposit(c echo.Context) error {
	return h.post(c, h.ledgerService.Deposit)
}

// Withdraw handles the withdrawal form
func (h *DashboardHandler) Withdraw(c echo.Context) error {
	return h.post(c, h.ledgerService.Withdraw)
}

// DisburseLoan handles the loan form
func (h *DashboardHandler) DisburseLoan(c echo.Context) error {
	return h.post(c, h.ledgerService.DisburseLoan)
}

func (h *DashboardHandler) post(c echo.Context, apply postFunc) error {
	customerID, err := parseCustomerID(c)
	if err != nil {
		return redirectToDashboard(c, 0, unknownCustomerMessage)
	}

	var req dto.AmountRequest
	if err := c.Bind(&req); err != nil {
		return redirectToDashboard(c, customerID, "Invalid input.")
	}

	if err := c.Validate(req); err != nil {
		return redirectToDashboard(c, customerID, validationSummary(err))
	}

	amount, err := currency.ParseAmount(req.Amount)
	if err != nil {
		return redirectToDashboard(c, customerID, "Invalid amount.")
	}

	customer, err := apply(c.Request().Context(), customerID, amount)
	if err != nil {
		return redirectToDashboard(c, customerID, h.failureMessage(c, err, customerID))
	}

	return redirectToDashboard(c, customerID, postedMessage(h.formatter, customer, customer.LastTransaction()))
}

// failureMessage turns a ledger error into the feedback banner text
func (h *DashboardHandler) failureMessage(c echo.Context, err error, customerID int64) string {
	switch {
	case stderrors.Is(err, services.ErrInsufficientFunds):
		customer, lookupErr := h.ledgerService.GetCustomer(c.Request().Context(), customerID)
		if lookupErr != nil {
			return "Transaction Failed: Insufficient funds."
		}
		return insufficientFundsMessage(customer.Name)
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return unknownCustomerMessage
	case stderrors.Is(err, services.ErrInvalidAmount):
		return "Amount must be greater than zero."
	case stderrors.Is(err, services.ErrInvalidName):
		return "Customer name is required."
	default:
		h.logger.ErrorContext(c.Request().Context(), "dashboard command failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return unexpectedFailureMessage
	}
}

func customerURL(customerID int64) string {
	return "/?customer=" + strconv.FormatInt(customerID, 10)
}

// redirectToDashboard answers a form post with 303 See Other back to the
// dashboard, selecting customerID when it is positive
func redirectToDashboard(c echo.Context, customerID int64, message string) error {
	query := url.Values{}
	if customerID > 0 {
		query.Set("customer", strconv.FormatInt(customerID, 10))
	}
	if message != "" {
		query.Set("message", message)
	}

	target := "/"
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return c.Redirect(http.StatusSeeOther, target)
}
