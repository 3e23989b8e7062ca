package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"teller-desk/internal/currency"
	"teller-desk/internal/models"
	"teller-desk/internal/services"
	"teller-desk/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockLedgerServiceInterface
	handler     *DashboardHandler
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	renderer, err := NewTemplateRenderer()
	s.Require().NoError(err)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.echo.Renderer = renderer
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockService, currency.NewFormatter(""), discardLogger())
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/")
	s.Require().NoError(s.handler.Show(c))
	return rec
}

func (s *DashboardHandlerTestSuite) postForm(path string, form url.Values, handler echo.HandlerFunc, customerID string) *url.URL {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if customerID != "" {
		c.SetParamNames("id")
		c.SetParamValues(customerID)
	}

	s.Require().NoError(handler(c))
	s.Equal(http.StatusSeeOther, rec.Code)

	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	s.Require().NoError(err)
	s.Equal("/", location.Path)
	return location
}

func (s *DashboardHandlerTestSuite) expectSnapshot() {
	s.mockService.EXPECT().GetBank(gomock.Any()).Return(&models.Bank{
		ID:           models.BankID,
		TotalBalance: decimal.NewFromInt(240000),
		TotalLoans:   decimal.NewFromInt(350000),
	}, nil)
	s.mockService.EXPECT().GetCustomers(gomock.Any()).Return([]models.Customer{
		{ID: 1, Name: "Aarav Sharma", AccountNumber: "CORP0012345", Balance: decimal.NewFromInt(75000)},
		{ID: 3, Name: "Rohan Kumar", AccountNumber: "CORP0098765", Balance: decimal.NewFromInt(45000)},
	}, nil)
}

func (s *DashboardHandlerTestSuite) TestShow_Welcome() {
	s.expectSnapshot()

	rec := s.get("/")

	s.Equal(http.StatusOK, rec.Code)
	html := rec.Body.String()
	s.Contains(html, "₹2,40,000.00")
	s.Contains(html, "₹3,50,000.00")
	s.Contains(html, "Aarav Sharma")
	s.Contains(html, `id="welcome-message"`)
	s.NotContains(html, `id="customer-details-section"`)
	s.NotContains(html, `class="active"`)
}

func (s *DashboardHandlerTestSuite) TestShow_SelectedCustomer() {
	s.expectSnapshot()
	customer := rohanKumar()
	s.mockService.EXPECT().GetCustomer(gomock.Any(), int64(3)).Return(customer, nil)
	s.mockService.EXPECT().GetPassbook(gomock.Any(), int64(3)).Return([]models.PassbookEntry{
		{Transaction: customer.Transactions[2], DisplayClass: "transaction-withdrawal"},
		{Transaction: customer.Transactions[1], DisplayClass: "transaction-loan"},
		{Transaction: customer.Transactions[0], DisplayClass: "transaction-initial"},
	}, nil)
	s.mockService.EXPECT().GetBalanceHistory(gomock.Any(), int64(3)).Return(&models.BalanceHistory{
		CustomerID: 3,
		Labels:     []string{"2025-10-18", "2025-10-20", "2025-10-21"},
		Data:       []decimal.Decimal{decimal.NewFromInt(10000), decimal.NewFromInt(60000), decimal.NewFromInt(45000)},
	}, nil)

	rec := s.get("/?customer=3&message=" + url.QueryEscape("Deposit via Teller of ₹5,000.00 successful for Rohan Kumar."))

	s.Equal(http.StatusOK, rec.Code)
	html := rec.Body.String()
	s.Contains(html, `id="customer-details-section"`)
	s.Contains(html, "A/C: CORP0098765")
	s.Contains(html, `<li class="active"><a href="/?customer=3">Rohan Kumar</a></li>`)
	s.Contains(html, `class="transaction-withdrawal">₹-15,000.00`)
	s.Contains(html, "Loan Sanction")
	s.Contains(html, "Deposit via Teller of ₹5,000.00 successful for Rohan Kumar.")
	s.Contains(html, `[10000,60000,45000]`)
	s.Contains(html, `action="/dashboard/customers/3/withdraw"`)

	// newest entry is listed first
	s.Less(strings.Index(html, "ATM Withdrawal"), strings.Index(html, "Initial Deposit"))
}

func (s *DashboardHandlerTestSuite) TestShow_UnknownCustomerFallsBackToWelcome() {
	s.expectSnapshot()
	s.mockService.EXPECT().GetCustomer(gomock.Any(), int64(42)).Return(nil, services.ErrCustomerNotFound)

	rec := s.get("/?customer=42")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `id="welcome-message"`)
}

func (s *DashboardHandlerTestSuite) TestShow_MessageIsEscaped() {
	s.expectSnapshot()

	rec := s.get("/?message=" + url.QueryEscape("<script>alert(1)</script>"))

	s.NotContains(rec.Body.String(), "<script>alert(1)</script>")
	s.Contains(rec.Body.String(), "&lt;script&gt;")
}

func (s *DashboardHandlerTestSuite) TestShow_StorageFailure() {
	s.mockService.EXPECT().GetBank(gomock.Any()).Return(nil, errors.New("database is closed"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())
	s.Error(s.handler.Show(c))
}

func (s *DashboardHandlerTestSuite) TestOpenAccount() {
	opened := &models.Customer{ID: 4, Name: "Test User", AccountNumber: "CORP0010004", Balance: decimal.NewFromInt(1000)}
	s.mockService.EXPECT().OpenAccount(gomock.Any(), "Test User", decimalEq("1000")).Return(opened, nil)

	location := s.postForm("/dashboard/customers", url.Values{
		"name":            {"Test User"},
		"initial_deposit": {"1000"},
	}, s.handler.OpenAccount, "")

	s.Equal("4", location.Query().Get("customer"))
	s.Equal("Successfully created account for Test User with A/C No: CORP0010004.", location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestOpenAccount_Invalid() {
	location := s.postForm("/dashboard/customers", url.Values{
		"name":            {""},
		"initial_deposit": {"1000"},
	}, s.handler.OpenAccount, "")

	s.Empty(location.Query().Get("customer"))
	s.Contains(location.Query().Get("message"), "Invalid name")
}

func (s *DashboardHandlerTestSuite) TestDeposit() {
	customer := rohanKumar()
	s.mockService.EXPECT().Deposit(gomock.Any(), int64(3), decimalEq("5000")).
		Return(withEntry(customer, models.TransactionKindDeposit, decimal.NewFromInt(5000)), nil)

	location := s.postForm("/dashboard/customers/3/deposit", url.Values{"amount": {"5000"}}, s.handler.Deposit, "3")

	s.Equal("3", location.Query().Get("customer"))
	s.Equal("Deposit via Teller of ₹5,000.00 successful for Rohan Kumar.", location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	s.mockService.EXPECT().Withdraw(gomock.Any(), int64(3), decimalEq("100000")).Return(nil, services.ErrInsufficientFunds)
	s.mockService.EXPECT().GetCustomer(gomock.Any(), int64(3)).Return(rohanKumar(), nil)

	location := s.postForm("/dashboard/customers/3/withdraw", url.Values{"amount": {"100000"}}, s.handler.Withdraw, "3")

	s.Equal("3", location.Query().Get("customer"))
	s.Equal("Transaction Failed: Insufficient funds for Rohan Kumar.", location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestDisburseLoan() {
	customer := rohanKumar()
	s.mockService.EXPECT().DisburseLoan(gomock.Any(), int64(3), decimalEq("20000")).
		Return(withEntry(customer, models.TransactionKindLoanDisbursal, decimal.NewFromInt(20000)), nil)

	location := s.postForm("/dashboard/customers/3/loan", url.Values{"amount": {"20000"}}, s.handler.DisburseLoan, "3")

	s.Equal("Loan Sanction of ₹20,000.00 successful for Rohan Kumar.", location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestPost_ZeroAmountRejectedBeforeService() {
	location := s.postForm("/dashboard/customers/3/deposit", url.Values{"amount": {"0"}}, s.handler.Deposit, "3")

	s.Equal("3", location.Query().Get("customer"))
	s.Equal("Invalid amount: must be greater than 0.", location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestPost_UnknownCustomer() {
	s.mockService.EXPECT().Deposit(gomock.Any(), int64(9), gomock.Any()).Return(nil, services.ErrCustomerNotFound)

	location := s.postForm("/dashboard/customers/9/deposit", url.Values{"amount": {"10"}}, s.handler.Deposit, "9")
	s.Equal(unknownCustomerMessage, location.Query().Get("message"))

	location = s.postForm("/dashboard/customers/x/deposit", url.Values{"amount": {"10"}}, s.handler.Deposit, "x")
	s.Empty(location.Query().Get("customer"))
	s.Equal(unknownCustomerMessage, location.Query().Get("message"))
}

func (s *DashboardHandlerTestSuite) TestPost_SystemFailureIsGeneric() {
	s.mockService.EXPECT().Deposit(gomock.Any(), int64(3), gomock.Any()).Return(nil, errors.New("disk I/O error"))

	location := s.postForm("/dashboard/customers/3/deposit", url.Values{"amount": {"10"}}, s.handler.Deposit, "3")
	s.Equal(unexpectedFailureMessage, location.Query().Get("message"))
}

func TestRedirectToDashboard(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/dashboard/customers", nil), rec)

	if err := redirectToDashboard(c, 0, ""); err != nil {
		t.Fatal(err)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/" {
		t.Errorf("location = %q, want /", got)
	}
}
