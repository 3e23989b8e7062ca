package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"teller-desk/internal/config"
	"teller-desk/internal/database"
	"teller-desk/internal/models"
	"teller-desk/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func testLedgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		AccountPrefix:  "CORP00",
		AccountOffset:  10000,
		CurrencySymbol: "₹",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedGenerator hands out a predictable name and deposit
type fixedGenerator struct {
	names   []string
	deposit decimal.Decimal
	next    int
}

func (g *fixedGenerator) Name() string {
	name := g.names[g.next%len(g.names)]
	g.next++
	return name
}

func (g *fixedGenerator) InitialDeposit() decimal.Decimal {
	return g.deposit
}

// LedgerServiceSuite exercises the service against the seeded demo ledger
type LedgerServiceSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.LedgerRepositoryInterface
	service *ledgerService
	metrics *PrometheusMetrics
	ctx     context.Context
	today   time.Time
}

func (s *LedgerServiceSuite) SetupTest() {
	s.db = database.SetupSeededTestDB(s.T())
	s.repo = repositories.NewLedgerRepository(s.db.DB)
	s.ctx = context.Background()
	s.today = time.Date(2025, 10, 22, 11, 15, 0, 0, time.UTC)

	logger := discardLogger()
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.service = NewLedgerService(
		s.repo,
		NewLedgerLogger(logger),
		s.metrics,
		&fixedGenerator{names: []string{"Kavya Reddy", "Arjun Mehta"}, deposit: decimal.NewFromInt(2500)},
		testLedgerConfig(),
		logger,
	).(*ledgerService)
	s.service.now = func() time.Time { return s.today }
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) bank() *models.Bank {
	bank, err := s.service.GetBank(s.ctx)
	s.Require().NoError(err)
	return bank
}

func (s *LedgerServiceSuite) customer(id int64) *models.Customer {
	customer, err := s.service.GetCustomer(s.ctx, id)
	s.Require().NoError(err)
	return customer
}

// assertLedgerConsistent checks every passbook and reconciles the bank row
// with the customer balances.
func (s *LedgerServiceSuite) assertLedgerConsistent() {
	customers, err := s.service.GetCustomers(s.ctx)
	s.Require().NoError(err)

	balances := decimal.Zero
	for _, c := range customers {
		full := s.customer(c.ID)
		s.Require().NotEmpty(full.Transactions, full.Name)
		s.NoError(models.VerifyPassbook(full.Transactions), full.Name)
		s.True(full.Balance.Equal(full.LastTransaction().BalanceAfter), full.Name)
		balances = balances.Add(full.Balance)
	}

	bank := s.bank()
	s.True(balances.Equal(bank.TotalBalance.Add(bank.UnbookedLoans)),
		"total balance %s, unbooked loans %s, balances %s", bank.TotalBalance, bank.UnbookedLoans, balances)

	result, err := s.service.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.True(result.Balanced(), "difference %s", result.Difference())
}

// assertTotalEqualsBalances checks that the bank total balance is exactly
// the sum of the customer balances. This holds until a loan is disbursed.
func (s *LedgerServiceSuite) assertTotalEqualsBalances() {
	customers, err := s.service.GetCustomers(s.ctx)
	s.Require().NoError(err)

	balances := decimal.Zero
	for _, c := range customers {
		balances = balances.Add(c.Balance)
	}

	total := s.bank().TotalBalance
	s.True(total.Equal(balances), "total balance %s, balances %s", total, balances)
}

func (s *LedgerServiceSuite) TestSeededLedgerIsConsistent() {
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(240000)))
}

func (s *LedgerServiceSuite) TestDeposit_ScenarioA() {
	before := s.bank()

	customer, err := s.service.Deposit(s.ctx, 3, decimal.NewFromInt(5000))
	s.Require().NoError(err)

	s.True(customer.Balance.Equal(decimal.NewFromInt(50000)))
	last := customer.LastTransaction()
	s.Equal(models.TransactionKindDeposit, last.Kind)
	s.Equal("Deposit via Teller", last.Description)
	s.Equal("2025-10-22", last.Date)
	s.True(last.Amount.Equal(decimal.NewFromInt(5000)))
	s.True(last.BalanceAfter.Equal(decimal.NewFromInt(50000)))
	s.Equal(4, last.Sequence)
	s.NotEmpty(last.Reference)

	after := s.bank()
	s.True(after.TotalBalance.Equal(before.TotalBalance.Add(decimal.NewFromInt(5000))))
	s.True(after.TotalLoans.Equal(before.TotalLoans))
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
}

func (s *LedgerServiceSuite) TestWithdraw_ScenarioB_InsufficientFunds() {
	before := s.bank()

	customer, err := s.service.Withdraw(s.ctx, 3, decimal.NewFromInt(100000))
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Nil(customer)

	rohan := s.customer(3)
	s.True(rohan.Balance.Equal(decimal.NewFromInt(45000)))
	s.Len(rohan.Transactions, 3)

	after := s.bank()
	s.True(after.TotalBalance.Equal(before.TotalBalance))
	s.True(after.TotalLoans.Equal(before.TotalLoans))
}

func (s *LedgerServiceSuite) TestWithdraw_Success() {
	customer, err := s.service.Withdraw(s.ctx, 1, decimal.NewFromInt(25000))
	s.Require().NoError(err)

	s.True(customer.Balance.Equal(decimal.NewFromInt(50000)))
	last := customer.LastTransaction()
	s.Equal(models.TransactionKindWithdrawal, last.Kind)
	s.Equal("ATM Withdrawal", last.Description)
	s.True(last.Amount.Equal(decimal.NewFromInt(-25000)))

	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(215000)))
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
}

func (s *LedgerServiceSuite) TestWithdraw_EntireBalance() {
	customer, err := s.service.Withdraw(s.ctx, 3, decimal.NewFromInt(45000))
	s.Require().NoError(err)

	s.True(customer.Balance.IsZero())
	s.True(customer.LastTransaction().BalanceAfter.IsZero())
	s.assertLedgerConsistent()
}

func (s *LedgerServiceSuite) TestWithdraw_OnePaisaOverBalance() {
	_, err := s.service.Withdraw(s.ctx, 3, decimal.RequireFromString("45000.01"))
	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *LedgerServiceSuite) TestDisburseLoan_ScenarioC() {
	customer, err := s.service.DisburseLoan(s.ctx, 3, decimal.NewFromInt(20000))
	s.Require().NoError(err)

	s.True(customer.Balance.Equal(decimal.NewFromInt(65000)))
	last := customer.LastTransaction()
	s.Equal(models.TransactionKindLoanDisbursal, last.Kind)
	s.Equal("Loan Sanction", last.Description)
	s.True(last.Amount.Equal(decimal.NewFromInt(20000)))

	bank := s.bank()
	s.True(bank.TotalLoans.Equal(decimal.NewFromInt(370000)))
	s.True(bank.TotalBalance.Equal(decimal.NewFromInt(240000)))
	s.True(bank.UnbookedLoans.Equal(decimal.NewFromInt(20000)))
	s.assertLedgerConsistent()
}

func (s *LedgerServiceSuite) TestOpenAccount_ScenarioD() {
	customer, err := s.service.OpenAccount(s.ctx, "Test User", decimal.NewFromInt(1000))
	s.Require().NoError(err)

	s.Equal(int64(4), customer.ID)
	s.Equal("Test User", customer.Name)
	s.Equal("CORP0010004", customer.AccountNumber)
	s.True(customer.Balance.Equal(decimal.NewFromInt(1000)))
	s.Require().Len(customer.Transactions, 1)
	s.Equal(models.TransactionKindInitialDeposit, customer.Transactions[0].Kind)
	s.Equal("Initial Deposit", customer.Transactions[0].Description)
	s.True(customer.Transactions[0].BalanceAfter.Equal(decimal.NewFromInt(1000)))

	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(241000)))

	customers, err := s.service.GetCustomers(s.ctx)
	s.Require().NoError(err)
	s.Len(customers, 4)
	s.Equal(int64(4), customers[3].ID)
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
}

func (s *LedgerServiceSuite) TestOpenAccount_ZeroDepositAndDuplicateName() {
	first, err := s.service.OpenAccount(s.ctx, "Aarav Sharma", decimal.Zero)
	s.Require().NoError(err)
	s.Equal(int64(4), first.ID)
	s.True(first.Balance.IsZero())

	second, err := s.service.OpenAccount(s.ctx, "  Aarav Sharma ", decimal.NewFromInt(10))
	s.Require().NoError(err)
	s.Equal(int64(5), second.ID)
	s.Equal("Aarav Sharma", second.Name)
	s.Equal("CORP0010005", second.AccountNumber)
}

func (s *LedgerServiceSuite) TestOpenAccount_FirstCustomerOnEmptyLedger() {
	repo := repositories.NewLedgerRepository(database.SetupEmptyLedgerDB(s.T()).DB)
	service := NewLedgerService(repo, NewLedgerLogger(discardLogger()), NewPrometheusMetrics(prometheus.NewRegistry()),
		NewDemoCustomerGenerator(7), testLedgerConfig(), discardLogger())

	customer, err := service.OpenAccount(s.ctx, "Ananya Rao", decimal.NewFromInt(500))
	s.Require().NoError(err)
	s.Equal(int64(1), customer.ID)
	s.Equal("CORP0010001", customer.AccountNumber)
}

func (s *LedgerServiceSuite) TestOpenAccount_Rejections() {
	_, err := s.service.OpenAccount(s.ctx, "   ", decimal.NewFromInt(100))
	s.ErrorIs(err, ErrInvalidName)

	_, err = s.service.OpenAccount(s.ctx, "Negative Nancy", decimal.NewFromInt(-1))
	s.ErrorIs(err, ErrInvalidAmount)

	customers, err := s.service.GetCustomers(s.ctx)
	s.Require().NoError(err)
	s.Len(customers, 3)
	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(240000)))
}

func (s *LedgerServiceSuite) TestMutations_RejectNonPositiveAmounts() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		_, err := s.service.Deposit(s.ctx, 1, amount)
		s.ErrorIs(err, ErrInvalidAmount)
		_, err = s.service.Withdraw(s.ctx, 1, amount)
		s.ErrorIs(err, ErrInvalidAmount)
		_, err = s.service.DisburseLoan(s.ctx, 1, amount)
		s.ErrorIs(err, ErrInvalidAmount)
	}

	s.Len(s.customer(1).Transactions, 1)
}

func (s *LedgerServiceSuite) TestMutations_UnknownCustomer() {
	_, err := s.service.Deposit(s.ctx, 99, decimal.NewFromInt(100))
	s.ErrorIs(err, ErrCustomerNotFound)
	_, err = s.service.Withdraw(s.ctx, 99, decimal.NewFromInt(100))
	s.ErrorIs(err, ErrCustomerNotFound)
	_, err = s.service.DisburseLoan(s.ctx, 99, decimal.NewFromInt(100))
	s.ErrorIs(err, ErrCustomerNotFound)

	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(240000)))
}

func (s *LedgerServiceSuite) TestGetCustomer_NotFound() {
	_, err := s.service.GetCustomer(s.ctx, 42)
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.service.GetPassbook(s.ctx, 42)
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.service.GetBalanceHistory(s.ctx, 42)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *LedgerServiceSuite) TestGetPassbook_NewestFirst() {
	entries, err := s.service.GetPassbook(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal(models.TransactionKindWithdrawal, entries[0].Kind)
	s.Equal("transaction-withdrawal", entries[0].DisplayClass)
	s.Equal("transaction-loan", entries[1].DisplayClass)
	s.Equal("transaction-initial", entries[2].DisplayClass)
	s.Equal("2025-10-18", entries[2].Date)
}

func (s *LedgerServiceSuite) TestGetBalanceHistory_Chronological() {
	history, err := s.service.GetBalanceHistory(s.ctx, 3)
	s.Require().NoError(err)

	s.Equal(int64(3), history.CustomerID)
	s.Equal([]string{"2025-10-18", "2025-10-20", "2025-10-21"}, history.Labels)
	s.Require().Len(history.Data, 3)
	s.True(history.Data[0].Equal(decimal.NewFromInt(10000)))
	s.True(history.Data[1].Equal(decimal.NewFromInt(60000)))
	s.True(history.Data[2].Equal(decimal.NewFromInt(45000)))
}

func (s *LedgerServiceSuite) TestOperationSequence() {
	_, err := s.service.Deposit(s.ctx, 2, decimal.NewFromInt(30000))
	s.Require().NoError(err)
	_, err = s.service.DisburseLoan(s.ctx, 2, decimal.NewFromInt(100000))
	s.Require().NoError(err)
	_, err = s.service.Withdraw(s.ctx, 2, decimal.NewFromInt(250000))
	s.Require().NoError(err)
	_, err = s.service.Withdraw(s.ctx, 2, decimal.NewFromInt(1))
	s.ErrorIs(err, ErrInsufficientFunds)

	priya := s.customer(2)
	s.True(priya.Balance.IsZero())
	s.Len(priya.Transactions, 4)

	bank := s.bank()
	s.True(bank.TotalBalance.Equal(decimal.NewFromInt(240000 + 30000 - 250000)))
	s.True(bank.TotalLoans.Equal(decimal.NewFromInt(450000)))
	s.True(bank.UnbookedLoans.Equal(decimal.NewFromInt(100000)))
	s.assertLedgerConsistent()
}

func (s *LedgerServiceSuite) TestLoanFreeSequenceKeepsTotalEqualToBalances() {
	_, err := s.service.Deposit(s.ctx, 1, decimal.RequireFromString("1234.56"))
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	_, err = s.service.Withdraw(s.ctx, 2, decimal.NewFromInt(120000))
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	meera, err := s.service.OpenAccount(s.ctx, "Meera Iyer", decimal.RequireFromString("999.99"))
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	_, err = s.service.Withdraw(s.ctx, 3, decimal.NewFromInt(44999))
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	_, err = s.service.Deposit(s.ctx, meera.ID, decimal.RequireFromString("0.01"))
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	_, err = s.service.GenerateDemoCustomers(s.ctx, 2)
	s.Require().NoError(err)
	s.assertTotalEqualsBalances()

	_, err = s.service.Withdraw(s.ctx, 2, decimal.NewFromInt(1))
	s.ErrorIs(err, ErrInsufficientFunds)
	s.assertTotalEqualsBalances()

	s.True(s.bank().TotalBalance.Equal(decimal.RequireFromString("82235.56")))
	s.True(s.bank().UnbookedLoans.IsZero())
	s.assertLedgerConsistent()
}

func (s *LedgerServiceSuite) TestReconcile_SeededLedger() {
	result, err := s.service.Reconcile(s.ctx)
	s.Require().NoError(err)

	s.True(result.Balanced())
	s.True(result.TotalBalance.Equal(decimal.NewFromInt(240000)))
	s.True(result.CustomerBalances.Equal(decimal.NewFromInt(240000)))
	s.True(result.PassbookLoans.Equal(decimal.NewFromInt(50000)))
	s.True(result.UnbookedLoans.IsZero())
	s.Equal(int64(3), result.Customers)
}

func (s *LedgerServiceSuite) TestReconcile_AfterLoan() {
	_, err := s.service.DisburseLoan(s.ctx, 1, decimal.NewFromInt(20000))
	s.Require().NoError(err)

	result, err := s.service.Reconcile(s.ctx)
	s.Require().NoError(err)

	s.True(result.Balanced())
	s.True(result.TotalBalance.Equal(decimal.NewFromInt(240000)))
	s.True(result.CustomerBalances.Equal(decimal.NewFromInt(260000)))
	s.True(result.UnbookedLoans.Equal(decimal.NewFromInt(20000)))
	s.True(result.PassbookLoans.Equal(decimal.NewFromInt(70000)))
}

func (s *LedgerServiceSuite) TestReconcile_DetectsDrift() {
	bank := s.bank()
	bank.TotalBalance = decimal.NewFromInt(190000)
	s.Require().NoError(s.repo.UpdateBankTotals(s.ctx, bank))

	result, err := s.service.Reconcile(s.ctx)
	s.Require().NoError(err)

	s.False(result.Balanced())
	s.True(result.Difference().Equal(decimal.NewFromInt(50000)))
}

func (s *LedgerServiceSuite) TestReconcile_SetsBankGauges() {
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.bankTotalBalance))

	_, err := s.service.Reconcile(s.ctx)
	s.Require().NoError(err)

	s.Equal(float64(240000), testutil.ToFloat64(s.metrics.bankTotalBalance))
	s.Equal(float64(350000), testutil.ToFloat64(s.metrics.bankTotalLoans))
	s.Equal(float64(3), testutil.ToFloat64(s.metrics.customersTotal))
}

func (s *LedgerServiceSuite) TestConcurrentDepositsAreSerialized() {
	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Deposit(s.ctx, 1, decimal.NewFromInt(100))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	aarav := s.customer(1)
	s.True(aarav.Balance.Equal(decimal.NewFromInt(75000 + workers*100)))
	s.Len(aarav.Transactions, workers+1)
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
}

func (s *LedgerServiceSuite) TestGenerateDemoCustomers() {
	created, err := s.service.GenerateDemoCustomers(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(created, 3)

	s.Equal("Kavya Reddy", created[0].Name)
	s.Equal("Arjun Mehta", created[1].Name)
	s.Equal("CORP0010006", created[2].AccountNumber)
	s.True(s.bank().TotalBalance.Equal(decimal.NewFromInt(240000 + 3*2500)))
	s.assertLedgerConsistent()
	s.assertTotalEqualsBalances()
}

func (s *LedgerServiceSuite) TestGenerateDemoCustomers_CountOutOfRange() {
	_, err := s.service.GenerateDemoCustomers(s.ctx, 0)
	s.ErrorIs(err, ErrInvalidDemoCount)

	_, err = s.service.GenerateDemoCustomers(s.ctx, MaxDemoCustomers+1)
	s.ErrorIs(err, ErrInvalidDemoCount)
}

func (s *LedgerServiceSuite) TestGenerateDemoCustomers_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	created, err := s.service.GenerateDemoCustomers(ctx, 2)
	s.ErrorIs(err, context.Canceled)
	s.Empty(created)
}
