package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"teller-desk/internal/config"
	"teller-desk/internal/models"
	"teller-desk/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidName       = errors.New("customer name is required")
	ErrInvalidDemoCount  = errors.New("demo customer count out of range")
)

const (
	OperationOpenAccount  = "open_account"
	OperationDeposit      = "deposit"
	OperationWithdraw     = "withdraw"
	OperationDisburseLoan = "disburse_loan"
	OperationReconcile    = "reconcile"

	// MaxDemoCustomers caps a single GenerateDemoCustomers call.
	MaxDemoCustomers = 50
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	repo         repositories.LedgerRepositoryInterface
	ledgerLogger LedgerLoggerInterface
	metrics      MetricsRecorderInterface
	generator    DemoCustomerGeneratorInterface
	config       config.LedgerConfig
	logger       *slog.Logger
	now          func() time.Time

	// mu serializes mutations so each one reads and writes a settled ledger.
	mu sync.Mutex
}

// NewLedgerService creates the ledger service
func NewLedgerService(
	repo repositories.LedgerRepositoryInterface,
	ledgerLogger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
	generator DemoCustomerGeneratorInterface,
	cfg config.LedgerConfig,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		repo:         repo,
		ledgerLogger: ledgerLogger,
		metrics:      metrics,
		generator:    generator,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// OpenAccount creates a customer with the next sequential id and a passbook
// holding only the initial deposit. The deposit joins the bank total balance.
func (s *ledgerService) OpenAccount(ctx context.Context, name string, initialDeposit decimal.Decimal) (*models.Customer, error) {
	start := time.Now()
	name = strings.TrimSpace(name)

	if name == "" {
		s.reject(ctx, OperationOpenAccount, 0, initialDeposit, ErrInvalidName)
		return nil, ErrInvalidName
	}
	if initialDeposit.IsNegative() {
		s.reject(ctx, OperationOpenAccount, 0, initialDeposit, ErrInvalidAmount)
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		customer *models.Customer
		bank     *models.Bank
		count    int64
	)

	err := s.repo.WithinTransaction(ctx, func(repo repositories.LedgerRepositoryInterface) error {
		maxID, err := repo.MaxCustomerID(ctx)
		if err != nil {
			return err
		}

		bank, err = repo.GetBank(ctx)
		if err != nil {
			return fmt.Errorf("failed to load bank: %w", err)
		}

		id := maxID + 1
		entry := models.NewTransaction(models.TransactionKindInitialDeposit, initialDeposit, decimal.Zero, 1, s.now())
		customer = &models.Customer{
			ID:            id,
			Name:          name,
			AccountNumber: models.DeriveAccountNumber(s.config.AccountPrefix, s.config.AccountOffset, id),
			Balance:       entry.BalanceAfter,
			Transactions:  []models.Transaction{entry},
		}
		if err := repo.CreateCustomer(ctx, customer); err != nil {
			return err
		}

		bank.TotalBalance = bank.TotalBalance.Add(initialDeposit)
		if err := repo.UpdateBankTotals(ctx, bank); err != nil {
			return err
		}

		count, err = repo.CountCustomers(ctx)
		return err
	})
	if err != nil {
		s.fail(ctx, OperationOpenAccount, err)
		return nil, err
	}

	s.ledgerLogger.LogAccountOpened(ctx, customer.ID, customer.AccountNumber, initialDeposit.StringFixed(2))
	s.metrics.RecordGauge("customers_total", float64(count), nil)
	s.succeed(ctx, OperationOpenAccount, &customer.Transactions[0], bank, start)

	return customer, nil
}

// Deposit credits a customer and the bank total balance.
func (s *ledgerService) Deposit(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error) {
	return s.post(ctx, OperationDeposit, models.TransactionKindDeposit, customerID, amount)
}

// Withdraw debits a customer and the bank total balance. It is rejected
// with ErrInsufficientFunds only when amount is strictly greater than the
// balance, so withdrawing the full balance empties the account.
func (s *ledgerService) Withdraw(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error) {
	return s.post(ctx, OperationWithdraw, models.TransactionKindWithdrawal, customerID, amount)
}

// DisburseLoan credits the customer and grows the bank's cumulative loans.
// The bank total balance is left as it is; the amount is tracked as unbooked
// so Reconcile can still account for it.
func (s *ledgerService) DisburseLoan(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error) {
	return s.post(ctx, OperationDisburseLoan, models.TransactionKindLoanDisbursal, customerID, amount)
}

func (s *ledgerService) post(ctx context.Context, operation string, kind models.TransactionKind, customerID int64, amount decimal.Decimal) (*models.Customer, error) {
	start := time.Now()

	if !amount.IsPositive() {
		s.reject(ctx, operation, customerID, amount, ErrInvalidAmount)
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		customer   *models.Customer
		bank       *models.Bank
		oldBalance decimal.Decimal
	)

	err := s.repo.WithinTransaction(ctx, func(repo repositories.LedgerRepositoryInterface) error {
		var err error
		customer, err = repo.GetCustomerWithTransactions(ctx, customerID)
		if err != nil {
			if errors.Is(err, repositories.ErrCustomerNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		bank, err = repo.GetBank(ctx)
		if err != nil {
			return fmt.Errorf("failed to load bank: %w", err)
		}

		signed := amount
		switch kind {
		case models.TransactionKindDeposit:
			bank.TotalBalance = bank.TotalBalance.Add(amount)
		case models.TransactionKindWithdrawal:
			if amount.GreaterThan(customer.Balance) {
				return ErrInsufficientFunds
			}
			signed = amount.Neg()
			bank.TotalBalance = bank.TotalBalance.Sub(amount)
		case models.TransactionKindLoanDisbursal:
			bank.TotalLoans = bank.TotalLoans.Add(amount)
			bank.UnbookedLoans = bank.UnbookedLoans.Add(amount)
		default:
			return models.ErrInvalidTransactionKind
		}

		oldBalance = customer.Balance
		entry := models.NewTransaction(kind, signed, customer.Balance, customer.NextSequence(), s.now())
		entry.CustomerID = customer.ID
		if err := repo.AppendTransaction(ctx, &entry); err != nil {
			return err
		}

		customer.Balance = entry.BalanceAfter
		if err := repo.UpdateCustomerBalance(ctx, customer); err != nil {
			return err
		}
		if err := repo.UpdateBankTotals(ctx, bank); err != nil {
			return err
		}

		customer.Transactions = append(customer.Transactions, entry)
		return nil
	})
	if err != nil {
		if isRejection(err) {
			s.reject(ctx, operation, customerID, amount, err)
		} else {
			s.fail(ctx, operation, err)
		}
		return nil, err
	}

	entry := customer.LastTransaction()
	s.ledgerLogger.LogTransactionPosted(ctx, entry, oldBalance.StringFixed(2), customer.Balance.StringFixed(2))
	s.succeed(ctx, operation, entry, bank, start)

	return customer, nil
}

// GetBank returns the bank aggregates
func (s *ledgerService) GetBank(ctx context.Context) (*models.Bank, error) {
	bank, err := s.repo.GetBank(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return bank, nil
}

// GetCustomers returns all customers ordered by id
func (s *ledgerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns a customer with the passbook oldest first
func (s *ledgerService) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	customer, err := s.repo.GetCustomerWithTransactions(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// GetPassbook returns the passbook newest first, as the dashboard lists it
func (s *ledgerService) GetPassbook(ctx context.Context, customerID int64) ([]models.PassbookEntry, error) {
	transactions, err := s.listTransactions(ctx, customerID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.PassbookEntry, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		t := transactions[i]
		entries = append(entries, models.PassbookEntry{
			Transaction:  t,
			DisplayClass: t.Kind.DisplayClass(),
		})
	}
	return entries, nil
}

// GetBalanceHistory returns the balance after each entry in chronological order
func (s *ledgerService) GetBalanceHistory(ctx context.Context, customerID int64) (*models.BalanceHistory, error) {
	transactions, err := s.listTransactions(ctx, customerID)
	if err != nil {
		return nil, err
	}

	history := &models.BalanceHistory{
		CustomerID: customerID,
		Labels:     make([]string, 0, len(transactions)),
		Data:       make([]decimal.Decimal, 0, len(transactions)),
	}
	for _, t := range transactions {
		history.Labels = append(history.Labels, t.Date)
		history.Data = append(history.Data, t.BalanceAfter)
	}
	return history, nil
}

// listTransactions reads a passbook oldest first. An unknown customer is
// reported as ErrCustomerNotFound rather than as an empty passbook.
func (s *ledgerService) listTransactions(ctx context.Context, customerID int64) ([]models.Transaction, error) {
	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	transactions, err := s.repo.ListTransactions(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get passbook: %w", err)
	}
	return transactions, nil
}

// Reconcile checks the bank row against the customer accounts and refreshes
// the bank gauges. Customer balances must equal the total balance plus the
// loans disbursed since the bank row was last booked.
func (s *ledgerService) Reconcile(ctx context.Context) (*models.Reconciliation, error) {
	var (
		bank   *models.Bank
		result models.Reconciliation
	)

	err := s.repo.WithinTransaction(ctx, func(repo repositories.LedgerRepositoryInterface) error {
		var err error
		bank, err = repo.GetBank(ctx)
		if err != nil {
			return fmt.Errorf("failed to load bank: %w", err)
		}

		customers, err := repo.ListCustomers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}

		result.PassbookLoans, err = repo.SumLoanDisbursals(ctx)
		if err != nil {
			return err
		}

		result.CustomerBalances = decimal.Zero
		for _, c := range customers {
			result.CustomerBalances = result.CustomerBalances.Add(c.Balance)
		}
		result.Customers = int64(len(customers))
		return nil
	})
	if err != nil {
		s.fail(ctx, OperationReconcile, err)
		return nil, err
	}

	result.TotalBalance = bank.TotalBalance
	result.UnbookedLoans = bank.UnbookedLoans

	s.metrics.RecordGauge("bank_total_balance", bank.TotalBalance.InexactFloat64(), nil)
	s.metrics.RecordGauge("bank_total_loans", bank.TotalLoans.InexactFloat64(), nil)
	s.metrics.RecordGauge("customers_total", float64(result.Customers), nil)

	if !result.Balanced() {
		s.logger.WarnContext(ctx, "ledger out of balance",
			slog.String("total_balance", result.TotalBalance.StringFixed(2)),
			slog.String("unbooked_loans", result.UnbookedLoans.StringFixed(2)),
			slog.String("customer_balances", result.CustomerBalances.StringFixed(2)),
			slog.String("passbook_loans", result.PassbookLoans.StringFixed(2)),
		)
	}
	return &result, nil
}

// GenerateDemoCustomers opens count accounts with fake holders. It stops at
// the first failure and returns the customers opened so far.
func (s *ledgerService) GenerateDemoCustomers(ctx context.Context, count int) ([]*models.Customer, error) {
	if count < 1 || count > MaxDemoCustomers {
		return nil, ErrInvalidDemoCount
	}

	start := time.Now()
	created := make([]*models.Customer, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		customer, err := s.OpenAccount(ctx, s.generator.Name(), s.generator.InitialDeposit())
		if err != nil {
			return created, fmt.Errorf("failed to open demo account %d of %d: %w", i+1, count, err)
		}
		created = append(created, customer)
		s.metrics.IncrementCounter("demo_customer_generated", nil)
	}

	s.ledgerLogger.LogDemoCustomersGenerated(ctx, len(created), time.Since(start).Milliseconds())
	return created, nil
}

func (s *ledgerService) succeed(ctx context.Context, operation string, entry *models.Transaction, bank *models.Bank, start time.Time) {
	s.ledgerLogger.LogBankTotalsUpdated(ctx, bank.TotalBalance.StringFixed(2), bank.TotalLoans.StringFixed(2))

	s.metrics.IncrementCounter("ledger.operation.success", map[string]string{"operation": operation})
	s.metrics.RecordProcessingTime("ledger.operation", time.Since(start))
	s.metrics.RecordGauge("transaction_amount", entry.Amount.Abs().InexactFloat64(), map[string]string{"kind": string(entry.Kind)})
	s.metrics.RecordGauge("bank_total_balance", bank.TotalBalance.InexactFloat64(), nil)
	s.metrics.RecordGauge("bank_total_loans", bank.TotalLoans.InexactFloat64(), nil)
}

func (s *ledgerService) reject(ctx context.Context, operation string, customerID int64, amount decimal.Decimal, reason error) {
	s.ledgerLogger.LogTransactionRejected(ctx, operation, customerID, amount.String(), reason.Error())
	s.metrics.IncrementCounter("ledger.operation.rejected", map[string]string{
		"operation": operation,
		"reason":    rejectionReason(reason),
	})
}

func (s *ledgerService) fail(ctx context.Context, operation string, err error) {
	s.logger.ErrorContext(ctx, "ledger operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.metrics.IncrementCounter("ledger.operation.failed", map[string]string{"operation": operation})
}

func isRejection(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidName)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	default:
		return "unknown"
	}
}
