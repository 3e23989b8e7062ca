package services

import (
	"context"
	"time"

	"teller-desk/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface is the command and query surface of the ledger.
// Mutations are applied one at a time and either fully happen or leave
// the ledger untouched.
type LedgerServiceInterface interface {
	OpenAccount(ctx context.Context, name string, initialDeposit decimal.Decimal) (*models.Customer, error)
	Deposit(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error)
	Withdraw(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error)
	DisburseLoan(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Customer, error)

	GetBank(ctx context.Context) (*models.Bank, error)
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	GetPassbook(ctx context.Context, customerID int64) ([]models.PassbookEntry, error)
	GetBalanceHistory(ctx context.Context, customerID int64) (*models.BalanceHistory, error)
	Reconcile(ctx context.Context) (*models.Reconciliation, error)

	GenerateDemoCustomers(ctx context.Context, count int) ([]*models.Customer, error)
}

// DemoCustomerGeneratorInterface produces fake account holders for local demos
type DemoCustomerGeneratorInterface interface {
	Name() string
	InitialDeposit() decimal.Decimal
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type LedgerLoggerInterface interface {
	LogAccountOpened(ctx context.Context, customerID int64, accountNumber string, initialDeposit string)
	LogTransactionPosted(ctx context.Context, entry *models.Transaction, oldBalance, newBalance string)
	LogTransactionRejected(ctx context.Context, operation string, customerID int64, amount string, reason string)
	LogBankTotalsUpdated(ctx context.Context, totalBalance, totalLoans string)
	LogDemoCustomersGenerated(ctx context.Context, count int, durationMs int64)
}
