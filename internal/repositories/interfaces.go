package repositories

import (
	"context"

	"teller-desk/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerRepositoryInterface defines the data access the ledger service needs.
// Methods called on the repository handed to WithinTransaction all run in
// the same database transaction.
type LedgerRepositoryInterface interface {
	WithinTransaction(ctx context.Context, fn func(repo LedgerRepositoryInterface) error) error

	GetBank(ctx context.Context) (*models.Bank, error)
	UpdateBankTotals(ctx context.Context, bank *models.Bank) error

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerWithTransactions(ctx context.Context, id int64) (*models.Customer, error)
	MaxCustomerID(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerBalance(ctx context.Context, customer *models.Customer) error

	AppendTransaction(ctx context.Context, transaction *models.Transaction) error
	ListTransactions(ctx context.Context, customerID int64) ([]models.Transaction, error)
	SumLoanDisbursals(ctx context.Context) (decimal.Decimal, error)
}
