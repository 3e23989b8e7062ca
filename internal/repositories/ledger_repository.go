package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teller-desk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBankNotFound     = errors.New("bank record not found")
)

// ledgerRepository implements LedgerRepositoryInterface on gorm
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

// WithinTransaction runs fn against a repository bound to one database
// transaction. Any error returned by fn rolls the whole unit back.
func (r *ledgerRepository) WithinTransaction(ctx context.Context, fn func(repo LedgerRepositoryInterface) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerRepository{db: tx})
	})
}

// GetBank returns the bank aggregates
func (r *ledgerRepository) GetBank(ctx context.Context) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.WithContext(ctx).First(&bank, models.BankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}

// UpdateBankTotals writes the aggregates of the bank row
func (r *ledgerRepository) UpdateBankTotals(ctx context.Context, bank *models.Bank) error {
	bank.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Bank{}).
		Where("id = ?", models.BankID).
		Updates(map[string]interface{}{
			"total_balance":  bank.TotalBalance,
			"total_loans":    bank.TotalLoans,
			"unbooked_loans": bank.UnbookedLoans,
			"updated_at":     bank.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update bank totals: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankNotFound
	}
	return nil
}

// ListCustomers returns every customer ordered by id, without passbooks
func (r *ledgerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer retrieves a customer by id without the passbook
func (r *ledgerRepository) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// GetCustomerWithTransactions retrieves a customer and the passbook in
// insertion order
func (r *ledgerRepository) GetCustomerWithTransactions(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Preload("Transactions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sequence ASC")
		}).
		First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// MaxCustomerID returns the largest customer id, or 0 when there are none
func (r *ledgerRepository) MaxCustomerID(ctx context.Context) (int64, error) {
	var maxID int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("failed to get max customer id: %w", err)
	}
	return maxID, nil
}

// CountCustomers returns the number of customers
func (r *ledgerRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// CreateCustomer inserts the customer together with its initial passbook
func (r *ledgerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// UpdateCustomerBalance writes the customer's balance. Nothing else on a
// customer is mutable.
func (r *ledgerRepository) UpdateCustomerBalance(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"balance":    customer.Balance,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// AppendTransaction adds an entry to the end of a passbook
func (r *ledgerRepository) AppendTransaction(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// ListTransactions returns a customer's passbook oldest first
func (r *ledgerRepository) ListTransactions(ctx context.Context, customerID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("sequence ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// SumLoanDisbursals returns the total of every loan entry across all
// passbooks
func (r *ledgerRepository) SumLoanDisbursals(ctx context.Context) (decimal.Decimal, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Select("kind", "amount").
		Where("kind = ?", models.TransactionKindLoanDisbursal).
		Find(&transactions).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum loan disbursals: %w", err)
	}

	customer := models.Customer{Transactions: transactions}
	return customer.LoanTotal(), nil
}
