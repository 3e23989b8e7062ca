package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCustomerID   = errors.New("customer ID must be positive")
	ErrCustomerNameMissing = errors.New("customer name is required")
	ErrAccountNumberEmpty  = errors.New("account number is required")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
)

// Customer is an account holder together with their passbook.
type Customer struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	AccountNumber string          `gorm:"type:varchar(32);not null;index" json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"transactions,omitempty"`
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c.Validate()
}

// Validate validates the customer fields
func (c *Customer) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidCustomerID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrCustomerNameMissing
	}
	if c.AccountNumber == "" {
		return ErrAccountNumberEmpty
	}
	if c.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}

// LastTransaction returns the most recent passbook entry, or nil when the
// passbook was not loaded.
func (c *Customer) LastTransaction() *Transaction {
	if len(c.Transactions) == 0 {
		return nil
	}
	return &c.Transactions[len(c.Transactions)-1]
}

// NextSequence returns the sequence number the next entry must carry.
func (c *Customer) NextSequence() int {
	if last := c.LastTransaction(); last != nil {
		return last.Sequence + 1
	}
	return 1
}

// LoanTotal sums the loan disbursals recorded in the passbook.
func (c *Customer) LoanTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Transactions {
		if c.Transactions[i].IsLoan() {
			total = total.Add(c.Transactions[i].Amount)
		}
	}
	return total
}

// TableName returns the table name for Customer
func (c *Customer) TableName() string {
	return "customers"
}

// DeriveAccountNumber builds the account number for a new customer id:
// prefix followed by offset+id, e.g. CORP00 + 10004.
func DeriveAccountNumber(prefix string, offset, id int64) string {
	return prefix + strconv.FormatInt(offset+id, 10)
}
