package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind classifies a passbook entry. The description shown to the
// teller is derived from it, never the other way round.
type TransactionKind string

const (
	TransactionKindInitialDeposit TransactionKind = "initial_deposit"
	TransactionKindDeposit        TransactionKind = "deposit"
	TransactionKindWithdrawal     TransactionKind = "withdrawal"
	TransactionKindLoanDisbursal  TransactionKind = "loan_disbursal"

	// DateLayout is the calendar-date format used for passbook dates.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount has the wrong sign for its kind")
	ErrBalanceMismatch        = errors.New("balance calculation mismatch")
)

var transactionDescriptions = map[TransactionKind]string{
	TransactionKindInitialDeposit: "Initial Deposit",
	TransactionKindDeposit:        "Deposit via Teller",
	TransactionKindWithdrawal:     "ATM Withdrawal",
	TransactionKindLoanDisbursal:  "Loan Sanction",
}

var transactionDisplayClasses = map[TransactionKind]string{
	TransactionKindInitialDeposit: "transaction-initial",
	TransactionKindDeposit:        "transaction-deposit",
	TransactionKindWithdrawal:     "transaction-withdrawal",
	TransactionKindLoanDisbursal:  "transaction-loan",
}

// Description returns the passbook label for the kind.
func (k TransactionKind) Description() string {
	return transactionDescriptions[k]
}

// DisplayClass returns the CSS class the dashboard uses for the amount cell.
func (k TransactionKind) DisplayClass() string {
	return transactionDisplayClasses[k]
}

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	_, ok := transactionDescriptions[k]
	return ok
}

// Transaction is one immutable passbook entry.
type Transaction struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	CustomerID   int64           `gorm:"not null;uniqueIndex:idx_transactions_customer_sequence,priority:1" json:"customer_id"`
	Sequence     int             `gorm:"not null;uniqueIndex:idx_transactions_customer_sequence,priority:2" json:"sequence"`
	Kind         TransactionKind `gorm:"type:varchar(20);not null" json:"kind"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Date         string          `gorm:"type:varchar(10);not null" json:"date"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_after"`
	Reference    string          `gorm:"type:varchar(40)" json:"reference"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewTransaction builds the next passbook entry for a balance. The resulting
// BalanceAfter is previousBalance + amount.
func NewTransaction(kind TransactionKind, amount, previousBalance decimal.Decimal, sequence int, at time.Time) Transaction {
	return Transaction{
		Sequence:     sequence,
		Kind:         kind,
		Description:  kind.Description(),
		Date:         at.Format(DateLayout),
		Amount:       amount,
		BalanceAfter: previousBalance.Add(amount),
		Reference:    GenerateTransactionReference(at),
		CreatedAt:    at,
	}
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Description == "" {
		t.Description = t.Kind.Description()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Date == "" {
		t.Date = t.CreatedAt.Format(DateLayout)
	}
	return t.Validate()
}

// Validate checks the kind and the sign of the amount.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return ErrInvalidTransactionKind
	}

	switch t.Kind {
	case TransactionKindWithdrawal:
		if !t.Amount.IsNegative() {
			return ErrInvalidAmount
		}
	case TransactionKindInitialDeposit:
		if t.Amount.IsNegative() {
			return ErrInvalidAmount
		}
	default:
		if !t.Amount.IsPositive() {
			return ErrInvalidAmount
		}
	}

	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return errors.New("transaction date must be YYYY-MM-DD")
	}

	return nil
}

// IsLoan reports whether the entry is a loan disbursal.
func (t *Transaction) IsLoan() bool {
	return t.Kind == TransactionKindLoanDisbursal
}

// Follows reports whether t correctly continues a passbook whose last
// balance was previousBalance.
func (t *Transaction) Follows(previousBalance decimal.Decimal) bool {
	return previousBalance.Add(t.Amount).Equal(t.BalanceAfter)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// GenerateTransactionReference generates a log-correlation reference
func GenerateTransactionReference(at time.Time) string {
	return "TXN-" + uuid.New().String()[:8] + "-" + at.Format("20060102150405")
}

// VerifyPassbook checks that transactions form a running sum starting from
// the first amount. It returns ErrBalanceMismatch on the first broken link.
func VerifyPassbook(transactions []Transaction) error {
	running := decimal.Zero
	for i := range transactions {
		if !transactions[i].Follows(running) {
			return ErrBalanceMismatch
		}
		running = transactions[i].BalanceAfter
	}
	return nil
}
