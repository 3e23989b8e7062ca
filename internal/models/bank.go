package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankID is the primary key of the single bank row.
const BankID = 1

// Bank holds the bank-wide aggregates shown on the dashboard.
//
// TotalBalance moves with account openings, deposits and withdrawals only.
// TotalLoans is the cumulative sum of every loan ever disbursed and never
// goes down. UnbookedLoans is the part of the customer balances that came
// from loans and is therefore missing from TotalBalance.
type Bank struct {
	ID            uint            `gorm:"primaryKey;autoIncrement:false" json:"-"`
	TotalBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_balance"`
	TotalLoans    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_loans"`
	UnbookedLoans decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"unbooked_loans"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the table name for Bank
func (b *Bank) TableName() string {
	return "banks"
}

// Reconciliation compares the bank row with the customer accounts.
type Reconciliation struct {
	TotalBalance     decimal.Decimal
	UnbookedLoans    decimal.Decimal
	CustomerBalances decimal.Decimal
	PassbookLoans    decimal.Decimal
	Customers        int64
}

// Difference is what the customer balances hold beyond TotalBalance and the
// unbooked loans. It is zero on a consistent ledger.
func (r Reconciliation) Difference() decimal.Decimal {
	return r.CustomerBalances.Sub(r.TotalBalance.Add(r.UnbookedLoans))
}

// Balanced reports whether the bank row agrees with the accounts. Unbooked
// loans can never exceed the loans recorded in passbooks.
func (r Reconciliation) Balanced() bool {
	return r.Difference().IsZero() && !r.UnbookedLoans.GreaterThan(r.PassbookLoans)
}

// PassbookEntry is a transaction prepared for the passbook table.
type PassbookEntry struct {
	Transaction
	DisplayClass string `json:"display_class"`
}

// BalanceHistory is the series behind the balance chart, oldest first.
type BalanceHistory struct {
	CustomerID int64             `json:"customer_id"`
	Labels     []string          `json:"labels"`
	Data       []decimal.Decimal `json:"data"`
}
