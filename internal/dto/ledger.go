package dto

import (
	"time"

	"teller-desk/internal/currency"
	"teller-desk/internal/models"

	"github.com/shopspring/decimal"
)

// Ledger Request DTOs

// OpenAccountRequest represents the request payload for opening an account
type OpenAccountRequest struct {
	Name           string `json:"name" form:"name" validate:"customer_name"`
	InitialDeposit string `json:"initial_deposit" form:"initial_deposit" validate:"required,decimal_amount,non_negative_amount"`
}

// AmountRequest represents the payload for a deposit, withdrawal or loan
type AmountRequest struct {
	Amount string `json:"amount" form:"amount" validate:"required,decimal_amount,positive_amount"`
}

// GenerateDemoCustomersRequest represents the query for the demo generator
type GenerateDemoCustomersRequest struct {
	Count int `query:"count" validate:"omitempty,min=1,max=50"`
}

// Ledger Response DTOs

// Money carries an amount as a decimal string and as display text
type Money struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// NewMoney formats amount with f
func NewMoney(f currency.Formatter, amount decimal.Decimal) Money {
	return Money{
		Amount:    amount,
		Formatted: f.Format(amount),
	}
}

// BankResponse represents the bank aggregates
type BankResponse struct {
	TotalBalance Money     `json:"total_balance"`
	TotalLoans   Money     `json:"total_loans"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReconciliationResponse compares the bank totals with the customer accounts
type ReconciliationResponse struct {
	TotalBalance     Money `json:"total_balance"`
	UnbookedLoans    Money `json:"unbooked_loans"`
	CustomerBalances Money `json:"customer_balances"`
	PassbookLoans    Money `json:"passbook_loans"`
	Difference       Money `json:"difference"`
	Customers        int64 `json:"customers"`
	Balanced         bool  `json:"balanced"`
}

// CustomerSummary represents a customer without the passbook
type CustomerSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Balance       Money  `json:"balance"`
}

// CustomerListResponse represents the customer list
type CustomerListResponse struct {
	Customers []CustomerSummary `json:"customers"`
	Total     int               `json:"total"`
}

// TransactionResponse represents one passbook line
type TransactionResponse struct {
	Sequence     int                    `json:"sequence"`
	Date         string                 `json:"date"`
	Kind         models.TransactionKind `json:"kind"`
	Description  string                 `json:"description"`
	Amount       Money                  `json:"amount"`
	BalanceAfter Money                  `json:"balance_after"`
	Reference    string                 `json:"reference"`
	DisplayClass string                 `json:"display_class,omitempty"`
}

// CustomerResponse represents a customer with the passbook oldest first
type CustomerResponse struct {
	CustomerSummary
	Transactions []TransactionResponse `json:"transactions"`
}

// PassbookResponse represents a passbook newest first
type PassbookResponse struct {
	CustomerID int64                 `json:"customer_id"`
	Entries    []TransactionResponse `json:"entries"`
}

// BalanceHistoryResponse represents the chart series for a customer
type BalanceHistoryResponse struct {
	CustomerID int64             `json:"customer_id"`
	Labels     []string          `json:"labels"`
	Data       []decimal.Decimal `json:"data"`
}

// LedgerMutationResponse represents the outcome of a ledger mutation
type LedgerMutationResponse struct {
	Customer    CustomerResponse    `json:"customer"`
	Transaction TransactionResponse `json:"transaction"`
	Message     string              `json:"message"`
}

// DemoCustomersResponse represents the customers opened by the generator
type DemoCustomersResponse struct {
	Customers []CustomerSummary `json:"customers"`
	Count     int               `json:"count"`
}

// Mapping helpers

// NewBankResponse maps the bank aggregates
func NewBankResponse(f currency.Formatter, bank *models.Bank) BankResponse {
	return BankResponse{
		TotalBalance: NewMoney(f, bank.TotalBalance),
		TotalLoans:   NewMoney(f, bank.TotalLoans),
		UpdatedAt:    bank.UpdatedAt,
	}
}

// NewReconciliationResponse maps a reconciliation run
func NewReconciliationResponse(f currency.Formatter, r *models.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		TotalBalance:     NewMoney(f, r.TotalBalance),
		UnbookedLoans:    NewMoney(f, r.UnbookedLoans),
		CustomerBalances: NewMoney(f, r.CustomerBalances),
		PassbookLoans:    NewMoney(f, r.PassbookLoans),
		Difference:       NewMoney(f, r.Difference()),
		Customers:        r.Customers,
		Balanced:         r.Balanced(),
	}
}

// NewCustomerSummary maps a customer without the passbook
func NewCustomerSummary(f currency.Formatter, customer *models.Customer) CustomerSummary {
	return CustomerSummary{
		ID:            customer.ID,
		Name:          customer.Name,
		AccountNumber: customer.AccountNumber,
		Balance:       NewMoney(f, customer.Balance),
	}
}

// NewCustomerListResponse maps the customer list
func NewCustomerListResponse(f currency.Formatter, customers []models.Customer) CustomerListResponse {
	summaries := make([]CustomerSummary, 0, len(customers))
	for i := range customers {
		summaries = append(summaries, NewCustomerSummary(f, &customers[i]))
	}
	return CustomerListResponse{
		Customers: summaries,
		Total:     len(summaries),
	}
}

// NewTransactionResponse maps a passbook entry
func NewTransactionResponse(f currency.Formatter, t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		Sequence:     t.Sequence,
		Date:         t.Date,
		Kind:         t.Kind,
		Description:  t.Description,
		Amount:       NewMoney(f, t.Amount),
		BalanceAfter: NewMoney(f, t.BalanceAfter),
		Reference:    t.Reference,
	}
}

// NewCustomerResponse maps a customer and the loaded passbook
func NewCustomerResponse(f currency.Formatter, customer *models.Customer) CustomerResponse {
	transactions := make([]TransactionResponse, 0, len(customer.Transactions))
	for i := range customer.Transactions {
		transactions = append(transactions, NewTransactionResponse(f, &customer.Transactions[i]))
	}
	return CustomerResponse{
		CustomerSummary: NewCustomerSummary(f, customer),
		Transactions:    transactions,
	}
}

// NewPassbookResponse maps passbook entries in the order given
func NewPassbookResponse(f currency.Formatter, customerID int64, entries []models.PassbookEntry) PassbookResponse {
	lines := make([]TransactionResponse, 0, len(entries))
	for i := range entries {
		line := NewTransactionResponse(f, &entries[i].Transaction)
		line.DisplayClass = entries[i].DisplayClass
		lines = append(lines, line)
	}
	return PassbookResponse{
		CustomerID: customerID,
		Entries:    lines,
	}
}

// NewBalanceHistoryResponse maps the chart series
func NewBalanceHistoryResponse(history *models.BalanceHistory) BalanceHistoryResponse {
	return BalanceHistoryResponse{
		CustomerID: history.CustomerID,
		Labels:     history.Labels,
		Data:       history.Data,
	}
}
