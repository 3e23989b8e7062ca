package handlers

import (
	"fmt"
	"strconv"

	"teller-desk/internal/currency"
	"teller-desk/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrInvalidCustomerID is returned when the :id path parameter is not a positive integer
var ErrInvalidCustomerID = fmt.Errorf("invalid customer id")

// parseCustomerID reads the :id path parameter
func parseCustomerID(c echo.Context) (int64, error) {
	return parsePositiveID(c.Param("id"))
}

func parsePositiveID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCustomerID
	}
	return id, nil
}

// accountOpenedMessage is the confirmation shown after a new account
func accountOpenedMessage(customer *models.Customer) string {
	return fmt.Sprintf("Successfully created account for %s with A/C No: %s.", customer.Name, customer.AccountNumber)
}

// postedMessage is the confirmation shown after a deposit, withdrawal or loan
func postedMessage(f currency.Formatter, customer *models.Customer, entry *models.Transaction) string {
	return fmt.Sprintf("%s of %s successful for %s.", entry.Description, f.Format(entry.Amount.Abs()), customer.Name)
}

// insufficientFundsMessage is the feedback for a rejected withdrawal
func insufficientFundsMessage(name string) string {
	return fmt.Sprintf("Transaction Failed: Insufficient funds for %s.", name)
}
