package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ProductType is the financing product a contract grants.
type ProductType string

const (
	ProductTypeInventoryFinancing     ProductType = "inventory_financing"
	ProductTypeInvoiceFinancing       ProductType = "invoice_financing"
	ProductTypeLineOfCredit           ProductType = "line_of_credit"
	ProductTypePurchaseMoneyFinancing ProductType = "purchase_money_financing"
	ProductTypeDispensaryFinancing    ProductType = "dispensary_financing"
)

var validProductTypes = map[ProductType]bool{
	ProductTypeInventoryFinancing:     true,
	ProductTypeInvoiceFinancing:       true,
	ProductTypeLineOfCredit:           true,
	ProductTypePurchaseMoneyFinancing: true,
	ProductTypeDispensaryFinancing:    true,
}

// IsValid checks if the product type is known.
func (p ProductType) IsValid() bool {
	return validProductTypes[p]
}

// Contract holds the terms that drive fee accrual and the borrowing base.
// A version is immutable once written; changes create a new version.
type Contract struct {
	ID                   string
	CompanyID            string
	Version              int64
	ProductType          ProductType
	InterestRate         decimal.Decimal // daily
	MaximumAmount        decimal.Decimal
	LateFeeSchedule      LateFeeSchedule
	BorrowingBaseWeights BorrowingBaseWeights
	StartDate            civil.Date
	EndDate              civil.Date
	CreatedAt            time.Time
}

// IsLineOfCredit reports whether the contract is a line of credit.
func (c *Contract) IsLineOfCredit() bool {
	return c.ProductType == ProductTypeLineOfCredit
}

// Validate checks the contract terms.
func (c *Contract) Validate() error {
	if !c.ProductType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProductType, c.ProductType)
	}

	if c.InterestRate.IsNegative() || c.InterestRate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidInterestRate
	}

	if c.MaximumAmount.IsNegative() {
		return ErrInvalidAmount
	}

	if err := c.LateFeeSchedule.Validate(); err != nil {
		return err
	}

	return c.BorrowingBaseWeights.Validate()
}
