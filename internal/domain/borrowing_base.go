package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BorrowingBaseField names one weighted component of the borrowing base.
type BorrowingBaseField string

const (
	FieldAccountsReceivable BorrowingBaseField = "monthly_accounts_receivable"
	FieldInventory          BorrowingBaseField = "monthly_inventory"
	FieldCash               BorrowingBaseField = "monthly_cash"
	FieldCashInDaca         BorrowingBaseField = "amount_cash_in_daca"
)

// BorrowingBaseInputs are the company-reported values. Absent values are null,
// not zero.
type BorrowingBaseInputs struct {
	MonthlyAccountsReceivable decimal.NullDecimal
	MonthlyInventory          decimal.NullDecimal
	MonthlyCash               decimal.NullDecimal
	AmountCashInDaca          decimal.NullDecimal
	AmountCustom              decimal.NullDecimal
	AmountCustomNote          string
}

// BorrowingBaseWeights are the contract percentages, each in [0, 1]. A weight
// missing from the contract is zero.
type BorrowingBaseWeights struct {
	AccountsReceivable decimal.Decimal
	Inventory          decimal.Decimal
	Cash               decimal.Decimal
	CashInDaca         decimal.Decimal
}

// CalculateBorrowingBase returns the weighted sum of the inputs plus the
// unweighted custom adjustment. Null inputs contribute zero.
func CalculateBorrowingBase(in BorrowingBaseInputs, w BorrowingBaseWeights) decimal.Decimal {
	return OrZero(in.MonthlyAccountsReceivable).Mul(w.AccountsReceivable).
		Add(OrZero(in.MonthlyInventory).Mul(w.Inventory)).
		Add(OrZero(in.MonthlyCash).Mul(w.Cash)).
		Add(OrZero(in.AmountCashInDaca).Mul(w.CashInDaca)).
		Add(OrZero(in.AmountCustom))
}

// Weight returns the weight applied to field.
func (w BorrowingBaseWeights) Weight(field BorrowingBaseField) decimal.Decimal {
	switch field {
	case FieldAccountsReceivable:
		return w.AccountsReceivable
	case FieldInventory:
		return w.Inventory
	case FieldCash:
		return w.Cash
	case FieldCashInDaca:
		return w.CashInDaca
	default:
		return decimal.Zero
	}
}

// VisibleFields lists the components with a positive weight, in form order.
// Only these are shown and required.
func (w BorrowingBaseWeights) VisibleFields() []BorrowingBaseField {
	var fields []BorrowingBaseField
	for _, f := range borrowingBaseFields {
		if w.Weight(f).IsPositive() {
			fields = append(fields, f)
		}
	}
	return fields
}

// Validate checks that every weight lies in [0, 1].
func (w BorrowingBaseWeights) Validate() error {
	one := decimal.NewFromInt(1)
	for _, f := range borrowingBaseFields {
		weight := w.Weight(f)
		if weight.IsNegative() || weight.GreaterThan(one) {
			return fmt.Errorf("%w: %s is %s", ErrInvalidWeight, f, weight)
		}
	}
	return nil
}

var borrowingBaseFields = []BorrowingBaseField{
	FieldAccountsReceivable,
	FieldInventory,
	FieldCash,
	FieldCashInDaca,
}

// Value returns the input for field.
func (in BorrowingBaseInputs) Value(field BorrowingBaseField) decimal.NullDecimal {
	switch field {
	case FieldAccountsReceivable:
		return in.MonthlyAccountsReceivable
	case FieldInventory:
		return in.MonthlyInventory
	case FieldCash:
		return in.MonthlyCash
	case FieldCashInDaca:
		return in.AmountCashInDaca
	default:
		return decimal.NullDecimal{}
	}
}

// ValidateBorrowingBaseInputs applies the form rules before a certification is
// saved. The calculator itself never fails.
func ValidateBorrowingBaseInputs(in BorrowingBaseInputs, w BorrowingBaseWeights, role Role) error {
	if err := w.Validate(); err != nil {
		return err
	}

	for _, f := range w.VisibleFields() {
		if !in.Value(f).Valid {
			return fmt.Errorf("%w: %s", ErrMissingRequiredInput, f)
		}
	}

	for _, f := range borrowingBaseFields {
		if v := in.Value(f); v.Valid && v.Decimal.IsNegative() {
			return fmt.Errorf("%w: %s", ErrNegativeInput, f)
		}
	}

	if in.AmountCustom.Valid {
		if !role.IsBank() {
			return ErrCustomAmountNotPermitted
		}
		if strings.TrimSpace(in.AmountCustomNote) == "" {
			return ErrCustomNoteRequired
		}
	}

	return nil
}
