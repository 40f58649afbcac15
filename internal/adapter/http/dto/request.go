package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// BorrowingBaseInputs are company-reported values. Omitted or null fields stay
// null.
type BorrowingBaseInputs struct {
	MonthlyAccountsReceivable decimal.NullDecimal `json:"monthly_accounts_receivable"`
	MonthlyInventory          decimal.NullDecimal `json:"monthly_inventory"`
	MonthlyCash               decimal.NullDecimal `json:"monthly_cash"`
	AmountCashInDaca          decimal.NullDecimal `json:"amount_cash_in_daca"`
	AmountCustom              decimal.NullDecimal `json:"amount_custom"`
	AmountCustomNote          string              `json:"amount_custom_note,omitempty"`
}

// ToDomain converts to domain inputs.
func (in BorrowingBaseInputs) ToDomain() domain.BorrowingBaseInputs {
	return domain.BorrowingBaseInputs{
		MonthlyAccountsReceivable: in.MonthlyAccountsReceivable,
		MonthlyInventory:          in.MonthlyInventory,
		MonthlyCash:               in.MonthlyCash,
		AmountCashInDaca:          in.AmountCashInDaca,
		AmountCustom:              in.AmountCustom,
		AmountCustomNote:          in.AmountCustomNote,
	}
}

// BorrowingBaseWeights are contract percentages in [0, 1].
type BorrowingBaseWeights struct {
	AccountsReceivable decimal.Decimal `json:"monthly_accounts_receivable"`
	Inventory          decimal.Decimal `json:"monthly_inventory"`
	Cash               decimal.Decimal `json:"monthly_cash"`
	CashInDaca         decimal.Decimal `json:"amount_cash_in_daca"`
}

// ToDomain converts to domain weights.
func (w BorrowingBaseWeights) ToDomain() domain.BorrowingBaseWeights {
	return domain.BorrowingBaseWeights{
		AccountsReceivable: w.AccountsReceivable,
		Inventory:          w.Inventory,
		Cash:               w.Cash,
		CashInDaca:         w.CashInDaca,
	}
}

// CalculateBorrowingBaseRequest computes a borrowing base against explicit
// weights or the company's active contract.
type CalculateBorrowingBaseRequest struct {
	CompanyID string                `json:"company_id,omitempty"`
	Inputs    BorrowingBaseInputs   `json:"inputs"`
	Weights   *BorrowingBaseWeights `json:"weights,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CalculateBorrowingBaseRequest) ToUseCaseInput() usecase.BorrowingBaseInput {
	input := usecase.BorrowingBaseInput{
		CompanyID: r.CompanyID,
		Inputs:    r.Inputs.ToDomain(),
	}
	if r.Weights != nil {
		w := r.Weights.ToDomain()
		input.Weights = &w
	}
	return input
}

// ResolveLateFeeRequest looks up a late fee multiplier.
type ResolveLateFeeRequest struct {
	CompanyID        string            `json:"company_id,omitempty"`
	DaysPastDue      int               `json:"days_past_due"`
	LateFeeStructure map[string]string `json:"late_fee_structure,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ResolveLateFeeRequest) ToUseCaseInput() usecase.LateFeeInput {
	return usecase.LateFeeInput{
		CompanyID:   r.CompanyID,
		DaysPastDue: r.DaysPastDue,
		Structure:   r.LateFeeStructure,
	}
}

// CreateCompanyRequest registers a borrower.
type CreateCompanyRequest struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCompanyRequest) ToUseCaseInput() usecase.CreateCompanyInput {
	return usecase.CreateCompanyInput{
		Name:       r.Name,
		Identifier: strings.TrimSpace(r.Identifier),
	}
}

// UpsertContractRequest writes a new contract version.
type UpsertContractRequest struct {
	ProductType          string               `json:"product_type"`
	InterestRate         decimal.Decimal      `json:"interest_rate"`
	MaximumAmount        decimal.Decimal      `json:"maximum_amount"`
	LateFeeStructure     map[string]string    `json:"late_fee_structure"`
	BorrowingBaseWeights BorrowingBaseWeights `json:"borrowing_base_weights"`
	StartDate            Date                 `json:"start_date"`
	EndDate              Date                 `json:"end_date"`
}

// ToUseCaseInput converts to use case input.
func (r *UpsertContractRequest) ToUseCaseInput(companyID string) usecase.UpsertContractInput {
	return usecase.UpsertContractInput{
		CompanyID:            companyID,
		ProductType:          domain.ProductType(r.ProductType),
		InterestRate:         r.InterestRate,
		MaximumAmount:        r.MaximumAmount,
		LateFeeStructure:     r.LateFeeStructure,
		BorrowingBaseWeights: r.BorrowingBaseWeights.ToDomain(),
		StartDate:            r.StartDate.Civil(),
		EndDate:              r.EndDate.Civil(),
	}
}

// CreateLoanRequest books a loan.
type CreateLoanRequest struct {
	Identifier           string          `json:"identifier"`
	Amount               decimal.Decimal `json:"amount"`
	OriginationDate      Date            `json:"origination_date"`
	MaturityDate         Date            `json:"maturity_date"`
	AdjustedMaturityDate Date            `json:"adjusted_maturity_date"`
	Status               string          `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput(companyID string) usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		CompanyID:            companyID,
		Identifier:           strings.TrimSpace(r.Identifier),
		Amount:               r.Amount,
		OriginationDate:      r.OriginationDate.Civil(),
		MaturityDate:         r.MaturityDate.Civil(),
		AdjustedMaturityDate: r.AdjustedMaturityDate.Civil(),
		Status:               domain.LoanStatus(r.Status),
	}
}

// ItemsCovered lists what a payment pays down.
type ItemsCovered struct {
	LoanIDs                     []string        `json:"loan_ids"`
	ToAccountFees               bool            `json:"to_account_fees"`
	RequestedToAccountFees      decimal.Decimal `json:"requested_to_account_fees"`
	RequestedFromHoldingAccount decimal.Decimal `json:"requested_from_holding_account"`
}

// ToDomain converts to domain coverage.
func (i ItemsCovered) ToDomain() domain.ItemsCovered {
	return domain.ItemsCovered{
		LoanIDs:                     i.LoanIDs,
		ToAccountFees:               i.ToAccountFees,
		RequestedToAccountFees:      i.RequestedToAccountFees,
		RequestedFromHoldingAccount: i.RequestedFromHoldingAccount,
	}
}

// CreateRepaymentRequest is a company's repayment submission.
type CreateRepaymentRequest struct {
	Method               string          `json:"method"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	RequestedPaymentDate Date            `json:"requested_payment_date"`
	ItemsCovered         ItemsCovered    `json:"items_covered"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRepaymentRequest) ToUseCaseInput(companyID string) (usecase.CreateRepaymentInput, error) {
	method, err := domain.ParsePaymentMethod(r.Method)
	if err != nil {
		return usecase.CreateRepaymentInput{}, err
	}
	return usecase.CreateRepaymentInput{
		CompanyID:            companyID,
		Method:               method,
		RequestedAmount:      r.RequestedAmount,
		RequestedPaymentDate: r.RequestedPaymentDate.Civil(),
		ItemsCovered:         r.ItemsCovered.ToDomain(),
	}, nil
}

// RepaymentEffectRequest previews a repayment.
type RepaymentEffectRequest struct {
	PaymentOption           string          `json:"payment_option"`
	Amount                  decimal.Decimal `json:"amount"`
	DepositDate             Date            `json:"deposit_date"`
	SettlementDate          Date            `json:"settlement_date"`
	ItemsCovered            ItemsCovered    `json:"items_covered"`
	ShouldPayPrincipalFirst bool            `json:"should_pay_principal_first"`
}

// ToDomain converts to a repayment request for companyID.
func (r *RepaymentEffectRequest) ToDomain(companyID string) domain.RepaymentRequest {
	return domain.RepaymentRequest{
		CompanyID:               companyID,
		PaymentOption:           domain.PaymentOption(r.PaymentOption),
		Amount:                  r.Amount,
		DepositDate:             r.DepositDate.Civil(),
		SettlementDate:          r.SettlementDate.Civil(),
		ItemsCovered:            r.ItemsCovered.ToDomain(),
		ShouldPayPrincipalFirst: r.ShouldPayPrincipalFirst,
	}
}

// ToComputeEffectInput converts to the wizard's effect input.
func (r *RepaymentEffectRequest) ToComputeEffectInput() usecase.ComputeEffectInput {
	return usecase.ComputeEffectInput{
		PaymentOption:           domain.PaymentOption(r.PaymentOption),
		Amount:                  r.Amount,
		DepositDate:             r.DepositDate.Civil(),
		SettlementDate:          r.SettlementDate.Civil(),
		ItemsCovered:            r.ItemsCovered.ToDomain(),
		ShouldPayPrincipalFirst: r.ShouldPayPrincipalFirst,
	}
}

// TransactionInput is one loan's settled allocation. Amount is derived.
type TransactionInput struct {
	LoanID      string          `json:"loan_id"`
	ToPrincipal decimal.Decimal `json:"to_principal"`
	ToInterest  decimal.Decimal `json:"to_interest"`
	ToFees      decimal.Decimal `json:"to_fees"`
}

// SettleRepaymentRequest applies a repayment.
type SettleRepaymentRequest struct {
	Amount            decimal.Decimal    `json:"amount"`
	DepositDate       Date               `json:"deposit_date"`
	SettlementDate    Date               `json:"settlement_date"`
	ItemsCovered      ItemsCovered       `json:"items_covered"`
	TransactionInputs []TransactionInput `json:"transaction_inputs"`
	IsLineOfCredit    bool               `json:"is_line_of_credit"`
}

// ToUseCaseInput converts to use case input.
func (r *SettleRepaymentRequest) ToUseCaseInput(companyID, paymentID string) usecase.SettleRepaymentInput {
	inputs := make([]domain.LoanTransactionInput, len(r.TransactionInputs))
	for i, t := range r.TransactionInputs {
		inputs[i] = domain.LoanTransactionInput{
			LoanID:     t.LoanID,
			Allocation: domain.NewAllocation(t.ToPrincipal, t.ToInterest, t.ToFees),
		}
	}
	return usecase.SettleRepaymentInput{
		CompanyID:         companyID,
		PaymentID:         paymentID,
		Amount:            r.Amount,
		DepositDate:       r.DepositDate.Civil(),
		SettlementDate:    r.SettlementDate.Civil(),
		ItemsCovered:      r.ItemsCovered.ToDomain(),
		TransactionInputs: inputs,
		IsLineOfCredit:    r.IsLineOfCredit,
	}
}

// CreateEbbaApplicationRequest drafts a borrowing base certification.
type CreateEbbaApplicationRequest struct {
	ApplicationDate Date                `json:"application_date"`
	Inputs          BorrowingBaseInputs `json:"inputs"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEbbaApplicationRequest) ToUseCaseInput(companyID string) usecase.CreateEbbaInput {
	return usecase.CreateEbbaInput{
		CompanyID:       companyID,
		ApplicationDate: r.ApplicationDate.Civil(),
		Inputs:          r.Inputs.ToDomain(),
	}
}

// RejectEbbaApplicationRequest carries the required rejection note.
type RejectEbbaApplicationRequest struct {
	Note string `json:"note"`
}

// StartSettlementRequest opens a settle-repayment wizard.
type StartSettlementRequest struct {
	CompanyID string `json:"company_id"`
	PaymentID string `json:"payment_id"`
}

// ToUseCaseInput converts to use case input.
func (r *StartSettlementRequest) ToUseCaseInput() usecase.StartSettlementInput {
	return usecase.StartSettlementInput{CompanyID: r.CompanyID, PaymentID: r.PaymentID}
}

// OverrideRequest edits one component of one loan's previewed transaction.
type OverrideRequest struct {
	LoanID string          `json:"loan_id"`
	Field  string          `json:"field"`
	Value  decimal.Decimal `json:"value"`
}

// ToUseCaseInput converts to use case input.
func (r *OverrideRequest) ToUseCaseInput() usecase.OverrideInput {
	return usecase.OverrideInput{LoanID: r.LoanID, Field: r.Field, Value: r.Value}
}
