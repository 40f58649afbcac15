package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    civil.Date
		wantErr bool
	}{
		{"date", `"2024-03-15"`, civil.Date{Year: 2024, Month: 3, Day: 15}, false},
		{"null", `null`, civil.Date{}, false},
		{"empty", `""`, civil.Date{}, false},
		{"garbage", `"15/03/2024"`, civil.Date{}, true},
		{"number", `20240315`, civil.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Civil() != tt.want {
				t.Fatalf("got %v, want %v", d.Civil(), tt.want)
			}
		})
	}
}

func TestDateMarshal(t *testing.T) {
	data, err := json.Marshal(struct {
		Set   Date `json:"set"`
		Unset Date `json:"unset"`
	}{Set: NewDate(civil.Date{Year: 2024, Month: 1, Day: 2})})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"set":"2024-01-02","unset":null}` {
		t.Fatalf("unexpected json %s", data)
	}
}

func TestCalculateBorrowingBaseRequest_NullInputs(t *testing.T) {
	var req CalculateBorrowingBaseRequest
	body := `{
		"inputs": {"monthly_accounts_receivable": "1000", "monthly_cash": null},
		"weights": {"monthly_accounts_receivable": "0.8"}
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	input := req.ToUseCaseInput()
	if !input.Inputs.MonthlyAccountsReceivable.Valid ||
		!input.Inputs.MonthlyAccountsReceivable.Decimal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("receivables not decoded: %+v", input.Inputs.MonthlyAccountsReceivable)
	}
	if input.Inputs.MonthlyCash.Valid || input.Inputs.MonthlyInventory.Valid {
		t.Fatalf("expected null inputs to stay null: %+v", input.Inputs)
	}
	if input.Weights == nil || !input.Weights.AccountsReceivable.Equal(decimal.RequireFromString("0.8")) {
		t.Fatalf("weights not decoded: %+v", input.Weights)
	}
}

func TestCalculateBorrowingBaseRequest_ContractWeights(t *testing.T) {
	req := CalculateBorrowingBaseRequest{CompanyID: "co-1"}
	if input := req.ToUseCaseInput(); input.Weights != nil || input.CompanyID != "co-1" {
		t.Fatalf("expected contract lookup input, got %+v", input)
	}
}

func TestCreateRepaymentRequest_ToUseCaseInput(t *testing.T) {
	var req CreateRepaymentRequest
	body := `{
		"method": "reverse_draft_ach",
		"requested_amount": "250.50",
		"requested_payment_date": "2024-05-01",
		"items_covered": {"loan_ids": ["l1", "l2"], "to_account_fees": true, "requested_to_account_fees": "10"}
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	input, err := req.ToUseCaseInput("co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.CompanyID != "co-1" || input.Method != domain.PaymentMethodReverseDraftACH {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.RequestedAmount.Equal(decimal.RequireFromString("250.5")) {
		t.Fatalf("amount = %s", input.RequestedAmount)
	}
	if input.RequestedPaymentDate != (civil.Date{Year: 2024, Month: 5, Day: 1}) {
		t.Fatalf("date = %v", input.RequestedPaymentDate)
	}
	if len(input.ItemsCovered.LoanIDs) != 2 || !input.ItemsCovered.ToAccountFees {
		t.Fatalf("items covered = %+v", input.ItemsCovered)
	}
}

func TestCreateRepaymentRequest_InvalidMethod(t *testing.T) {
	req := CreateRepaymentRequest{Method: "cash"}
	if _, err := req.ToUseCaseInput("co-1"); !errors.Is(err, domain.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestSettleRepaymentRequest_DerivesAmounts(t *testing.T) {
	req := SettleRepaymentRequest{
		Amount:         decimal.NewFromInt(100),
		SettlementDate: NewDate(civil.Date{Year: 2024, Month: 6, Day: 3}),
		TransactionInputs: []TransactionInput{
			{LoanID: "l1", ToPrincipal: decimal.NewFromInt(60), ToInterest: decimal.NewFromInt(30), ToFees: decimal.NewFromInt(10)},
		},
		IsLineOfCredit: true,
	}

	input := req.ToUseCaseInput("co-1", "pay-1")
	if input.PaymentID != "pay-1" || input.CompanyID != "co-1" || !input.IsLineOfCredit {
		t.Fatalf("unexpected input: %+v", input)
	}
	if len(input.TransactionInputs) != 1 {
		t.Fatalf("expected one transaction input, got %d", len(input.TransactionInputs))
	}
	alloc := input.TransactionInputs[0].Allocation
	if !alloc.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("amount = %s, want 100", alloc.Amount)
	}
	if err := alloc.Validate(); err != nil {
		t.Fatalf("allocation invalid: %v", err)
	}
}

func TestRepaymentEffectRequest_ToDomain(t *testing.T) {
	req := RepaymentEffectRequest{
		PaymentOption:           "pay_in_full",
		SettlementDate:          NewDate(civil.Date{Year: 2024, Month: 6, Day: 3}),
		ItemsCovered:            ItemsCovered{LoanIDs: []string{"l1"}},
		ShouldPayPrincipalFirst: true,
	}

	got := req.ToDomain("co-1")
	if got.CompanyID != "co-1" || got.PaymentOption != domain.PaymentOptionPayInFull || !got.ShouldPayPrincipalFirst {
		t.Fatalf("unexpected request: %+v", got)
	}
	if _, err := got.Normalize(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	effect := req.ToComputeEffectInput()
	if effect.PaymentOption != got.PaymentOption || effect.SettlementDate != got.SettlementDate {
		t.Fatalf("compute input mismatch: %+v", effect)
	}
}

func TestUpsertContractRequest_ToUseCaseInput(t *testing.T) {
	var req UpsertContractRequest
	body := `{
		"product_type": "line_of_credit",
		"interest_rate": "0.001",
		"maximum_amount": "50000",
		"late_fee_structure": {"1-14": "0.25", "15+": "1.0"},
		"borrowing_base_weights": {"monthly_inventory": "0.5"},
		"start_date": "2024-01-01",
		"end_date": null
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	input := req.ToUseCaseInput("co-1")
	if input.ProductType != domain.ProductTypeLineOfCredit || input.CompanyID != "co-1" {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.BorrowingBaseWeights.Inventory.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("weights = %+v", input.BorrowingBaseWeights)
	}
	if !domain.IsZeroDate(input.EndDate) || domain.IsZeroDate(input.StartDate) {
		t.Fatalf("dates = %v %v", input.StartDate, input.EndDate)
	}
	if len(input.LateFeeStructure) != 2 {
		t.Fatalf("late fee structure = %v", input.LateFeeStructure)
	}
}
