package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

func TestCompanyFromDomain(t *testing.T) {
	now := time.Now()
	company := &domain.Company{
		ID:                    "co-1",
		Name:                  "Acme",
		Identifier:            "ACME",
		HoldingAccountBalance: decimal.RequireFromString("12.50"),
		Version:               3,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	resp := CompanyFromDomain(company)
	if resp.ID != "co-1" || resp.Identifier != "ACME" || resp.Version != 3 {
		t.Fatalf("unexpected company response: %+v", resp)
	}

	list := CompaniesFromDomain([]*domain.Company{company})
	if len(list) != 1 || list[0].Name != "Acme" {
		t.Fatalf("CompaniesFromDomain returned %+v", list)
	}
}

func TestEffectStatusFromDomain_WireNames(t *testing.T) {
	effect := &domain.RepaymentEffect{
		PaymentOption:          domain.PaymentOptionCustomAmount,
		Amount:                 decimal.NewFromInt(100),
		SettlementDate:         civil.Date{Year: 2024, Month: 6, Day: 3},
		PayableAmountPrincipal: decimal.NewFromInt(80),
		PayableAmountInterest:  decimal.NewFromInt(20),
		LoansToShow: []domain.LoanBeforeAfterPayment{{
			LoanID:            "l1",
			LoanIdentifier:    "L-1",
			BeforeLoanBalance: domain.LoanBalance{OutstandingPrincipalBalance: decimal.NewFromInt(80), OutstandingInterest: decimal.NewFromInt(20)},
			Transaction:       domain.NewAllocation(decimal.NewFromInt(80), decimal.NewFromInt(20), decimal.Zero),
		}},
	}

	data, err := json.Marshal(EffectStatusFromDomain(&domain.EffectResponse{
		StatusResponse: *domain.OKStatus(),
		Effect:         effect,
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(data)
	for _, key := range []string{
		`"status":"OK"`,
		`"payable_amount_principal":"80"`,
		`"payable_amount_interest":"20"`,
		`"loans_to_show":[`,
		`"loan_identifier":"L-1"`,
		`"before_loan_balance":{`,
		`"after_loan_balance":{`,
		`"transaction":{"amount":"100"`,
		`"settlement_date":"2024-06-03"`,
	} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
}

func TestEffectStatusFromDomain_Error(t *testing.T) {
	data, err := json.Marshal(EffectStatusFromDomain(domain.ErrorEffect("no active contract")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"status":"ERROR","msg":"no active contract"}` {
		t.Fatalf("unexpected json %s", data)
	}
}

func TestBorrowingBaseFromUseCase(t *testing.T) {
	resp := BorrowingBaseFromUseCase(&usecase.BorrowingBaseResult{
		BorrowingBase: decimal.RequireFromString("1234.5"),
		Weights:       domain.BorrowingBaseWeights{Cash: decimal.NewFromInt(1)},
		VisibleFields: []domain.BorrowingBaseField{domain.FieldCash},
	})

	if resp.BorrowingBaseFormatted != "$1,234.50" {
		t.Fatalf("formatted = %q", resp.BorrowingBaseFormatted)
	}
	if len(resp.VisibleFields) != 1 || resp.VisibleFields[0] != "monthly_cash" {
		t.Fatalf("visible fields = %v", resp.VisibleFields)
	}
}

func TestSettlementSessionFromDomain(t *testing.T) {
	now := time.Now()
	session := domain.NewSettlementSession("co-1", "pay-1", "user-1", false, now)
	session.ID = "sess-1"

	resp := SettlementSessionFromDomain(session)
	if resp.Step != string(domain.StepSelectLoans) || resp.CanSubmit || resp.Effect != nil {
		t.Fatalf("unexpected session response: %+v", resp)
	}
}

func TestReconciliationReportFromUseCase(t *testing.T) {
	report := &usecase.ReconciliationReport{
		CompanyID:       "co-1",
		TotalLoans:      2,
		ReconciledLoans: 2,
		HoldingAccount:  &usecase.ReconciliationResult{ResourceID: "co-1", IsReconciled: true},
	}

	resp := ReconciliationReportFromUseCase(report)
	if !resp.IsReconciled || resp.HoldingAccount == nil || len(resp.Discrepancies) != 0 {
		t.Fatalf("unexpected report: %+v", resp)
	}
}
