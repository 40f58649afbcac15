package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

type settlementServiceStub struct {
	startFn    func(ctx context.Context, input usecase.StartSettlementInput) (*domain.SettlementSession, error)
	getFn      func(ctx context.Context, id string) (*domain.SettlementSession, error)
	effectFn   func(ctx context.Context, id string, input usecase.ComputeEffectInput) (*domain.SettlementSession, error)
	backFn     func(ctx context.Context, id string) (*domain.SettlementSession, error)
	overrideFn func(ctx context.Context, id string, input usecase.OverrideInput) (*domain.SettlementSession, error)
	submitFn   func(ctx context.Context, id string) (*domain.SettlementSession, error)
}

func (s *settlementServiceStub) Start(ctx context.Context, input usecase.StartSettlementInput) (*domain.SettlementSession, error) {
	return s.startFn(ctx, input)
}

func (s *settlementServiceStub) Get(ctx context.Context, id string) (*domain.SettlementSession, error) {
	return s.getFn(ctx, id)
}

func (s *settlementServiceStub) ComputeEffect(ctx context.Context, id string, input usecase.ComputeEffectInput) (*domain.SettlementSession, error) {
	return s.effectFn(ctx, id, input)
}

func (s *settlementServiceStub) Back(ctx context.Context, id string) (*domain.SettlementSession, error) {
	return s.backFn(ctx, id)
}

func (s *settlementServiceStub) Override(ctx context.Context, id string, input usecase.OverrideInput) (*domain.SettlementSession, error) {
	return s.overrideFn(ctx, id, input)
}

func (s *settlementServiceStub) Submit(ctx context.Context, id string) (*domain.SettlementSession, error) {
	return s.submitFn(ctx, id)
}

func newSession(step domain.SettlementStep) *domain.SettlementSession {
	s := domain.NewSettlementSession("co-1", "pay-1", "bank-1", false, time.Now())
	s.ID = "sess-1"
	s.Step = step
	return s
}

func TestSettlementHandler_Start(t *testing.T) {
	var captured usecase.StartSettlementInput
	handler := NewSettlementHandler(&settlementServiceStub{
		startFn: func(ctx context.Context, input usecase.StartSettlementInput) (*domain.SettlementSession, error) {
			captured = input
			return newSession(domain.StepSelectLoans), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/settlements", bytes.NewBufferString(`{"company_id":"co-1","payment_id":"pay-1"}`))
	rec := httptest.NewRecorder()
	handler.Start(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.CompanyID != "co-1" || captured.PaymentID != "pay-1" {
		t.Fatalf("unexpected input %+v", captured)
	}

	var resp dto.SettlementSessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "sess-1" || resp.Step != "select_loans" || resp.CanSubmit {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSettlementHandler_Override(t *testing.T) {
	var captured usecase.OverrideInput
	handler := NewSettlementHandler(&settlementServiceStub{
		overrideFn: func(ctx context.Context, id string, input usecase.OverrideInput) (*domain.SettlementSession, error) {
			if id != "sess-1" {
				t.Fatalf("unexpected id %s", id)
			}
			captured = input
			s := newSession(domain.StepConfirmEffect)
			s.Effect = &domain.RepaymentEffect{}
			return s, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"loan_id":"l1","field":"to_interest","value":"12.5"}`))
	req = withURLParams(req, map[string]string{"id": "sess-1"})
	rec := httptest.NewRecorder()
	handler.Override(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.LoanID != "l1" || captured.Field != "to_interest" || !captured.Value.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected input %+v", captured)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"can_submit":true`)) {
		t.Fatalf("expected can_submit in %s", rec.Body.String())
	}
}

func TestSettlementHandler_StepErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wrong step", domain.ErrInvalidStepTransition, http.StatusConflict},
		{"expired session", domain.ErrSettlementSessionNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSettlementHandler(&settlementServiceStub{
				backFn: func(ctx context.Context, id string) (*domain.SettlementSession, error) {
					return nil, tt.err
				},
			})

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": "sess-1"})
			rec := httptest.NewRecorder()
			handler.Back(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestSettlementHandler_SubmitReportsMessage(t *testing.T) {
	handler := NewSettlementHandler(&settlementServiceStub{
		submitFn: func(ctx context.Context, id string) (*domain.SettlementSession, error) {
			s := newSession(domain.StepConfirmEffect)
			s.Effect = &domain.RepaymentEffect{}
			s.Message = "allocation would leave a negative loan balance"
			return s, nil
		},
	})

	req := withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": "sess-1"})
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	var resp dto.SettlementSessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Step != "confirm_effect" || resp.Message == "" {
		t.Fatalf("expected session to stay on confirm_effect with message, got %+v", resp)
	}
}
