package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func present(s string) decimal.NullDecimal {
	return NewNullDecimal(dec(s))
}

func fullWeights() BorrowingBaseWeights {
	return BorrowingBaseWeights{
		AccountsReceivable: dec("0.8"),
		Inventory:          dec("0.5"),
		Cash:               dec("1.0"),
		CashInDaca:         dec("1.0"),
	}
}

func TestCalculateBorrowingBase(t *testing.T) {
	tests := []struct {
		name    string
		inputs  BorrowingBaseInputs
		weights BorrowingBaseWeights
		want    string
	}{
		{
			name: "weighted sum of all components",
			inputs: BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("100000"),
				MonthlyInventory:          present("50000"),
				MonthlyCash:               present("25000"),
				AmountCashInDaca:          present("25000"),
			},
			weights: fullWeights(),
			want:    "155000",
		},
		{
			name: "custom amount added unweighted",
			inputs: BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("100000"),
				AmountCustom:              present("-5000"),
				AmountCustomNote:          "reserve",
			},
			weights: fullWeights(),
			want:    "75000",
		},
		{
			name:    "null inputs contribute zero",
			inputs:  BorrowingBaseInputs{MonthlyCash: present("10")},
			weights: fullWeights(),
			want:    "10",
		},
		{
			name: "zero weight hides component from the sum",
			inputs: BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("100000"),
				MonthlyInventory:          present("50000"),
			},
			weights: BorrowingBaseWeights{AccountsReceivable: dec("0.75")},
			want:    "75000",
		},
		{
			name:    "no inputs no weights",
			inputs:  BorrowingBaseInputs{},
			weights: BorrowingBaseWeights{},
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBorrowingBase(tt.inputs, tt.weights)
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCalculateBorrowingBase_IsLinear(t *testing.T) {
	w := fullWeights()
	a := BorrowingBaseInputs{
		MonthlyAccountsReceivable: present("1200.50"),
		MonthlyInventory:          present("300"),
		MonthlyCash:               present("75.25"),
		AmountCashInDaca:          present("10"),
	}
	doubled := BorrowingBaseInputs{
		MonthlyAccountsReceivable: present("2401.00"),
		MonthlyInventory:          present("600"),
		MonthlyCash:               present("150.50"),
		AmountCashInDaca:          present("20"),
	}

	single := CalculateBorrowingBase(a, w)
	double := CalculateBorrowingBase(doubled, w)

	if !double.Equal(single.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("expected %s to be twice %s", double, single)
	}
}

func TestBorrowingBaseWeights_VisibleFields(t *testing.T) {
	w := BorrowingBaseWeights{
		AccountsReceivable: dec("0.8"),
		Cash:               dec("1"),
	}

	got := w.VisibleFields()
	if len(got) != 2 || got[0] != FieldAccountsReceivable || got[1] != FieldCash {
		t.Fatalf("unexpected visible fields: %v", got)
	}

	if fields := (BorrowingBaseWeights{}).VisibleFields(); len(fields) != 0 {
		t.Fatalf("expected no visible fields, got %v", fields)
	}
}

func TestValidateBorrowingBaseInputs(t *testing.T) {
	complete := BorrowingBaseInputs{
		MonthlyAccountsReceivable: present("100"),
		MonthlyInventory:          present("100"),
		MonthlyCash:               present("100"),
		AmountCashInDaca:          present("100"),
	}

	tests := []struct {
		name    string
		mutate  func(in *BorrowingBaseInputs)
		weights BorrowingBaseWeights
		role    Role
		wantErr error
	}{
		{
			name:    "complete inputs",
			mutate:  func(in *BorrowingBaseInputs) {},
			weights: fullWeights(),
			role:    RoleCompanyUser,
		},
		{
			name:    "visible field missing",
			mutate:  func(in *BorrowingBaseInputs) { in.MonthlyInventory = decimal.NullDecimal{} },
			weights: fullWeights(),
			role:    RoleCompanyUser,
			wantErr: ErrMissingRequiredInput,
		},
		{
			name:    "hidden field may be missing",
			mutate:  func(in *BorrowingBaseInputs) { in.MonthlyInventory = decimal.NullDecimal{} },
			weights: BorrowingBaseWeights{AccountsReceivable: dec("0.8")},
			role:    RoleCompanyUser,
		},
		{
			name:    "negative input",
			mutate:  func(in *BorrowingBaseInputs) { in.MonthlyCash = present("-1") },
			weights: fullWeights(),
			role:    RoleCompanyUser,
			wantErr: ErrNegativeInput,
		},
		{
			name: "custom amount from company user",
			mutate: func(in *BorrowingBaseInputs) {
				in.AmountCustom = present("500")
				in.AmountCustomNote = "adjustment"
			},
			weights: fullWeights(),
			role:    RoleCompanyAdmin,
			wantErr: ErrCustomAmountNotPermitted,
		},
		{
			name:    "custom amount without note",
			mutate:  func(in *BorrowingBaseInputs) { in.AmountCustom = present("500") },
			weights: fullWeights(),
			role:    RoleBankAdmin,
			wantErr: ErrCustomNoteRequired,
		},
		{
			name: "custom amount with note from bank",
			mutate: func(in *BorrowingBaseInputs) {
				in.AmountCustom = present("500")
				in.AmountCustomNote = "seasonal adjustment"
			},
			weights: fullWeights(),
			role:    RoleBankAdmin,
		},
		{
			name:    "weight above one",
			mutate:  func(in *BorrowingBaseInputs) {},
			weights: BorrowingBaseWeights{Cash: dec("1.5")},
			role:    RoleBankAdmin,
			wantErr: ErrInvalidWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := complete
			tt.mutate(&in)

			err := ValidateBorrowingBaseInputs(in, tt.weights, tt.role)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
