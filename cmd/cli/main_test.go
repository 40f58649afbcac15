package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/auth"
)

func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "{\n  \"a\": 1\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestBorrowingBaseCmd(t *testing.T) {
	out, err := runCLI(t, nil, "borrowing-base",
		"--ar", "1000", "--cash", "500", "--custom", "-10",
		"--weight-ar", "0.8", "--weight-cash", "0.5")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var got struct {
		BorrowingBase string   `json:"borrowing_base"`
		Formatted     string   `json:"borrowing_base_formatted"`
		VisibleFields []string `json:"visible_fields"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid output %q: %v", out, err)
	}

	if got.BorrowingBase != "1040.00" || got.Formatted != "$1,040.00" {
		t.Fatalf("unexpected borrowing base %+v", got)
	}
	if len(got.VisibleFields) != 2 || got.VisibleFields[0] != string(domain.FieldAccountsReceivable) {
		t.Fatalf("unexpected visible fields %v", got.VisibleFields)
	}
}

func TestBorrowingBaseCmd_RejectsBadInput(t *testing.T) {
	if _, err := runCLI(t, nil, "borrowing-base", "--ar", "lots"); err == nil {
		t.Fatalf("expected invalid decimal to fail")
	}
	if _, err := runCLI(t, nil, "borrowing-base", "--weight-cash", "1.5"); err == nil {
		t.Fatalf("expected out of range weight to fail")
	}
}

func TestLateFeeCmd(t *testing.T) {
	out, err := runCLI(t, nil, "late-fee", "--days", "20", "--structure", `{"1-14":"0.25","15+":"0.5"}`)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, `"fee": "0.5"`) {
		t.Fatalf("expected 0.5 fee, got %s", out)
	}

	if _, err := runCLI(t, nil, "late-fee", "--structure", `{"soon":"1"}`); !errors.Is(err, domain.ErrInvalidLateFeeTier) {
		t.Fatalf("expected invalid tier error, got %v", err)
	}
}

func TestRepaymentEffectCmd(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":"ERROR","msg":"no active contract"}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, strings.NewReader(`{"requested_amount":"10"}`),
		"--url", srv.URL, "--token", "tok", "repayment", "effect", "--company", "co-1")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if gotPath != "/api/v1/companies/co-1/repayments/effect" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer tok" || gotBody != `{"requested_amount":"10"}` {
		t.Fatalf("unexpected request auth=%q body=%q", gotAuth, gotBody)
	}
	if !strings.Contains(out, "no active contract") {
		t.Fatalf("expected error status in output, got %s", out)
	}
}

func TestReconcileCmd_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := runCLI(t, nil, "--url", srv.URL, "reconcile", "loan", "l1")
	if err == nil || !strings.Contains(err.Error(), "status 403") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestTokenCmd(t *testing.T) {
	out, err := runCLI(t, nil, "token", "--secret", "s3cret", "--user", "u1", "--role", "company_user", "--company", "co-1", "--ttl", "1h")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	claims, err := auth.NewJWTManager("s3cret", time.Hour).Verify(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("minted token did not verify: %v", err)
	}
	if claims.UserID != "u1" || claims.CompanyID != "co-1" || claims.Role != domain.RoleCompanyUser {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := runCLI(t, nil, "token", "--secret", "s", "--user", "u1", "--role", "company_user"); err == nil {
		t.Fatalf("expected company role without company to fail")
	}
}

func TestMigrateCmd(t *testing.T) {
	origUp, origDown := migrateUp, migrateDown
	defer func() { migrateUp, migrateDown = origUp, origDown }()

	var gotURL, gotPath string
	migrateUp = func(databaseURL, path string) error {
		gotURL, gotPath = databaseURL, path
		return nil
	}
	migrateDown = func(string, string) error { return errors.New("boom") }

	out, err := runCLI(t, nil, "migrate", "up", "--database-url", "postgres://x", "--path", "file://m")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if gotURL != "postgres://x" || gotPath != "file://m" || !strings.Contains(out, "applied") {
		t.Fatalf("unexpected migrate call url=%q path=%q out=%q", gotURL, gotPath, out)
	}

	if _, err := runCLI(t, nil, "migrate", "down"); err == nil {
		t.Fatalf("expected down failure to propagate")
	}
}
