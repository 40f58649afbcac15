package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/auth"
	"github.com/iho/goloan/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goloan-cli",
		Short:         "GoLoan CLI tool",
		Long:          `A command line interface for the GoLoan calculators and API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoLoan API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("GOLOAN_TOKEN"), "Bearer token for API calls")

	rootCmd.AddCommand(borrowingBaseCmd(), lateFeeCmd(), repaymentCmd(), reconcileCmd(), tokenCmd(), migrateCmd())
	return rootCmd
}

func borrowingBaseCmd() *cobra.Command {
	var (
		ar, inventory, cash, daca, custom           string
		weightAR, weightInv, weightCash, weightDaca string
	)

	cmd := &cobra.Command{
		Use:   "borrowing-base",
		Short: "Calculate a borrowing base locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.BorrowingBaseInputs
			var w domain.BorrowingBaseWeights
			var err error

			inputs := []struct {
				name string
				raw  string
				dst  *decimal.NullDecimal
			}{
				{"ar", ar, &in.MonthlyAccountsReceivable},
				{"inventory", inventory, &in.MonthlyInventory},
				{"cash", cash, &in.MonthlyCash},
				{"daca", daca, &in.AmountCashInDaca},
				{"custom", custom, &in.AmountCustom},
			}
			for _, f := range inputs {
				if *f.dst, err = parseOptionalDecimal(f.name, f.raw); err != nil {
					return err
				}
			}

			weights := []struct {
				name string
				raw  string
				dst  *decimal.Decimal
			}{
				{"weight-ar", weightAR, &w.AccountsReceivable},
				{"weight-inventory", weightInv, &w.Inventory},
				{"weight-cash", weightCash, &w.Cash},
				{"weight-daca", weightDaca, &w.CashInDaca},
			}
			for _, f := range weights {
				v, err := parseOptionalDecimal(f.name, f.raw)
				if err != nil {
					return err
				}
				*f.dst = domain.OrZero(v)
			}
			if err := w.Validate(); err != nil {
				return err
			}

			bb := domain.RoundCents(domain.CalculateBorrowingBase(in, w))
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"borrowing_base":           bb.StringFixed(2),
				"borrowing_base_formatted": domain.FormatCurrency(bb),
				"visible_fields":           w.VisibleFields(),
			})
		},
	}

	cmd.Flags().StringVar(&ar, "ar", "", "Monthly accounts receivable")
	cmd.Flags().StringVar(&inventory, "inventory", "", "Monthly inventory")
	cmd.Flags().StringVar(&cash, "cash", "", "Monthly cash")
	cmd.Flags().StringVar(&daca, "daca", "", "Cash in DACA")
	cmd.Flags().StringVar(&custom, "custom", "", "Custom adjustment, added unweighted")
	cmd.Flags().StringVar(&weightAR, "weight-ar", "", "Accounts receivable weight")
	cmd.Flags().StringVar(&weightInv, "weight-inventory", "", "Inventory weight")
	cmd.Flags().StringVar(&weightCash, "weight-cash", "", "Cash weight")
	cmd.Flags().StringVar(&weightDaca, "weight-daca", "", "Cash in DACA weight")
	return cmd
}

func lateFeeCmd() *cobra.Command {
	var (
		days      int
		structure string
	)

	cmd := &cobra.Command{
		Use:   "late-fee",
		Short: "Resolve a late fee multiplier locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw map[string]string
			if err := json.Unmarshal([]byte(structure), &raw); err != nil {
				return fmt.Errorf("structure must be a JSON object of tier to fee: %w", err)
			}
			schedule, err := domain.ParseLateFeeStructure(raw)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"days_past_due": days,
				"fee":           schedule.Resolve(days).String(),
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days past due")
	cmd.Flags().StringVar(&structure, "structure", "{}", `Late fee structure, e.g. '{"1-14":"0.25","15+":"0.5"}'`)
	return cmd
}

func repaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repayment",
		Short: "Repayment operations against the API",
	}

	var companyID, file string
	effectCmd := &cobra.Command{
		Use:   "effect",
		Short: "Preview the effect of a repayment request read from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return apiCall(cmd.OutOrStdout(), http.MethodPost, "/api/v1/companies/"+companyID+"/repayments/effect", body)
		},
	}
	effectCmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	effectCmd.Flags().StringVarP(&file, "file", "f", "-", "Request JSON file, - for stdin")
	_ = effectCmd.MarkFlagRequired("company")

	cmd.AddCommand(effectCmd)
	return cmd
}

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check balances against their transactions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "company <id>",
		Short: "Reconcile every loan of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiCall(cmd.OutOrStdout(), http.MethodGet, "/api/v1/companies/"+args[0]+"/reconciliation", nil)
		},
	}, &cobra.Command{
		Use:   "loan <id>",
		Short: "Reconcile one loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiCall(cmd.OutOrStdout(), http.MethodGet, "/api/v1/loans/"+args[0]+"/reconciliation", nil)
		},
	})
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		secret, userID, email, companyID, role string
		ttl                                    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("--secret or JWT_SECRET is required")
			}
			signed, err := auth.NewJWTManager(secret, ttl).Generate(&domain.User{
				ID:        userID,
				Email:     email,
				CompanyID: companyID,
				Role:      domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "Signing secret")
	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().StringVar(&companyID, "company", "", "Company ID for company roles")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleBankReadOnly), "Role")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

var (
	migrateUp   = postgres.RunMigrations
	migrateDown = postgres.RunMigrationsDown
)

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL")
	cmd.PersistentFlags().StringVar(&path, "path", "migrations", "Migrations directory or source URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrateUp(databaseURL, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}, &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrateDown(databaseURL, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
			return nil
		},
	})
	return cmd
}

func apiCall(out io.Writer, method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, strings.TrimRight(baseURL, "/")+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// 422 carries an ERROR status body worth showing.
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusUnprocessableEntity {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(strings.TrimSpace(string(respBody)), 200))
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return printJSON(out, result)
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

func parseOptionalDecimal(name, raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return domain.NewNullDecimal(d), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
