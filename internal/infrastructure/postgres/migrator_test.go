package postgres

import (
	"testing"
)

func TestRunMigrationsMissingSource(t *testing.T) {
	err := RunMigrations("postgres://invalid:5432/db?sslmode=disable", t.TempDir()+"/missing")
	if err == nil {
		t.Fatalf("expected error for missing migrations directory")
	}
}

func TestRunMigrationsDownMissingSource(t *testing.T) {
	err := RunMigrationsDown("postgres://invalid:5432/db?sslmode=disable", t.TempDir()+"/missing")
	if err == nil {
		t.Fatalf("expected error for missing migrations directory")
	}
}

func TestSourceURL(t *testing.T) {
	cases := map[string]string{
		"migrations":          "file://migrations",
		"/srv/goloan/sql":     "file:///srv/goloan/sql",
		"file://migrations":   "file://migrations",
		"github://o/r/sql#v1": "github://o/r/sql#v1",
	}
	for in, want := range cases {
		if got := sourceURL(in); got != want {
			t.Fatalf("sourceURL(%q) = %q, want %q", in, got, want)
		}
	}
}
