package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	base := t.TempDir()
	return Config{
		ExpensesFile:    filepath.Join(base, "data", "expenses.csv"),
		ReportsDir:      filepath.Join(base, "reports"),
		ProjectInfoFile: filepath.Join(base, "project_info.json"),
		TopN:            10,
		ChartWidth:      1024,
		ChartHeight:     512,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "empty expenses file",
			mutate:      func(c *Config) { c.ExpensesFile = "" },
			wantErr:     true,
			errorString: "expenses file path cannot be empty",
		},
		{
			name:        "empty reports dir",
			mutate:      func(c *Config) { c.ReportsDir = "" },
			wantErr:     true,
			errorString: "reports directory cannot be empty",
		},
		{
			name:        "top-N too small",
			mutate:      func(c *Config) { c.TopN = 0 },
			wantErr:     true,
			errorString: "invalid top-N 0: must be at least 1",
		},
		{
			name:        "top-N too large",
			mutate:      func(c *Config) { c.TopN = 500 },
			wantErr:     true,
			errorString: "invalid top-N 500: must be at most 100",
		},
		{
			name:        "chart width out of range",
			mutate:      func(c *Config) { c.ChartWidth = 50 },
			wantErr:     true,
			errorString: "invalid chart width 50",
		},
		{
			name:        "chart height out of range",
			mutate:      func(c *Config) { c.ChartHeight = 9000 },
			wantErr:     true,
			errorString: "invalid chart height 9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"EXPENSES_FILE", "REPORTS_DIR", "PROJECT_INFO_FILE", "TOP_N"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.ExpensesFile != "./data/expenses.csv" {
		t.Fatalf("unexpected default expenses file %q", cfg.ExpensesFile)
	}
	if cfg.ReportsDir != "./reports" {
		t.Fatalf("unexpected default reports dir %q", cfg.ReportsDir)
	}
	if cfg.TopN != 10 {
		t.Fatalf("unexpected default top-N %d", cfg.TopN)
	}
}
