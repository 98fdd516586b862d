package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Data
	ExpensesFile string

	// Reports
	ReportsDir      string
	ProjectInfoFile string

	// Presentation
	TopN        int
	ChartWidth  int
	ChartHeight int
}

func Load() *Config {
	return &Config{
		ExpensesFile: getEnv("EXPENSES_FILE", "./data/expenses.csv"),

		ReportsDir:      getEnv("REPORTS_DIR", "./reports"),
		ProjectInfoFile: getEnv("PROJECT_INFO_FILE", "./project_info.json"),

		TopN:        getEnvInt("TOP_N", 10),
		ChartWidth:  getEnvInt("CHART_WIDTH", 1024),
		ChartHeight: getEnvInt("CHART_HEIGHT", 512),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.ExpensesFile == "" {
		errors = append(errors, "expenses file path cannot be empty")
	} else {
		if err := ensureDir(filepath.Dir(c.ExpensesFile)); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create data directory for '%s': %v", c.ExpensesFile, err))
		}
	}

	if c.ReportsDir == "" {
		errors = append(errors, "reports directory cannot be empty")
	} else if err := ensureDir(c.ReportsDir); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create reports directory '%s': %v", c.ReportsDir, err))
	}

	if c.ProjectInfoFile == "" {
		errors = append(errors, "project info file path cannot be empty")
	}

	if c.TopN < 1 {
		errors = append(errors, fmt.Sprintf("invalid top-N %d: must be at least 1", c.TopN))
	} else if c.TopN > 100 {
		errors = append(errors, fmt.Sprintf("invalid top-N %d: must be at most 100", c.TopN))
	}

	if c.ChartWidth < 200 || c.ChartWidth > 4096 {
		errors = append(errors, fmt.Sprintf("invalid chart width %d: must be between 200 and 4096", c.ChartWidth))
	}
	if c.ChartHeight < 200 || c.ChartHeight > 4096 {
		errors = append(errors, fmt.Sprintf("invalid chart height %d: must be between 200 and 4096", c.ChartHeight))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureDir(dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
