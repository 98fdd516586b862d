// Package report compiles aggregated expense data into the deliverable
// report artifacts: the Excel monthly summary and the full PDF report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// TeamMember is one entry of the cover-page team list.
type TeamMember struct {
	Name string `json:"name"`
}

// ProjectInfo holds the metadata printed on the PDF cover page.
type ProjectInfo struct {
	ProjectTitle string       `json:"project_title"`
	ProjectName  string       `json:"project_name"`
	Course       string       `json:"course"`
	Institute    string       `json:"institute"`
	Supervisor   string       `json:"supervisor"`
	Semester     string       `json:"semester"`
	GeneratedBy  string       `json:"generated_by"`
	Team         []TeamMember `json:"team"`
}

// DefaultProjectInfo returns the fallback metadata used when no project
// info file exists yet.
func DefaultProjectInfo() ProjectInfo {
	return ProjectInfo{
		ProjectTitle: "Smart Expense Tracker",
		ProjectName:  "Smart Expense Tracker System",
		GeneratedBy:  "Smart Expense Tracker System",
	}
}

// LoadProjectInfo reads metadata from path, falling back to defaults when
// the file is missing or unreadable.
func LoadProjectInfo(path string) ProjectInfo {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultProjectInfo()
	}
	var info ProjectInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return DefaultProjectInfo()
	}
	return info
}

// SaveProjectInfo writes metadata to path as indented JSON.
func SaveProjectInfo(path string, info ProjectInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project info: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project info: %w", err)
	}
	return nil
}
