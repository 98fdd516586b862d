package report

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadProjectInfoMissingFile(t *testing.T) {
	got := LoadProjectInfo(filepath.Join(t.TempDir(), "nope.json"))
	if !reflect.DeepEqual(got, DefaultProjectInfo()) {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestProjectInfoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_info.json")
	want := ProjectInfo{
		ProjectTitle: "Household Budget",
		ProjectName:  "Household Budget Tracker",
		Course:       "CS101",
		Institute:    "Example University",
		Supervisor:   "Dr. Example",
		Semester:     "Fall 2025",
		GeneratedBy:  "tracker",
		Team:         []TeamMember{{Name: "Jordan"}},
	}
	if err := SaveProjectInfo(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := LoadProjectInfo(path)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}
