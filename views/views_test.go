// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danielhkuo/results-dashboard/models"
)

func TestFormatScore(t *testing.T) {
	testCases := []struct {
		in       float64
		expected string
	}{
		{0, "0.00"},
		{85, "85.00"},
		{70.333333, "70.33"},
		{99.999, "100.00"},
	}

	for _, tc := range testCases {
		if got := FormatScore(tc.in); got != tc.expected {
			t.Errorf("FormatScore(%v) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestRender_Dashboard(t *testing.T) {
	d := models.Dashboard{
		Students: []models.StudentStats{
			{ID: 1, Name: "Alice", AverageScore: 85, SubjectsCount: 2},
			{ID: 2, Name: "Bob", AverageScore: 57.5, SubjectsCount: 2},
		},
		Subjects: []models.SubjectStats{
			{ID: 1, Name: "Math", AverageScore: 75, StudentCount: 2},
		},
		Overall: models.OverallStats{
			AverageScore:  71.25,
			HighestScore:  90,
			LowestScore:   55,
			TotalStudents: 1200,
			TotalResults:  4,
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, Dashboard, d); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	body := buf.String()
	for _, want := range []string{"<title>Dashboard", "71.25", "1,200", "1st", "2nd", "Alice", "57.50", "Math"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected dashboard to contain %q", want)
		}
	}
}

func TestRender_EmptyLists(t *testing.T) {
	testCases := []struct {
		page     string
		data     any
		expected string
	}{
		{Students, []models.Student{}, "No students yet."},
		{Subjects, []models.Subject{}, "No subjects yet."},
		{Results, []models.Result{}, "No results yet."},
		{Dashboard, models.Dashboard{}, "No results recorded yet."},
	}

	for _, tc := range testCases {
		t.Run(tc.page, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tc.page, tc.data); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(buf.String(), tc.expected) {
				t.Errorf("Expected %q in output", tc.expected)
			}
		})
	}
}

func TestRender_FormError(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, StudentForm, models.StudentForm{
		Student: models.Student{Name: "Alice <b>", Email: "alice@example.com"},
		IsEdit:  true,
		Error:   "Email already exists",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	body := buf.String()
	if !strings.Contains(body, "Edit Student") {
		t.Error("Expected edit heading")
	}
	if !strings.Contains(body, "Email already exists") {
		t.Error("Expected error message")
	}
	if strings.Contains(body, "Alice <b>") {
		t.Error("Expected user input to be escaped")
	}
}

func TestRender_ResultFormSelectsCurrent(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, ResultForm, models.ResultForm{
		Result:   models.Result{ID: 3, StudentID: 2, SubjectID: 1, Score: 88.5},
		Students: []models.Student{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}},
		Subjects: []models.Subject{{ID: 1, Name: "Math"}},
		Score:    FormatScore(88.5),
		IsEdit:   true,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	body := buf.String()
	if !strings.Contains(body, `<option value="2" selected>Bob</option>`) {
		t.Errorf("Expected Bob to be selected. Body: %s", body)
	}
	if !strings.Contains(body, `value="88.50"`) {
		t.Error("Expected score to be pre-filled")
	}
}

func TestRender_ResultFormKeepsTypedScore(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, ResultForm, models.ResultForm{
		Score: "ninety",
		Error: "Score must be a number",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	body := buf.String()
	if !strings.Contains(body, `value="ninety"`) {
		t.Errorf("Expected typed score to be kept. Body: %s", body)
	}
	if !strings.Contains(body, "Score must be a number") {
		t.Error("Expected error message")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "missing", nil); err == nil {
		t.Error("Expected error for unknown page")
	}
	if buf.Len() != 0 {
		t.Error("Expected nothing written for unknown page")
	}
}
