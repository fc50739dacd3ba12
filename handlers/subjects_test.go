// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/results-dashboard/testutil"
)

func TestSubjectList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewSubjectHandler(db, nil)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/subjects", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "No subjects yet.")

	testutil.CreateTestSubject(t, db, "Chemistry")

	w = httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/subjects", nil))
	testutil.AssertBodyContains(t, w, "Chemistry")
}

func TestSubjectAdd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestSubject(t, db, "Math")
	handler := NewSubjectHandler(db, nil)

	tests := []struct {
		name          string
		form          url.Values
		expectedError string
	}{
		{"valid subject", url.Values{"name": {"Physics"}}, ""},
		{"duplicate name", url.Values{"name": {"Math"}}, "Subject already exists"},
		{"blank name", url.Values{"name": {""}}, "Subject name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Add(w, testutil.MakeFormRequest("/subjects/add", tt.form))

			if tt.expectedError == "" {
				testutil.AssertRedirect(t, w, "/subjects")
				return
			}
			testutil.AssertStatus(t, w, http.StatusOK)
			testutil.AssertBodyContains(t, w, tt.expectedError)
		})
	}

	if got := testutil.CountRows(t, db, "subjects"); got != 2 {
		t.Errorf("Expected 2 subjects, got %d", got)
	}
}

func TestSubjectEdit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mathID := testutil.CreateTestSubject(t, db, "Math")
	testutil.CreateTestSubject(t, db, "Art")
	handler := NewSubjectHandler(db, nil)

	t.Run("form for missing subject redirects", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/subjects/edit/999", nil)
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()
		handler.EditForm(w, req)
		testutil.AssertRedirect(t, w, "/subjects")
	})

	t.Run("duplicate name re-renders", func(t *testing.T) {
		req := testutil.MakeFormRequest("/subjects/edit/1", url.Values{"name": {"Art"}})
		req.SetPathValue("id", formatID(mathID))
		w := httptest.NewRecorder()
		handler.Edit(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertBodyContains(t, w, "Subject already exists")
	})

	t.Run("rename", func(t *testing.T) {
		req := testutil.MakeFormRequest("/subjects/edit/1", url.Values{"name": {"Mathematics"}})
		req.SetPathValue("id", formatID(mathID))
		w := httptest.NewRecorder()
		handler.Edit(w, req)
		testutil.AssertRedirect(t, w, "/subjects")
	})

	var name string
	db.QueryRow("SELECT name FROM subjects WHERE id = $1", mathID).Scan(&name)
	if name != "Mathematics" {
		t.Errorf("Expected 'Mathematics', got '%s'", name)
	}
}

func TestSubjectDelete_CascadesResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	alice := testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")
	bob := testutil.CreateTestStudent(t, db, "Bob", "bob@example.com")
	mathID := testutil.CreateTestSubject(t, db, "Math")
	artID := testutil.CreateTestSubject(t, db, "Art")
	testutil.CreateTestResult(t, db, alice, mathID, 80)
	testutil.CreateTestResult(t, db, bob, mathID, 70)
	testutil.CreateTestResult(t, db, bob, artID, 60)

	handler := NewSubjectHandler(db, nil)

	req := httptest.NewRequest("POST", "/subjects/delete/1", nil)
	req.SetPathValue("id", formatID(mathID))
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertRedirect(t, w, "/subjects")
	if got := testutil.CountRows(t, db, "subjects"); got != 1 {
		t.Errorf("Expected 1 subject, got %d", got)
	}
	if got := testutil.CountRows(t, db, "results"); got != 1 {
		t.Errorf("Expected 1 result, got %d", got)
	}
}
