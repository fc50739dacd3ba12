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

func TestStudentList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestStudent(t, db, "Bob", "bob@example.com")
	testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")

	handler := NewStudentHandler(db, nil)
	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/students", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "alice@example.com")
	testutil.AssertBodyContains(t, w, "/students/edit/")

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
}

func TestStudentAdd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewStudentHandler(db, nil)
	testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")

	tests := []struct {
		name          string
		form          url.Values
		expectedError string
		expectedRows  int
	}{
		{
			name:         "valid student",
			form:         url.Values{"name": {"Bob"}, "email": {"bob@example.com"}},
			expectedRows: 2,
		},
		{
			name:          "duplicate email",
			form:          url.Values{"name": {"Other Alice"}, "email": {"alice@example.com"}},
			expectedError: "Email already exists",
			expectedRows:  1,
		},
		{
			name:          "missing email",
			form:          url.Values{"name": {"Carol"}},
			expectedError: "Name and email are required",
			expectedRows:  1,
		},
		{
			name:          "blank name",
			form:          url.Values{"name": {"   "}, "email": {"carol@example.com"}},
			expectedError: "Name and email are required",
			expectedRows:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep each case independent of the previous one
			db.Exec("DELETE FROM students WHERE email <> 'alice@example.com'")

			w := httptest.NewRecorder()
			handler.Add(w, testutil.MakeFormRequest("/students/add", tt.form))

			if tt.expectedError == "" {
				testutil.AssertRedirect(t, w, "/students")
			} else {
				testutil.AssertStatus(t, w, http.StatusOK)
				testutil.AssertBodyContains(t, w, tt.expectedError)
			}

			if got := testutil.CountRows(t, db, "students"); got != tt.expectedRows {
				t.Errorf("Expected %d students, got %d", tt.expectedRows, got)
			}
		})
	}
}

func TestStudentAdd_RerenderKeepsInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")
	handler := NewStudentHandler(db, nil)

	w := httptest.NewRecorder()
	handler.Add(w, testutil.MakeFormRequest("/students/add", url.Values{
		"name":  {"Alicia"},
		"email": {"alice@example.com"},
	}))

	testutil.AssertBodyContains(t, w, `value="Alicia"`)
	testutil.AssertBodyContains(t, w, "Add Student")
}

func TestStudentEditForm(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	id := testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")
	handler := NewStudentHandler(db, nil)

	t.Run("existing student", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/students/edit/1", nil)
		req.SetPathValue("id", formatID(id))
		w := httptest.NewRecorder()

		handler.EditForm(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertBodyContains(t, w, "Edit Student")
		testutil.AssertBodyContains(t, w, `value="alice@example.com"`)
	})

	for _, raw := range []string{"999", "abc", "-1", "0"} {
		t.Run("redirects for "+raw, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/students/edit/"+raw, nil)
			req.SetPathValue("id", raw)
			w := httptest.NewRecorder()

			handler.EditForm(w, req)

			testutil.AssertRedirect(t, w, "/students")
		})
	}
}

func TestStudentEdit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	alice := testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")
	testutil.CreateTestStudent(t, db, "Bob", "bob@example.com")
	handler := NewStudentHandler(db, nil)

	tests := []struct {
		name          string
		id            string
		form          url.Values
		expectedError string
		redirect      bool
	}{
		{
			name:     "valid update",
			id:       formatID(alice),
			form:     url.Values{"name": {"Alice Smith"}, "email": {"alice.smith@example.com"}},
			redirect: true,
		},
		{
			name:          "email taken by another student",
			id:            formatID(alice),
			form:          url.Values{"name": {"Alice"}, "email": {"bob@example.com"}},
			expectedError: "Email already exists",
		},
		{
			name:     "missing student redirects silently",
			id:       "999",
			form:     url.Values{"name": {"Ghost"}, "email": {"ghost@example.com"}},
			redirect: true,
		},
		{
			name:     "unparsable id",
			id:       "abc",
			form:     url.Values{"name": {"Ghost"}, "email": {"ghost@example.com"}},
			redirect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest("/students/edit/"+tt.id, tt.form)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Edit(w, req)

			if tt.redirect {
				testutil.AssertRedirect(t, w, "/students")
			} else {
				testutil.AssertStatus(t, w, http.StatusOK)
				testutil.AssertBodyContains(t, w, tt.expectedError)
				testutil.AssertBodyContains(t, w, "Edit Student")
			}
		})
	}

	var name, email string
	db.QueryRow("SELECT name, email FROM students WHERE id = $1", alice).Scan(&name, &email)
	if name != "Alice Smith" || email != "alice.smith@example.com" {
		t.Errorf("Expected updated student, got %s <%s>", name, email)
	}
	if got := testutil.CountRows(t, db, "students"); got != 2 {
		t.Errorf("Expected 2 students, got %d", got)
	}
}

func TestStudentDelete_CascadesResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	alice := testutil.CreateTestStudent(t, db, "Alice", "alice@example.com")
	bob := testutil.CreateTestStudent(t, db, "Bob", "bob@example.com")
	mathID := testutil.CreateTestSubject(t, db, "Math")
	art := testutil.CreateTestSubject(t, db, "Art")
	testutil.CreateTestResult(t, db, alice, mathID, 80)
	testutil.CreateTestResult(t, db, alice, art, 90)
	testutil.CreateTestResult(t, db, bob, mathID, 60)

	handler := NewStudentHandler(db, nil)

	req := httptest.NewRequest("POST", "/students/delete/1", nil)
	req.SetPathValue("id", formatID(alice))
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertRedirect(t, w, "/students")
	if got := testutil.CountRows(t, db, "students"); got != 1 {
		t.Errorf("Expected 1 student, got %d", got)
	}
	if got := testutil.CountRows(t, db, "results"); got != 1 {
		t.Errorf("Expected 1 result, got %d", got)
	}
}

func TestStudentDelete_MissingRedirects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewStudentHandler(db, nil)

	for _, raw := range []string{"999", "abc"} {
		req := httptest.NewRequest("POST", "/students/delete/"+raw, nil)
		req.SetPathValue("id", raw)
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		testutil.AssertRedirect(t, w, "/students")
	}
}
