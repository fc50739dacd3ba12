// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/models"
	"github.com/danielhkuo/results-dashboard/store"
	"github.com/danielhkuo/results-dashboard/views"
)

const studentsPath = "/students"

type StudentHandler struct {
	store *store.Store
	cache *cache.Dashboard
}

func NewStudentHandler(db *sql.DB, dash *cache.Dashboard) *StudentHandler {
	return &StudentHandler{store: store.New(db), cache: dash}
}

// List handles GET /students
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.store.ListStudents(r.Context())
	if err != nil {
		serverError(w, "failed to list students", err)
		return
	}
	render(w, views.Students, students)
}

// AddForm handles GET /students/add
func (h *StudentHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, views.StudentForm, models.StudentForm{})
}

// Add handles POST /students/add
func (h *StudentHandler) Add(w http.ResponseWriter, r *http.Request) {
	student := models.Student{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	id, err := h.store.CreateStudent(r.Context(), student.Name, student.Email)
	if err != nil {
		render(w, views.StudentForm, models.StudentForm{
			Student: student,
			Error:   studentError(err, "Error adding student"),
		})
		return
	}

	slog.Info("student created", "student_id", id)
	h.cache.Invalidate(r.Context())
	redirect(w, r, studentsPath)
}

// EditForm handles GET /students/edit/{id}
func (h *StudentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, studentsPath)
		return
	}

	student, err := h.store.GetStudent(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		redirect(w, r, studentsPath)
		return
	}
	if err != nil {
		serverError(w, "failed to load student", err)
		return
	}

	render(w, views.StudentForm, models.StudentForm{Student: student, IsEdit: true})
}

// Edit handles POST /students/edit/{id}
func (h *StudentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, studentsPath)
		return
	}

	student := models.Student{
		ID:    id,
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	err := h.store.UpdateStudent(r.Context(), id, student.Name, student.Email)
	switch {
	case err == nil:
		slog.Info("student updated", "student_id", id)
		h.cache.Invalidate(r.Context())
		redirect(w, r, studentsPath)
	case errors.Is(err, store.ErrNotFound):
		redirect(w, r, studentsPath)
	default:
		render(w, views.StudentForm, models.StudentForm{
			Student: student,
			IsEdit:  true,
			Error:   studentError(err, "Error updating student"),
		})
	}
}

// Delete handles POST /students/delete/{id}. The student's results go
// with it. Always redirects, even when nothing was deleted.
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		deleted, err := h.store.DeleteStudent(r.Context(), id)
		if err != nil {
			slog.Error("failed to delete student", "student_id", id, "error", err)
		} else {
			if deleted {
				slog.Info("student deleted", "student_id", id)
			}
			// Orphaned results may be gone even when the row was not
			h.cache.Invalidate(r.Context())
		}
	}
	redirect(w, r, studentsPath)
}

func studentError(err error, generic string) string {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, store.ErrInvalidInput):
		return "Name and email are required"
	default:
		slog.Error("student write failed", "error", err)
		return generic
	}
}
