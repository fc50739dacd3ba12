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

const subjectsPath = "/subjects"

type SubjectHandler struct {
	store *store.Store
	cache *cache.Dashboard
}

func NewSubjectHandler(db *sql.DB, dash *cache.Dashboard) *SubjectHandler {
	return &SubjectHandler{store: store.New(db), cache: dash}
}

// List handles GET /subjects
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.store.ListSubjects(r.Context())
	if err != nil {
		serverError(w, "failed to list subjects", err)
		return
	}
	render(w, views.Subjects, subjects)
}

// AddForm handles GET /subjects/add
func (h *SubjectHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, views.SubjectForm, models.SubjectForm{})
}

// Add handles POST /subjects/add
func (h *SubjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	subject := models.Subject{Name: r.PostFormValue("name")}

	id, err := h.store.CreateSubject(r.Context(), subject.Name)
	if err != nil {
		render(w, views.SubjectForm, models.SubjectForm{
			Subject: subject,
			Error:   subjectError(err, "Error adding subject"),
		})
		return
	}

	slog.Info("subject created", "subject_id", id)
	h.cache.Invalidate(r.Context())
	redirect(w, r, subjectsPath)
}

// EditForm handles GET /subjects/edit/{id}
func (h *SubjectHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, subjectsPath)
		return
	}

	subject, err := h.store.GetSubject(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		redirect(w, r, subjectsPath)
		return
	}
	if err != nil {
		serverError(w, "failed to load subject", err)
		return
	}

	render(w, views.SubjectForm, models.SubjectForm{Subject: subject, IsEdit: true})
}

// Edit handles POST /subjects/edit/{id}
func (h *SubjectHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, subjectsPath)
		return
	}

	subject := models.Subject{ID: id, Name: r.PostFormValue("name")}

	err := h.store.UpdateSubject(r.Context(), id, subject.Name)
	switch {
	case err == nil:
		slog.Info("subject updated", "subject_id", id)
		h.cache.Invalidate(r.Context())
		redirect(w, r, subjectsPath)
	case errors.Is(err, store.ErrNotFound):
		redirect(w, r, subjectsPath)
	default:
		render(w, views.SubjectForm, models.SubjectForm{
			Subject: subject,
			IsEdit:  true,
			Error:   subjectError(err, "Error updating subject"),
		})
	}
}

// Delete handles POST /subjects/delete/{id}
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		deleted, err := h.store.DeleteSubject(r.Context(), id)
		if err != nil {
			slog.Error("failed to delete subject", "subject_id", id, "error", err)
		} else {
			if deleted {
				slog.Info("subject deleted", "subject_id", id)
			}
			// Orphaned results may be gone even when the row was not
			h.cache.Invalidate(r.Context())
		}
	}
	redirect(w, r, subjectsPath)
}

func subjectError(err error, generic string) string {
	switch {
	case errors.Is(err, store.ErrDuplicateSubjectName):
		return "Subject already exists"
	case errors.Is(err, store.ErrInvalidInput):
		return "Subject name is required"
	default:
		slog.Error("subject write failed", "error", err)
		return generic
	}
}
