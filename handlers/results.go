// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/models"
	"github.com/danielhkuo/results-dashboard/store"
	"github.com/danielhkuo/results-dashboard/views"
)

const resultsPath = "/results"

// errScoreNotNumber marks a score field that did not parse as a number
var errScoreNotNumber = errors.New("score is not a number")

type ResultHandler struct {
	store *store.Store
	cache *cache.Dashboard
}

func NewResultHandler(db *sql.DB, dash *cache.Dashboard) *ResultHandler {
	return &ResultHandler{store: store.New(db), cache: dash}
}

// List handles GET /results
func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if err != nil {
		serverError(w, "failed to list results", err)
		return
	}
	render(w, views.Results, results)
}

// AddForm handles GET /results/add
func (h *ResultHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, models.ResultForm{})
}

// Add handles POST /results/add
func (h *ResultHandler) Add(w http.ResponseWriter, r *http.Request) {
	result, err := parseResultForm(r)
	if err == nil {
		var id int64
		id, err = h.store.CreateResult(r.Context(), result.StudentID, result.SubjectID, result.Score)
		if err == nil {
			slog.Info("result created", "result_id", id, "student_id", result.StudentID, "subject_id", result.SubjectID)
			h.cache.Invalidate(r.Context())
			redirect(w, r, resultsPath)
			return
		}
	}

	h.renderForm(w, r, models.ResultForm{
		Result: result,
		Score:  r.PostFormValue("score"),
		Error:  resultError(err, "Error adding result"),
	})
}

// EditForm handles GET /results/edit/{id}
func (h *ResultHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, resultsPath)
		return
	}

	result, err := h.store.GetResult(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		redirect(w, r, resultsPath)
		return
	}
	if err != nil {
		serverError(w, "failed to load result", err)
		return
	}

	h.renderForm(w, r, models.ResultForm{
		Result: result,
		Score:  views.FormatScore(result.Score),
		IsEdit: true,
	})
}

// Edit handles POST /results/edit/{id}
func (h *ResultHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, resultsPath)
		return
	}

	result, err := parseResultForm(r)
	result.ID = id
	if err == nil {
		err = h.store.UpdateResult(r.Context(), id, result.StudentID, result.SubjectID, result.Score)
		if err == nil {
			slog.Info("result updated", "result_id", id)
			h.cache.Invalidate(r.Context())
			redirect(w, r, resultsPath)
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			redirect(w, r, resultsPath)
			return
		}
	}

	h.renderForm(w, r, models.ResultForm{
		Result: result,
		Score:  r.PostFormValue("score"),
		IsEdit: true,
		Error:  resultError(err, "Error updating result"),
	})
}

// Delete handles POST /results/delete/{id}
func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		deleted, err := h.store.DeleteResult(r.Context(), id)
		if err != nil {
			slog.Error("failed to delete result", "result_id", id, "error", err)
		} else {
			if deleted {
				slog.Info("result deleted", "result_id", id)
			}
			h.cache.Invalidate(r.Context())
		}
	}
	redirect(w, r, resultsPath)
}

// renderForm fills in the student and subject options and renders the form
func (h *ResultHandler) renderForm(w http.ResponseWriter, r *http.Request, form models.ResultForm) {
	if err := h.loadOptions(r.Context(), &form); err != nil {
		serverError(w, "failed to load result form options", err)
		return
	}
	render(w, views.ResultForm, form)
}

func (h *ResultHandler) loadOptions(ctx context.Context, form *models.ResultForm) error {
	var err error
	if form.Students, err = h.store.ListStudents(ctx); err != nil {
		return err
	}
	if form.Subjects, err = h.store.ListSubjects(ctx); err != nil {
		return err
	}
	return nil
}

// parseResultForm reads student_id, subject_id and score. Whatever parsed
// is returned even on error so the form can be re-rendered with it.
func parseResultForm(r *http.Request) (models.Result, error) {
	var result models.Result
	var err error

	if result.StudentID, err = strconv.ParseInt(r.PostFormValue("student_id"), 10, 64); err != nil {
		return result, fmt.Errorf("invalid student_id: %w", store.ErrInvalidInput)
	}
	if result.SubjectID, err = strconv.ParseInt(r.PostFormValue("subject_id"), 10, 64); err != nil {
		return result, fmt.Errorf("invalid subject_id: %w", store.ErrInvalidInput)
	}
	result.Score, err = strconv.ParseFloat(strings.TrimSpace(r.PostFormValue("score")), 64)
	if err != nil || math.IsNaN(result.Score) || math.IsInf(result.Score, 0) {
		result.Score = 0
		return result, errScoreNotNumber
	}
	return result, nil
}

func resultError(err error, generic string) string {
	switch {
	case errors.Is(err, errScoreNotNumber):
		return "Score must be a number"
	case errors.Is(err, store.ErrInvalidInput):
		return generic
	default:
		slog.Error("result write failed", "error", err)
		return generic
	}
}
