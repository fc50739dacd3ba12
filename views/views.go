// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by Render
const (
	Dashboard   = "dashboard"
	Students    = "students"
	StudentForm = "student_form"
	Subjects    = "subjects"
	SubjectForm = "subject_form"
	Results     = "results"
	ResultForm  = "result_form"
)

var pageNames = []string{
	Dashboard, Students, StudentForm,
	Subjects, SubjectForm,
	Results, ResultForm,
}

// Funcs are available to every template
var Funcs = template.FuncMap{
	"score": FormatScore,
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"ordinal": humanize.Ordinal,
	"inc": func(i int) int {
		return i + 1
	},
}

// Each page is parsed together with the layout into its own set, since
// every page defines the same "title" and "content" blocks.
var pages = mustParse()

func mustParse() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t := template.Must(template.New(name).Funcs(Funcs).ParseFS(files,
			"templates/layout.html",
			"templates/"+name+".html",
		))
		parsed[name] = t
	}
	return parsed
}

// FormatScore renders a score with two decimals
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Render executes page into w. Output is buffered so a template error
// never leaves a half-written page.
func Render(w io.Writer, page string, data any) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
