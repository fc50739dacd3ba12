// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/danielhkuo/results-dashboard/models"
	"github.com/danielhkuo/results-dashboard/views"
)

var heading = color.New(color.FgYellow, color.Bold)

// Write prints the dashboard statistics as terminal tables
func Write(w io.Writer, d models.Dashboard) {
	heading.Fprintln(w, "\nOverall")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Students", "Results", "Average", "Highest", "Lowest"})
	table.Append([]string{
		humanize.Comma(int64(d.Overall.TotalStudents)),
		humanize.Comma(int64(d.Overall.TotalResults)),
		views.FormatScore(d.Overall.AverageScore),
		views.FormatScore(d.Overall.HighestScore),
		views.FormatScore(d.Overall.LowestScore),
	})
	table.Render()

	heading.Fprintln(w, "\nStudents by Average Score")
	if len(d.Students) == 0 {
		color.New(color.FgRed).Fprintln(w, "No results recorded yet.")
	} else {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Rank", "Student", "Average", "Subjects"})
		for i, s := range d.Students {
			table.Append([]string{
				humanize.Ordinal(i + 1),
				s.Name,
				views.FormatScore(s.AverageScore),
				strconv.Itoa(s.SubjectsCount),
			})
		}
		table.Render()
	}

	heading.Fprintln(w, "\nSubjects by Average Score")
	if len(d.Subjects) == 0 {
		color.New(color.FgRed).Fprintln(w, "No results recorded yet.")
	} else {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Rank", "Subject", "Average", "Students"})
		for i, s := range d.Subjects {
			table.Append([]string{
				humanize.Ordinal(i + 1),
				s.Name,
				views.FormatScore(s.AverageScore),
				strconv.Itoa(s.StudentCount),
			})
		}
		table.Render()
	}
}
