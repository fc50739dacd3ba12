// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the record, statistics and page types shared by
the store, handlers and views.

# Domain Types

One struct per table:

  - Student: id, name, email (unique)
  - Subject: id, name (unique)
  - Result: id, student_id, subject_id, score

Result also carries StudentName and SubjectName when loaded through
the joined listing query.

# Statistics Types

Read-only aggregates produced by the store:

  - StudentStats: average score and result count per student
  - SubjectStats: average score and result count per subject
  - OverallStats: global average, extrema and row counts
  - Dashboard: all of the above, served by GET / and GET /api/stats

# Form Types

Page state for the add/edit forms. Error holds the message shown when
a submission is rejected:

  - StudentForm
  - SubjectForm
  - ResultForm (includes the student and subject option lists)
*/
package models
