// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the results dashboard.

# Handler Types

Each handler is a struct built from the shared database pool and the
optional dashboard cache:

  - DashboardHandler: Dashboard page and JSON statistics
  - StudentHandler: Student list and add/edit/delete
  - SubjectHandler: Subject list and add/edit/delete
  - ResultHandler: Result list and add/edit/delete

	studentHandler := handlers.NewStudentHandler(db, dash)

A nil *cache.Dashboard is valid and disables caching.

# Forms

Record pages follow the same flow:

	GET  /students              → List
	GET  /students/add          → AddForm
	POST /students/add          → Add (303 to /students, or form with error)
	GET  /students/edit/{id}    → EditForm
	POST /students/edit/{id}    → Edit
	POST /students/delete/{id}  → Delete (always 303 to /students)

A missing or malformed id on edit or delete redirects back to the list
without an error. Failed writes re-render the form with a fixed message
such as "Email already exists" or "Subject already exists". Successful
writes invalidate the cached dashboard.

# Dashboard

GET / creates the schema and seeds demo data when the students table is
empty, then renders the statistics. GET /api/stats returns the same
statistics as JSON.
*/
package handlers
