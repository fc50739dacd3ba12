// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer for students, subjects and results.

	s := store.New(conn)
	id, err := s.CreateStudent(ctx, "Alice Johnson", "alice@example.com")

Every method takes a context and borrows a connection from the injected
pool for the duration of the call.

# Operations

Each entity has List, Get, Create, Update and Delete. Lists are ordered
by name; results are ordered by student name then subject name.

# Errors

	ErrNotFound              Get/Update on a missing id
	ErrDuplicateEmail        Create/Update student with a taken email
	ErrDuplicateSubjectName  Create/Update subject with a taken name
	ErrInvalidInput          blank text fields, non-finite scores, or a
	                         result write rejected by the database

Other failures are returned wrapped.

# Cascading Deletes

DeleteStudent and DeleteSubject remove the dependent results and the
parent row inside one transaction. Delete methods report whether the
target row existed.

# Statistics

	StudentStatistics  average and count per student, best first
	SubjectStatistics  average and count per subject, best first
	OverallStatistics  global average, max, min and counts
	Dashboard          all three
*/
package store
