// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and demo data seeding.

# Connecting

Open selects the driver from the dialect and pings the database:

	conn, err := db.Open(ctx, db.DialectSQLite, "student_results.db")

SQLite uses modernc.org/sqlite (pure Go) with a busy timeout and WAL
journal. Postgres uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	students (id, name, email UNIQUE)
	subjects (id, name UNIQUE)
	results  (id, student_id, subject_id, score NOT NULL)

# Relationships

	students 1──* results
	subjects 1──* results

Foreign keys are not enforced by the database. The store deletes
dependent results before deleting a student or subject.

# Seeding

Seed inserts 10 students, 7 subjects and one result per pair with a
random score in [50, 100], only when the students table is empty:

	seeded, err := db.Seed(ctx, conn, rng)

Bootstrap runs CreateSchema followed by Seed and returns Seed's result.

# Errors

IsUniqueViolation recognises unique constraint failures from both
drivers so callers can map them to domain errors.
*/
package db
