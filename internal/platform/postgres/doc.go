// Package postgres implements the store interfaces on PostgreSQL via the
// pgx driver registered with database/sql.
package postgres
