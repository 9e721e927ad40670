// Package queries implements the read side of the order management
// application. Query handlers hold a GORM database connection and issue
// raw SQL, bypassing the domain aggregates and the unit of work that the
// write side uses.
package queries
