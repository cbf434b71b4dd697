// Package repository contains the metadata store abstractions.
// Implementations live in subpackages (postgres). Lookups that match no row return sql.ErrNoRows.
package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
