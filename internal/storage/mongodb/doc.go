// Package mongodb implements the storage interfaces on MongoDB.
//
// Each repository owns its bson document shape and converts at the boundary,
// keeping the domain types free of storage tags. Uniqueness rules live in
// indexes, not in application checks: duplicate-key errors are mapped to the
// domain conflict sentinels.
package mongodb
