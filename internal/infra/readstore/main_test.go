//go:build unit

package readstore_test

import "car-rental/internal/infra/query"

// unusedDB satisfies query.DBTX for stores whose SQL is served by the query
// mocks. Any direct call panics on the nil interface.
type unusedDB struct{ query.DBTX }
