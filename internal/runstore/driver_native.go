//go:build !cgo_sqlite

// SPDX-License-Identifier: MIT

package runstore

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

func openDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
