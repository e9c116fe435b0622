package db

import (
	"strings"

	"github.com/go-sql-driver/mysql"
)

// IsDupKeyErr reports whether err is a unique-constraint violation, for
// either backing driver.
func IsDupKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	// mattn/go-sqlite3 reports "UNIQUE constraint failed: ..."
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
