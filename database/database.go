package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/apex/log"
)

// ErrNotFound is returned when a targeted record does not exist.
var ErrNotFound = errors.New("record not found")

func logResult(tag string, r sql.Result, e error, checkRowsAffected bool) error {
	if e != nil {
		log.Errorf("%s: query failed: %v", tag, e)
		return e
	}
	rows, err := r.RowsAffected()
	if err != nil {
		log.Errorf("%s: failed to get status of db op: %v", tag, err)
		return err
	}
	if checkRowsAffected && rows != 1 {
		err := fmt.Errorf("%s: expected to affect 1 row, affected %d", tag, rows)
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
