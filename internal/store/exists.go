package store

import "fmt"

// Identifiers are interpolated into SQL, so lookups are restricted to this
// fixed table/column set. Values always travel as bound parameters.
var existsAllowList = map[string]map[string]bool{
	"topics":   {"slug": true},
	"users":    {"username": true},
	"articles": {"article_id": true},
	"comments": {"comment_id": true},
}

func checkIdentifier(table, column string) error {
	columns, ok := existsAllowList[table]
	if !ok {
		return fmt.Errorf("exists: table %q not in allow-list", table)
	}
	if !columns[column] {
		return fmt.Errorf("exists: column %q not in allow-list for table %q", column, table)
	}
	return nil
}

// Exists is the precondition gate used before mutations and child-resource
// lookups. Zero matching rows come back as ErrNotFound; callers only need
// the gate, never the row. A malformed value against an integer column
// surfaces as a Postgres 22P02 error and is translated downstream.
func (s *Store) Exists(table, column string, value any) error {
	if err := checkIdentifier(table, column); err != nil {
		return err
	}

	var count int64
	err := s.db.Table(table).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
