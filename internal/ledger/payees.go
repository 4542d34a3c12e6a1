package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/queryerror"
)

// PayeeIter streams payee rows in name order. Unlike the other reference
// entities payees are not buffered; each call to Session.Payees re-issues
// the query, which is how a fresh pass is started.
type PayeeIter struct {
	rows *sql.Rows
	cur  models.Payee
	err  error
}

// Payees opens a streaming cursor over all payees, ordered by name.
func (s *Session) Payees() (*PayeeIter, error) {
	rows, err := s.conn.Query(`SELECT z_pk, zname FROM zuserpayee ORDER BY zname`)
	if err != nil {
		return nil, fmt.Errorf("querying payees: %w", err)
	}
	return &PayeeIter{rows: rows}, nil
}

// Next advances to the next payee. It returns false when the cursor is
// exhausted or an error occurred; check Err afterwards.
func (it *PayeeIter) Next() bool {
	if it.err != nil || !it.rows.Next() {
		if it.err == nil {
			it.err = it.rows.Err()
		}
		it.rows.Close()
		return false
	}
	var key int64
	var name sql.NullString
	if err := it.rows.Scan(&key, &name); err != nil {
		it.err = fmt.Errorf("scanning payee row: %w", err)
		it.rows.Close()
		return false
	}
	it.cur = models.Payee{Key: key, Name: name.String}
	return true
}

// Payee returns the current record. Valid only after Next returned true.
func (it *PayeeIter) Payee() models.Payee {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *PayeeIter) Err() error {
	return it.err
}

// Close releases the cursor. Safe to call more than once; abandoning an
// iteration early without Close leaks the cursor until the session closes.
func (it *PayeeIter) Close() error {
	return it.rows.Close()
}

// PayeeKeyByName resolves a payee name to its key with a direct lookup.
func (s *Session) PayeeKeyByName(name string) (int64, error) {
	var key int64
	err := s.conn.QueryRow(`SELECT z_pk FROM zuserpayee WHERE zname = ?`, name).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &queryerror.NotFoundError{Entity: "payee", Name: name}
	}
	if err != nil {
		return 0, fmt.Errorf("looking up payee %q: %w", name, err)
	}
	return key, nil
}
