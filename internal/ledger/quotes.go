package ledger

import (
	"database/sql"
	"fmt"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdate"
)

// QuoteIter streams (date, closing price) pairs for one security in
// ascending date order. A fresh pass is started by calling Session.Quotes
// again.
type QuoteIter struct {
	rows *sql.Rows
	cur  models.Quote
	err  error
}

// Quotes opens a date-ordered cursor over the quote history of the security
// with the given key.
func (s *Session) Quotes(securityKey int64) (*QuoteIter, error) {
	rows, err := s.conn.Query(`
		SELECT zquotedate, zclosingprice
		FROM zsecurityquote
		WHERE zsecurity = ?
		ORDER BY zquotedate`, securityKey)
	if err != nil {
		return nil, fmt.Errorf("querying quotes for security %d: %w", securityKey, err)
	}
	return &QuoteIter{rows: rows}, nil
}

// Next advances to the next quote. It returns false when the cursor is
// exhausted or an error occurred; check Err afterwards.
func (it *QuoteIter) Next() bool {
	if it.err != nil || !it.rows.Next() {
		if it.err == nil {
			it.err = it.rows.Err()
		}
		it.rows.Close()
		return false
	}
	var quoteDate sql.NullFloat64
	var price sql.NullFloat64
	if err := it.rows.Scan(&quoteDate, &price); err != nil {
		it.err = fmt.Errorf("scanning quote row: %w", err)
		it.rows.Close()
		return false
	}
	it.cur = models.Quote{
		Date:  qdate.Decode(int64(quoteDate.Float64)),
		Price: price.Float64,
	}
	return true
}

// Quote returns the current record. Valid only after Next returned true.
func (it *QuoteIter) Quote() models.Quote {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *QuoteIter) Err() error {
	return it.err
}

// Close releases the cursor. Safe to call more than once.
func (it *QuoteIter) Close() error {
	return it.rows.Close()
}
