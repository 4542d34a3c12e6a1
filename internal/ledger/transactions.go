package ledger

import (
	"database/sql"
	"fmt"
	"strings"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdate"
	"fjacquet/quicken-query/internal/queryerror"
)

// transactionQuery joins each transaction to its splits, account, payee,
// position and security, ordered by transaction date ascending. Splits are
// the unit of output; a transaction row without a split amount is not a real
// split and is skipped during iteration.
const transactionQuery = `
	SELECT
		ztransaction.z_pk,
		ztransaction.zentereddate,
		ztransaction.zaccount,
		zaccount.zname,
		ztransaction.zuserpayee,
		zuserpayee.zname,
		zcashflowtransactionentry.zcategorytag,
		zcashflowtransactionentry.zamount,
		ztransaction.zunits,
		zposition.zsecurity,
		zsecurity.zname,
		zsecurity.zticker,
		ztransaction.znote
	FROM ztransaction
	LEFT JOIN zcashflowtransactionentry
		ON ztransaction.z_pk = zcashflowtransactionentry.zparent
	LEFT JOIN zaccount
		ON zaccount.z_pk = ztransaction.zaccount
	LEFT JOIN zuserpayee
		ON zuserpayee.z_pk = ztransaction.zuserpayee
	LEFT JOIN zposition
		ON zposition.z_pk = ztransaction.zposition
	LEFT JOIN zsecurity
		ON zsecurity.z_pk = zposition.zsecurity
	%s
	ORDER BY ztransaction.zentereddate ASC`

// TransactionIter is a lazily-fetched, date-ordered stream of denormalized
// transaction-split records. The restriction state was snapshotted when the
// iterator was constructed; later session mutations do not affect it.
type TransactionIter struct {
	s        *Session
	rows     *sql.Rows
	cur      models.TransactionSplit
	err      error
	dateFrom string
	dateTo   string
}

// Transactions constructs a transaction-split stream under the session's
// current restriction state. Restricted names are resolved to keys here;
// a name that fails to resolve aborts construction with a NotFoundError.
func (s *Session) Transactions() (*TransactionIter, error) {
	where, args, err := s.buildRestriction()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(transactionQuery, where)
	log.WithField("clauses", strings.TrimSpace(where)).Debug("Assembled transaction query")

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}

	return &TransactionIter{
		s:        s,
		rows:     rows,
		dateFrom: s.restrict.DateFrom,
		dateTo:   s.restrict.DateTo,
	}, nil
}

// buildRestriction assembles the WHERE clause for the active restriction
// state: keys within one group are OR-combined, groups are AND-combined.
// Each group filters on its own key column.
func (s *Session) buildRestriction() (where string, args []interface{}, err error) {
	var clauses []string

	appendGroup := func(column string, keys []int64) {
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = column + " = ?"
			args = append(args, key)
		}
		clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
	}

	if len(s.restrict.Accounts) > 0 {
		keys, err := resolveNames(s.restrict.Accounts, s.AccountKeyByName)
		if err != nil {
			return "", nil, err
		}
		appendGroup("ztransaction.zaccount", keys)
	}
	if len(s.restrict.Categories) > 0 {
		keys, err := resolveNames(s.restrict.Categories, s.CategoryKeyByPath)
		if err != nil {
			return "", nil, err
		}
		appendGroup("zcashflowtransactionentry.zcategorytag", keys)
	}
	if len(s.restrict.Payees) > 0 {
		keys, err := resolveNames(s.restrict.Payees, s.PayeeKeyByName)
		if err != nil {
			return "", nil, err
		}
		appendGroup("ztransaction.zuserpayee", keys)
	}
	if len(s.restrict.Securities) > 0 {
		keys, err := resolveNames(s.restrict.Securities, s.SecurityKeyByName)
		if err != nil {
			return "", nil, err
		}
		appendGroup("zposition.zsecurity", keys)
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args, nil
}

func resolveNames(names []string, lookup func(string) (int64, error)) ([]int64, error) {
	keys := make([]int64, len(names))
	for i, name := range names {
		key, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("resolving restriction: %w", err)
		}
		keys[i] = key
	}
	return keys, nil
}

// Next advances to the next split record. Rows without a split amount are
// skipped, as are records outside the date window. Returns false on
// exhaustion or error; check Err afterwards.
func (it *TransactionIter) Next() bool {
	if it.err != nil {
		return false
	}
	for it.rows.Next() {
		var (
			key       int64
			entered   sql.NullFloat64
			acctKey   sql.NullInt64
			acctName  sql.NullString
			payeeKey  sql.NullInt64
			payeeName sql.NullString
			catKey    sql.NullInt64
			amount    sql.NullFloat64
			units     sql.NullFloat64
			secKey    sql.NullInt64
			secName   sql.NullString
			secTicker sql.NullString
			note      sql.NullString
		)
		if err := it.rows.Scan(&key, &entered, &acctKey, &acctName, &payeeKey,
			&payeeName, &catKey, &amount, &units, &secKey, &secName,
			&secTicker, &note); err != nil {
			it.err = fmt.Errorf("scanning transaction row: %w", err)
			it.rows.Close()
			return false
		}

		// A parent row with a null split amount is not a real split.
		if !amount.Valid {
			continue
		}

		rec := models.TransactionSplit{
			Key:            key,
			Date:           qdate.Decode(int64(entered.Float64)),
			Amount:         amount.Float64,
			AccountKey:     acctKey.Int64,
			AccountName:    acctName.String,
			PayeeKey:       payeeKey.Int64,
			PayeeName:      payeeName.String,
			CategoryKey:    catKey.Int64,
			SecurityKey:    secKey.Int64,
			SecurityName:   secName.String,
			SecurityTicker: secTicker.String,
			SecurityShares: units.Float64,
			Note:           note.String,
		}

		if catKey.Valid {
			path, err := it.s.CategoryPathByKey(catKey.Int64)
			if err != nil {
				it.err = &queryerror.MalformedRowError{
					Table:  "zcashflowtransactionentry",
					Reason: fmt.Sprintf("split of transaction %d references unknown category %d", key, catKey.Int64),
					Err:    err,
				}
				it.rows.Close()
				return false
			}
			rec.CategoryPath = path
		}

		// Post-filter on the date window. String comparison is valid
		// because the canonical format is fixed-width and zero-padded.
		if it.dateFrom != "" && rec.Date < it.dateFrom {
			continue
		}
		if it.dateTo != "" && rec.Date > it.dateTo {
			continue
		}

		it.cur = rec
		return true
	}
	it.err = it.rows.Err()
	it.rows.Close()
	return false
}

// Record returns the current split record. Valid only after Next returned true.
func (it *TransactionIter) Record() models.TransactionSplit {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *TransactionIter) Err() error {
	return it.err
}

// Close releases the cursor. Safe to call more than once.
func (it *TransactionIter) Close() error {
	return it.rows.Close()
}

// Collect drains the iterator into a slice, closing it afterwards.
func (it *TransactionIter) Collect() ([]models.TransactionSplit, error) {
	defer it.Close()
	var out []models.TransactionSplit
	for it.Next() {
		out = append(out, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
