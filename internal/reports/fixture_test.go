package reports

import (
	"database/sql"
	"path/filepath"
	"testing"

	"fjacquet/quicken-query/internal/ledger"
	"fjacquet/quicken-query/internal/qdate"

	"github.com/stretchr/testify/require"
)

// fixture builds a minimal Quicken data file for report tests.
type fixture struct {
	t  *testing.T
	db *sql.DB

	path    string
	nextTxn int64
}

const fixtureSchema = `
	CREATE TABLE zaccount (z_pk INTEGER PRIMARY KEY, zname TEXT, ztypename TEXT);
	CREATE TABLE ztag (z_pk INTEGER PRIMARY KEY, ztype INTEGER, zname TEXT, zparentcategory INTEGER);
	CREATE TABLE zuserpayee (z_pk INTEGER PRIMARY KEY, zname TEXT);
	CREATE TABLE zsecurity (z_pk INTEGER PRIMARY KEY, zname TEXT, ztype TEXT, zticker TEXT);
	CREATE TABLE zsecurityquote (z_pk INTEGER PRIMARY KEY, zsecurity INTEGER, zquotedate INTEGER, zclosingprice REAL);
	CREATE TABLE zposition (z_pk INTEGER PRIMARY KEY, zsecurity INTEGER);
	CREATE TABLE ztransaction (z_pk INTEGER PRIMARY KEY, zaccount INTEGER, zentereddate INTEGER,
		zuserpayee INTEGER, zposition INTEGER, zunits REAL, znote TEXT);
	CREATE TABLE zcashflowtransactionentry (z_pk INTEGER PRIMARY KEY, zparent INTEGER,
		zcategorytag INTEGER, zamount REAL, znote TEXT);
`

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.sqlite3")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{t: t, db: db, path: path, nextTxn: 100}

	// Reference rows shared by all report scenarios.
	f.exec(`INSERT INTO zaccount (z_pk, zname, ztypename) VALUES
		(1, 'Checking', 'Bank'), (2, 'Brokerage', 'Investment')`)
	f.exec(`INSERT INTO ztag (z_pk, ztype, zname, zparentcategory) VALUES
		(10, 0, 'Salary', NULL),
		(11, 0, 'Investments', NULL),
		(12, 0, 'Stock Split', 11),
		(13, 0, 'Buy', 11)`)
	f.exec(`INSERT INTO zsecurity (z_pk, zname, ztype, zticker) VALUES
		(30, 'Security X', 'Stock', 'X')`)
	f.exec(`INSERT INTO zposition (z_pk, zsecurity) VALUES (40, 30)`)

	return f
}

func (f *fixture) exec(query string, args ...interface{}) {
	f.t.Helper()
	_, err := f.db.Exec(query, args...)
	require.NoError(f.t, err)
}

func (f *fixture) addQuote(date string, price float64) {
	qsec, err := qdate.Encode(date)
	require.NoError(f.t, err)
	f.exec(`INSERT INTO zsecurityquote (zsecurity, zquotedate, zclosingprice) VALUES (30, ?, ?)`,
		qsec, price)
}

// addCash records a cash-only transaction in the given account under the
// Salary category.
func (f *fixture) addCash(accountKey int64, date string, amount float64) {
	f.addRecord(accountKey, date, amount, 10, nil, nil)
}

// addTrade records a transaction carrying the Security X leg.
func (f *fixture) addTrade(accountKey int64, date string, amount, shares float64, categoryKey int64) {
	f.addRecord(accountKey, date, amount, categoryKey, int64(40), shares)
}

func (f *fixture) addRecord(accountKey int64, date string, amount float64, categoryKey int64, position, units interface{}) {
	f.t.Helper()
	qsec, err := qdate.Encode(date)
	require.NoError(f.t, err)
	key := f.nextTxn
	f.nextTxn++
	f.exec(`INSERT INTO ztransaction (z_pk, zaccount, zentereddate, zuserpayee, zposition, zunits, znote)
		VALUES (?, ?, ?, NULL, ?, ?, NULL)`, key, accountKey, qsec, position, units)
	f.exec(`INSERT INTO zcashflowtransactionentry (zparent, zcategorytag, zamount, znote)
		VALUES (?, ?, ?, NULL)`, key, categoryKey, amount)
}

func (f *fixture) open() *ledger.Session {
	f.t.Helper()
	s, err := ledger.Open(f.path)
	require.NoError(f.t, err)
	f.t.Cleanup(func() { s.Close() })
	return s
}
