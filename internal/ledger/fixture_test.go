package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"

	"fjacquet/quicken-query/internal/qdate"

	"github.com/stretchr/testify/require"
)

// fixture builds a throwaway data file with the Quicken table subset the
// query layer reads. Writes happen through a separate connection; sessions
// under test open the file read-only afterwards.
type fixture struct {
	t    *testing.T
	db   *sql.DB
	path string
}

const fixtureSchema = `
	CREATE TABLE zaccount (
		z_pk INTEGER PRIMARY KEY,
		zname TEXT,
		ztypename TEXT
	);
	CREATE TABLE ztag (
		z_pk INTEGER PRIMARY KEY,
		ztype INTEGER,
		zname TEXT,
		zparentcategory INTEGER
	);
	CREATE TABLE zuserpayee (
		z_pk INTEGER PRIMARY KEY,
		zname TEXT
	);
	CREATE TABLE zsecurity (
		z_pk INTEGER PRIMARY KEY,
		zname TEXT,
		ztype TEXT,
		zticker TEXT
	);
	CREATE TABLE zsecurityquote (
		z_pk INTEGER PRIMARY KEY,
		zsecurity INTEGER,
		zquotedate INTEGER,
		zclosingprice REAL
	);
	CREATE TABLE zposition (
		z_pk INTEGER PRIMARY KEY,
		zsecurity INTEGER
	);
	CREATE TABLE ztransaction (
		z_pk INTEGER PRIMARY KEY,
		zaccount INTEGER,
		zentereddate INTEGER,
		zuserpayee INTEGER,
		zposition INTEGER,
		zunits REAL,
		znote TEXT
	);
	CREATE TABLE zcashflowtransactionentry (
		z_pk INTEGER PRIMARY KEY,
		zparent INTEGER,
		zcategorytag INTEGER,
		zamount REAL,
		znote TEXT
	);
`

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.sqlite3")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &fixture{t: t, db: db, path: path}
}

func (f *fixture) exec(query string, args ...interface{}) {
	f.t.Helper()
	_, err := f.db.Exec(query, args...)
	require.NoError(f.t, err)
}

func (f *fixture) addAccount(key int64, name, typeName string) {
	f.exec(`INSERT INTO zaccount (z_pk, zname, ztypename) VALUES (?, ?, ?)`, key, name, typeName)
}

// addCategory inserts a category row; parent may be nil for roots.
func (f *fixture) addCategory(key, typ int64, name string, parent interface{}) {
	f.exec(`INSERT INTO ztag (z_pk, ztype, zname, zparentcategory) VALUES (?, ?, ?, ?)`,
		key, typ, name, parent)
}

func (f *fixture) addPayee(key int64, name string) {
	f.exec(`INSERT INTO zuserpayee (z_pk, zname) VALUES (?, ?)`, key, name)
}

// addSecurity inserts a security row; ticker may be nil.
func (f *fixture) addSecurity(key int64, name, typ string, ticker interface{}) {
	f.exec(`INSERT INTO zsecurity (z_pk, zname, ztype, zticker) VALUES (?, ?, ?, ?)`,
		key, name, typ, ticker)
}

func (f *fixture) addQuote(securityKey int64, date string, price float64) {
	qsec, err := qdate.Encode(date)
	require.NoError(f.t, err)
	f.exec(`INSERT INTO zsecurityquote (zsecurity, zquotedate, zclosingprice) VALUES (?, ?, ?)`,
		securityKey, qsec, price)
}

func (f *fixture) addPosition(key, securityKey int64) {
	f.exec(`INSERT INTO zposition (z_pk, zsecurity) VALUES (?, ?)`, key, securityKey)
}

// addTransaction inserts a parent transaction row; payee, position, units
// and note may be nil.
func (f *fixture) addTransaction(key, accountKey int64, date string, payee, position, units, note interface{}) {
	qsec, err := qdate.Encode(date)
	require.NoError(f.t, err)
	f.exec(`INSERT INTO ztransaction (z_pk, zaccount, zentereddate, zuserpayee, zposition, zunits, znote)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		key, accountKey, qsec, payee, position, units, note)
}

// addSplit inserts a split row; category, amount and note may be nil. A nil
// amount models the parent rows the engine must discard.
func (f *fixture) addSplit(parentKey int64, category, amount, note interface{}) {
	f.exec(`INSERT INTO zcashflowtransactionentry (zparent, zcategorytag, zamount, znote)
		VALUES (?, ?, ?, ?)`,
		parentKey, category, amount, note)
}

// open opens a read-only session over the fixture file.
func (f *fixture) open() (*Session, error) {
	return Open(f.path)
}

func (f *fixture) mustOpen() *Session {
	f.t.Helper()
	s, err := f.open()
	require.NoError(f.t, err)
	f.t.Cleanup(func() { s.Close() })
	return s
}

// seedReference populates a small reference data set shared by several tests:
// two accounts, a three-level category tree, payees and one security.
func (f *fixture) seedReference() {
	f.addAccount(1, "Checking", "Bank")
	f.addAccount(2, "Brokerage", "Investment")

	f.addCategory(10, 0, "Auto", nil)
	f.addCategory(11, 0, "Fuel", int64(10))
	f.addCategory(12, 0, "Investments", nil)
	f.addCategory(13, 0, "Stock Split", int64(12))
	f.addCategory(14, 1, "Salary", nil)

	f.addPayee(20, "Acme Fuel")
	f.addPayee(21, "Initech")

	f.addSecurity(30, "Apple Inc", "Stock", "AAPL")
	f.addPosition(40, 30)
}
