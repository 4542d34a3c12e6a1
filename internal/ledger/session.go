// Package ledger provides read-only, filterable access to a Quicken-for-Mac
// data file: reference entities (accounts, categories, payees, securities),
// price quotes, and a denormalized, date-ordered transaction-split stream.
package ledger

import (
	"fmt"

	"fjacquet/quicken-query/internal/config"
	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdate"
	"fjacquet/quicken-query/internal/qdb"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Session is a read-only session against one data file. Reference snapshots
// (accounts, categories, securities) are loaded once at open; payees, quotes
// and transactions stream from cursors on demand.
//
// A Session carries the restriction state consumed by Transactions. It is
// not safe for concurrent use.
type Session struct {
	conn       *qdb.Connection
	accounts   *accountSet
	categories *categorySet
	securities *securitySet
	restrict   models.Restriction
}

// Open opens the Quicken data file at path and loads the reference snapshots.
func Open(path string) (*Session, error) {
	conn, err := qdb.Open(path)
	if err != nil {
		return nil, err
	}

	s := &Session{conn: conn}

	if s.accounts, err = loadAccounts(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	if s.categories, err = loadCategories(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if s.securities, err = loadSecurities(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("loading securities: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"accounts":   len(s.accounts.accounts),
		"categories": len(s.categories.ordered),
		"securities": len(s.securities.securities),
	}).Debug("Opened ledger session")

	return s, nil
}

// Close releases the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Path returns the data file path this session reads from.
func (s *Session) Path() string {
	return s.conn.Path()
}

// Restriction returns a copy of the current restriction state.
func (s *Session) Restriction() models.Restriction {
	return s.restrict
}

// RestrictToAccounts limits subsequent transaction queries to the named
// accounts. An empty list clears the restriction.
func (s *Session) RestrictToAccounts(names []string) {
	s.restrict.Accounts = names
}

// RestrictToCategories limits subsequent transaction queries to the given
// category paths. An empty list clears the restriction.
func (s *Session) RestrictToCategories(paths []string) {
	s.restrict.Categories = paths
}

// RestrictToPayees limits subsequent transaction queries to the named payees.
// An empty list clears the restriction.
func (s *Session) RestrictToPayees(names []string) {
	s.restrict.Payees = names
}

// RestrictToSecurities limits subsequent transaction queries to the named
// securities. An empty list clears the restriction.
func (s *Session) RestrictToSecurities(names []string) {
	s.restrict.Securities = names
}

// RestrictToDates limits subsequent transaction queries to the inclusive
// window [from, to]. Either bound may be empty to leave that side open.
func (s *Session) RestrictToDates(from, to string) error {
	if from != "" && !qdate.Valid(from) {
		return fmt.Errorf("invalid date-from %q (want YYYY-MM-DD)", from)
	}
	if to != "" && !qdate.Valid(to) {
		return fmt.Errorf("invalid date-to %q (want YYYY-MM-DD)", to)
	}
	s.restrict.DateFrom = from
	s.restrict.DateTo = to
	return nil
}
