package ledger

import (
	"database/sql"
	"fmt"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdb"
	"fjacquet/quicken-query/internal/queryerror"
)

// securitySet is the load-once security snapshot, in storage order.
type securitySet struct {
	securities []models.Security
	byName     map[string]int64
}

func loadSecurities(conn *qdb.Connection) (*securitySet, error) {
	rows, err := conn.Query(`SELECT z_pk, zname, ztype, zticker FROM zsecurity`)
	if err != nil {
		return nil, fmt.Errorf("querying securities: %w", err)
	}
	defer rows.Close()

	set := &securitySet{byName: make(map[string]int64)}
	for rows.Next() {
		var key int64
		var name, typ, ticker sql.NullString
		if err := rows.Scan(&key, &name, &typ, &ticker); err != nil {
			return nil, fmt.Errorf("scanning security row: %w", err)
		}
		// Absent tickers become the empty string, not a null marker.
		security := models.Security{
			Key:    key,
			Name:   name.String,
			Type:   typ.String,
			Ticker: ticker.String,
		}
		set.securities = append(set.securities, security)
		set.byName[security.Name] = key
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading securities: %w", err)
	}
	return set, nil
}

// Securities returns the security snapshot in storage order.
// The returned slice is shared; callers must not modify it.
func (s *Session) Securities() []models.Security {
	return s.securities.securities
}

// SecurityKeyByName resolves a security name to its key.
func (s *Session) SecurityKeyByName(name string) (int64, error) {
	key, ok := s.securities.byName[name]
	if !ok {
		return 0, &queryerror.NotFoundError{Entity: "security", Name: name}
	}
	return key, nil
}
