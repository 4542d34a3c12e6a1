package ledger

import (
	"database/sql"
	"fmt"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdb"
	"fjacquet/quicken-query/internal/queryerror"
)

// accountSet is the load-once account snapshot, ordered by name.
type accountSet struct {
	accounts []models.Account
	byName   map[string]int64
}

func loadAccounts(conn *qdb.Connection) (*accountSet, error) {
	rows, err := conn.Query(`
		SELECT zaccount.z_pk, zaccount.zname, zaccount.ztypename
		FROM zaccount
		ORDER BY zaccount.zname ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	set := &accountSet{byName: make(map[string]int64)}
	for rows.Next() {
		var key int64
		var name, typeName sql.NullString
		if err := rows.Scan(&key, &name, &typeName); err != nil {
			return nil, fmt.Errorf("scanning account row: %w", err)
		}
		account := models.Account{Key: key, Name: name.String, Type: typeName.String}
		set.accounts = append(set.accounts, account)
		set.byName[account.Name] = key
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return set, nil
}

// Accounts returns the account snapshot, ordered by name ascending.
// The returned slice is shared; callers must not modify it.
func (s *Session) Accounts() []models.Account {
	return s.accounts.accounts
}

// AccountKeyByName resolves an account name to its key.
func (s *Session) AccountKeyByName(name string) (int64, error) {
	key, ok := s.accounts.byName[name]
	if !ok {
		return 0, &queryerror.NotFoundError{Entity: "account", Name: name}
	}
	return key, nil
}
