// Package models defines the record types produced by the ledger query layer.
package models

// Account is a snapshot row from the account table, ordered by name.
type Account struct {
	Key  int64  `csv:"key"`
	Name string `csv:"name"`
	Type string `csv:"type"`
}

// Category is a node of the category forest with its path fully resolved.
// Path is the colon-joined chain of ancestor names, root to leaf, and is
// usable interchangeably with Key by downstream consumers.
type Category struct {
	Key  int64  `csv:"key"`
	Path string `csv:"path"`
	Type int64  `csv:"type"`
}

// Payee is a single payee row.
type Payee struct {
	Key  int64  `csv:"key"`
	Name string `csv:"name"`
}

// Security is a snapshot row from the security table.
// Ticker is the empty string when the table holds no ticker.
type Security struct {
	Key    int64  `csv:"key"`
	Name   string `csv:"name"`
	Type   string `csv:"type"`
	Ticker string `csv:"ticker"`
}

// Quote is one (date, closing price) observation for a security.
// Dates use the canonical YYYY-MM-DD format.
type Quote struct {
	Date  string  `csv:"date"`
	Price float64 `csv:"price"`
}

// TransactionSplit is one category-tagged money movement within a parent
// transaction. It is the atomic unit of the transaction stream: a parent
// transaction with three splits yields three records sharing the same Key.
type TransactionSplit struct {
	Key            int64   `csv:"key"`
	Date           string  `csv:"date"`
	Amount         float64 `csv:"amount"`
	AccountKey     int64   `csv:"account_key"`
	AccountName    string  `csv:"account"`
	PayeeKey       int64   `csv:"payee_key"`
	PayeeName      string  `csv:"payee"`
	CategoryKey    int64   `csv:"category_key"`
	CategoryPath   string  `csv:"category"`
	SecurityKey    int64   `csv:"security_key"`
	SecurityName   string  `csv:"security"`
	SecurityTicker string  `csv:"ticker"`
	SecurityShares float64 `csv:"shares"`
	Note           string  `csv:"note"`
}

// HasSecurity reports whether the transaction carries a security leg.
// Primary keys start at 1, so a zero key means no position was joined.
func (t TransactionSplit) HasSecurity() bool {
	return t.SecurityKey != 0
}

// Restriction is the filter configuration captured by a query at
// construction time. Empty lists and empty date bounds mean unrestricted.
type Restriction struct {
	Accounts   []string
	Categories []string
	Payees     []string
	Securities []string
	DateFrom   string
	DateTo     string
}

// IsZero reports whether no restriction is active.
func (r Restriction) IsZero() bool {
	return len(r.Accounts) == 0 && len(r.Categories) == 0 &&
		len(r.Payees) == 0 && len(r.Securities) == 0 &&
		r.DateFrom == "" && r.DateTo == ""
}
