package reports

import (
	"sort"

	"fjacquet/quicken-query/internal/ledger"
)

// CategoryFlow is the summed split amount for one category path.
type CategoryFlow struct {
	Path   string
	Amount float64
}

// CashFlow sums split amounts grouped by resolved category path, over the
// session's current restriction state. Flows are returned sorted by path.
func CashFlow(s *ledger.Session) ([]CategoryFlow, error) {
	it, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	amounts := make(map[string]float64)
	for it.Next() {
		t := it.Record()
		amounts[t.CategoryPath] += t.Amount
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(amounts))
	for path := range amounts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]CategoryFlow, len(paths))
	for i, path := range paths {
		out[i] = CategoryFlow{Path: path, Amount: amounts[path]}
	}
	return out, nil
}
