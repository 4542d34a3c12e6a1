package reports

import (
	"strconv"

	"fjacquet/quicken-query/internal/ledger"
)

// YearValue is the net worth evaluated at the end of one year, or at the
// report cutoff for the final entry.
type YearValue struct {
	Date     string
	NetWorth float64
}

// NetWorthByYear accumulates cash and share balances transaction by
// transaction up to the cutoff date. Each calendar-year boundary crossing
// records the net worth as of the prior year's final day; a final evaluation
// is emitted at the cutoff itself.
func NetWorthByYear(s *ledger.Session, cutoff string) ([]YearValue, error) {
	it, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	cash := 0.0
	shares := make(shareBalances)
	year := ""
	var out []YearValue

	for it.Next() {
		t := it.Record()
		if t.Date > cutoff {
			break
		}
		lastYear := year
		year = t.Date[:4]
		if lastYear != "" && year > lastYear {
			yearEnd := lastYear + "-12-31"
			nw, err := netWorth(s, cash, shares, yearEnd)
			if err != nil {
				return nil, err
			}
			out = append(out, YearValue{Date: yearEnd, NetWorth: nw})
		}

		cash += t.Amount
		shares.apply(t)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	nw, err := netWorth(s, cash, shares, cutoff)
	if err != nil {
		return nil, err
	}
	out = append(out, YearValue{Date: cutoff, NetWorth: nw})

	log.WithField("years", len(out)).Debug("Computed net worth history")
	return out, nil
}

// Year returns the calendar year of the evaluation date.
func (v YearValue) Year() int {
	y, _ := strconv.Atoi(v.Date[:4])
	return y
}

// netWorth is cash plus the market value of all held positions at date.
func netWorth(s *ledger.Session, cash float64, shares shareBalances, date string) (float64, error) {
	value, err := shares.value(s, date)
	if err != nil {
		return 0, err
	}
	return cash + value, nil
}
