package ledger

// PriceOnDate returns the closing price of the named security on the given
// date, or the most recent prior price when no quote exists for that exact
// date. With no quote at or before the date the price is 0. When the date is
// later than every quote, the last known price carries forward. Returns a
// NotFoundError when the security name does not resolve.
func (s *Session) PriceOnDate(securityName, date string) (float64, error) {
	key, err := s.SecurityKeyByName(securityName)
	if err != nil {
		return 0, err
	}

	it, err := s.Quotes(key)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	var price, next float64
	for it.Next() {
		q := it.Quote()
		next = q.Price
		if q.Date == date {
			return next, nil
		}
		if q.Date > date {
			return price, nil
		}
		price = next
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return next, nil
}
