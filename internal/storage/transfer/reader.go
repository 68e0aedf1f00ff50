package transfer

type Reader struct {
	transfers *[]*Transfer
}

func NewReader(transfers *[]*Transfer) *Reader {
	return &Reader{transfers: transfers}
}

func (r *Reader) List() []Transfer {
	result := make([]Transfer, 0, len(*r.transfers))
	for _, t := range *r.transfers {
		result = append(result, *t)
	}
	return result
}

// FindByID returns a copy of the transfer, or nil.
func (r *Reader) FindByID(id string) *Transfer {
	for _, t := range *r.transfers {
		if t.ID == id {
			clone := *t
			return &clone
		}
	}
	return nil
}

// ListByAccount returns transfers where accountID is either side.
func (r *Reader) ListByAccount(accountID string) []Transfer {
	result := make([]Transfer, 0)
	for _, t := range *r.transfers {
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			result = append(result, *t)
		}
	}
	return result
}
