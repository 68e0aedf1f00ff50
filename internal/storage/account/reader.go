package account

type Reader struct {
	accounts *[]*Account
}

func NewReader(accounts *[]*Account) *Reader {
	return &Reader{accounts: accounts}
}

// List returns copies of every account in insertion order.
func (r *Reader) List() []Account {
	result := make([]Account, 0, len(*r.accounts))
	for _, a := range *r.accounts {
		result = append(result, *a)
	}
	return result
}

// FindByID returns a copy of the account, or nil.
func (r *Reader) FindByID(id string) *Account {
	if a := r.find(id); a != nil {
		clone := *a
		return &clone
	}
	return nil
}

// FindByName matches case-insensitively, skipping excludeID.
func (r *Reader) FindByName(name string, excludeID string) *Account {
	for _, a := range *r.accounts {
		if a.ID != excludeID && sameName(a.Name, name) {
			clone := *a
			return &clone
		}
	}
	return nil
}

// FindBySymbol matches exactly, skipping excludeID.
func (r *Reader) FindBySymbol(symbol string, excludeID string) *Account {
	for _, a := range *r.accounts {
		if a.ID != excludeID && a.Symbol == symbol {
			clone := *a
			return &clone
		}
	}
	return nil
}

func (r *Reader) find(id string) *Account {
	for _, a := range *r.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}
