package category

type Reader struct {
	categories *[]*Category
}

func NewReader(categories *[]*Category) *Reader {
	return &Reader{categories: categories}
}

// List returns copies of every category in insertion order.
func (r *Reader) List() []Category {
	result := make([]Category, 0, len(*r.categories))
	for _, c := range *r.categories {
		result = append(result, *c.Clone())
	}
	return result
}

func (r *Reader) ListByType(t Type) []Category {
	result := make([]Category, 0)
	for _, c := range *r.categories {
		if c.Type == t {
			result = append(result, *c.Clone())
		}
	}
	return result
}

// FindByID returns a copy of the category, or nil.
func (r *Reader) FindByID(id string) *Category {
	if c := r.find(id); c != nil {
		return c.Clone()
	}
	return nil
}

// FindByNameAndType looks for a category other than excludeID that collides
// with name and t.
func (r *Reader) FindByNameAndType(name string, t Type, excludeID string) *Category {
	for _, c := range *r.categories {
		if c.ID != excludeID && c.Type == t && sameName(c.Name, name) {
			return c.Clone()
		}
	}
	return nil
}

func (r *Reader) find(id string) *Category {
	for _, c := range *r.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}
