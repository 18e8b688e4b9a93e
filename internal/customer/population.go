package customer

// Population is an ordered snapshot of customer records. Row order is
// significant: index i must line up with row i of the similarity matrix
// computed for the same snapshot. The name index is built once so repeated
// lookups avoid a linear scan.
type Population struct {
	records []Record
	index   map[string]int
}

// NewPopulation validates every record and builds the name index.
// Duplicate names are rejected because the name is the lookup key.
func NewPopulation(records []Record) (*Population, error) {
	index := make(map[string]int, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := index[records[i].Name]; dup {
			return nil, &MalformedRecordError{Name: records[i].Name, Field: "name", Reason: "duplicates an earlier record"}
		}
		index[records[i].Name] = i
	}
	return &Population{records: records, index: index}, nil
}

// Len returns the number of records
func (p *Population) Len() int {
	return len(p.records)
}

// At returns the record at row i
func (p *Population) At(i int) *Record {
	return &p.records[i]
}

// Records returns the underlying ordered records
func (p *Population) Records() []Record {
	return p.records
}

// IndexOf returns the row index for a customer name, or a *NotFoundError
func (p *Population) IndexOf(name string) (int, error) {
	i, ok := p.index[name]
	if !ok {
		return 0, &NotFoundError{Name: name}
	}
	return i, nil
}

// Contains reports whether a customer name is present
func (p *Population) Contains(name string) bool {
	_, ok := p.index[name]
	return ok
}
