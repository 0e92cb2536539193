package provider

// MockScanner implements Scanner over a fixed record slice, for tests.
type MockScanner struct {
	Records []Record
	FailErr error

	index int
}

// NewMockScanner creates a scanner that yields the given records in order.
func NewMockScanner(records ...Record) *MockScanner {
	return &MockScanner{Records: records, index: -1}
}

// NewFailingScanner creates a scanner that yields nothing and reports err.
func NewFailingScanner(err error) *MockScanner {
	return &MockScanner{FailErr: err, index: -1}
}

// Next advances to the next record and returns it.
func (s *MockScanner) Next() (Record, bool) {
	if s.FailErr != nil {
		return Record{}, false
	}

	s.index++
	if s.index >= len(s.Records) {
		return Record{}, false
	}

	return s.Records[s.index], true
}

// Err returns any error configured on the scanner.
func (s *MockScanner) Err() error {
	return s.FailErr
}
