package domain

// TestCase is a test function found in a test file by the signature parser
type TestCase struct {
	Name     string // Function name, e.g. test_login
	FilePath string // Path to the file that declares it
	Line     int    // 1-based line of the declaration
}

// TestFile groups the test cases discovered in one file, in declaration order
type TestFile struct {
	Path  string
	Cases []TestCase
}

// Names returns the test case names in declaration order
func (f TestFile) Names() []string {
	names := make([]string, 0, len(f.Cases))
	for _, c := range f.Cases {
		names = append(names, c.Name)
	}
	return names
}
