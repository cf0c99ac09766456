package cli

import "kisstest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	TestPath     string
	Verbose      bool
	FileFilter   string
	SymbolFilter string
	Delimiter    string
	NameFilter   string
	TestCases    bool
	Bail         bool
	Progress     bool
	Browse       bool
	Debug        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath:  f.ProjectPath,
		TestPath:     f.TestPath,
		Verbose:      f.Verbose,
		FileFilter:   f.FileFilter,
		SymbolFilter: f.SymbolFilter,
		Delimiter:    f.Delimiter,
		NameFilter:   f.NameFilter,
		TestCases:    f.TestCases,
		Bail:         f.Bail,
		Progress:     f.Progress,
		Browse:       f.Browse,
		Debug:        f.Debug,
	}
}
