package suite

import (
	"fmt"

	"go.uber.org/zap"

	"kisstest/internal/discovery"
	"kisstest/internal/domain"
	"kisstest/internal/execution"
)

// AssembleFromDirectory registers a unit for every test function declared in the
// suite's test files under path. It reports whether any unit was found.
//
// Any error aborts the call with nothing registered.
func (s *Suite) AssembleFromDirectory(path string) (bool, error) {
	files, err := s.scanner.Scan(path)
	if err != nil {
		return false, err
	}

	var pending []*execution.Unit
	for _, file := range files {
		units, err := s.assembleFile(file)
		if err != nil {
			return false, err
		}
		pending = append(pending, units...)
	}

	s.units = append(s.units, pending...)
	s.log.Debug("Suite assembled",
		zap.String("path", path),
		zap.Int("files", len(files)),
		zap.Int("units", len(pending)))
	return len(pending) > 0, nil
}

func (s *Suite) assembleFile(file string) ([]*execution.Unit, error) {
	src, err := discovery.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cases := s.selectCases(s.parser.Parse(file, src))
	if len(cases) == 0 {
		s.log.Debug("No test functions in file", zap.String("file", file))
		return nil, nil
	}

	tf := domain.TestFile{Path: file, Cases: cases}
	fns, err := s.loader.Load(file, src, tf.Names())
	if err != nil {
		return nil, err
	}
	if len(fns) != len(cases) {
		return nil, fmt.Errorf("%w: %s: loader returned %d symbols for %d names", domain.ErrLoad, file, len(fns), len(cases))
	}

	units := make([]*execution.Unit, 0, len(cases))
	for i, c := range cases {
		u, err := execution.NewUnit(c.Name, file, fns[i], s.log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLoad, err)
		}
		units = append(units, u)
	}
	s.log.Debug("Registered tests", zap.String("file", file), zap.Strings("tests", tf.Names()))
	return units, nil
}

func (s *Suite) selectCases(cases []domain.TestCase) []domain.TestCase {
	if s.opts.Select == nil {
		return cases
	}
	var selected []domain.TestCase
	for _, c := range cases {
		if s.opts.Select(c.Name) {
			selected = append(selected, c)
		}
	}
	return selected
}
