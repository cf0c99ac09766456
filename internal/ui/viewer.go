package ui

import "kisstest/internal/domain"

// Viewer displays test failures in an interactive TUI
type Viewer interface {
	View(failures []domain.TestFailure) error
}
