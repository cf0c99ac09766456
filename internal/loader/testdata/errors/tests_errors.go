package main

import (
	"errors"

	"kisstest/pkg/assert"
)

func test_panics() bool {
	panic(errors.New("Example Exception"))
}

func test_after_panic() bool {
	return assert.Equal(len("kiss"), 4)
}

// func test_disabled() bool { return false }

func test_wrong_assert() bool {
	return assert.Equal(1, "1")
}
