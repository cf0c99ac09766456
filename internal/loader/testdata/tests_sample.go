package main

import (
	"errors"
	"strings"

	"kisstest/pkg/assert"
)

func shout(s string) string {
	return strings.ToUpper(s) + "!"
}

func parsePort(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty port")
	}
	return len(s), nil
}

func test_pass() bool {
	return assert.Equal(shout("kiss"), "KISS!")
}

func test_fail() bool {
	return false
}

func test_raises() bool {
	return assert.Raises(parsePort, []any{""}, "empty port")
}

func test_unequal() bool {
	return assert.Unequal(1, "1")
}

func not_a_test() string {
	return "helper"
}
