package main

func test_pass() bool { return true }

func test_fail() bool { return false }
