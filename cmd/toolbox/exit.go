package main

import "toolbox/internal/domain"

const (
	exitCodeFailure  = 1
	exitCodeNotFound = 2
	exitCodeUsage    = 64
)

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

func exitSilent(code int) error {
	return exitError{code: code, silent: true}
}

func exitCodeFor(err error) int {
	code, ok := domain.CodeFrom(err)
	if !ok {
		return exitCodeFailure
	}
	switch code {
	case domain.CodeNotFound:
		return exitCodeNotFound
	case domain.CodeInvalidArgument:
		return exitCodeUsage
	default:
		return exitCodeFailure
	}
}
