package util

import "errors"

var (
	ErrActiveSessionExists = errors.New("an active test session already exists for this candidate")
	ErrSessionNotFound     = errors.New("no test session found for this candidate")
	ErrResultNotFound      = errors.New("no completed test found for this candidate")
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrInvalidCategory     = errors.New("invalid question category")
	ErrInvalidQuestion     = errors.New("question must have 4 options and an answer index in [0,3]")
	ErrInvalidPassage      = errors.New("comprehension passage must have exactly 5 sub-questions")
)
