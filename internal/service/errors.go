package service

import "errors"

var (
	// ErrDuplicateWord is returned when adding a word that already exists
	// for the same word type, compared case-insensitively
	ErrDuplicateWord = errors.New("word already exists")

	// ErrWordNotFound is returned when the referenced word does not exist
	ErrWordNotFound = errors.New("word not found")

	// ErrSessionComplete is returned when submitting to a finished session
	ErrSessionComplete = errors.New("practice session already complete")

	// ErrNoActiveSession is returned when submitting with no session words
	ErrNoActiveSession = errors.New("no active practice session")

	// ErrInvalidPIN is returned when parent login fails
	ErrInvalidPIN = errors.New("invalid PIN")
)
