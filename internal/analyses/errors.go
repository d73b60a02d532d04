package analyses

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyResume = errors.New("resume text is empty")
)
