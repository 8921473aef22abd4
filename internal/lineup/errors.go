package lineup

import "errors"

var (
	ErrEmptyLineup       = errors.New("lineup has no languages")
	ErrEmptyLanguageName = errors.New("language name cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrDuplicateLanguage = errors.New("language declared more than once")
	ErrDuplicateCategory = errors.New("category declared more than once in the same language")
	ErrInvalidFormat     = errors.New("invalid lineup format")
)
