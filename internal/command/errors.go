package command

import "errors"

// Domain-specific errors for the command package.
var (
	ErrEmptyInput     = errors.New("명령이 비어 있습니다.")
	ErrMissingCommand = errors.New("추가할 명령이 없습니다.")
)
