package historyrepo

import "errors"

var (
	ErrNotFound      = errors.New("round not found")
	ErrAlreadyExists = errors.New("round already archived")
)
