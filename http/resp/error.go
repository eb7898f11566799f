package resp

import "errors"

var (
	ErrBadConfig     = errors.New("bad config")
	ErrDone          = errors.New("request ctx done")
	ErrInvalid       = errors.New("invalid")
	ErrMissingData   = errors.New("missing data")
	ErrNotAcceptable = errors.New("not acceptable")
	ErrNotFound      = errors.New("not found")
)
