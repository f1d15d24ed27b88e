package user

import "errors"

var ErrEmptyPassword = errors.New("password required")
