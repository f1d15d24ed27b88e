package community

import "errors"

var ErrEmptyQuestion = errors.New("question content required")
