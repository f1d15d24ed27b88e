package recommendation

import "errors"

var ErrEmptySymptom = errors.New("symptom description required")
