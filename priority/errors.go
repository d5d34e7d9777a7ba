package priority

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle = errors.New("priority: queue does not exist")
	ErrDuplicateKey  = errors.New("priority: duplicate key")
	ErrNotFound      = errors.New("priority: element not found")
	ErrEmpty         = errors.New("priority: queue is empty")

	ErrDuplicatePriority = fmt.Errorf("%w: priority already queued", ErrDuplicateKey)
	ErrAmbiguousElement  = fmt.Errorf("%w: element queued more than once", ErrNotFound)
)
