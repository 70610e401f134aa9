package repository

import (
	"errors"

	"skillswap/exchange-service/internal/storage"
)

func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

// IsConflict reports a guarded update that lost to a concurrent write.
func IsConflict(err error) bool {
	return errors.Is(err, storage.ErrConflict)
}

func isAlreadyExists(err error) bool {
	return errors.Is(err, storage.ErrAlreadyExists)
}
