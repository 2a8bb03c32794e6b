package storage

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"restaurant-pos/order-svc/internal/domain"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// SQLite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsForeignKeyErr(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func persistErr(op string, err error) error {
	return &domain.PersistenceError{Op: op, Err: err}
}
