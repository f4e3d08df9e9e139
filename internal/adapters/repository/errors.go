package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pawfectstay/booking-service/internal/core/domain"
)

const uniqueViolation = "23505"

// translateError maps driver-level failures onto the domain taxonomy so
// nothing above this layer needs to know about pq.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateIdentity
	}
	return fmt.Errorf("store: %w", err)
}
