package store

import (
	"errors"
	"fmt"

	"github.com/bnb-chain/subgraph-store/metrics"
)

// ErrConstraintViolation matches every *ConstraintViolation with errors.Is
var ErrConstraintViolation = errors.New("constraint violation")

// ConstraintViolation reports stored data that breaks an invariant the database can not enforce.
// It points at corrupt data or an inconsistent caller and is never worth retrying.
type ConstraintViolation struct {
	Entity  string
	Field   string
	Message string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Message)
}

func (e *ConstraintViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}

func constraintViolation(entity, field, format string, args ...interface{}) error {
	metrics.ConstraintViolationCounter.WithLabelValues(field).Inc()
	return &ConstraintViolation{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
