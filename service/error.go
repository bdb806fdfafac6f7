package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bnb-chain/subgraph-store/store"
)

// Verify Interface Compliance
var _ error = (*Err)(nil)

// Err defines service errors.
type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

var (
	NoErr                  = Err{Code: 0, Message: ""}
	BadRequestErr          = Err{Code: 400, Message: "bad request"}
	DeploymentNotFoundErr  = Err{Code: 404, Message: "deployment not found"}
	InternalErr            = Err{Code: 500, Message: "internal error"}
	ConstraintViolationErr = Err{Code: 500, Message: "inconsistent deployment data"}
)

func (e Err) Enrich(message string) Err {
	return Err{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, message),
	}
}

func (e Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// toErr classifies an error returned by the store
func toErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrConstraintViolation):
		return ConstraintViolationErr.Enrich(err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return DeploymentNotFoundErr.Enrich(err.Error())
	default:
		return InternalErr.Enrich(err.Error())
	}
}
