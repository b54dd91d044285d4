package checkout

import (
	"errors"
	"fmt"
)

var ErrNoItems = errors.New("cart has no items")

// UnknownProductError is returned when the trusted catalog is enabled and a
// submitted item cannot be matched against it.
type UnknownProductError struct {
	ID   string
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product: id=%s name=%q", e.ID, e.Name)
}
