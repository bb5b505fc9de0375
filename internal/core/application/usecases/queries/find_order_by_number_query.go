package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFindOrderByNumberQueryIsNotConstructed = errors.New(
	"FindOrderByNumberQuery must be created via NewFindOrderByNumberQuery constructor",
)

// FindOrderByNumberQuery retrieves the active order carrying a business number.
// At most one active order carries any given number.
type FindOrderByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewFindOrderByNumberQuery creates a query to look an order up by its business
// number. The number is required.
func NewFindOrderByNumberQuery(number string) (FindOrderByNumberQuery, error) {
	if number == "" {
		return FindOrderByNumberQuery{}, errs.NewValueIsRequiredError("number")
	}

	return FindOrderByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindOrderByNumberQueryIsNotConstructed if validation fails.
func (q FindOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderByNumberQueryIsNotConstructed)
}

// Number returns the business number being looked up.
func (q FindOrderByNumberQuery) Number() string {
	return q.number
}
