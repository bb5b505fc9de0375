package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// FindOrderByNumberQueryHandler looks an active order up by its business number.
type FindOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewFindOrderByNumberQueryHandler creates a handler for number lookups.
func NewFindOrderByNumberQueryHandler(db *gorm.DB) FindOrderByNumberQueryHandler {
	return FindOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. A number carried only by soft-deleted orders is
// reported as not found.
func (h FindOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query FindOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSelect+" AND o.number = ?", query.Number(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("number", query.Number())
	}

	return scanOrderResponse(rows)
}
