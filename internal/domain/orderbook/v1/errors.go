package orderbookv1

import (
	"errors"

	pkgerrors "github.com/muhammadchandra19/limit-order-book/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when cancelling or modifying an unknown order id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPriceLevelNotFound is returned when no limit level rests at a price.
	ErrPriceLevelNotFound = errors.New("price level not found")
	// ErrStopLevelNotFound is returned when no stop level rests at a price.
	ErrStopLevelNotFound = errors.New("stop level not found")
	// ErrInvalidQuantity is returned for a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidPrice is returned for a non-positive limit or stop price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidSide is returned for a side that is neither buy nor sell.
	ErrInvalidSide = errors.New("invalid side")
	// ErrDuplicateOrderID is returned when the id already rests in the book.
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// CodeOf maps an error returned by a Book to its error code.
func CodeOf(err error) pkgerrors.ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOrderNotFound):
		return pkgerrors.OrderNotFound
	case errors.Is(err, ErrPriceLevelNotFound):
		return pkgerrors.PriceLevelNotFound
	case errors.Is(err, ErrStopLevelNotFound):
		return pkgerrors.StopLevelNotFound
	case errors.Is(err, ErrInvalidQuantity):
		return pkgerrors.InvalidQuantity
	case errors.Is(err, ErrInvalidPrice):
		return pkgerrors.InvalidPrice
	case errors.Is(err, ErrInvalidSide):
		return pkgerrors.GeneralBadRequestError
	case errors.Is(err, ErrDuplicateOrderID):
		return pkgerrors.DuplicateOrderID
	default:
		return pkgerrors.GeneralInternalError
	}
}
