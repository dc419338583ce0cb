package errors

import "errors"

// Kind classifies domain failures so transport layers can map them to responses.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	default:
		return "internal"
	}
}

// Error is a domain failure tagged with its Kind.
type Error struct {
	kind Kind
	msg  string
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Kind reports the failure class.
func (e *Error) Kind() Kind { return e.kind }

var (
	ErrNotFound      = newError(KindNotFound, "not found")
	ErrOrderNotFound = newError(KindNotFound, "Order not found")
	ErrUserNotFound  = newError(KindNotFound, "User not found")
	ErrItemNotFound  = newError(KindNotFound, "Item not found")

	ErrMissingLocation   = newError(KindValidation, "Delivery location is required")
	ErrEmptyCart         = newError(KindValidation, "Cart is empty")
	ErrUnknownItem       = newError(KindValidation, "Cart contains an item missing from the catalog")
	ErrInvalidQuantity   = newError(KindValidation, "Quantity must be a positive number")
	ErrInvalidCartAction = newError(KindValidation, "Invalid action")
	ErrNotInCart         = newError(KindValidation, "Item not in cart")
	ErrInvalidStep       = newError(KindValidation, "Invalid step")
	ErrInvalidRating     = newError(KindValidation, "Rating must be between 1 and 5")
	ErrInvalidRole       = newError(KindValidation, "Invalid rater role")
	ErrInvalidRatedUser  = newError(KindValidation, "Rated user is not the other party of this order")
	ErrInvalidTicket     = newError(KindValidation, "Invalid CAS ticket")

	ErrNotAuthorized = newError(KindAuthorization, "You are not authorized to perform this action")
	ErrSelfClaim     = newError(KindAuthorization, "You cannot deliver your own order")

	ErrAlreadyClaimed    = newError(KindState, "Order has already been claimed")
	ErrOutOfOrder        = newError(KindState, "Timeline steps must be completed in order")
	ErrNotDelivered      = newError(KindState, "Order has not been delivered yet")
	ErrAlreadyRated      = newError(KindState, "You have already rated this order")
	ErrInvalidTransition = newError(KindState, "Order cannot change status from its current state")

	ErrFavoritesUnavailable = newError(KindInternal, "Failed to update favorites")
)

// KindOf returns the Kind of the first domain error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}
