package domain

import "strings"

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	if e.Msg == "" {
		return "insufficient balance"
	}
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region SkinNotFoundError

type SkinNotFoundError struct {
	Msg string
}

func (e *SkinNotFoundError) Error() string {
	return e.Msg
}

func (e *SkinNotFoundError) Is(target error) bool {
	_, ok := target.(*SkinNotFoundError)
	return ok
}

//endregion

//region CartItemNotFoundError

type CartItemNotFoundError struct {
	Msg string
}

func (e *CartItemNotFoundError) Error() string {
	return e.Msg
}

func (e *CartItemNotFoundError) Is(target error) bool {
	_, ok := target.(*CartItemNotFoundError)
	return ok
}

//endregion

//region AlreadyInCartError

type AlreadyInCartError struct {
	Msg string
}

func (e *AlreadyInCartError) Error() string {
	if e.Msg == "" {
		return "skin is already in the cart"
	}
	return e.Msg
}

func (e *AlreadyInCartError) Is(target error) bool {
	_, ok := target.(*AlreadyInCartError)
	return ok
}

//endregion

//region SelfPurchaseError

type SelfPurchaseError struct {
	Msg string
}

func (e *SelfPurchaseError) Error() string {
	if e.Msg == "" {
		return "cannot buy your own listing"
	}
	return e.Msg
}

func (e *SelfPurchaseError) Is(target error) bool {
	_, ok := target.(*SelfPurchaseError)
	return ok
}

//endregion

//region EmptyCartError

type EmptyCartError struct {
	Msg string
}

func (e *EmptyCartError) Error() string {
	if e.Msg == "" {
		return "cart is empty"
	}
	return e.Msg
}

func (e *EmptyCartError) Is(target error) bool {
	_, ok := target.(*EmptyCartError)
	return ok
}

//endregion

//region ItemsUnavailableError

// ItemsUnavailableError carries the names of the cart items that are no
// longer in the listed state so callers can report them.
type ItemsUnavailableError struct {
	Names []string
}

func (e *ItemsUnavailableError) Error() string {
	return "some items are no longer available: " + strings.Join(e.Names, ", ")
}

func (e *ItemsUnavailableError) Is(target error) bool {
	_, ok := target.(*ItemsUnavailableError)
	return ok
}

//endregion
