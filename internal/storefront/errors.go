package storefront

import "errors"

var (
	// ErrPaymentMethodInvalid is returned when the checkout names a method the
	// shop does not support.
	ErrPaymentMethodInvalid = errors.New("invalid payment method specified")

	// ErrPhoneNumberRequired is returned for an mpesa checkout without a phone
	// number.
	ErrPhoneNumberRequired = errors.New("mpesa express phone number required")

	// ErrPhoneNumberInvalid is returned when the supplied phone number is too
	// short to be dialable.
	ErrPhoneNumberInvalid = errors.New("invalid mpesa express phone number format")

	// ErrBankAccountRequired is returned for a bank checkout without an
	// account.
	ErrBankAccountRequired = errors.New("bank account required")

	// ErrPaymentFailed wraps gateway failures surfaced to the customer.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrFavoriteExists is returned when the item is already in the
	// customer's favorites.
	ErrFavoriteExists = errors.New("item already in favorites")

	// ErrFavoriteNotFound is returned when removing an item that is not in
	// the customer's favorites.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
