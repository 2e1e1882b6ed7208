package library

import "errors"

var (
	// ErrNotFound reports an item id with no matching catalog entry.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidArgument reports input the catalog cannot interpret at all,
	// such as a negative day count or price. Business no-ops, like trying
	// to borrow an item that is not on the shelf, are receipt statuses
	// rather than errors.
	ErrInvalidArgument = errors.New("invalid argument")
)
