package domain

import (
	"errors"

	"github.com/go-petr/pay-engine/pkg/amountpkg"
)

var (
	// ErrOverflow indicates that a deposit would exceed the representable balance.
	ErrOverflow = errors.New("balance would overflow")
	// ErrInsufficientFunds indicates that the available balance cannot cover the operation.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownTransaction indicates that the referenced deposit is not known.
	ErrUnknownTransaction = errors.New("unknown transaction id")
	// ErrDuplicateTransaction indicates that a deposit reuses a known transaction id.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	// ErrAlreadyDisputed indicates that the referenced deposit is already under dispute.
	ErrAlreadyDisputed = errors.New("already disputed")
	// ErrNotDisputed indicates that the referenced deposit is not under dispute.
	ErrNotDisputed = errors.New("not disputed")
	// ErrAccountLocked indicates an operation on a charged-back account.
	ErrAccountLocked = errors.New("account locked")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// Balance is one row of the final report.
type Balance struct {
	Client    ClientID         `json:"client"`
	Available amountpkg.Amount `json:"available"`
	Held      amountpkg.Amount `json:"held"`
	Total     amountpkg.Amount `json:"total"`
	Locked    bool             `json:"locked"`
}
