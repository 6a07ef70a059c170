// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"fmt"

	"github.com/go-petr/pay-engine/internal/domain"
	"github.com/go-petr/pay-engine/pkg/amountpkg"
)

// deposit is retained per successful deposit so a later dispute can recover
// its amount. A chargeback removes the record entirely; no tombstone is kept.
type deposit struct {
	amount   amountpkg.Amount
	disputed bool
}

// Account holds one client's balances and dispute state.
//
// Only deposits can be disputed, not withdrawals. In a real system the
// deposits map would need a retention limit, e.g. keeping only the last N
// transactions eligible for dispute.
type Account struct {
	deposits map[domain.TxID]*deposit

	available amountpkg.Amount

	// Invariant: total = available + held, where held is the sum of the
	// disputed deposits. Held is derived rather than stored, so total is
	// kept explicitly to avoid recomputing it from the deposits map.
	total amountpkg.Amount

	locked bool
}

// NewAccount returns an empty unlocked account.
func NewAccount() *Account {
	return &Account{deposits: make(map[domain.TxID]*deposit)}
}

// Deposit credits the amount and records the transaction for later disputes.
//
// Every failure leaves the account unchanged: the new total is computed
// before any field is written.
func (a *Account) Deposit(tx domain.TxID, amount amountpkg.Amount) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	// Keep the total funds, available plus held, from overflowing. Funds can
	// then move freely between available and held without further checks.
	total, err := a.total.CheckedAdd(amount)
	if err != nil {
		return domain.ErrOverflow
	}

	// Transaction id uniqueness is what matches disputes to deposits.
	if _, ok := a.deposits[tx]; ok {
		return domain.ErrDuplicateTransaction
	}

	// Since available <= total, this cannot overflow.
	a.available = mustAdd(a.available, amount)
	a.total = total
	a.deposits[tx] = &deposit{amount: amount}

	return nil
}

// Withdraw debits the amount from the available and total balances.
// Withdrawals are not tracked and can never be disputed.
func (a *Account) Withdraw(amount amountpkg.Amount) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	available, err := a.available.CheckedSub(amount)
	if err != nil {
		return domain.ErrInsufficientFunds
	}

	a.available = available
	// Cannot fail: available <= total and available already covered amount.
	a.total = mustSub(a.total, amount)

	return nil
}

// Dispute places a hold on a prior deposit: the available balance drops by
// the deposited amount while the total is unchanged.
//
// A dispute cannot be opened for an amount greater than the available
// balance, e.g. when the funds have since been withdrawn or held by another
// dispute.
func (a *Account) Dispute(tx domain.TxID) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	dep, ok := a.deposits[tx]
	if !ok {
		return domain.ErrUnknownTransaction
	}

	if dep.disputed {
		return domain.ErrAlreadyDisputed
	}

	available, err := a.available.CheckedSub(dep.amount)
	if err != nil {
		return domain.ErrInsufficientFunds
	}

	a.available = available
	dep.disputed = true

	return nil
}

// Resolve releases a disputed deposit's funds back to the available balance.
// The total is unchanged.
func (a *Account) Resolve(tx domain.TxID) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	dep, ok := a.deposits[tx]
	if !ok {
		return domain.ErrUnknownTransaction
	}

	if !dep.disputed {
		return domain.ErrNotDisputed
	}

	// Cannot fail: total = available + held, total never overflowed, and
	// dep.amount is part of the held balance.
	a.available = mustAdd(a.available, dep.amount)
	dep.disputed = false

	return nil
}

// Chargeback reverses a disputed deposit: the total drops by the deposited
// amount, the deposit record is removed, and the account is permanently
// locked. The available balance is unaffected.
//
// A dispute must be open before a chargeback is accepted.
func (a *Account) Chargeback(tx domain.TxID) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	dep, ok := a.deposits[tx]
	if !ok {
		return domain.ErrUnknownTransaction
	}

	if !dep.disputed {
		return domain.ErrNotDisputed
	}

	// Cannot fail: total >= held and dep.amount is part of the held balance.
	a.total = mustSub(a.total, dep.amount)
	delete(a.deposits, tx)
	a.locked = true

	return nil
}

// Available returns the funds the client may currently withdraw.
func (a *Account) Available() amountpkg.Amount {
	return a.available
}

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() amountpkg.Amount {
	// Cannot fail: total >= available.
	return mustSub(a.total, a.available)
}

// Total returns the client's full balance, available plus held.
func (a *Account) Total() amountpkg.Amount {
	return a.total
}

// Locked reports whether a chargeback has frozen the account.
func (a *Account) Locked() bool {
	return a.locked
}

// mustAdd is for additions the account invariant proves safe.
func mustAdd(a, b amountpkg.Amount) amountpkg.Amount {
	sum, err := a.CheckedAdd(b)
	if err != nil {
		panic(fmt.Sprintf("accountservice: invariant violated: %v + %v: %v", a, b, err))
	}

	return sum
}

// mustSub is for subtractions the account invariant proves safe.
func mustSub(a, b amountpkg.Amount) amountpkg.Amount {
	diff, err := a.CheckedSub(b)
	if err != nil {
		panic(fmt.Sprintf("accountservice: invariant violated: %v - %v: %v", a, b, err))
	}

	return diff
}
