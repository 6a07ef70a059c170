package accountservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-petr/pay-engine/internal/domain"
)

// Service routes transactions to per-client accounts, creating accounts
// lazily the first time a client id is seen.
//
// Processing is strictly sequential: there is exactly one logical writer, so
// no locking is needed. A future multi-stream design would shard by client
// id, since transactions never span two clients.
type Service struct {
	accounts map[domain.ClientID]*Account
}

// New returns an empty account registry.
func New() *Service {
	return &Service{accounts: make(map[domain.ClientID]*Account)}
}

// Process dispatches one transaction to the matching account operation and
// propagates its result unchanged. The registry itself performs no
// validation.
func (s *Service) Process(ctx context.Context, t domain.Transaction) error {
	acc, ok := s.accounts[t.Client]
	if !ok {
		acc = NewAccount()
		s.accounts[t.Client] = acc
	}

	switch t.Kind {
	case domain.KindDeposit:
		return acc.Deposit(t.Tx, t.Amount)
	case domain.KindWithdrawal:
		return acc.Withdraw(t.Amount)
	case domain.KindDispute:
		return acc.Dispute(t.Tx)
	case domain.KindResolve:
		return acc.Resolve(t.Tx)
	case domain.KindChargeback:
		return acc.Chargeback(t.Tx)
	}

	// The parser only hands over known kinds; anything else is a caller bug.
	return fmt.Errorf("unsupported transaction kind %q", t.Kind)
}

// Snapshot returns one balance row per known client, sorted ascending by
// client id so the output is deterministic regardless of insertion order.
func (s *Service) Snapshot(ctx context.Context) []domain.Balance {
	rows := make([]domain.Balance, 0, len(s.accounts))
	for id, acc := range s.accounts {
		rows = append(rows, balanceRow(id, acc))
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Client < rows[j].Client })

	return rows
}

// Get returns the balance row for one client. Unlike Process it never
// creates an account.
func (s *Service) Get(ctx context.Context, client domain.ClientID) (domain.Balance, error) {
	acc, ok := s.accounts[client]
	if !ok {
		return domain.Balance{}, domain.ErrAccountNotFound
	}

	return balanceRow(client, acc), nil
}

func balanceRow(id domain.ClientID, acc *Account) domain.Balance {
	return domain.Balance{
		Client:    id,
		Available: acc.Available(),
		Held:      acc.Held(),
		Total:     acc.Total(),
		Locked:    acc.Locked(),
	}
}
