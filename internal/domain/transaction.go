// Package domain provides definitions of all entities.
package domain

import (
	"github.com/go-petr/pay-engine/pkg/amountpkg"
)

// ClientID identifies one client account.
type ClientID uint16

// TxID identifies a transaction. IDs are scoped per account: disputes,
// resolves and chargebacks are matched against the addressed client's own
// deposits.
type TxID uint32

// TransactionKind enumerates the supported transaction types.
type TransactionKind string

// Supported transaction kinds as they appear in the input log.
const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// Transaction is one record of the input log.
//
// Amount is meaningful only for deposits and withdrawals; dispute, resolve
// and chargeback reference the original deposit by Tx and carry no amount of
// their own.
type Transaction struct {
	Kind   TransactionKind
	Client ClientID
	Tx     TxID
	Amount amountpkg.Amount
}
