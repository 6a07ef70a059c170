// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-petr/pay-engine/internal/domain"
	"github.com/go-petr/pay-engine/pkg/amountpkg"
)

// ErrMissingAmount indicates a deposit or withdrawal row without an amount.
var ErrMissingAmount = errors.New("missing amount")

// RepoCSV reads the transaction log from a delimited-text source with the
// header `type,client,tx,amount`.
//
// Dispute, resolve and chargeback rows have no amount field, so the record
// length is not enforced, and leading and trailing whitespace is trimmed on
// every field.
type RepoCSV struct {
	reader *csv.Reader
	line   int
}

// NewRepoCSV returns transaction RepoCSV reading from r.
func NewRepoCSV(r io.Reader) *RepoCSV {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return &RepoCSV{reader: reader}
}

// Next returns the next transaction of the log, or io.EOF when the log is
// exhausted. Malformed rows fail with an error naming the offending line.
func (r *RepoCSV) Next() (domain.Transaction, error) {
	record, err := r.reader.Read()
	if err != nil {
		if err == io.EOF {
			return domain.Transaction{}, io.EOF
		}

		return domain.Transaction{}, fmt.Errorf("read transaction log: %w", err)
	}

	r.line++
	if r.line == 1 {
		// Header row.
		record, err = r.reader.Read()
		if err != nil {
			if err == io.EOF {
				return domain.Transaction{}, io.EOF
			}

			return domain.Transaction{}, fmt.Errorf("read transaction log: %w", err)
		}
		r.line++
	}

	t, err := parseRecord(record)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("line %d: %w", r.line, err)
	}

	return t, nil
}

// ReadAll drains the log into a slice. The streaming Next is preferred for
// large logs; ReadAll exists for tests and small inputs.
func (r *RepoCSV) ReadAll() ([]domain.Transaction, error) {
	var ts []domain.Transaction

	for {
		t, err := r.Next()
		if err == io.EOF {
			return ts, nil
		}

		if err != nil {
			return nil, err
		}

		ts = append(ts, t)
	}
}

func parseRecord(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	for i, field := range record {
		record[i] = strings.TrimSpace(field)
	}

	kind := domain.TransactionKind(record[0])

	client, err := strconv.ParseUint(record[1], 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid client id %q", record[1])
	}

	tx, err := strconv.ParseUint(record[2], 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid transaction id %q", record[2])
	}

	t := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}

	switch kind {
	case domain.KindDeposit, domain.KindWithdrawal:
		if len(record) < 4 || record[3] == "" {
			return domain.Transaction{}, ErrMissingAmount
		}

		amount, err := amountpkg.Parse(record[3])
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], err)
		}

		t.Amount = amount
	case domain.KindDispute, domain.KindResolve, domain.KindChargeback:
	default:
		return domain.Transaction{}, fmt.Errorf("unknown transaction type %q", record[0])
	}

	return t, nil
}
