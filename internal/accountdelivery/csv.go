// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-petr/pay-engine/internal/domain"
)

// WriteCSV renders balance rows as delimited text with the header
// `client,available,held,total,locked`. Amounts carry exactly four
// fractional digits; rows appear in the order given, which Snapshot
// guarantees is ascending by client id.
func WriteCSV(w io.Writer, rows []domain.Balance) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write balances header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.Client), 10),
			row.Available.String(),
			row.Held.String(),
			row.Total.String(),
			strconv.FormatBool(row.Locked),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write balances row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush balances: %w", err)
	}

	return nil
}
