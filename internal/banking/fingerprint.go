package banking

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fingerprint derives the dedup key for a bank transaction from its
// identifying fields. The hash is SHA-256 over a canonical string, hex
// encoded, and is the only fingerprint algorithm in the system: imports
// compute it and duplicate checks compare it, so the two can never drift.
//
// The amount is normalized to two decimal places and the date to ISO
// yyyy-mm-dd so formatting differences between sources cannot produce
// distinct fingerprints for the same transaction. Each field is length
// prefixed, so a delimiter inside an account id or reference cannot
// shift field boundaries and collide with a different transaction.
func Fingerprint(bankAccountID string, date time.Time, amount decimal.Decimal, reference string) string {
	day := date.Format("2006-01-02")
	amt := amount.StringFixed(2)
	canonical := fmt.Sprintf("%d:%s|%d:%s|%d:%s|%d:%s",
		len(bankAccountID), bankAccountID,
		len(day), day,
		len(amt), amt,
		len(reference), reference,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
