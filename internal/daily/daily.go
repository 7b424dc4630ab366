package daily

import (
	"crypto/sha1"
	"errors"
	"math/big"
	"time"

	"github.com/kanales/levdle/internal/words"
)

// dateLayout is ISO 8601 calendar date (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// ErrInvalidDate is returned for a date key that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("daily: invalid date key")

// DateKey returns YYYY-MM-DD for t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey validates a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}
	return t, nil
}

// WordIndex returns a deterministic index for a date key:
// SHA-1(date) read as a big-endian unsigned integer, modulo n.
func WordIndex(date string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := sha1.Sum([]byte(date))
	v := new(big.Int).SetBytes(sum[:])
	return int(v.Mod(v, big.NewInt(int64(n))).Int64())
}

// SecretFor returns the secret word for a date key.
func SecretFor(list *words.List, date string) string {
	return list.At(WordIndex(date, list.Len()))
}
