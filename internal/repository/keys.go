package repository

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key namespaces inside the shared store.
const (
	InvoicePrefix = "invoice:"
	AuditPrefix   = "audit:"
)

const suffixLen = 9

// NewInvoiceKey builds "invoice:<unix-ms>:<random>". The timestamp plus a
// random suffix makes collisions practically impossible without a counter.
func NewInvoiceKey(now time.Time) string {
	return newKey(InvoicePrefix, now)
}

// NewAuditKey builds "audit:<unix-ms>:<random>".
func NewAuditKey(now time.Time) string {
	return newKey(AuditPrefix, now)
}

// IsInvoiceKey reports whether id lives in the invoice namespace.
func IsInvoiceKey(id string) bool {
	return strings.HasPrefix(id, InvoicePrefix) && len(id) > len(InvoicePrefix)
}

func newKey(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + ":" + randomSuffix()
}

// randomSuffix returns suffixLen lowercase base36 characters.
func randomSuffix() string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(s) < suffixLen {
		s = strings.Repeat("0", suffixLen-len(s)) + s
	}
	return s[len(s)-suffixLen:]
}
