package model

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	idMillis int64
	idSeq    int
)

// NewID generates a collection-unique identifier from a monotonic
// millisecond clock. Ids created in the same millisecond get a sequence
// suffix so they never collide within a process.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= idMillis {
		idSeq++
		return strconv.FormatInt(idMillis, 10) + "." + strconv.Itoa(idSeq)
	}
	idMillis = now
	idSeq = 0
	return strconv.FormatInt(now, 10)
}
