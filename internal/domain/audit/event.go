// Package audit defines the append-only event trail recorded for every
// export and import run.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Event is a single audit record. Events form a hash chain: each event
// carries the hash of its predecessor so tampering is detectable.
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	PrevHash  string         `json:"prev_hash"`
	Hash      string         `json:"hash"`
}

// CalculateHash computes the chained hash for the event.
func (e *Event) CalculateHash() string {
	meta, _ := json.Marshal(e.Metadata)
	h := sha256.New()
	fmt.Fprintf(h, "%s:%d:%s:%s:%s:%s", e.ID, e.Timestamp.UnixNano(), e.Action, e.Actor, meta, e.PrevHash)
	return hex.EncodeToString(h.Sum(nil))
}
