package reminder

import "hash/fnv"

// Alert kinds: each enabled slot owns exactly one alarm of each kind.
const (
	KindLead  = "lead"
	KindExact = "exact"
)

// handleFor derives a deterministic notification ID for a slot/kind pair.
// FNV-1a over "slotID:kind", masked to a positive 31-bit value so it fits
// the platform's integer notification IDs. Hashing instead of string
// concatenation means two distinct slot IDs cannot alias through prefix
// truncation; the scheduler's ownership registry catches the residual
// hash-collision case.
func handleFor(slotID, kind string) int {
	h := fnv.New32a()
	h.Write([]byte(slotID))
	h.Write([]byte{':'})
	h.Write([]byte(kind))
	return int(h.Sum32() & 0x7fffffff)
}
