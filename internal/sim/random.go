package sim

import (
	"fmt"
	"hash/fnv"
)

// deterministicRoll hashes a seed and a label into a non-negative int.
// The simulation never touches an ambient random source; every stochastic
// choice flows through rolls like this one so runs replay exactly.
func deterministicRoll(seed int64, label string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, label)))
	return int(h.Sum64() & 0x7fffffff)
}
