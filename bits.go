package layermask

import (
	"golang.org/x/exp/constraints"
)

func containsAllBits[T constraints.Unsigned](bits, test T) bool {
	return bits&test == test
}

func withBits[T constraints.Unsigned](bits, add T) T {
	return bits | add
}

func clearBits[T constraints.Unsigned](bits, remove T) T {
	return bits & (^remove)
}

func keepBits[T constraints.Unsigned](bits, keep T) T {
	return bits & keep
}
