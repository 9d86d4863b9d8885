package util

import (
	"encoding/binary"
	"math/rand/v2"
)

// New returns a ChaCha8-backed generator whose whole stream is fixed by seed.
// Seed 0 is a valid seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(expandSeed(seed)))
}

// Derive returns an independent generator for stream under a parent seed.
func Derive(seed, stream uint64) *rand.Rand {
	return New(mix(seed ^ (stream + 0x9e3779b97f4a7c15)))
}

func expandSeed(seed uint64) [32]byte {
	var key [32]byte
	x := seed
	for i := 0; i < 4; i++ {
		x += 0x9e3779b97f4a7c15
		binary.LittleEndian.PutUint64(key[i*8:], mix(x))
	}
	return key
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
