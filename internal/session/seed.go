package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// DeriveSeed returns a deterministic seed for game n of session id using
// HMAC(secret, id + "/" + n). Replaying a session id with the same secret
// deals the same decks, letter pools and question lists.
func DeriveSeed(secret, id string, n int) uint64 {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(id + "/" + strconv.Itoa(n)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// seeder yields the seed for the nth game of a session. An explicit seed
// from the game config pins game 0 and steps by one for later games.
func seeder(secret, id string, explicit uint64) func(n int) uint64 {
	if explicit != 0 {
		return func(n int) uint64 { return explicit + uint64(n) }
	}
	return func(n int) uint64 { return DeriveSeed(secret, id, n) }
}

// sequence builds the first state eagerly so config errors surface at
// creation, then hands out a freshly seeded state for every later game.
// The returned func is only called under the match lock.
func sequence[S any](seeds func(int) uint64, build func(seed uint64) (S, error)) (func() S, error) {
	first, err := build(seeds(0))
	if err != nil {
		return nil, err
	}
	n := 0
	return func() S {
		n++
		if n == 1 {
			return first
		}
		s, err := build(seeds(n - 1))
		if err != nil {
			// Only the seed differs from the build that already succeeded.
			panic(err)
		}
		return s
	}, nil
}
