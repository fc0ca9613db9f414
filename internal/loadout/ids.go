package loadout

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// idSource выдаёт детерминированные 24-символьные hex ID предметов.
// Same (seed, salt) always yields the same sequence, so seeded generations
// are reproducible down to item ids.
type idSource struct {
	seed uint64
	salt string
	n    uint64
}

func newIDSource(seed uint64, salt string) *idSource {
	return &idSource{seed: seed, salt: salt}
}

func (s *idSource) next() string {
	buf := make([]byte, 16, 16+len(s.salt))
	binary.LittleEndian.PutUint64(buf[:8], s.seed)
	binary.LittleEndian.PutUint64(buf[8:], s.n)
	buf = append(buf, s.salt...)
	s.n++

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:12])
}
