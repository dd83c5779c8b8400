// Package gameid generates session identifiers: a UUIDv7 rendered as a
// 26-character lowercase Crockford base32 string, so IDs sort by creation time.
package gameid

import (
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator creates IDs. A zero Generator uses the wall clock and
// crypto-quality randomness.
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator creates a generator. Either argument may be nil.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	return &Generator{clock: clock, randSource: randSource}
}

// Generate creates a new ID using the real clock and crypto randomness
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID
func (g *Generator) Generate() string {
	if g.clock == nil && g.randSource == nil {
		id, err := uuid.NewV7()
		if err != nil {
			panic("failed to generate session id: " + err.Error())
		}
		return Encode(id)
	}
	return Encode(g.deterministicV7())
}

// deterministicV7 lays out a UUIDv7 by hand so that both the timestamp and the
// random bits come from injected sources.
func (g *Generator) deterministicV7() uuid.UUID {
	var id uuid.UUID

	now := time.Now()
	if g.clock != nil {
		now = g.clock.Now()
	}
	ms := now.UnixMilli()

	// 48-bit big-endian millisecond timestamp
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	for i := 6; i < 16; i++ {
		if g.randSource != nil {
			id[i] = byte(g.randSource.IntN(256))
		} else {
			id[i] = byte(time.Now().UnixNano() >> (8 * (i - 6)))
		}
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
	return id
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are preceded by
// two zero bits, so the first character is always in 0-7.
func Encode(id uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(Length)
	for i := 0; i < Length; i++ {
		var v byte
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			v <<= 1
			if pos >= 0 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

// Decode parses an encoded ID back into a UUID
func Decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, s[i])
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			if pos < 0 {
				continue
			}
			if v&(0x10>>b) != 0 {
				id[pos/8] |= 0x80 >> (pos % 8)
			}
		}
	}
	return id, nil
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}

	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}

	return nil
}
