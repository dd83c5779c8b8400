package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/threecards/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	require.Len(t, id, Length)
	require.NoError(t, Validate(id))

	u, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	assert.Equal(t, uuid.RFC4122, u.Variant())
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	a := NewGenerator(clock, randutil.New(5)).Generate()
	b := NewGenerator(clock, randutil.New(5)).Generate()
	assert.Equal(t, a, b)
	require.NoError(t, Validate(a))

	u, err := Decode(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	var ms int64
	for _, b := range u[:6] {
		ms = ms<<8 | int64(b)
	}
	assert.Equal(t, clock.Now().UnixMilli(), ms)
}

func TestGeneratorTimeSorted(t *testing.T) {
	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, randutil.New(1))

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "IDs not sorted: %s >= %s", ids[i-1], ids[i])
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	u := uuid.MustParse("0190a1b2-c3d4-7e5f-8a6b-7c8d9e0f1a2b")
	got, err := Decode(Encode(u))
	require.NoError(t, err)
	assert.Equal(t, u, got)

	assert.Equal(t, strings.Repeat("0", Length), Encode(uuid.Nil))
	var all uuid.UUID
	for i := range all {
		all[i] = 0xff
	}
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), Encode(all))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid ID", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "invalid character", id: "01h5n0et5q6mt3v7ms1234abcu", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
