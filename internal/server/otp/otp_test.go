package otp

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SixDigits(t *testing.T) {
	i := NewIssuer(nil)
	for n := 0; n < 200; n++ {
		code, err := i.Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', code)
		}
	}
}

func TestGenerate_DigitsCoverRange(t *testing.T) {
	i := NewIssuer(nil)
	seen := map[rune]bool{}
	for n := 0; n < 500 && len(seen) < 10; n++ {
		code, err := i.Generate()
		require.NoError(t, err)
		for _, r := range code {
			seen[r] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestGenerate_LeadingZerosKept(t *testing.T) {
	i := NewIssuer(nil)
	i.random = bytes.NewReader(make([]byte, 64))

	code, err := i.Generate()
	require.NoError(t, err)
	assert.Equal(t, "000000", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_RandomError(t *testing.T) {
	i := NewIssuer(nil)
	i.random = failingReader{}

	_, err := i.Generate()
	require.Error(t, err)

	_, err = i.Issue()
	require.Error(t, err)
}

func TestIssue_StampsTime(t *testing.T) {
	at := time.Date(2025, 6, 19, 10, 0, 0, 0, time.UTC)
	i := NewIssuer(func() time.Time { return at })

	p, err := i.Issue()
	require.NoError(t, err)
	assert.Len(t, p.Code, Length)
	assert.True(t, p.IssuedAt.Equal(at))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("123456", "123456"))
	assert.False(t, Equal("123456", "123457"))
	assert.False(t, Equal("123456", "12345"))
	assert.False(t, Equal("123456", ""))
}
