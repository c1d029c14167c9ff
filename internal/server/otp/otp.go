// Package otp issues one-time verification codes.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/lucy1234dev/server/internal/server/models"
	"github.com/lucy1234dev/server/internal/timex"
)

// Length is the number of digits in a code.
const Length = 6

// Issuer generates codes and stamps them with the issue time.
type Issuer struct {
	random io.Reader
	now    func() time.Time
}

func NewIssuer(now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{random: rand.Reader, now: now}
}

// Generate returns Length decimal digits, each uniform over 0-9.
// Leading zeros are kept.
func (i *Issuer) Generate() (string, error) {
	buf := make([]byte, Length)
	ten := big.NewInt(10)
	for k := range buf {
		n, err := rand.Int(i.random, ten)
		if err != nil {
			return "", fmt.Errorf("otp: %w", err)
		}
		buf[k] = byte('0' + n.Int64())
	}
	return string(buf), nil
}

// Issue returns a fresh pending code issued now.
func (i *Issuer) Issue() (*models.PendingOTP, error) {
	code, err := i.Generate()
	if err != nil {
		return nil, err
	}
	return &models.PendingOTP{Code: code, IssuedAt: timex.NewUnixTime(i.now())}, nil
}

// Equal compares two codes in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
