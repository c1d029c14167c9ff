// Package models holds the records persisted by the server stores.
package models

import (
	"github.com/lucy1234dev/server/internal/mapx"
	"github.com/lucy1234dev/server/internal/timex"
)

// Account is a registered user. Password holds an encoded hash, never the
// plaintext.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Verified bool   `json:"verified"`
}

// AccountView is the public projection of an Account.
type AccountView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

func (a *Account) View() AccountView {
	return AccountView{ID: a.ID, Name: a.Name, Email: a.Email, Verified: a.Verified}
}

// Accounts is the accounts document: email -> Account in registration order.
type Accounts = mapx.OrderedMap[*Account]

// PendingOTP is the code most recently issued for an email.
type PendingOTP struct {
	Code     string         `json:"otp"`
	IssuedAt timex.UnixTime `json:"timestamp"`
}

// PendingOTPs is the otps document: email -> PendingOTP.
type PendingOTPs = mapx.OrderedMap[*PendingOTP]
