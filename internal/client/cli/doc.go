// Package cli provides the interactive flower shop command-line client.
//
// The REPL reads one command per line and prompts for the fields each
// command needs:
//
//	home                       show the server greeting
//	signup                     register a new account
//	verify                     confirm an account with its one-time code
//	resend                     request a new code once the cooldown passed
//	login                      check credentials of a verified account
//	users | verified           list all or only verified accounts
//	products | addproduct      list or add catalog items
//	help | exit | quit
//
// Server replies are printed as is; failures show the server's detail
// message.
package cli
