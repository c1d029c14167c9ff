package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Home(ctx context.Context) error
	Signup(ctx context.Context) error
	VerifyOTP(ctx context.Context) error
	ResendOTP(ctx context.Context) error
	Login(ctx context.Context) error
	Users(ctx context.Context) error
	VerifiedUsers(ctx context.Context) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
}

const helpText = "Available commands: home, signup, verify, resend, login, users, verified, products, addproduct, exit"

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit". Handlers report their own errors, so they are ignored
// here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("shop%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "home":
			_ = a.Home(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "verify":
			_ = a.VerifyOTP(ctx)

		case "resend":
			_ = a.ResendOTP(ctx)

		case "login":
			_ = a.Login(ctx)

		case "users":
			_ = a.Users(ctx)

		case "verified":
			_ = a.VerifiedUsers(ctx)

		case "products", "l", "list":
			_ = a.Products(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
