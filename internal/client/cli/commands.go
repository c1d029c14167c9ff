package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/lucy1234dev/server/internal/client/client"
	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/server/models"
)

var errInvalidPrice = errors.New("invalid price")

// report prints err the way the user should see it and returns it.
func (a *App) report(err error) error {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && errors.Is(err, common.ErrorThrottled):
		fmt.Fprintf(a.out, "Error: %s (retry in %ds)\n", apiErr.Detail, apiErr.RemainingSeconds)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Error: server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
	return err
}

func (a *App) ask(prompt string) (string, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", a.report(err)
	}
	return s, nil
}

// askEmail offers the last used email when the input is left empty.
func (a *App) askEmail() (string, error) {
	prompt := "Enter email"
	if a.email != "" {
		prompt = fmt.Sprintf("Enter email [%s]", a.email)
	}
	email, err := a.ask(prompt)
	if err != nil {
		return "", err
	}
	if email == "" {
		email = a.email
	}
	return email, nil
}

func (a *App) askPassword() (string, error) {
	pw, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", a.report(err)
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) printMessage(msg string, err error) error {
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Home(ctx context.Context) error {
	return a.printMessage(a.client.Home(ctx))
}

func (a *App) Signup(ctx context.Context) error {
	name, err := a.ask("Enter name")
	if err != nil {
		return err
	}
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := a.askPassword()
	if err != nil {
		return err
	}

	msg, err := a.client.Signup(ctx, name, email, password)
	if err == nil {
		a.email = email
	}
	return a.printMessage(msg, err)
}

func (a *App) VerifyOTP(ctx context.Context) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	code, err := a.ask("Enter the code you received")
	if err != nil {
		return err
	}
	return a.printMessage(a.client.VerifyOTP(ctx, email, code))
}

func (a *App) ResendOTP(ctx context.Context) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	return a.printMessage(a.client.ResendOTP(ctx, email))
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	password, err := a.askPassword()
	if err != nil {
		return err
	}

	msg, err := a.client.Login(ctx, email, password)
	if err == nil {
		a.email = email
	}
	return a.printMessage(msg, err)
}

func (a *App) printAccounts(accounts []models.AccountView) {
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tNAME\tVERIFIED\tID")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", acc.Email, acc.Name, acc.Verified, acc.ID)
	}
	_ = tw.Flush()
}

func (a *App) Users(ctx context.Context) error {
	accounts, err := a.client.Users(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printAccounts(accounts)
	return nil
}

func (a *App) VerifiedUsers(ctx context.Context) error {
	accounts, err := a.client.VerifiedUsers(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printAccounts(accounts)
	return nil
}

func (a *App) Products(ctx context.Context) error {
	products, err := a.client.Products(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRICE\tCATEGORIES\tPAGE\tIMAGE\tID")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\t%s\t%s\n", p.Name, p.Price, p.Categories, p.Page, p.Image, p.ID)
	}
	return tw.Flush()
}

func (a *App) AddProduct(ctx context.Context) error {
	var in models.ProductCreate
	var err error

	if in.Name, err = a.ask("Enter product name"); err != nil {
		return err
	}

	price, err := a.ask("Enter price")
	if err != nil {
		return err
	}
	if in.Price, err = strconv.ParseFloat(price, 64); err != nil {
		fmt.Fprintln(a.out, "Error: price must be a number")
		return errInvalidPrice
	}

	if in.Categories, err = a.ask("Enter categories"); err != nil {
		return err
	}
	if in.Page, err = a.ask("Enter page"); err != nil {
		return err
	}
	if in.Image, err = a.ask("Enter image URL"); err != nil {
		return err
	}

	p, err := a.client.AddProduct(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Product added: %s (%s)\n", p.Name, p.ID)
	return nil
}
