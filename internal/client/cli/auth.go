package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarshanchGIT/wordverse/internal/client/api"
)

func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.client.Signup(ctx, name, email, password); err != nil {
		if errors.Is(err, api.ErrEmailExists) {
			fmt.Fprintln(a.out, "That email is already registered, try signin.")
		} else {
			fmt.Fprintln(a.out, err.Error())
		}
		return err
	}

	a.userEmail = email
	fmt.Fprintln(a.out, "Account created, you are signed in.")
	return nil
}

func (a *App) Signin(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.client.Signin(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid email or password.")
		} else {
			fmt.Fprintln(a.out, err.Error())
		}
		return err
	}

	a.userEmail = email
	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	// Credentials are stateless, dropping the token is all there is to it.
	a.client.SetToken("")
	a.userEmail = ""
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
