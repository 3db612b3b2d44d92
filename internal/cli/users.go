package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/server/services"
)

var (
	ErrUserExists   = errors.New("email already registered")
	ErrInvalidInput = errors.New("fields must be non-empty without surrounding spaces")
)

// register <email> <first> <last> [-teacher]
func (a *App) register(ctx context.Context, args []string) error {
	var teacher bool
	var fields []string
	for _, arg := range args {
		switch arg {
		case "-teacher", "--teacher":
			teacher = true
		default:
			fields = append(fields, arg)
		}
	}
	if len(fields) != 3 {
		return fmt.Errorf("register <email> <first> <last> [-teacher]: %w", ErrUsage)
	}
	email, first, last := fields[0], fields[1], fields[2]

	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if !services.ValidFields(email, first, last, string(pw)) {
		return ErrInvalidInput
	}

	ok, err := a.store.Users().Register(ctx, email, string(pw), first, last, teacher)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserExists
	}

	fmt.Fprintf(a.out, "Registered %s\n", email)
	return nil
}

// login <email>
func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("login <email>: %w", ErrUsage)
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	token, err := a.store.Users().Login(ctx, args[0], string(pw))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

// projects <email>
func (a *App) projects(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("projects <email>: %w", ErrUsage)
	}
	email := args[0]
	ps := a.store.Projects()

	ids, err := ps.List(ctx, email)
	if err != nil {
		return err
	}

	for _, id := range ids {
		name, err := ps.Name(ctx, id)
		if err != nil {
			return err
		}
		admin, err := ps.IsAdmin(ctx, email, id)
		if err != nil {
			return err
		}
		role := "member"
		if admin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", id, name, role)
	}
	return nil
}
