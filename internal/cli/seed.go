package cli

import (
	"context"
	"errors"
	"fmt"
)

const seedPassword = "password"

var ErrAlreadySeeded = errors.New("store already contains seed data")

type seedUser struct {
	email, first, last string
	teacher            bool
}

var seedUsers = []seedUser{
	{"student@example.com", "Joan", "Student", false},
	{"user@example.com", "User", "Userface", false},
	{"teacher@example.com", "Teach", "Er", true},
}

// seed creates the schema and a small demo data set: three users (one
// teacher), two projects owned by the first student and a class project
// owned by the teacher with the student as member.
func (a *App) seed(ctx context.Context) error {
	if err := a.store.CreateSchema(ctx); err != nil {
		return err
	}

	users := a.store.Users()
	for _, u := range seedUsers {
		ok, err := users.Register(ctx, u.email, seedPassword, u.first, u.last, u.teacher)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadySeeded
		}
	}

	student, teacher := seedUsers[0].email, seedUsers[2].email
	projects := a.store.Projects()

	for _, name := range []string{"pname", "swag name"} {
		if _, err := projects.Create(ctx, student, name); err != nil {
			return err
		}
	}

	if _, err := projects.CreateForClass(ctx, student, teacher, "Teacher project"); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Seeded %d users and 3 projects (password %q)\n", len(seedUsers), seedPassword)
	return nil
}
