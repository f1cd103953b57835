package main

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/user"
)

// addUser updates or creates an account with the given role.
func (cli *commandLine) addUser(email, pwd, role string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrRepo.GetUser(ctx, user.GetFilter{Email: email})
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		now := time.Now().UTC()
		usr = user.User{
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	usr.Role = user.NormalizeRole(role)
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}

	if usr.ID == "" {
		_, err = cli.usrRepo.CreateUser(ctx, usr)
	} else {
		usr.UpdatedAt = time.Now().UTC()
		_, err = cli.usrRepo.UpdateUser(ctx, usr)
	}
	return err
}
