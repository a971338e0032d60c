package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(uname, email, pwd string, isAdmin bool) error {
	ctx := context.Background()
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	found := true
	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(ctx, uname)
	if errors.Cause(err) == user.ErrNotFound {
		usr, err = cli.usrRepo.GetUserByUsernameOrEmail(ctx, email)
	}
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		found = false
	}

	now := time.Now().UTC()
	if isAdmin {
		usr.Roles = user.AllRoles
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = now

	if !found {
		usr.ID = uuid.New().String()
		usr.Name = uname
		usr.Username = uname
		usr.Email = email
		usr.IsActive = true
		usr.CreatedAt = now
		_, err = cli.usrRepo.CreateUser(ctx, usr)
		return err
	}
	isActive := true
	_, err = cli.usrRepo.UpdateUser(ctx, usr, &isActive)
	return err
}
