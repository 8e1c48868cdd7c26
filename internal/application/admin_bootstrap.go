package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

type AdminAccount struct {
	Username string
	Password string
	Email    string
}

// EnsureAdmin creates the admin account unless an admin with that username
// already exists. Safe to run on every start.
func EnsureAdmin(ctx context.Context, users repo.UserRepository, acct AdminAccount, logger *logrus.Logger) error {
	if acct.Username == "" || acct.Password == "" {
		return errors.New("admin username and password are required")
	}
	ok, err := users.ExistsAdmin(ctx, acct.Username)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	hash, err := helpers.HashPassword(acct.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Username:     acct.Username,
		Email:        strings.ToLower(acct.Email),
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         entity.RoleAdmin,
	}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return fmt.Errorf("admin bootstrap: username %q or email %q belongs to another account: %w", acct.Username, acct.Email, err)
		}
		return err
	}
	if logger != nil {
		logger.WithField("username", u.Username).Info("admin account created")
	}
	return nil
}
