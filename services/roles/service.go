package roles

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mylog"
)

type Service struct {
	store  mylocalstore.LocalStore
	logger mylog.Logger
}

func NewService(store mylocalstore.LocalStore) *Service {
	return &Service{
		store:  store,
		logger: mylog.New("roles"),
	}
}

// Get returns the role of the user with the given email. A stored "user" reads as customer,
// any other unknown value in storage is treated as no role.
func (s *Service) Get(c context.Context, email string) (Role, bool, error) {
	if email == "" {
		return "", false, nil
	}

	raw, found, err := s.store.GetItem(c, storageKey(email))
	if err != nil {
		return "", false, myerrors.NewInternalError(err)
	}
	if !found {
		return "", false, nil
	}

	role := storedRole(raw)
	if !role.Valid() {
		s.logger.Log(c, email, mylog.SeverityWarn, "Ignoring unknown role '%s'", raw)
		return "", false, nil
	}
	return role, true, nil
}

// Assign stores a role once. Assigning the current role again is accepted, a different one is a conflict.
func (s *Service) Assign(c context.Context, email string, role Role) (Role, error) {
	if email == "" {
		return "", myerrors.NewInvalidInputErrorf("Missing email")
	}
	if !role.Valid() {
		return "", myerrors.NewInvalidInputErrorf("Invalid role '%s'", role)
	}

	err := s.store.RunInTransaction(c, func(c context.Context) error {
		current, found, err := s.Get(c, email)
		if err != nil {
			return err
		}
		if found {
			if current != role {
				return myerrors.NewConflictError(fmt.Errorf("Role of %s is already %s", email, current))
			}
			return nil
		}

		err = s.store.SetItem(c, storageKey(email), string(role))
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Log(c, email, mylog.SeverityInfo, "User %s has role %s", email, role)

	return role, nil
}

func (s *Service) IsAdmin(c context.Context, email string) (bool, error) {
	role, found, err := s.Get(c, email)
	if err != nil {
		return false, err
	}
	return found && role == RoleAdmin, nil
}

// RequireAdmin fails with 403 unless the user has the admin role.
func (s *Service) RequireAdmin(c context.Context, email string) error {
	isAdmin, err := s.IsAdmin(c, email)
	if err != nil {
		return err
	}
	if !isAdmin {
		return myerrors.NewAuthenticationError(fmt.Errorf("Admin role required"))
	}
	return nil
}
