package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Skotchmaster/qa_api/internal/events"
	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

type UserService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.Session(ctx).Users().List()
}

// Get resolves ref as an id when numeric, as an email when it contains "@",
// and as a name otherwise.
func (s *UserService) Get(ctx context.Context, ref string) (*models.User, error) {
	user, err := findUser(s.Repo.Session(ctx).Users(), ref)
	return user, translate(err, ErrUserNotFound)
}

func (s *UserService) Create(ctx context.Context, req transport.UserRequest) (*models.User, error) {
	if isBlank(req.Name) {
		return nil, missingFields("name")
	}

	user := &models.User{Name: *req.Name, Email: req.Email}
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		return uow.Users().Create(user)
	})
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	events.Notify(ctx, s.Events, events.New("user_created", "user", user.ID, user))
	return user, nil
}

// Update overwrites every field of the user; an absent email becomes null.
func (s *UserService) Update(ctx context.Context, id uint, req transport.UserRequest) (*models.User, error) {
	if isBlank(req.Name) {
		return nil, missingFields("name")
	}

	var user *models.User
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		user, err = uow.Users().Get(id)
		if err != nil {
			return err
		}
		user.Name = *req.Name
		user.Email = req.Email
		return uow.Users().Save(user)
	})
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	events.Notify(ctx, s.Events, events.New("user_updated", "user", user.ID, user))
	return user, nil
}

// Delete removes the user ref resolves to and returns the deleted row.
func (s *UserService) Delete(ctx context.Context, ref string) (*models.User, error) {
	var user *models.User
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		user, err = findUser(uow.Users(), ref)
		if err != nil {
			return err
		}
		refs, err := uow.Transactions().CountByUser(user.ID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: user %d has %d transactions", ErrConflict, user.ID, refs)
		}
		return uow.Users().Delete(user)
	})
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	events.Notify(ctx, s.Events, events.New("user_deleted", "user", user.ID, nil))
	return user, nil
}

func findUser(users repo.UserRepo, ref string) (*models.User, error) {
	if id, ok := parseID(ref); ok {
		return users.Get(id)
	}
	if strings.Contains(ref, "@") {
		return users.FindByEmail(ref)
	}
	return users.FindByName(ref)
}

func parseID(ref string) (uint, bool) {
	id, err := strconv.ParseUint(ref, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
