package service

import (
	"context"
	"errors"
	"strings"

	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/limbo/stepcount/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) ResolveIdentity(ctx context.Context, req *IdentityRequest) (*entity.User, error) {
	if req == nil {
		return nil, errors.New("identity request is nil")
	}
	normalized := IdentityRequest{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  strings.TrimSpace(req.Name),
	}
	if normalized.Name == "" {
		normalized.Name = normalized.Email
	}
	if err := validateStruct(&normalized); err != nil {
		return nil, err
	}
	user, err := us.repo.Ensure(ctx, normalized.Email, normalized.Name)
	if err != nil {
		return nil, errors.New("repository ensuring error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
