package usecase

import (
	"context"
	"schoolhealth/domain"
)

type userUseCase struct {
	repo domain.UserRepo
}

func NewUserUseCase(repo domain.UserRepo) domain.UserUseCase {
	return &userUseCase{
		repo: repo,
	}
}

func (uu *userUseCase) CreateStaff(ctx context.Context, payload *domain.User) (*domain.User, error) {
	v, err := uu.repo.CreateStaff(ctx, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}
