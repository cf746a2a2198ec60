package usecase

import (
	"context"
	"schoolhealth/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
}

func NewAuthUseCase(repo domain.AuthRepo) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
	}
}

func (auc *authUC) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	datas, err := auc.authRepo.Login(ctx, data)
	if err != nil {
		return nil, err
	}
	return datas, nil
}
