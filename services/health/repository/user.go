package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) CreateStaff(ctx context.Context, payload *domain.User) (*domain.User, error) {
	payload.Username = strings.ToLower(payload.Username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}
	payload.Password = string(hashedPassword)

	if err := ur.db.WithContext(ctx).Create(payload).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("username %s is already taken", payload.Username)
		}
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	payload.Password = ""
	return payload, nil
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(database *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: database,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User
	usernameLowered := strings.ToLower(data.Username)
	err := ar.db.WithContext(ctx).Where("username = ? AND deleted_at IS NULL", usernameLowered).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid username or password")
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	token, err := middleware.GenerateJWT(&user)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %v", err)
	}

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}
