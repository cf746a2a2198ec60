package usecase

import (
	"context"
	"schoolhealth/domain"
	"time"
)

type studentUseCase struct {
	repo    domain.StudentRepo
	TimeOut time.Duration
}

func NewStudentUseCase(repo domain.StudentRepo, to time.Duration) domain.StudentUseCase {
	return &studentUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (su *studentUseCase) CreateStudentAndParent(ctx context.Context, req *domain.StudentAndParent) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	err := su.repo.CreateStudentAndParent(ctx, req)
	if err != nil {
		return err
	}
	return nil
}

func (su *studentUseCase) GetAllStudent(ctx context.Context) (*[]domain.Student, error) {
	v, err := su.repo.GetAllStudent(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (su *studentUseCase) GetStudentByID(ctx context.Context, studentID int) (*domain.Student, error) {
	v, err := su.repo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (su *studentUseCase) GetStudentsByGrade(ctx context.Context, grade int) (*[]domain.Student, error) {
	v, err := su.repo.GetStudentsByGrade(ctx, grade)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (su *studentUseCase) GetAllClass(ctx context.Context) (*[]domain.SchoolClass, error) {
	v, err := su.repo.GetAllClass(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}
