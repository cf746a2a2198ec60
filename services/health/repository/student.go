package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolhealth/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(database *gorm.DB) domain.StudentRepo {
	return &studentRepository{
		db: database,
	}
}

func (sr *studentRepository) CreateStudentAndParent(ctx context.Context, req *domain.StudentAndParent) error {
	var class domain.SchoolClass
	err := sr.db.WithContext(ctx).Where("class_id = ?", req.Student.ClassID).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("class %d: %w", req.Student.ClassID, domain.ErrNotFound)
		}
		return fmt.Errorf("error fetching class details: %v", err)
	}

	err = sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&req.Parent).Error; err != nil {
			return fmt.Errorf("failed to create parent: %w", err)
		}

		req.Student.ParentID = req.Parent.ParentID
		req.Student.Grade = class.Grade
		if err := tx.Create(&req.Student).Error; err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("student or parent already registered: %v", pgErr.Detail)
		}
		return err
	}

	return nil
}

func (sr *studentRepository) GetAllStudent(ctx context.Context) (*[]domain.Student, error) {
	var students []domain.Student
	err := sr.db.WithContext(ctx).Preload("Parent").Preload("Class").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve all students: %w", err)
	}

	return &students, nil
}

func (sr *studentRepository) GetStudentByID(ctx context.Context, studentID int) (*domain.Student, error) {
	var student domain.Student
	err := sr.db.WithContext(ctx).Preload("Parent").Preload("Class").Where("student_id = ?", studentID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d: %w", studentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching student details: %v", err)
	}

	return &student, nil
}

func (sr *studentRepository) GetStudentsByGrade(ctx context.Context, grade int) (*[]domain.Student, error) {
	var students []domain.Student
	err := sr.db.WithContext(ctx).Preload("Parent").Preload("Class").Where("grade = ?", grade).Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students for grade %d: %w", grade, err)
	}

	return &students, nil
}

func (sr *studentRepository) GetAllClass(ctx context.Context) (*[]domain.SchoolClass, error) {
	var classes []domain.SchoolClass
	err := sr.db.WithContext(ctx).Order("grade ASC, name ASC").Find(&classes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve classes: %w", err)
	}

	return &classes, nil
}
