package domain

import (
	"context"
	"time"
)

type SchoolClass struct {
	ClassID   int       `gorm:"primaryKey;autoIncrement" json:"class_id"`
	Name      string    `gorm:"type:varchar(10);not null;unique" json:"name" valid:"required~Class name is required"`
	Grade     int       `gorm:"not null;index" json:"grade" valid:"required~Grade is required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Student struct {
	StudentID int         `gorm:"primaryKey;autoIncrement" json:"student_id"`
	Name      string      `gorm:"type:varchar(150);not null;" json:"name" valid:"required~Name is required"`
	Gender    string      `gorm:"type:gender_enum;not null" json:"gender" valid:"required~Gender is required,in(male|female|other)~Invalid gender"`
	Grade     int         `gorm:"not null;index" json:"grade" valid:"required~Grade is required"`
	ClassID   int         `gorm:"not null" json:"class_id"`
	Class     SchoolClass `gorm:"foreignKey:ClassID;references:ClassID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"class" valid:"-"`
	ParentID  int         `json:"parent_id"`
	Parent    Parent      `gorm:"references:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent" valid:"-"`
	Telephone string      `gorm:"type:varchar(13);not null;" json:"telephone" valid:"required~Telephone is required"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type StudentAndParent struct {
	Student Student `json:"student"`
	Parent  Parent  `json:"parent"`
}

type StudentRepo interface {
	CreateStudentAndParent(ctx context.Context, req *StudentAndParent) error
	GetAllStudent(ctx context.Context) (*[]Student, error)
	GetStudentByID(ctx context.Context, studentID int) (*Student, error)
	GetStudentsByGrade(ctx context.Context, grade int) (*[]Student, error)
	GetAllClass(ctx context.Context) (*[]SchoolClass, error)
}

type StudentUseCase interface {
	CreateStudentAndParent(ctx context.Context, req *StudentAndParent) error
	GetAllStudent(ctx context.Context) (*[]Student, error)
	GetStudentByID(ctx context.Context, studentID int) (*Student, error)
	GetStudentsByGrade(ctx context.Context, grade int) (*[]Student, error)
	GetAllClass(ctx context.Context) (*[]SchoolClass, error)
}
