package post

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentFullTime = "FULL_TIME"
	EmploymentPartTime = "PART_TIME"
	EmploymentContract = "CONTRACT"
	EmploymentIntern   = "INTERN"
)

type Post struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string          `gorm:"size:255;not null;uniqueIndex:uq_post_department_title,priority:2"`
	Description      string          `gorm:"type:text"`
	DepartmentID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_post_department_title,priority:1"`
	Department       *PostDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	Requirements     *string         `gorm:"type:text"`
	Responsibilities *string         `gorm:"type:text"`
	SalaryRange      *string         `gorm:"size:100"`
	EmploymentType   string          `gorm:"size:20;not null;default:FULL_TIME"`
	IsActive         bool            `gorm:"not null;default:true;index"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"`
}

type PostDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (PostDepartment) TableName() string {
	return "departments"
}

type PostSummary struct {
	Post
	EmployeeCount int64
}
