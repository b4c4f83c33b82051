package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string     `gorm:"size:30;not null;uniqueIndex:uq_employee_number"`
	FirstName      string     `gorm:"size:100;not null"`
	LastName       string     `gorm:"size:100;not null"`
	Email          string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone          *string    `gorm:"size:30"`
	Address        *string    `gorm:"type:text"`
	DateOfJoining  time.Time  `gorm:"type:date;not null"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index"`
	PostID         *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomRoleID   *uuid.UUID `gorm:"type:uuid;index"`
	IsActive       bool       `gorm:"not null;default:true;index"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	Post       *EmployeePost       `gorm:"foreignKey:PostID;references:ID"`
	Manager    *EmployeeManager    `gorm:"foreignKey:ManagerID;references:ID"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeePost struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (EmployeePost) TableName() string {
	return "posts"
}

type EmployeeManager struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
}

func (EmployeeManager) TableName() string {
	return "employees"
}
