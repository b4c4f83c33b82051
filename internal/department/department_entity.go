package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"size:255;not null;uniqueIndex:uq_department_name"`
	Description string         `gorm:"type:text"`
	IsActive    bool           `gorm:"not null;default:true;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// DepartmentSummary adalah baris list beserta jumlah relasi.
type DepartmentSummary struct {
	Department    `gorm:"embedded"`
	EmployeeCount int64
	PostCount     int64
}
