package domain_test

import (
	"testing"

	"go-leave/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestActor_IsPrivileged(t *testing.T) {
	assert.True(t, domain.Actor{Role: "ADMIN"}.IsPrivileged())
	assert.True(t, domain.Actor{Role: " hr "}.IsPrivileged())
	assert.False(t, domain.Actor{Role: "EMPLOYEE"}.IsPrivileged())
	assert.False(t, domain.Actor{}.IsPrivileged())
}

func TestActor_IsAdmin(t *testing.T) {
	assert.True(t, domain.Actor{Role: "admin"}.IsAdmin())
	assert.False(t, domain.Actor{Role: "HR"}.IsAdmin())
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, domain.RoleEmployee, domain.NormalizeRole(""))
	assert.Equal(t, domain.RoleHR, domain.NormalizeRole("hr"))
}
