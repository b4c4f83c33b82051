package infra_test

import (
	"testing"

	"go-leave/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func TestNewEnforcer_DefaultPolicies(t *testing.T) {
	e, err := infra.NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		role, obj, act string
		allowed        bool
	}{
		{"EMPLOYEE", "leave_request", "create", true},
		{"EMPLOYEE", "leave_request", "approve", false},
		{"HR", "leave_request", "approve", true},
		{"EMPLOYEE", "leave_balance", "initialize", false},
		{"HR", "leave_balance", "initialize", true},
		{"EMPLOYEE", "employee", "list", false},
		{"HR", "employee", "delete", false},
		{"ADMIN", "employee", "delete", true},
		{"HR", "post", "delete", false},
		{"ADMIN", "post", "delete", true},
		{"HR", "role", "delete", false},
		{"ADMIN", "role", "delete", true},
		{"GUEST", "leave_request", "read", false},
	}

	for _, tc := range cases {
		ok, err := e.Enforce(tc.role, tc.obj, tc.act)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, ok, "%s %s:%s", tc.role, tc.obj, tc.act)
	}
}
