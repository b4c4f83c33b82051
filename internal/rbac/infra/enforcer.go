package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// ModelText: role sistem (ADMIN/HR/EMPLOYEE) langsung jadi subject policy.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the resource/action matrix of the system roles.
var DefaultPolicies = [][]string{
	{"ADMIN", "leave_request", "read"},
	{"ADMIN", "leave_request", "create"},
	{"ADMIN", "leave_request", "approve"},
	{"HR", "leave_request", "read"},
	{"HR", "leave_request", "create"},
	{"HR", "leave_request", "approve"},
	{"EMPLOYEE", "leave_request", "read"},
	{"EMPLOYEE", "leave_request", "create"},

	{"ADMIN", "leave_balance", "read"},
	{"ADMIN", "leave_balance", "initialize"},
	{"HR", "leave_balance", "read"},
	{"HR", "leave_balance", "initialize"},
	{"EMPLOYEE", "leave_balance", "read"},

	{"ADMIN", "leave_type", "read"},
	{"ADMIN", "leave_type", "create"},
	{"ADMIN", "leave_type", "update"},
	{"HR", "leave_type", "read"},
	{"HR", "leave_type", "create"},
	{"HR", "leave_type", "update"},
	{"EMPLOYEE", "leave_type", "read"},

	{"ADMIN", "employee", "list"},
	{"ADMIN", "employee", "read"},
	{"ADMIN", "employee", "create"},
	{"ADMIN", "employee", "update"},
	{"ADMIN", "employee", "delete"},
	{"HR", "employee", "list"},
	{"HR", "employee", "read"},
	{"HR", "employee", "create"},
	{"HR", "employee", "update"},
	{"EMPLOYEE", "employee", "read"},

	{"ADMIN", "department", "read"},
	{"ADMIN", "department", "create"},
	{"ADMIN", "department", "update"},
	{"HR", "department", "read"},
	{"HR", "department", "create"},
	{"HR", "department", "update"},
	{"EMPLOYEE", "department", "read"},

	{"ADMIN", "post", "read"},
	{"ADMIN", "post", "create"},
	{"ADMIN", "post", "update"},
	{"ADMIN", "post", "delete"},
	{"HR", "post", "read"},
	{"HR", "post", "create"},
	{"HR", "post", "update"},
	{"EMPLOYEE", "post", "read"},

	{"ADMIN", "role", "read"},
	{"ADMIN", "role", "manage"},
	{"ADMIN", "role", "delete"},
	{"HR", "role", "read"},
	{"HR", "role", "manage"},
}

// NewEnforcer builds an in-memory enforcer seeded with DefaultPolicies.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(DefaultPolicies); err != nil {
		return nil, err
	}
	return e, nil
}
