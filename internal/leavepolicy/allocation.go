package leavepolicy

import (
	"fmt"
	"time"
)

const (
	PolicyAccrual    = "accrual"
	PolicyFlatAnnual = "flat_annual"
)

// LeaveTypeTerms is the part of a leave type that drives allocation.
type LeaveTypeTerms struct {
	MaxDaysPerYear  int
	CarryForward    bool
	MaxCarryForward *int
}

type AllocationInput struct {
	DateOfJoining time.Time
	AsOf          time.Time
	Year          int
	Terms         LeaveTypeTerms

	// PreviousRemaining is nil when no balance exists for Year-1.
	PreviousRemaining *int
}

type Allocation struct {
	Allocated   int
	CarriedOver int
}

func (a Allocation) Remaining() int {
	return a.Allocated + a.CarriedOver
}

// AllocationPolicy decides the opening figures of a new balance.
type AllocationPolicy interface {
	Name() string
	Allocate(in AllocationInput) (Allocation, error)
}

type NotEligibleError struct {
	Eligibility Eligibility
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible for leave, need %d more months of service", e.Eligibility.MonthsUntilEligible())
}

// NewAccrualPolicy grants what the employee has accrued, capped at the
// leave type's yearly maximum. Used when a leave request opens a balance.
func NewAccrualPolicy() AllocationPolicy {
	return accrualPolicy{}
}

type accrualPolicy struct{}

func (accrualPolicy) Name() string { return PolicyAccrual }

func (accrualPolicy) Allocate(in AllocationInput) (Allocation, error) {
	e := EvaluateEligibility(in.DateOfJoining, in.AsOf)
	if !e.IsEligible {
		return Allocation{}, &NotEligibleError{Eligibility: e}
	}

	return Allocation{
		Allocated:   min(e.AccruedDays, in.Terms.MaxDaysPerYear),
		CarriedOver: carryOver(in),
	}, nil
}

// NewFlatAnnualPolicy grants the full yearly maximum. Used on employee
// creation and on the yearly rollover.
func NewFlatAnnualPolicy() AllocationPolicy {
	return flatAnnualPolicy{}
}

type flatAnnualPolicy struct{}

func (flatAnnualPolicy) Name() string { return PolicyFlatAnnual }

func (flatAnnualPolicy) Allocate(in AllocationInput) (Allocation, error) {
	return Allocation{
		Allocated:   in.Terms.MaxDaysPerYear,
		CarriedOver: carryOver(in),
	}, nil
}

func carryOver(in AllocationInput) int {
	if !in.Terms.CarryForward || in.PreviousRemaining == nil {
		return 0
	}
	if in.DateOfJoining.Year() >= in.Year {
		return 0
	}

	prev := *in.PreviousRemaining
	if prev <= 0 {
		return 0
	}
	if in.Terms.MaxCarryForward != nil {
		return max(0, min(prev, *in.Terms.MaxCarryForward))
	}
	return prev
}

// Remaining is the ledger identity every balance must satisfy.
func Remaining(allocated, carriedOver, used int) int {
	return allocated + carriedOver - used
}
