package leavepolicy

import (
	"time"

	"github.com/shopspring/decimal"
)

const MinServiceMonths = 6

// AccrualPerMonth is earned for every month of service past MinServiceMonths.
var AccrualPerMonth = decimal.RequireFromString("1.5")

type Eligibility struct {
	IsEligible      bool `json:"is_eligible"`
	MonthsOfService int  `json:"months_of_service"`
	AccruedDays     int  `json:"accrued_days"`
}

// MonthsUntilEligible is zero once the threshold is reached.
func (e Eligibility) MonthsUntilEligible() int {
	if e.IsEligible {
		return 0
	}
	return MinServiceMonths - e.MonthsOfService
}

// EvaluateEligibility computes service months from dateOfJoining to asOf.
// A month only counts once its anniversary day has been reached.
func EvaluateEligibility(dateOfJoining, asOf time.Time) Eligibility {
	months := MonthsOfService(dateOfJoining, asOf)

	e := Eligibility{
		IsEligible:      months >= MinServiceMonths,
		MonthsOfService: months,
	}
	if e.IsEligible {
		e.AccruedDays = int(decimal.NewFromInt(int64(months - MinServiceMonths)).
			Mul(AccrualPerMonth).
			Floor().
			IntPart())
	}
	return e
}

// MonthsOfService never goes below zero, even for a join date after asOf.
func MonthsOfService(dateOfJoining, asOf time.Time) int {
	jy, jm, jd := dateOfJoining.Date()
	ay, am, ad := asOf.Date()

	months := (ay-jy)*12 + int(am) - int(jm)
	if ad < jd {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
