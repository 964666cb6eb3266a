package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEmployee_Compensation_Salaried(t *testing.T) {
	salary := decimal.NewFromInt(4200)
	e := &Employee{Class: Salaried, Salary: &salary}
	assert.Equal(t, &salary, e.Compensation())
}

func TestEmployee_Compensation_Contractor(t *testing.T) {
	rate := decimal.NewFromInt(250)
	e := &Employee{Class: Contractor, DailyRate: &rate}
	assert.Equal(t, &rate, e.Compensation())
}

func TestEmployee_Compensation_OwnerHasNone(t *testing.T) {
	e := &Employee{Class: Owner}
	assert.Nil(t, e.Compensation())
}

func TestEmployee_Compensation_IgnoresMismatchedField(t *testing.T) {
	// Only the field matching the class counts even if a stale one is set.
	rate := decimal.NewFromInt(250)
	e := &Employee{Class: Salaried, DailyRate: &rate}
	assert.Nil(t, e.Compensation())
}
