package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeNet(t *testing.T) {
	p := Payroll{
		GrossSalary: decimal.NewFromInt(5000),
		Deductions:  decimal.NewFromInt(750),
	}
	p.ComputeNet()
	assert.True(t, p.NetSalary.Equal(decimal.NewFromInt(4250)))

	// Recompute after a change keeps the invariant
	p.Deductions = decimal.NewFromInt(0)
	p.ComputeNet()
	assert.True(t, p.NetSalary.Equal(p.GrossSalary))
}

func TestCreatePayrollRequestValidate(t *testing.T) {
	gross := decimal.NewFromInt(5000)
	negative := decimal.NewFromInt(-1)

	valid := CreatePayrollRequest{
		EmployeeID:  "0190c7e2-1111-7abc-8def-000000000001",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
		GrossSalary: &gross,
	}
	assert.NoError(t, valid.Validate())

	missingGross := valid
	missingGross.GrossSalary = nil
	assert.Error(t, missingGross.Validate())

	negativeGross := valid
	negativeGross.GrossSalary = &negative
	assert.Error(t, negativeGross.Validate())

	badDate := valid
	badDate.PeriodStart = "01-01-2024"
	assert.Error(t, badDate.Validate())
}

func TestUpdatePayrollRequestValidate(t *testing.T) {
	// All fields omitted is a valid no-op update
	empty := UpdatePayrollRequest{ID: "some-id"}
	assert.NoError(t, empty.Validate())

	paid := StatusPaid
	withStatus := UpdatePayrollRequest{ID: "some-id", Status: &paid}
	assert.NoError(t, withStatus.Validate())

	bogus := Status("Cancelled")
	badStatus := UpdatePayrollRequest{ID: "some-id", Status: &bogus}
	assert.Error(t, badStatus.Validate())

	negative := decimal.NewFromInt(-100)
	badDeductions := UpdatePayrollRequest{ID: "some-id", Deductions: &negative}
	assert.Error(t, badDeductions.Validate())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusPaid))
	assert.False(t, IsValidStatus(Status("Cancelled")))
	assert.False(t, IsValidStatus(Status("")))
}
