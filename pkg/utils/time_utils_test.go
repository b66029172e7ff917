package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOneYearFrom(t *testing.T) {
	start := time.Date(2026, time.February, 10, 10, 0, 0, 0, ClinicLocation())
	assert.Equal(t, "2027-02-10", OneYearFrom(start).Format("2006-01-02"))

	// Leap day lands on March 1 the following year.
	leap := time.Date(2028, time.February, 29, 10, 0, 0, 0, ClinicLocation())
	assert.Equal(t, "2029-03-01", OneYearFrom(leap).Format("2006-01-02"))
}

func TestFormatDateClinic(t *testing.T) {
	stamp := time.Date(2027, time.January, 1, 0, 0, 0, 0, ClinicLocation()).Unix()
	assert.Equal(t, "2027-01-01", FormatDateClinic(stamp))
	assert.Equal(t, "", FormatDateClinic(0))
}
