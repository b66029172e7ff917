package utils

import "time"

// Clinic time location (PHT, +08:00). All membership dates are computed
// in clinic-local time so an expiry of "2027-01-01" means midnight at
// the front desk, not UTC.
var clinicLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Manila"); err == nil {
		return loc
	}
	return time.FixedZone("PHT", 8*3600)
}()

func ClinicLocation() *time.Location { return clinicLoc }

func NowClinic() time.Time { return time.Now().In(clinicLoc) }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsClinic converts an epoch value in seconds to clinic time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsClinic(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(clinicLoc)
}

// OneYearFrom returns t plus exactly one calendar year in clinic time.
// Renewal expiry is one year from the renewal date, never extended from
// the old expiry.
func OneYearFrom(t time.Time) time.Time {
	return t.In(clinicLoc).AddDate(1, 0, 0)
}

func FormatDateClinic(unixSeconds int64) string {
	t := FromUnixSecondsClinic(unixSeconds)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
