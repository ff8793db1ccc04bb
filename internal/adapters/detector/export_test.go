package detector

import "time"

// SetNow replaces the clock used to record baseline times.
func (d *TimestampDetector) SetNow(now func() time.Time) {
	d.now = now
}
