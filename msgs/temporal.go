package msgs

import (
	gotime "time"
)

const secondInNanosecond = 1000000000

const maxUint32 = int64(^uint32(0))

func normalizeTemporal(sec int64, nsec int64) (uint32, uint32) {
	if nsec > secondInNanosecond {
		sec += nsec / secondInNanosecond
		nsec = nsec % secondInNanosecond
	} else if nsec < 0 {
		sec += nsec/secondInNanosecond - 1
		nsec = nsec%secondInNanosecond + secondInNanosecond
	}

	if sec < 0 || sec > maxUint32 {
		panic("time is out of range")
	}

	return uint32(sec), uint32(nsec)
}

func cmpUint64(lhs, rhs uint64) int {
	if lhs > rhs {
		return 1
	} else if lhs < rhs {
		return -1
	}
	return 0
}

type temporal struct {
	Sec  uint32
	NSec uint32
}

func (t *temporal) IsZero() bool {
	return t.Sec == 0 && t.NSec == 0
}

func (t *temporal) ToSec() float64 {
	return float64(t.Sec) + float64(t.NSec)*1e-9
}

func (t *temporal) ToNSec() uint64 {
	return uint64(t.Sec)*secondInNanosecond + uint64(t.NSec)
}

func (t *temporal) FromSec(sec float64) {
	t.FromNSec(uint64(sec * 1e9))
}

func (t *temporal) FromNSec(nsec uint64) {
	t.Sec, t.NSec = normalizeTemporal(0, int64(nsec))
}

func (t *temporal) Normalize() {
	t.Sec, t.NSec = normalizeTemporal(int64(t.Sec), int64(t.NSec))
}

// Time is a wall-clock instant as {sec, nsec} since the epoch.
type Time struct {
	temporal
}

// NewTime creates a normalized Time from sec and nsec.
func NewTime(sec uint32, nsec uint32) Time {
	sec, nsec = normalizeTemporal(int64(sec), int64(nsec))
	return Time{temporal{sec, nsec}}
}

// Now returns the current wall-clock time.
func Now() Time {
	var t Time
	t.FromNSec(uint64(gotime.Now().UnixNano()))
	return t
}

// Diff returns the difference between two Times as a Duration.
func (t *Time) Diff(from Time) Duration {
	sec, nsec := normalizeTemporal(int64(t.Sec)-int64(from.Sec),
		int64(t.NSec)-int64(from.NSec))
	return Duration{temporal{sec, nsec}}
}

// Add returns the sum of a Time and a Duration.
func (t *Time) Add(d Duration) Time {
	sec, nsec := normalizeTemporal(int64(t.Sec)+int64(d.Sec),
		int64(t.NSec)+int64(d.NSec))
	return Time{temporal{sec, nsec}}
}

// Sub returns a Time moved backwards by a Duration.
func (t *Time) Sub(d Duration) Time {
	sec, nsec := normalizeTemporal(int64(t.Sec)-int64(d.Sec),
		int64(t.NSec)-int64(d.NSec))
	return Time{temporal{sec, nsec}}
}

// Cmp compares two Times.
func (t *Time) Cmp(other Time) int {
	return cmpUint64(t.ToNSec(), other.ToNSec())
}

// Duration is a span of time as {sec, nsec}.
type Duration struct {
	temporal
}

// NewDuration creates a normalized Duration from sec and nsec.
func NewDuration(sec uint32, nsec uint32) Duration {
	sec, nsec = normalizeTemporal(int64(sec), int64(nsec))
	return Duration{temporal{sec, nsec}}
}

// Add returns the sum of two Durations.
func (d *Duration) Add(other Duration) Duration {
	sec, nsec := normalizeTemporal(int64(d.Sec)+int64(other.Sec),
		int64(d.NSec)+int64(other.NSec))
	return Duration{temporal{sec, nsec}}
}

// Sub returns the difference of two Durations.
func (d *Duration) Sub(other Duration) Duration {
	sec, nsec := normalizeTemporal(int64(d.Sec)-int64(other.Sec),
		int64(d.NSec)-int64(other.NSec))
	return Duration{temporal{sec, nsec}}
}

// Cmp compares two Durations.
func (d *Duration) Cmp(other Duration) int {
	return cmpUint64(d.ToNSec(), other.ToNSec())
}
