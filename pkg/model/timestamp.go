package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an RFC3339 timestamp string.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time so every date field crosses the storage
// boundary as a typed value carrying RFC3339 in JSON. The storage medium
// has no native date type; this keeps round-trips lossless without any
// string-shape guessing on load.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// At wraps a time.Time.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// SameDay reports whether both timestamps fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	ny, nm, nd := then.Local().Date()
	return ty == ny && tm == nm && td == nd
}

// SameMinute reports whether both timestamps fall in the same local minute.
func (t Timestamp) SameMinute(then time.Time) bool {
	return t.Local().Truncate(time.Minute).Equal(then.Local().Truncate(time.Minute))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
