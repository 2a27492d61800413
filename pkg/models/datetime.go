package models

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// triliumLocalLayout is the zone-suffixed format Trilium emits for the
// non-UTC dateCreated/dateModified fields, e.g. "2023-08-21 23:38:51.110+0200".
const triliumLocalLayout = "2006-01-02 15:04:05.000-0700"

// DateTime embeds time.Time and knows how to parse the timestamp formats
// ETAPI emits. The wire text is retained as received so re-marshalling a
// decoded value reproduces the payload byte for byte.
type DateTime struct {
	time.Time

	raw string
}

// NewDateTime wraps t for use in hand-built values and tests.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := parseDateTime(s)
	if err != nil {
		return err
	}

	d.Time = t
	d.raw = s
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.raw != "" {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

func (d DateTime) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Time.Format(time.RFC3339Nano)
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(triliumLocalLayout, s); err == nil {
		return t, nil
	}
	// Older servers and odd locales; dateparse copes with the long tail.
	return dateparse.ParseAny(s)
}
