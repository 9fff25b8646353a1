package time

import (
	"time"

	ftime "github.com/viant/tagly/format/time"
)

// DefaultLayout is used when neither layout nor date format is specified
const DefaultLayout = time.RFC3339

// Layout returns the effective Go time layout.
// An explicit layout wins over an ISO style date format (i.e. YYYY-MM-DD hh:mm:ss).
func Layout(layout, dateFormat string) string {
	if layout != "" {
		return layout
	}
	if dateFormat != "" {
		return ftime.DateFormatToTimeLayout(dateFormat)
	}
	return DefaultLayout
}

// Location returns named location, empty name or UTC maps to time.UTC, Local to time.Local
func Location(name string) (*time.Location, error) {
	switch name {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
