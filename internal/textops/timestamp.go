package textops

import "time"

// TimestampLayout formats the date as yyyy/MM/dd and the time as HH:mm:ss.
const TimestampLayout = "2006/01/02 15:04:05"

// FormatTimestamp renders t for InsertTimestamp.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
