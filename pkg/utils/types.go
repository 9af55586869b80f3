package utils

// Layouts used for the stored string form of dates and times
const (
	DATE_LAYOUT      = "2006-01-02"
	CLOCK_LAYOUT     = "15:04"
	TIMESTAMP_LAYOUT = "2006-01-02 15:04:05"
)

// Alphabets for generated codes
const (
	UPPERCASE_ALPHANUMERIC = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)
