package utils

// Constants
const (
	DATE_LAYOUT_ISO            = "2006-01-02"
	DATE_LAYOUT_LONG           = "January 2, 2006"
	DATE_LAYOUT_SHORT          = "Jan 2, 2006"
	DATE_LAYOUT_LONG_DAY_FIRST = "2 January 2006"
)
