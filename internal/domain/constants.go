package domain

// Slot ladder settings
const (
	SlotDurationMinutes = 30
	MinutesPerDay       = 24 * 60
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// WeekdayNames lists the accepted values of PricingRule.DayOfWeek, indexed by time.Weekday.
var WeekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}
