package timeval

// Style selects which halves of the timestamp are shown.
type Style int

const (
	DateTime Style = iota
	DateOnly
	TimeOnly
)

// HourStyle selects the clock convention.
type HourStyle int

const (
	Hour24 HourStyle = iota
	Hour12
)

// DateOrder is the field order of the date half.
type DateOrder int

const (
	YMD DateOrder = iota
	DMY
	MDY
)

// Tokens is the locale collaborator: the engine never owns localized text,
// it only places whatever strings this record supplies.
type Tokens struct {
	Meridiem  [2]string
	Era       [2]string
	DateSep   string
	TimeSep   string
	MillisSep string
}

// EnglishTokens is the built-in default vocabulary.
func EnglishTokens() Tokens {
	return Tokens{
		Meridiem:  [2]string{"AM", "PM"},
		Era:       [2]string{"AD", "BC"},
		DateSep:   "-",
		TimeSep:   ":",
		MillisSep: ".",
	}
}

// Calendar is the external calendar-validity collaborator. Leap-year and
// month-length knowledge stays behind this boundary.
type Calendar interface {
	DaysIn(year, month int) int
}

// Gregorian is the default proleptic Gregorian calendar.
type Gregorian struct{}

func (Gregorian) DaysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
	return 0
}

// Options is the recognized configuration record for a time editor. Any
// change rebuilds the field sequence and bounds wholesale.
type Options struct {
	Style        Style
	HourStyle    HourStyle
	YearDigits   int // 2 or 4
	ShowSeconds  bool
	MillisDigits int // 0..3
	DateOrder    DateOrder
	TimeFirst    bool
	ShowEra      bool
	RTL          bool
	Tokens       *Tokens
	Calendar     Calendar
}

func (o Options) withDefaults() Options {
	if o.YearDigits != 2 {
		o.YearDigits = 4
	}
	if o.MillisDigits < 0 {
		o.MillisDigits = 0
	}
	if o.MillisDigits > 3 {
		o.MillisDigits = 3
	}
	if o.Tokens == nil {
		t := EnglishTokens()
		o.Tokens = &t
	}
	if o.Calendar == nil {
		o.Calendar = Gregorian{}
	}
	return o
}
