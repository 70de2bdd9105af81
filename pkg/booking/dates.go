package booking

import "time"

// DateField selects which date a picker commit writes to
type DateField int

const (
	DepartureDate DateField = iota
	ReturnDate
)

func (f DateField) String() string {
	if f == ReturnDate {
		return "Return Date"
	}
	return "Departure Date"
}

// DateLayout is the short weekday/month/day form used on the screen
const DateLayout = "Mon, Jan 2"

// Dates holds the departure and return days plus the field being edited.
// Return never precedes departure.
type Dates struct {
	Departure time.Time
	Return    time.Time
	Editing   DateField
}

// NewDates starts both dates on today
func NewDates(today time.Time) Dates {
	d := Day(today)
	return Dates{Departure: d, Return: d, Editing: DepartureDate}
}

// Day truncates t to midnight in its own location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Edit sets the field the next Choose commits to
func (d *Dates) Edit(field DateField) {
	d.Editing = field
}

// Value returns the current value of field
func (d Dates) Value(field DateField) time.Time {
	if field == ReturnDate {
		return d.Return
	}
	return d.Departure
}

// MinFor returns the earliest day field may take
func (d Dates) MinFor(field DateField, today time.Time) time.Time {
	if field == ReturnDate {
		return d.Departure
	}
	return Day(today)
}

// Choose commits date to the field being edited, clamped to its minimum.
// Moving departure past return drags return along.
func (d *Dates) Choose(date, today time.Time) {
	date = Day(date)
	if earliest := d.MinFor(d.Editing, today); date.Before(earliest) {
		date = earliest
	}

	switch d.Editing {
	case DepartureDate:
		d.Departure = date
		if d.Return.Before(date) {
			d.Return = date
		}
	case ReturnDate:
		d.Return = date
	}
}

// FormatDate renders t with DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
