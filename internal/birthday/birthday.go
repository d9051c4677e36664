// Package birthday builds the weekly report of upcoming birthdays.
// It is independent of the contact directory.
package birthday

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// window is how far ahead the report looks, in days.
const window = 7

// User is a person with a birthday.
type User struct {
	Name     string
	Birthday time.Time
}

// DayGroup lists the names celebrated on one weekday.
type DayGroup struct {
	Day   time.Weekday
	Names []string
}

// Report splits upcoming birthdays into the rest of this week and next week.
type Report struct {
	ThisWeek []DayGroup
	NextWeek []DayGroup
}

// WeekReport collects users whose birthday falls in the seven days starting
// at today. Weekend birthdays move to the following Monday.
func WeekReport(users []User, today time.Time) Report {
	today = dateOf(today)

	byDay := make(map[time.Weekday][]string)
	for _, u := range users {
		next := upcoming(u.Birthday, today)
		if int(next.Sub(today).Hours()/24) >= window {
			continue
		}
		byDay[next.Weekday()] = append(byDay[next.Weekday()], u.Name)
	}

	var r Report
	todayIdx := mondayIndex(today.Weekday())
	for i := range 7 {
		day := time.Weekday((i + 1) % 7)
		names := byDay[day]
		if len(names) == 0 {
			continue
		}
		group := DayGroup{Day: day, Names: names}
		if i >= todayIdx {
			r.ThisWeek = append(r.ThisWeek, group)
		} else {
			r.NextWeek = append(r.NextWeek, group)
		}
	}
	return r
}

// Empty reports whether no birthdays were found.
func (r Report) Empty() bool {
	return len(r.ThisWeek) == 0 && len(r.NextWeek) == 0
}

// String renders the report, one weekday per line under a section header.
// An empty report renders as "".
func (r Report) String() string {
	var lines []string
	section := func(title string, groups []DayGroup) {
		if len(groups) == 0 {
			return
		}
		lines = append(lines, title)
		for _, g := range groups {
			lines = append(lines, fmt.Sprintf("%s: %s", g.Day, strings.Join(g.Names, ", ")))
		}
	}
	section("This week:", r.ThisWeek)
	section("Next week:", r.NextWeek)
	return strings.Join(lines, "\n")
}

// upcoming returns the next celebration date on or after today.
func upcoming(birthday, today time.Time) time.Time {
	d := onWorkday(inYear(birthday, today.Year()))
	if d.Before(today) {
		d = onWorkday(inYear(birthday, today.Year()+1))
	}
	return d
}

// inYear moves birthday into year. February 29 becomes March 1 in common years.
func inYear(birthday time.Time, year int) time.Time {
	if birthday.Month() == time.February && birthday.Day() == 29 && !isLeap(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
}

// onWorkday shifts Saturday and Sunday to the next Monday.
func onWorkday(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// mondayIndex numbers weekdays from Monday = 0 to Sunday = 6.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ErrMissingName indicates a user entry without a name.
var ErrMissingName = errors.New("birthday: missing name")

// ParseError reports an invalid entry in a users file.
type ParseError struct {
	Index int // zero-based entry index
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("birthday: entry %d (%q): %v", e.Index, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// rawUser is one entry of the YAML users file.
type rawUser struct {
	Name     string `yaml:"name"`
	Birthday string `yaml:"birthday"` // YYYY-MM-DD
}

// LoadUsers reads a YAML list of {name, birthday} entries from path.
func LoadUsers(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("birthday: reading %s: %w", path, err)
	}

	var raw []rawUser
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("birthday: parsing %s: %w", path, err)
	}

	users := make([]User, 0, len(raw))
	for i, ru := range raw {
		if strings.TrimSpace(ru.Name) == "" {
			return nil, &ParseError{Index: i, Value: ru.Birthday, Err: ErrMissingName}
		}
		b, err := time.Parse(time.DateOnly, ru.Birthday)
		if err != nil {
			return nil, &ParseError{Index: i, Value: ru.Birthday, Err: err}
		}
		users = append(users, User{Name: ru.Name, Birthday: b})
	}
	return users, nil
}
