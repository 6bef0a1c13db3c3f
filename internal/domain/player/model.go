package player

import (
	"errors"
	"strings"
	"time"
)

// Sex values. Bucketing compares against SexMale exactly; any other value,
// including a missing one, lands in the girls partition.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Age band labels tracked by the association.
const (
	BandU20 = "U20"
	BandU17 = "U17"
	BandU15 = "U15"
)

// Classes is the fixed set of class/grade labels offered on the form.
var Classes = []string{"S1", "S2", "S3", "S4", "S5", "S6"}

// Domain errors
var (
	ErrEmptyName      = errors.New("player name cannot be empty")
	ErrEmptySchoolID  = errors.New("owning school id cannot be empty")
	ErrEmptyLearnerID = errors.New("learner id cannot be empty")
	ErrEmptyClass     = errors.New("class cannot be empty")
	ErrNoDateOfBirth  = errors.New("date of birth is required")
)

// Player holds one registered player belonging to a school.
type Player struct {
	ID              string
	SchoolID        string
	Name            string
	DateOfBirth     time.Time
	Age             int
	Sex             string
	Class           string
	LearnerID       string
	GuardianContact string
	PhotoRef        string
	CreatedAt       time.Time
}

// Validate checks if the Player has valid data.
// PRE: Player struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.SchoolID) == "" {
		return ErrEmptySchoolID
	}
	if strings.TrimSpace(p.LearnerID) == "" {
		return ErrEmptyLearnerID
	}
	if strings.TrimSpace(p.Class) == "" {
		return ErrEmptyClass
	}
	if p.DateOfBirth.IsZero() {
		return ErrNoDateOfBirth
	}
	return nil
}

// AgeOn computes full years between the date of birth and the given date.
// INVARIANT: Player fields are not mutated
func (p *Player) AgeOn(date time.Time) int {
	years := date.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(date) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// Band returns the age band for an age, evaluated in precedence order:
// [17,20) is U20, [15,17) is U17, under 15 is U15. Ages of 20 and above fall
// outside every tracked band and the second return is false; such players are
// omitted from the categorized roster entirely.
func Band(age int) (string, bool) {
	switch {
	case age >= 17 && age < 20:
		return BandU20, true
	case age >= 15 && age < 17:
		return BandU17, true
	case age < 15:
		return BandU15, true
	}
	return "", false
}

// Bands holds one sex partition of the roster, keyed by age band.
type Bands struct {
	U20 []Player
	U17 []Player
	U15 []Player
}

// Total returns the number of players across all bands in this partition.
func (b Bands) Total() int {
	return len(b.U20) + len(b.U17) + len(b.U15)
}

// Roster is the categorized view of a school's players: a sex partition,
// then an age-band partition within each.
type Roster struct {
	Boys  Bands
	Girls Bands
}

// Categorize buckets a flat player list into the nested roster view. The sex
// partition is an exact match against SexMale; everything else is bucketed
// with the girls. Players whose age falls outside every band are dropped.
// INVARIANT: Pure; input slice is not mutated; input order is preserved
// within each bucket
func Categorize(players []Player) Roster {
	var r Roster
	for _, p := range players {
		band, ok := Band(p.Age)
		if !ok {
			continue
		}
		bands := &r.Girls
		if p.Sex == SexMale {
			bands = &r.Boys
		}
		switch band {
		case BandU20:
			bands.U20 = append(bands.U20, p)
		case BandU17:
			bands.U17 = append(bands.U17, p)
		case BandU15:
			bands.U15 = append(bands.U15, p)
		}
	}
	return r
}
