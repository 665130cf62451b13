package domain

import "fmt"

// Profile describes the number layout of one lottery game: the range the
// regular numbers are drawn from, how many are drawn per ticket, and the
// range of the single special (bonus) number.
type Profile struct {
	Name         string
	RegularMin   int
	RegularMax   int
	RegularCount int
	SpecialMin   int
	SpecialMax   int
}

// Built-in game profiles. Ranges mirror the published game rules.
var (
	Israeli = Profile{
		Name:         "israeli",
		RegularMin:   1,
		RegularMax:   37,
		RegularCount: 6,
		SpecialMin:   1,
		SpecialMax:   7,
	}

	MegaMillions = Profile{
		Name:         "megamillions",
		RegularMin:   1,
		RegularMax:   70,
		RegularCount: 5,
		SpecialMin:   1,
		SpecialMax:   25,
	}

	Powerball = Profile{
		Name:         "powerball",
		RegularMin:   1,
		RegularMax:   69,
		RegularCount: 5,
		SpecialMin:   1,
		SpecialMax:   26,
	}
)

// ProfileByName resolves a game name to its built-in profile.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case Israeli.Name:
		return Israeli, nil
	case MegaMillions.Name:
		return MegaMillions, nil
	case Powerball.Name:
		return Powerball, nil
	}
	return Profile{}, fmt.Errorf("unknown game %q (want israeli, megamillions or powerball)", name)
}

// Validate checks the structural invariants of the profile.
func (p Profile) Validate() error {
	if p.RegularMin >= p.RegularMax {
		return fmt.Errorf("regular range [%d, %d] is empty", p.RegularMin, p.RegularMax)
	}
	if p.RegularCount < 1 {
		return fmt.Errorf("regular count %d must be positive", p.RegularCount)
	}
	if p.RegularCount > p.RegularRange() {
		return fmt.Errorf("regular count %d exceeds range size %d", p.RegularCount, p.RegularRange())
	}
	if p.SpecialMin > p.SpecialMax {
		return fmt.Errorf("special range [%d, %d] is empty", p.SpecialMin, p.SpecialMax)
	}
	return nil
}

// RegularRange returns the number of distinct regular numbers.
func (p Profile) RegularRange() int {
	return p.RegularMax - p.RegularMin + 1
}

// SpecialRange returns the number of distinct special numbers.
func (p Profile) SpecialRange() int {
	return p.SpecialMax - p.SpecialMin + 1
}

// InRegularRange reports whether n is a legal regular number.
func (p Profile) InRegularRange(n int) bool {
	return n >= p.RegularMin && n <= p.RegularMax
}

// InSpecialRange reports whether n is a legal special number.
func (p Profile) InSpecialRange(n int) bool {
	return n >= p.SpecialMin && n <= p.SpecialMax
}
