package roster

// Record is the canonical roster entry consumed by ordering and rendering.
type Record struct {
	Name        string
	FullName    string
	Nation      string
	NationCode  string
	Team        string
	Date        string
	DateOfBirth string
	Roles       []string

	// Extended profile attributes.
	Image       string
	Description string
	League      string
	LogoLeague  string
	Tier        string
	Heros       []string

	// Position is the record's index in the input collection.
	Position int
}

// HasDate reports whether the record carries any join date text.
func (r Record) HasDate() bool {
	return r.Date != ""
}
