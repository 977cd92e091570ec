package holiday

// GermanState is one of the 16 federal states. Values match what the
// stores carry in their settings, not ISO codes.
type GermanState string

const (
	BadenWuerttemberg     GermanState = "Baden-Württemberg"
	Bayern                GermanState = "Bayern"
	Berlin                GermanState = "Berlin"
	Brandenburg           GermanState = "Brandenburg"
	Bremen                GermanState = "Bremen"
	Hamburg               GermanState = "Hamburg"
	Hessen                GermanState = "Hessen"
	MecklenburgVorpommern GermanState = "Mecklenburg-Vorpommern"
	Niedersachsen         GermanState = "Niedersachsen"
	NordrheinWestfalen    GermanState = "Nordrhein-Westfalen"
	RheinlandPfalz        GermanState = "Rheinland-Pfalz"
	Saarland              GermanState = "Saarland"
	Sachsen               GermanState = "Sachsen"
	SachsenAnhalt         GermanState = "Sachsen-Anhalt"
	SchleswigHolstein     GermanState = "Schleswig-Holstein"
	Thueringen            GermanState = "Thüringen"
)

// AllStates returns the 16 states in their conventional order.
func AllStates() []GermanState {
	return []GermanState{
		BadenWuerttemberg,
		Bayern,
		Berlin,
		Brandenburg,
		Bremen,
		Hamburg,
		Hessen,
		MecklenburgVorpommern,
		Niedersachsen,
		NordrheinWestfalen,
		RheinlandPfalz,
		Saarland,
		Sachsen,
		SachsenAnhalt,
		SchleswigHolstein,
		Thueringen,
	}
}

var StateValues = func() []string {
	values := make([]string, 0, 16)
	for _, s := range AllStates() {
		values = append(values, string(s))
	}
	return values
}()

// IsValidState reports whether s is one of the 16 recognized states.
func IsValidState(s GermanState) bool {
	for _, known := range AllStates() {
		if s == known {
			return true
		}
	}
	return false
}
