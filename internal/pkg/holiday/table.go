package holiday

// Fixed-date holidays, valid for every year.
func fixedRows() []Holiday {
	all := AllStates()
	return []Holiday{
		{ID: "neujahr", Name: "Neujahr", Date: "01-01", States: all},
		{ID: "heilige-drei-koenige", Name: "Heilige Drei Könige", Date: "01-06", States: []GermanState{BadenWuerttemberg, Bayern, SachsenAnhalt}},
		{ID: "frauentag", Name: "Internationaler Frauentag", Date: "03-08", States: []GermanState{Berlin, MecklenburgVorpommern}},
		{ID: "tag-der-arbeit", Name: "Tag der Arbeit", Date: "05-01", States: all},
		{ID: "mariae-himmelfahrt", Name: "Mariä Himmelfahrt", Date: "08-15", States: []GermanState{Bayern, Saarland}},
		{ID: "weltkindertag", Name: "Weltkindertag", Date: "09-20", States: []GermanState{Thueringen}},
		{ID: "tag-der-deutschen-einheit", Name: "Tag der Deutschen Einheit", Date: "10-03", States: all},
		{ID: "reformationstag", Name: "Reformationstag", Date: "10-31", States: []GermanState{Brandenburg, Bremen, Hamburg, MecklenburgVorpommern, Niedersachsen, Sachsen, SachsenAnhalt, SchleswigHolstein, Thueringen}},
		{ID: "allerheiligen", Name: "Allerheiligen", Date: "11-01", States: []GermanState{BadenWuerttemberg, Bayern, NordrheinWestfalen, RheinlandPfalz, Saarland}},
		{ID: "erster-weihnachtstag", Name: "1. Weihnachtstag", Date: "12-25", States: all},
		{ID: "zweiter-weihnachtstag", Name: "2. Weihnachtstag", Date: "12-26", States: all},
	}
}

// Table2024 is the shipped holiday table. The Easter- and
// Pentecost-dependent rows carry the literal 2024 dates; use
// TableForYear to get the table with movable rows recomputed.
func Table2024() []Holiday {
	return append(fixedRows(), []Holiday{
		{ID: "karfreitag", Name: "Karfreitag", Date: "03-29", States: AllStates()},
		{ID: "ostersonntag", Name: "Ostersonntag", Date: "03-31", States: []GermanState{Brandenburg}},
		{ID: "ostermontag", Name: "Ostermontag", Date: "04-01", States: AllStates()},
		{ID: "christi-himmelfahrt", Name: "Christi Himmelfahrt", Date: "05-09", States: AllStates()},
		{ID: "pfingstsonntag", Name: "Pfingstsonntag", Date: "05-19", States: []GermanState{Brandenburg}},
		{ID: "pfingstmontag", Name: "Pfingstmontag", Date: "05-20", States: AllStates()},
		{ID: "fronleichnam", Name: "Fronleichnam", Date: "05-30", States: []GermanState{BadenWuerttemberg, Bayern, Hessen, NordrheinWestfalen, RheinlandPfalz, Saarland}},
		{ID: "buss-und-bettag", Name: "Buß- und Bettag", Date: "11-20", States: []GermanState{Sachsen}},
	}...)
}

// TableForYear returns fixed rows plus movable rows recomputed for the
// given year. For 2024 this matches Table2024 row for row.
func TableForYear(year int) []Holiday {
	return append(fixedRows(), MovableForYear(year)...)
}
