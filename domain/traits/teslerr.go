package traits

// TeslerrTable is the resolution table of the teslerr family. Only the body
// category carries dirty variants for this collection.
var TeslerrTable = &Table{Categories: []Category{
	{Name: "Bodys", Entries: []Entry{
		{Clean: "Black Clean Carbon", Dirty: []string{"Black Dirty Carbon", "Black Dirty Patina Carbon", "Black Patina Carbon"}},
		{Clean: "Black Clean", Dirty: []string{"Black Dirty", "Black Patina"}},
		{Clean: "Blue Clean Carbon", Dirty: []string{"Blue Dirty Carbon", "Blue Dirty Patina Carbon", "Blue Patina Carbon"}},
		{Clean: "Blue Clean", Dirty: []string{"Blue Dirty", "Blue Patina"}},
		{Clean: "Blue Fade Clean Carbon", Dirty: []string{"Blue Fade Dirty Carbon", "Blue Fade Dirty Patina Carbon", "Blue Fade Patina Carbon"}},
		{Clean: "Blue Fade Clean", Dirty: []string{"Blue Fade Dirty", "Blue Fade Patina"}},
		{Clean: "Green Clean Carbon", Dirty: []string{"Green Dirty Carbon", "Green Dirty Patina Carbon", "Green Patina Carbon"}},
		{Clean: "Green Clean", Dirty: []string{"Green Dirty", "Green Patina"}},
		{Clean: "Orange Clean Carbon", Dirty: []string{"Orange Dirty Carbon", "Orange Dirty Patina Carbon", "Orange Patina Carbon"}},
		{Clean: "Orange Clean", Dirty: []string{"Orange Dirty", "Orange Patina"}},
		{Clean: "Pink Clean Carbon", Dirty: []string{"Pink Dirty Carbon", "Pink Dirty Patina Carbon", "Pink Patina Carbon"}},
		{Clean: "Pink Clean", Dirty: []string{"Pink Dirty", "Pink Patina"}},
		{Clean: "Purple Clean Carbon", Dirty: []string{"Purple Dirty Carbon", "Purple Dirty Patina Carbon", "Purple Patina Carbon"}},
		{Clean: "Purple Clean", Dirty: []string{"Purple Dirty", "Purple Patina"}},
		{Clean: "Red Clean Carbon", Dirty: []string{"Red Dirty Carbon", "Red Dirty Patina Carbon", "Red Patina Carbon"}},
		{Clean: "Red Clean", Dirty: []string{"Red Dirty", "Red Patina"}},
		{Clean: "Rinbow Clean Carbon", Dirty: []string{"Rinbow Dirty Carbon", "Rinbow Dirty Patina Carbon", "Rinbow Patina Carbon"}},
		{Clean: "Rinbow Clean", Dirty: []string{"Rinbow Dirty", "Rinbow Patina"}},
		{Clean: "Sunset Clean Carbon", Dirty: []string{"Sunset Dirty Carbon", "Sunset Dirty Patina Carbon", "Sunset Patina Carbon"}},
		{Clean: "Sunset Clean", Dirty: []string{"Sunset Dirty", "Sunset Patina"}},
		{Clean: "Teal Clean Carbon", Dirty: []string{"Teal Dirty Carbon", "Teal Dirty Patina Carbon", "Teal Patina Carbon"}},
		{Clean: "Teal Clean", Dirty: []string{"Teal Dirty", "Teal Patina"}},
		{Clean: "Yellow Clean Carbon", Dirty: []string{"Yellow Dirty Carbon", "Yellow Dirty Patina Carbon", "Yellow Patina Carbon"}},
		{Clean: "Yellow Clean", Dirty: []string{"Yellow Dirty", "Yellow Patina"}},
	}},
}}

// TreeFiddyTable is the resolution table of the treefiddy family. Dirt and
// patina are standalone overlay categories here, not value suffixes.
var TreeFiddyTable = &Table{Categories: []Category{
	{Name: "Dirt", Entries: []Entry{
		{Clean: "Clean", Dirty: []string{"Dirty"}},
	}},
	{Name: "Patina", Entries: []Entry{
		{Clean: "None", Dirty: []string{"Patina"}},
	}},
}}

// GojiraTable is the resolution table of the gojira family.
var GojiraTable = &Table{Categories: []Category{
	{Name: "Dirt", Entries: []Entry{
		{Clean: "None", Dirty: []string{"Dirt"}},
	}},
	{Name: "Patina", Entries: []Entry{
		{Clean: "None", Dirty: []string{"Patina"}},
	}},
}}
