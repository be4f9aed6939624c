package traits

// LandevoTable is the resolution table of the landevo family.
var LandevoTable = &Table{Categories: []Category{
	{Name: "Body", Entries: []Entry{
		{Clean: "Beach Carbon", Dirty: []string{"Beach Carbon Dirty", "Beach Carbon Patina Dirty", "Beach Carbon Patina"}},
		{Clean: "Beach Clean", Dirty: []string{"Beach Dirty", "Beach Patina Dirty", "Beach Patina"}},
		{Clean: "Black Carbon", Dirty: []string{"Black Carbon Dirty", "Black Carbon Patina Dirty", "Black Carbon Patina"}},
		{Clean: "Black Clean", Dirty: []string{"Black Dirty", "Black Patina Dirty", "Black Patina"}},
		{Clean: "Blue Carbon", Dirty: []string{"Blue Carbon Dirty", "Blue Carbon Patina Dirty", "Blue Carbon Patina"}},
		{Clean: "Blue Clean", Dirty: []string{"Blue Dirty", "Blue Patina Dirty", "Blue Patina"}},
		{Clean: "Crimson Carbon", Dirty: []string{"Crimson Carbon Dirty", "Crimson Carbon Patina Dirty", "Crimson Carbon Patina"}},
		{Clean: "Crimson Clean", Dirty: []string{"Crimson Dirty", "Crimson Patina Dirty", "Crimson Patina"}},
		{Clean: "Dusk Carbon", Dirty: []string{"Dusk Carbon Dirty", "Dusk Carbon Patina Dirty", "Dusk Carbon Patina"}},
		{Clean: "Dusk Clean", Dirty: []string{"Dusk Dirty", "Dusk Patina Dirty", "Dusk Patina"}},
		{Clean: "Green Carbon", Dirty: []string{"Green Carbon Dirty", "Green Carbon Patina Dirty", "Green Carbon Patina"}},
		{Clean: "Green Clean", Dirty: []string{"Green Dirty", "Green Patina Dirty", "Green Patina"}},
		{Clean: "Orange Carbon", Dirty: []string{"Orange Carbon Dirty", "Orange Carbon Patina Dirty", "Orange Carbon Patina"}},
		{Clean: "Orange Clean", Dirty: []string{"Orange Dirty", "Orange Patina Dirty", "Orange Patina"}},
		{Clean: "Pink Carbon", Dirty: []string{"Pink Carbon Dirty", "Pink Carbon Patina Dirty", "Pink Carbon Patina"}},
		{Clean: "Pink Clean", Dirty: []string{"Pink Dirty", "Pink Patina Dirty", "Pink Patina"}},
		{Clean: "Purple Carbon", Dirty: []string{"Purple Carbon Dirty", "Purple Carbon Patina Dirty", "Purple Carbon Patina"}},
		{Clean: "Purple Clean", Dirty: []string{"Purple Dirty", "Purple Patina Dirty", "Purple Patina"}},
		{Clean: "Teal Carbon", Dirty: []string{"Teal Carbon Dirty", "Teal Carbon Patina Dirty", "Teal Carbon Patina"}},
		{Clean: "Teal Clean", Dirty: []string{"Teal Dirty", "Teal Patina Dirty", "Teal Patina"}},
		{Clean: "White Carbon", Dirty: []string{"White Carbon Dirty", "White Carbon Patina Dirty", "White Carbon Patina"}},
		{Clean: "White Clean", Dirty: []string{"White Dirty", "White Patina Dirty", "White Patina"}},
		{Clean: "Yellow Carbon", Dirty: []string{"Yellow Carbon Dirty", "Yellow Carbon Patina Dirty", "Yellow Carbon Patina"}},
		{Clean: "Yellow Clean", Dirty: []string{"Yellow Dirty", "Yellow Patina Dirty", "Yellow Patina"}},
		{Clean: "Sunset Carbon", Dirty: []string{"Sunset Carbon Dirty", "Sunset Carbon Patina Dirty", "Sunset Carbon Patina"}},
		{Clean: "Sunset Clean", Dirty: []string{"Sunset Dirty", "Sunset Patina Dirty", "Sunset Patina"}},
		{Clean: "Red Carbon", Dirty: []string{"Red Carbon Dirty", "Red Carbon Patina Dirty", "Red Carbon Patina"}},
		{Clean: "Red Clean", Dirty: []string{"Red Dirty", "Red Patina Dirty", "Red Patina"}},
	}},
	{Name: "FogLights", Entries: []Entry{
		{Clean: "Stock Clean", Dirty: []string{"Stock Dirty"}},
		{Clean: "Purple Clean", Dirty: []string{"Purple Dirty"}},
		{Clean: "Red Clean", Dirty: []string{"Red Dirty"}},
		{Clean: "Teal Clean", Dirty: []string{"Teal Dirty"}},
		{Clean: "Yellow Clean", Dirty: []string{"Yellow Dirty"}},
	}},
	{Name: "Headlights", Entries: []Entry{
		{Clean: "Blacked Out", Dirty: []string{"Blacked Out Dirty"}},
		{Clean: "Stock", Dirty: []string{"Stock Dirty"}},
	}},
	{Name: "Tint", Entries: []Entry{
		{Clean: "Limo Tint Clean", Dirty: []string{"Limo Tint Dirty"}},
		{Clean: "Mirror Clean", Dirty: []string{"Mirror Dirty"}},
		{Clean: "Normal Clean", Dirty: []string{"Normal Dirty"}},
		{Clean: "Blue Clean", Dirty: []string{"Blue Dirty"}},
		{Clean: "Red Clean", Dirty: []string{"Red Dirty"}},
		{Clean: "Yellow Clean", Dirty: []string{"Yellow Dirty"}},
	}},
	{Name: "Wheels", Entries: []Entry{
		{Clean: "10 Spoke", Dirty: []string{"10 Spoke Dirty"}},
		{Clean: "10 Spoke Red", Dirty: []string{"10 Spoke Red Dirty"}},
		{Clean: "Rally Gold", Dirty: []string{"Rally Gold Dirty"}},
		{Clean: "Rally Red", Dirty: []string{"Rally Red Dirty"}},
		{Clean: "Reps Bronze", Dirty: []string{"Reps Bronze Dirty"}},
		{Clean: "Reps Gold", Dirty: []string{"Reps Gold Dirty"}},
		{Clean: "Reps Grey", Dirty: []string{"Reps Grey Dirty"}},
		{Clean: "Reps Red", Dirty: []string{"Reps Red Dirty"}},
		{Clean: "Reps White", Dirty: []string{"Reps White Dirty"}},
		{Clean: "Stock", Dirty: []string{"Stock Dirty"}},
	}},
}}
