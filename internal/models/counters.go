package models

// Counters holds the absolute counters a game client reports for a player
type Counters struct {
	// TotalEarned is the total money earned
	TotalEarned int64 `json:"TotalEarned"`

	// TotalSpent is the total money spent
	TotalSpent int64 `json:"TotalSpent"`

	// ObjectsPlaced is the number of objects placed in the world
	ObjectsPlaced int64 `json:"ObjectsPlaced"`

	// TimePlayed is the play time in seconds
	TimePlayed int64 `json:"TimePlayed"`

	// SeedsPlanted is the number of seeds planted
	SeedsPlanted int64 `json:"SeedsPlanted"`

	// PlantsHarvested is the number of plants harvested
	PlantsHarvested int64 `json:"PlantsHarvested"`

	// GramsPressed is the number of grams pressed
	GramsPressed int64 `json:"GramsPressed"`

	// OzsSold is the number of ounces sold
	OzsSold int64 `json:"OzsSold"`

	// PlantsKilled is the number of plants killed
	PlantsKilled int64 `json:"PlantsKilled"`
}

// Add returns the field-wise sum of c and o
func (c Counters) Add(o Counters) Counters {
	return Counters{
		TotalEarned:     c.TotalEarned + o.TotalEarned,
		TotalSpent:      c.TotalSpent + o.TotalSpent,
		ObjectsPlaced:   c.ObjectsPlaced + o.ObjectsPlaced,
		TimePlayed:      c.TimePlayed + o.TimePlayed,
		SeedsPlanted:    c.SeedsPlanted + o.SeedsPlanted,
		PlantsHarvested: c.PlantsHarvested + o.PlantsHarvested,
		GramsPressed:    c.GramsPressed + o.GramsPressed,
		OzsSold:         c.OzsSold + o.OzsSold,
		PlantsKilled:    c.PlantsKilled + o.PlantsKilled,
	}
}

// Sub returns the field-wise difference c - o
func (c Counters) Sub(o Counters) Counters {
	return Counters{
		TotalEarned:     c.TotalEarned - o.TotalEarned,
		TotalSpent:      c.TotalSpent - o.TotalSpent,
		ObjectsPlaced:   c.ObjectsPlaced - o.ObjectsPlaced,
		TimePlayed:      c.TimePlayed - o.TimePlayed,
		SeedsPlanted:    c.SeedsPlanted - o.SeedsPlanted,
		PlantsHarvested: c.PlantsHarvested - o.PlantsHarvested,
		GramsPressed:    c.GramsPressed - o.GramsPressed,
		OzsSold:         c.OzsSold - o.OzsSold,
		PlantsKilled:    c.PlantsKilled - o.PlantsKilled,
	}
}
