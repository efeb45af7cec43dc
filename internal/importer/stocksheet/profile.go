package stocksheet

// Profile describes the column layout of one stock sheet format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	KindCol     string
	LocationCol string
	ItemCol     string
	QuantityCol string
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.KindCol, p.LocationCol, p.ItemCol, p.QuantityCol}
}

// profiles is the ordered list of sheet formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "standard",
		KindCol:     "Location Type",
		LocationCol: "Location",
		ItemCol:     "Item",
		QuantityCol: "Quantity",
	},
	{
		Name:        "legacy",
		KindCol:     "Tipo",
		LocationCol: "Sede",
		ItemCol:     "Artículo",
		QuantityCol: "Cantidad",
	},
}
