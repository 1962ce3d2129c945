package entity

// Category identifies a consumer category shared by both datasets.
type Category string

const (
	Residential          Category = "residential"
	SmallBusiness        Category = "small_business"
	MediumBusiness       Category = "medium_business"
	LargeBusiness        Category = "large_business"
	SpecializedBusiness  Category = "specialized_business"
	PublicElectricity    Category = "public_electricity"
	TemporaryElectricity Category = "temporary_electricity"
	EVCharging           Category = "ev_charging"
)

var categoryLabels = map[Category]string{
	Residential:          "Residential",
	SmallBusiness:        "Small Business",
	MediumBusiness:       "Medium Business",
	LargeBusiness:        "Large Business",
	SpecializedBusiness:  "Specialized",
	PublicElectricity:    "Public Electricity",
	TemporaryElectricity: "Temporary Electricity",
	EVCharging:           "EV Charging",
}

// Label returns the display name used in tables and chart legends.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
