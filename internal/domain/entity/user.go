package entity

// UserRecord holds the number of electricity users per category for one province.
type UserRecord struct {
	ProvinceCode              ProvinceCode `json:"province_code"`
	ProvinceName              string       `json:"province_name"`
	ResidentialCount          int64        `json:"residential_count"`
	SmallBusinessCount        int64        `json:"small_business_count"`
	MediumBusinessCount       int64        `json:"medium_business_count"`
	LargeBusinessCount        int64        `json:"large_business_count"`
	SpecializedBusinessCount  int64        `json:"specialized_business_count"`
	PublicElectricityCount    int64        `json:"public_electricity_count"`
	TemporaryElectricityCount int64        `json:"temporary_electricity_count"`
	EVChargingCount           int64        `json:"ev_charging_count"`
}

// Count returns the user count for a category. Unknown categories count as zero.
func (u UserRecord) Count(c Category) int64 {
	switch c {
	case Residential:
		return u.ResidentialCount
	case SmallBusiness:
		return u.SmallBusinessCount
	case MediumBusiness:
		return u.MediumBusinessCount
	case LargeBusiness:
		return u.LargeBusinessCount
	case SpecializedBusiness:
		return u.SpecializedBusinessCount
	case PublicElectricity:
		return u.PublicElectricityCount
	case TemporaryElectricity:
		return u.TemporaryElectricityCount
	case EVCharging:
		return u.EVChargingCount
	}
	return 0
}
