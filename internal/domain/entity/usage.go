package entity

import "github.com/shopspring/decimal"

// UsageRecord holds the electricity consumption in kWh per category for one province.
type UsageRecord struct {
	ProvinceCode            ProvinceCode    `json:"province_code"`
	ResidentialKWh          decimal.Decimal `json:"residential_kwh"`
	SmallBusinessKWh        decimal.Decimal `json:"small_business_kwh"`
	MediumBusinessKWh       decimal.Decimal `json:"medium_business_kwh"`
	LargeBusinessKWh        decimal.Decimal `json:"large_business_kwh"`
	SpecializedBusinessKWh  decimal.Decimal `json:"specialized_business_kwh"`
	PublicElectricityKWh    decimal.Decimal `json:"public_electricity_kwh"`
	TemporaryElectricityKWh decimal.Decimal `json:"temporary_electricity_kwh"`
	EVChargingKWh           decimal.Decimal `json:"ev_charging_kwh"`
}

// KWh returns the consumption for a category. Unknown categories count as zero.
func (u UsageRecord) KWh(c Category) decimal.Decimal {
	switch c {
	case Residential:
		return u.ResidentialKWh
	case SmallBusiness:
		return u.SmallBusinessKWh
	case MediumBusiness:
		return u.MediumBusinessKWh
	case LargeBusiness:
		return u.LargeBusinessKWh
	case SpecializedBusiness:
		return u.SpecializedBusinessKWh
	case PublicElectricity:
		return u.PublicElectricityKWh
	case TemporaryElectricity:
		return u.TemporaryElectricityKWh
	case EVCharging:
		return u.EVChargingKWh
	}
	return decimal.Zero
}
