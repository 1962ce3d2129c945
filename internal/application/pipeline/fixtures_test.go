package pipeline

import (
	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func kwh(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func alphaBeta() []entity.UserRecord {
	return []entity.UserRecord{
		{ProvinceCode: entity.StringCode("A"), ProvinceName: "Alpha", ResidentialCount: 10},
		{ProvinceCode: entity.StringCode("B"), ProvinceName: "Beta", ResidentialCount: 5},
	}
}

// sampleRecords is a small merged set with every category populated and one
// province without usage.
func sampleRecords() []entity.MergedRecord {
	users := []entity.UserRecord{
		{
			ProvinceCode: entity.StringCode("11"), ProvinceName: "Aceh",
			ResidentialCount: 1000, SmallBusinessCount: 100, MediumBusinessCount: 10, LargeBusinessCount: 1,
			SpecializedBusinessCount: 2, PublicElectricityCount: 3, TemporaryElectricityCount: 4, EVChargingCount: 7,
		},
		{
			ProvinceCode: entity.StringCode("12"), ProvinceName: "North Sumatra",
			ResidentialCount: 3000, SmallBusinessCount: 300, MediumBusinessCount: 30, LargeBusinessCount: 3,
			SpecializedBusinessCount: 6, PublicElectricityCount: 9, TemporaryElectricityCount: 12, EVChargingCount: 21,
		},
		{
			ProvinceCode: entity.StringCode("13"), ProvinceName: "West Sumatra",
			ResidentialCount: 2000, SmallBusinessCount: 200, EVChargingCount: 1,
		},
		{ProvinceCode: entity.StringCode("99"), ProvinceName: "Papua Highlands", ResidentialCount: 50},
	}
	usages := []entity.UsageRecord{
		{
			ProvinceCode: entity.StringCode("12"), ResidentialKWh: kwh("5000.4"), SmallBusinessKWh: kwh("800"), MediumBusinessKWh: kwh("300"),
			LargeBusinessKWh: kwh("900"), SpecializedBusinessKWh: kwh("50"), PublicElectricityKWh: kwh("25"),
			TemporaryElectricityKWh: kwh("5"), EVChargingKWh: kwh("12.6"),
		},
		{
			ProvinceCode: entity.StringCode("11"), ResidentialKWh: kwh("1500.5"), SmallBusinessKWh: kwh("200"), MediumBusinessKWh: kwh("100"),
			LargeBusinessKWh: kwh("400"), SpecializedBusinessKWh: kwh("10"), PublicElectricityKWh: kwh("8"),
			TemporaryElectricityKWh: kwh("2"), EVChargingKWh: kwh("3.25"),
		},
		{ProvinceCode: entity.StringCode("13"), ResidentialKWh: kwh("2500"), SmallBusinessKWh: kwh("100")},
	}
	return Merge(users, usages)
}
