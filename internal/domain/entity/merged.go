package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MergedRecord joins a UserRecord with the first UsageRecord sharing its
// province code. Usage is nil when the usage dataset has no such province.
type MergedRecord struct {
	UserRecord
	Usage *UsageRecord `json:"-"`
}

// HasUsage reports whether a usage record was joined.
func (m MergedRecord) HasUsage() bool {
	return m.Usage != nil
}

// KWh returns the consumption for a category; absent usage counts as zero.
func (m MergedRecord) KWh(c Category) decimal.Decimal {
	if m.Usage == nil {
		return decimal.Zero
	}
	return m.Usage.KWh(c)
}

type mergedRecordJSON struct {
	UserRecord
	ResidentialKWh          *decimal.Decimal `json:"residential_kwh,omitempty"`
	SmallBusinessKWh        *decimal.Decimal `json:"small_business_kwh,omitempty"`
	MediumBusinessKWh       *decimal.Decimal `json:"medium_business_kwh,omitempty"`
	LargeBusinessKWh        *decimal.Decimal `json:"large_business_kwh,omitempty"`
	SpecializedBusinessKWh  *decimal.Decimal `json:"specialized_business_kwh,omitempty"`
	PublicElectricityKWh    *decimal.Decimal `json:"public_electricity_kwh,omitempty"`
	TemporaryElectricityKWh *decimal.Decimal `json:"temporary_electricity_kwh,omitempty"`
	EVChargingKWh           *decimal.Decimal `json:"ev_charging_kwh,omitempty"`
}

// MarshalJSON flattens user and usage fields into one object. Usage fields
// are left out entirely when no usage record was joined.
func (m MergedRecord) MarshalJSON() ([]byte, error) {
	out := mergedRecordJSON{UserRecord: m.UserRecord}
	if u := m.Usage; u != nil {
		out.ResidentialKWh = &u.ResidentialKWh
		out.SmallBusinessKWh = &u.SmallBusinessKWh
		out.MediumBusinessKWh = &u.MediumBusinessKWh
		out.LargeBusinessKWh = &u.LargeBusinessKWh
		out.SpecializedBusinessKWh = &u.SpecializedBusinessKWh
		out.PublicElectricityKWh = &u.PublicElectricityKWh
		out.TemporaryElectricityKWh = &u.TemporaryElectricityKWh
		out.EVChargingKWh = &u.EVChargingKWh
	}
	return json.Marshal(out)
}
