package entity

import "github.com/shopspring/decimal"

// AggregateSummary holds the headline totals of a filtered record set.
type AggregateSummary struct {
	TotalUsers         int64           `json:"total_users"`
	TotalUsageKWh      decimal.Decimal `json:"total_usage_kwh"`
	ProvinceCount      int             `json:"province_count"`
	EVChargingSessions int64           `json:"ev_charging_sessions"`
}

// Add returns the field-wise sum of two summaries.
func (s AggregateSummary) Add(other AggregateSummary) AggregateSummary {
	return AggregateSummary{
		TotalUsers:         s.TotalUsers + other.TotalUsers,
		TotalUsageKWh:      s.TotalUsageKWh.Add(other.TotalUsageKWh),
		ProvinceCount:      s.ProvinceCount + other.ProvinceCount,
		EVChargingSessions: s.EVChargingSessions + other.EVChargingSessions,
	}
}

// Equal compares summaries; decimals are compared by value, not representation.
func (s AggregateSummary) Equal(other AggregateSummary) bool {
	return s.TotalUsers == other.TotalUsers &&
		s.TotalUsageKWh.Equal(other.TotalUsageKWh) &&
		s.ProvinceCount == other.ProvinceCount &&
		s.EVChargingSessions == other.EVChargingSessions
}
