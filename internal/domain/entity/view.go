package entity

// Query holds the dashboard filter inputs. Empty fields do not filter.
type Query struct {
	Province string `json:"province,omitempty"`
	Search   string `json:"search,omitempty"`
}

// TableRow is one province line of the dashboard table. kWh values are rounded.
type TableRow struct {
	ProvinceName       string `json:"province_name"`
	ResidentialUsers   int64  `json:"residential_users"`
	BusinessUsers      int64  `json:"business_users"`
	TotalUsageKWh      int64  `json:"total_usage_kwh"`
	EVChargingKWh      int64  `json:"ev_charging_kwh"`
	EVChargingSessions int64  `json:"ev_charging_sessions"`
}

// Table is the dashboard table with its display-ready cells.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
	Display [][]string `json:"-"`
}

// SummaryCards are the formatted headline numbers.
type SummaryCards struct {
	TotalUsers         string `json:"total_users"`
	TotalUsage         string `json:"total_usage"`
	ProvinceCount      string `json:"province_count"`
	EVChargingSessions string `json:"ev_charging_sessions"`
}

// DashboardView is everything a renderer needs for one filter state.
type DashboardView struct {
	Query             Query            `json:"query"`
	Summary           AggregateSummary `json:"summary"`
	Cards             SummaryCards     `json:"cards"`
	Table             Table            `json:"table"`
	TopProvinces      ChartSeries      `json:"top_provinces"`
	UsageDistribution ChartSeries      `json:"usage_distribution"`
	UserCategories    ChartSeries      `json:"user_categories"`
	Empty             bool             `json:"empty"`
}

// Series returns the chart series of the given kind.
func (v DashboardView) Series(kind ChartKind) (ChartSeries, bool) {
	switch kind {
	case ChartTopProvinces:
		return v.TopProvinces, true
	case ChartUsageDistribution:
		return v.UsageDistribution, true
	case ChartUserCategories:
		return v.UserCategories, true
	}
	return ChartSeries{}, false
}
