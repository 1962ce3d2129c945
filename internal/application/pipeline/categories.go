package pipeline

import "github.com/diillson/electricity-dashboard-go/internal/domain/entity"

// Category groups shared by the aggregator and the table so that table and
// chart totals always agree.
var (
	// UserCountCategories are summed into the total user count. EV charging
	// sessions are reported separately.
	UserCountCategories = []entity.Category{
		entity.Residential,
		entity.SmallBusiness,
		entity.MediumBusiness,
		entity.LargeBusiness,
		entity.SpecializedBusiness,
		entity.PublicElectricity,
		entity.TemporaryElectricity,
	}

	// UsageCategories are summed into the total usage, EV charging included.
	UsageCategories = []entity.Category{
		entity.Residential,
		entity.SmallBusiness,
		entity.MediumBusiness,
		entity.LargeBusiness,
		entity.SpecializedBusiness,
		entity.PublicElectricity,
		entity.TemporaryElectricity,
		entity.EVCharging,
	}

	// BusinessCategories form the "business users" table column.
	BusinessCategories = []entity.Category{
		entity.SmallBusiness,
		entity.MediumBusiness,
		entity.LargeBusiness,
	}

	// RankingCategories define the key of the top provinces ranking.
	RankingCategories = []entity.Category{
		entity.Residential,
		entity.SmallBusiness,
		entity.MediumBusiness,
		entity.LargeBusiness,
	}

	// BreakdownCategories drive both distribution charts, in legend order.
	BreakdownCategories = []entity.Category{
		entity.Residential,
		entity.SmallBusiness,
		entity.MediumBusiness,
		entity.LargeBusiness,
		entity.SpecializedBusiness,
	}
)
