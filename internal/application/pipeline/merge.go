package pipeline

import "github.com/diillson/electricity-dashboard-go/internal/domain/entity"

// Merge joins every user record with the first usage record that has the same
// province code. The result has one record per user, in user order; users
// without usage keep a nil Usage. Neither input is modified.
func Merge(users []entity.UserRecord, usages []entity.UsageRecord) []entity.MergedRecord {
	merged := make([]entity.MergedRecord, 0, len(users))
	for _, user := range users {
		record := entity.MergedRecord{UserRecord: user}
		if usage, ok := findUsage(usages, user.ProvinceCode); ok {
			record.Usage = &usage
		}
		merged = append(merged, record)
	}
	return merged
}

// findUsage returns a copy of the first usage with the given code.
func findUsage(usages []entity.UsageRecord, code entity.ProvinceCode) (entity.UsageRecord, bool) {
	for _, usage := range usages {
		if usage.ProvinceCode == code {
			return usage, true
		}
	}
	return entity.UsageRecord{}, false
}
