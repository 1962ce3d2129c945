package pipeline

import (
	"sort"
	"strings"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

// Filter keeps the records whose province name equals q.Province (when set)
// and contains q.Search case-insensitively (when set). Order is preserved and
// a new slice is always returned.
func Filter(records []entity.MergedRecord, q entity.Query) []entity.MergedRecord {
	search := strings.ToLower(q.Search)

	filtered := make([]entity.MergedRecord, 0, len(records))
	for _, r := range records {
		if q.Province != "" && r.ProvinceName != q.Province {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.ProvinceName), search) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Provinces returns the sorted distinct province names, the options of the
// province selector.
func Provinces(records []entity.MergedRecord) []string {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ProvinceName]; ok {
			continue
		}
		seen[r.ProvinceName] = struct{}{}
		names = append(names, r.ProvinceName)
	}
	sort.Strings(names)
	return names
}
