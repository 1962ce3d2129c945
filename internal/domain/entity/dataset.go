package entity

import "time"

// DefaultUsageWrapper is the container field (or worksheet) holding usage records.
const DefaultUsageWrapper = "Sheet1"

// Sources describes where the two datasets come from.
type Sources struct {
	Users        string
	Usages       string
	UsageWrapper string
	Timeout      time.Duration
	AWSProfile   string
	AWSRegion    string
}

// Datasets holds both raw collections as loaded.
type Datasets struct {
	Users  []UserRecord
	Usages []UsageRecord
}
