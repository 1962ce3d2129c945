package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	UsersSource   string
	UsagesSource  string
	UsageWrapper  string
	Province      string
	Search        string
	TopN          int
	Interactive   bool
	ListProvinces bool
	ReportName    string
	ReportType    []string
	Dir           string
	ChartDir      string
	Timeout       time.Duration
	AWSProfile    string
	AWSRegion     string
	Listen        string
}
