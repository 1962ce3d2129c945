package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	UsersSource  string   `json:"users_source" yaml:"users_source" toml:"users_source"`
	UsagesSource string   `json:"usages_source" yaml:"usages_source" toml:"usages_source"`
	UsageWrapper string   `json:"usage_wrapper" yaml:"usage_wrapper" toml:"usage_wrapper"`
	Province     string   `json:"province" yaml:"province" toml:"province"`
	Search       string   `json:"search" yaml:"search" toml:"search"`
	TopN         int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	ChartDir     string   `json:"chart_dir" yaml:"chart_dir" toml:"chart_dir"`
	Timeout      string   `json:"timeout" yaml:"timeout" toml:"timeout"`
	AWSProfile   string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion    string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	Listen       string   `json:"listen" yaml:"listen" toml:"listen"`
}
