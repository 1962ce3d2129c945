package types

import "time"

// Valores padrão aplicados quando nem flag nem arquivo de configuração definem o campo.
const (
	DefaultUsersSource  = "electricity_users_en.json"
	DefaultUsagesSource = "electricity_usages_en.json"
	DefaultTopN         = 10
	DefaultTimeout      = 30 * time.Second
	DefaultListen       = ":8080"
	DefaultReportType   = "csv"
)
