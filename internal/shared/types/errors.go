package types

import "errors"

var (
	ErrInvalidTimeout    = errors.New("invalid timeout in configuration file")
	ErrUnknownReportType = errors.New("unknown report type. Supported types: csv, json, pdf, xlsx")
)
