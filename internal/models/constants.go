package models

import "math"

const (
	// DateLayout формат даты в таблицах, например "Oct 17, 2025"
	DateLayout = "Jan 02, 2006"

	// TimeLayout формат времени в таблицах, например "08:45 PM"
	TimeLayout = "03:04 PM"

	// ExportTimestampLayout суффикс имени файла экспорта
	ExportTimestampLayout = "20060102_150405"
)

const (
	DefaultAdultRate = 500
	DefaultChildRate = 300
	DefaultCurrency  = "PHP"
)

const (
	MinAdults   = 1
	MinChildren = 0

	// MaxPartyCount верхняя граница для количества гостей (int32)
	MaxPartyCount = math.MaxInt32
)

const (
	DefaultViewKey    = "k"
	DefaultMakeKey    = "l"
	DefaultDeleteKey  = "m"
	DefaultReportKey  = "n"
	DefaultExitKey    = "o"
	DefaultExportPath = "exports"
)
