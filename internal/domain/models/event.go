package models

import (
	"time"
)

// ReportEvent описывает успешно сформированный отчёт.
type ReportEvent struct {
	RequestID   string
	ChatID      int64
	Shop        string
	Period      Period
	Range       DateRange
	Summary     *MetricsSummary
	GeneratedAt time.Time
}
