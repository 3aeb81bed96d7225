package models

import (
	"time"

	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

const DateLayout = "2006-01-02"

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodLast7Days Period = "last_7_days"
	PeriodCustom    Period = "custom"
)

// DateRange задаёт границы запроса в формате YYYY-MM-DD, передаются в API без изменений.
type DateRange struct {
	From string
	To   string
}

// ResolvePeriod переводит период в конкретный диапазон дат относительно now.
// Для произвольного периода даты берутся дословно, без проверки формата.
func ResolvePeriod(period Period, now time.Time, dateStart, dateEnd string) (DateRange, error) {
	today := now.Format(DateLayout)

	switch period {
	case PeriodToday:
		return DateRange{From: today, To: today}, nil
	case PeriodYesterday:
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		return DateRange{From: yesterday, To: yesterday}, nil
	case PeriodLast7Days:
		return DateRange{From: now.AddDate(0, 0, -7).Format(DateLayout), To: today}, nil
	case PeriodCustom:
		if dateStart == "" {
			return DateRange{}, &domainerrors.ErrMissingRequiredField{FieldName: "date_start"}
		}

		if dateEnd == "" {
			return DateRange{}, &domainerrors.ErrMissingRequiredField{FieldName: "date_end"}
		}

		return DateRange{From: dateStart, To: dateEnd}, nil
	default:
		return DateRange{}, &domainerrors.ErrInvalidValue{FieldName: "period", Value: string(period)}
	}
}
