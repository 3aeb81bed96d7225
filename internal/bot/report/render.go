package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// Render формирует текст отчёта в HTML разметке Telegram. Суммы округляются до копеек только здесь.
func Render(shop string, dateRange models.DateRange, summary *models.MetricsSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>Отчёт о продажах: %s</b>\n", html.EscapeString(shop)))
	sb.WriteString(fmt.Sprintf("Период: %s — %s\n\n",
		html.EscapeString(dateRange.From), html.EscapeString(dateRange.To)))

	writeLine(&sb, "Общая сумма продаж", summary.TotalSales)
	writeLine(&sb, "Сумма скидок", summary.TotalDiscount)
	writeLine(&sb, "SPP", summary.SPP)
	writeLine(&sb, "Сумма оплаты", summary.PaymentSaleAmount)
	writeLine(&sb, "К перечислению продавцу", summary.ForPay)
	writeLine(&sb, "Финальная цена", summary.FinishedPrice)
	writeLine(&sb, "Цена со скидкой", summary.PriceWithDisc)
	writeLine(&sb, "Средняя цена продажи", summary.AvgSalePrice)
	sb.WriteString(fmt.Sprintf("Количество продаж: %d\n", summary.UnitsSold))

	return sb.String()
}

func writeLine(sb *strings.Builder, label string, value decimal.Decimal) {
	sb.WriteString(fmt.Sprintf("%s: %s\n", label, value.StringFixed(2)))
}
