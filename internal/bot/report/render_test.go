package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/report"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

func TestRender(t *testing.T) {
	summary, err := report.Aggregate([]models.SalesRecord{record(100, 10), record(33.333, 0)})
	require.NoError(t, err)

	text := report.Render("Shop <A&B>", models.DateRange{From: "2024-05-01", To: "2024-05-07"}, summary)

	assert.Contains(t, text, "Shop &lt;A&amp;B&gt;")
	assert.Contains(t, text, "Период: 2024-05-01 — 2024-05-07")
	assert.Contains(t, text, "Общая сумма продаж: 133.33")
	assert.Contains(t, text, "Сумма скидок: 10.00")
	assert.Contains(t, text, "Средняя цена продажи: 66.67")
	assert.Contains(t, text, "Количество продаж: 2")
}
