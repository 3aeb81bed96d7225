package report

import (
	"github.com/shopspring/decimal"

	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// Aggregate сводит записи о продажах в итоговые показатели.
// Если хотя бы в одной записи нет обязательного поля, частичный результат не возвращается.
func Aggregate(records []models.SalesRecord) (*models.MetricsSummary, error) {
	for i, record := range records {
		for _, field := range models.RequiredSalesFields {
			if _, ok := record[field]; !ok {
				return nil, &domainerrors.ErrMissingRequiredField{FieldName: field, Index: i}
			}
		}
	}

	summary := &models.MetricsSummary{
		TotalSales:        decimal.Zero,
		TotalDiscount:     decimal.Zero,
		SPP:               decimal.Zero,
		PaymentSaleAmount: decimal.Zero,
		ForPay:            decimal.Zero,
		FinishedPrice:     decimal.Zero,
		PriceWithDisc:     decimal.Zero,
		AvgSalePrice:      decimal.Zero,
		UnitsSold:         len(records),
	}

	for _, record := range records {
		totalPrice := decimal.NewFromFloat(record[models.FieldTotalPrice])
		discountPercent := decimal.NewFromFloat(record[models.FieldDiscountPercent])

		summary.TotalSales = summary.TotalSales.Add(totalPrice)
		summary.TotalDiscount = summary.TotalDiscount.Add(totalPrice.Mul(discountPercent).Div(hundred))
		summary.SPP = summary.SPP.Add(decimal.NewFromFloat(record[models.FieldSPP]))
		summary.PaymentSaleAmount = summary.PaymentSaleAmount.Add(decimal.NewFromFloat(record[models.FieldPaymentSaleAmount]))
		summary.ForPay = summary.ForPay.Add(decimal.NewFromFloat(record[models.FieldForPay]))
		summary.FinishedPrice = summary.FinishedPrice.Add(decimal.NewFromFloat(record[models.FieldFinishedPrice]))
		summary.PriceWithDisc = summary.PriceWithDisc.Add(decimal.NewFromFloat(record[models.FieldPriceWithDisc]))
	}

	if len(records) > 0 {
		summary.AvgSalePrice = summary.TotalSales.Div(decimal.NewFromInt(int64(len(records))))
	}

	return summary, nil
}
