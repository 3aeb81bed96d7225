package models

import (
	"github.com/shopspring/decimal"
)

// Обязательные числовые поля строки отчёта о продажах Wildberries.
const (
	FieldTotalPrice        = "totalPrice"
	FieldDiscountPercent   = "discountPercent"
	FieldSPP               = "spp"
	FieldPaymentSaleAmount = "paymentSaleAmount"
	FieldForPay            = "forPay"
	FieldFinishedPrice     = "finishedPrice"
	FieldPriceWithDisc     = "priceWithDisc"
)

var RequiredSalesFields = []string{
	FieldTotalPrice,
	FieldDiscountPercent,
	FieldSPP,
	FieldPaymentSaleAmount,
	FieldForPay,
	FieldFinishedPrice,
	FieldPriceWithDisc,
}

// SalesRecord хранит числовые поля одной записи о продаже. Нечисловые поля ответа API отбрасываются.
type SalesRecord map[string]float64

type MetricsSummary struct {
	TotalSales        decimal.Decimal
	TotalDiscount     decimal.Decimal
	SPP               decimal.Decimal
	PaymentSaleAmount decimal.Decimal
	ForPay            decimal.Decimal
	FinishedPrice     decimal.Decimal
	PriceWithDisc     decimal.Decimal
	AvgSalePrice      decimal.Decimal
	UnitsSold         int
}
