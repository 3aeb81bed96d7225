package events

import (
	"time"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// ReportEventMessage задаёт JSON представление события о сформированном отчёте.
// Суммы передаются строками с двумя знаками после запятой, чтобы не терять точность.
type ReportEventMessage struct {
	RequestID         string    `json:"requestId"`
	ChatID            int64     `json:"chatId"`
	Shop              string    `json:"shop"`
	Period            string    `json:"period"`
	DateFrom          string    `json:"dateFrom"`
	DateTo            string    `json:"dateTo"`
	TotalSales        string    `json:"totalSales"`
	TotalDiscount     string    `json:"totalDiscount"`
	SPP               string    `json:"spp"`
	PaymentSaleAmount string    `json:"paymentSaleAmount"`
	ForPay            string    `json:"forPay"`
	FinishedPrice     string    `json:"finishedPrice"`
	PriceWithDisc     string    `json:"priceWithDisc"`
	AvgSalePrice      string    `json:"avgSalePrice"`
	UnitsSold         int       `json:"unitsSold"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

func NewReportEventMessage(event *models.ReportEvent) ReportEventMessage {
	message := ReportEventMessage{
		RequestID:   event.RequestID,
		ChatID:      event.ChatID,
		Shop:        event.Shop,
		Period:      string(event.Period),
		DateFrom:    event.Range.From,
		DateTo:      event.Range.To,
		GeneratedAt: event.GeneratedAt.UTC(),
	}

	if s := event.Summary; s != nil {
		message.TotalSales = s.TotalSales.StringFixed(2)
		message.TotalDiscount = s.TotalDiscount.StringFixed(2)
		message.SPP = s.SPP.StringFixed(2)
		message.PaymentSaleAmount = s.PaymentSaleAmount.StringFixed(2)
		message.ForPay = s.ForPay.StringFixed(2)
		message.FinishedPrice = s.FinishedPrice.StringFixed(2)
		message.PriceWithDisc = s.PriceWithDisc.StringFixed(2)
		message.AvgSalePrice = s.AvgSalePrice.StringFixed(2)
		message.UnitsSold = s.UnitsSold
	}

	return message
}
