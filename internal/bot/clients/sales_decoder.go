package clients

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const reportsEnvelopeKey = "reports"

var errEmptyBody = errors.New("пустое тело ответа")

// DecodeSales разбирает ответ эндпоинта продаж. Канонический формат: массив записей;
// старый формат {"reports": [...]} приводится к нему же. Из записей сохраняются только числовые поля.
func DecodeSales(data []byte) ([]models.SalesRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyBody
	}

	d := jx.DecodeBytes(data)

	var (
		records []models.SalesRecord
		err     error
	)

	switch tt := d.Next(); tt {
	case jx.Array:
		records, err = decodeRecords(d)
	case jx.Object:
		records, err = decodeEnvelope(d)
	case jx.Null:
		err = d.Null()
	default:
		return nil, errors.Errorf("ожидался массив или объект, получено %s", tt)
	}

	if err != nil {
		return nil, err
	}

	// После значения допускаются только пробельные символы.
	switch err := d.Skip(); {
	case err == nil:
		return nil, errors.New("лишние данные после JSON: второе значение")
	case !errors.Is(err, io.EOF):
		return nil, errors.Wrap(err, "лишние данные после JSON")
	}

	return records, nil
}

func decodeEnvelope(d *jx.Decoder) ([]models.SalesRecord, error) {
	var (
		records []models.SalesRecord
		found   bool
	)

	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != reportsEnvelopeKey {
			return d.Skip()
		}

		found = true

		if d.Next() == jx.Null {
			return d.Null()
		}

		var err error
		records, err = decodeRecords(d)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "разбор конверта отчёта")
	}

	if !found {
		return nil, errors.Errorf("в объекте ответа нет поля %q", reportsEnvelopeKey)
	}

	return records, nil
}

func decodeRecords(d *jx.Decoder) ([]models.SalesRecord, error) {
	records := make([]models.SalesRecord, 0)
	index := 0

	err := d.Arr(func(d *jx.Decoder) error {
		if tt := d.Next(); tt != jx.Object {
			return errors.Errorf("запись %d: ожидался объект, получено %s", index, tt)
		}

		record := make(models.SalesRecord)

		if err := d.Obj(func(d *jx.Decoder, key string) error {
			if d.Next() != jx.Number {
				return d.Skip()
			}

			value, err := d.Float64()
			if err != nil {
				return errors.Wrapf(err, "поле %q", key)
			}

			record[key] = value

			return nil
		}); err != nil {
			return errors.Wrapf(err, "запись %d", index)
		}

		records = append(records, record)
		index++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
