package models

type Button struct {
	Text string
	Data string
}

// Reply описывает ответ бота на одно входящее обновление.
// Notice показывается как всплывающее уведомление при нажатии на кнопку.
type Reply struct {
	Text     string
	Keyboard [][]Button
	Notice   string
}

func NewReply(text string) *Reply {
	return &Reply{Text: text}
}

func (r *Reply) WithButtons(rows ...[]Button) *Reply {
	r.Keyboard = append(r.Keyboard, rows...)
	return r
}

func (r *Reply) WithNotice(notice string) *Reply {
	r.Notice = notice
	return r
}
