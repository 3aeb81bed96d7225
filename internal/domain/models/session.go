package models

import (
	"time"
)

type Flow int

const (
	FlowNone Flow = iota
	FlowAddShop
	FlowDeleteShop
	FlowReport
)

func (f Flow) String() string {
	switch f {
	case FlowNone:
		return "none"
	case FlowAddShop:
		return "add_shop"
	case FlowDeleteShop:
		return "delete_shop"
	case FlowReport:
		return "report"
	default:
		return "unknown"
	}
}

type Step int

const (
	StepIdle Step = iota
	StepAwaitingCredential
	StepAwaitingName
	StepAwaitingDeleteChoice
	StepAwaitingDeleteConfirm
	StepAwaitingShop
	StepAwaitingPeriod
	StepAwaitingStartDate
	StepAwaitingEndDate
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingCredential:
		return "awaiting_credential"
	case StepAwaitingName:
		return "awaiting_name"
	case StepAwaitingDeleteChoice:
		return "awaiting_delete_choice"
	case StepAwaitingDeleteConfirm:
		return "awaiting_delete_confirm"
	case StepAwaitingShop:
		return "awaiting_shop"
	case StepAwaitingPeriod:
		return "awaiting_period"
	case StepAwaitingStartDate:
		return "awaiting_start_date"
	case StepAwaitingEndDate:
		return "awaiting_end_date"
	default:
		return "unknown"
	}
}

// Ключи промежуточных данных сессии.
const (
	ScratchCredential = "credential"
	ScratchShop       = "shop"
	ScratchDateStart  = "date_start"
	ScratchDateEnd    = "date_end"
)

// ChatSession хранит состояние диалога одного чата. В каждый момент активен не более одного сценария.
type ChatSession struct {
	ChatID    int64             `json:"chat_id"`
	Flow      Flow              `json:"flow"`
	Step      Step              `json:"step"`
	Scratch   map[string]string `json:"scratch,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewChatSession(chatID int64) *ChatSession {
	return &ChatSession{
		ChatID:  chatID,
		Flow:    FlowNone,
		Step:    StepIdle,
		Scratch: make(map[string]string),
	}
}

// Start запускает сценарий заново, отбрасывая данные предыдущего.
func (s *ChatSession) Start(flow Flow, step Step) {
	s.Flow = flow
	s.Step = step
	s.Scratch = make(map[string]string)
}

func (s *ChatSession) Advance(step Step) {
	s.Step = step
}

func (s *ChatSession) Reset() {
	s.Start(FlowNone, StepIdle)
}

func (s *ChatSession) Active() bool {
	return s.Flow != FlowNone
}

func (s *ChatSession) Set(key, value string) {
	if s.Scratch == nil {
		s.Scratch = make(map[string]string)
	}

	s.Scratch[key] = value
}

func (s *ChatSession) Get(key string) string {
	return s.Scratch[key]
}

// Clone нужен хранилищам, которые держат сессии в памяти: вызывающий код не должен менять их копию.
func (s *ChatSession) Clone() *ChatSession {
	clone := *s
	clone.Scratch = make(map[string]string, len(s.Scratch))

	for k, v := range s.Scratch {
		clone.Scratch[k] = v
	}

	return &clone
}
