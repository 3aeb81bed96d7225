package service

import "time"

func (s *BotService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BotService) SetPublishTimeout(timeout time.Duration) {
	s.publishTimeout = timeout
}
