package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// handleCredentialInput проверяет ключ в API маркетплейса. Пока ключ не принят, шаг не меняется.
func (s *BotService) handleCredentialInput(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	if input.Button {
		return staleReply(), nil
	}

	credential := strings.TrimSpace(input.Text)
	if credential == "" || !s.marketplace.ValidateCredential(ctx, credential) {
		return models.NewReply(textCredentialInvalid), nil
	}

	session.Set(models.ScratchCredential, credential)
	session.Advance(models.StepAwaitingName)

	return models.NewReply(textAskShopName), nil
}

func (s *BotService) handleShopNameInput(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	if input.Button {
		return staleReply(), nil
	}

	// Имя сохраняется как введено, пробелы отсекаются только при проверке на пустоту.
	name := input.Text

	switch {
	case strings.TrimSpace(name) == "":
		return models.NewReply(textEmptyShopName), nil
	case len(name) > maxShopNameLen:
		return models.NewReply(textShopNameTooLong), nil
	}

	if err := s.shops.Put(ctx, name, session.Get(models.ScratchCredential)); err != nil {
		return nil, err
	}

	session.Reset()

	return models.NewReply(fmt.Sprintf(textShopSaved, html.EscapeString(name))), nil
}
