package service

import (
	"context"
	"errors"
	"fmt"
	"html"

	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

func (s *BotService) startDeleteShop(ctx context.Context, session *models.ChatSession) (*models.Reply, error) {
	session.Reset()

	names, err := s.shops.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return models.NewReply(textNoShopsToDelete), nil
	}

	session.Start(models.FlowDeleteShop, models.StepAwaitingDeleteChoice)

	return shopChoiceReply(textChooseShopDelete, names, callbackDeleteShop), nil
}

// handleDeleteChoice запоминает выбранный магазин и просит подтверждение.
// Несуществующее имя не меняет состояние: можно выбрать другой магазин.
func (s *BotService) handleDeleteChoice(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	name, ok := parseInput(input, callbackDeleteShop)
	if !ok {
		return staleReply(), nil
	}

	exists, err := s.shops.Exists(ctx, name)
	if err != nil {
		return nil, err
	}

	if !exists {
		return models.NewReply(fmt.Sprintf(textShopNotFound, html.EscapeString(name))).
			WithNotice(fmt.Sprintf(textShopNotFound, name)), nil
	}

	session.Set(models.ScratchShop, name)
	session.Advance(models.StepAwaitingDeleteConfirm)

	return models.NewReply(fmt.Sprintf(textConfirmDelete, html.EscapeString(name))).WithButtons(confirmButtons()), nil
}

func (s *BotService) handleDeleteConfirm(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	if !input.Button {
		return models.NewReply(textChooseConfirm).WithButtons(confirmButtons()), nil
	}

	name := session.Get(models.ScratchShop)

	switch input.Text {
	case callbackDeleteConfirm:
		session.Reset()

		err := s.shops.Delete(ctx, name)
		if errors.Is(err, &domainerrors.ErrShopNotFound{}) {
			return models.NewReply(fmt.Sprintf(textShopNotFound, html.EscapeString(name))), nil
		}

		if err != nil {
			return nil, err
		}

		return models.NewReply(fmt.Sprintf(textShopDeleted, html.EscapeString(name))), nil
	case callbackDeleteCancel:
		session.Reset()

		return models.NewReply(textDeleteCancelled), nil
	default:
		return staleReply(), nil
	}
}

func confirmButtons() []models.Button {
	return []models.Button{
		{Text: labelConfirm, Data: callbackDeleteConfirm},
		{Text: labelCancel, Data: callbackDeleteCancel},
	}
}
