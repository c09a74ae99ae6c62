// Package notify — уведомления владельцу в Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/montazhpro/smeta/internal/domain/estimates"
)

type Telegram struct {
	api       *tgbotapi.BotAPI
	adminChat int64
}

func NewTelegram(token string, adminChatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, adminChat: adminChatID}, nil
}

// ContactRequest пересылает заявку с формы обратной связи в админ-чат.
// Nil-получатель — no-op: уведомления в конфиге можно не включать.
func (t *Telegram) ContactRequest(name, phone, message string) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf("Новая заявка с сайта\nИмя: %s\nТелефон: %s\n\n%s", name, phone, message)
	_, err := t.api.Send(tgbotapi.NewMessage(t.adminChat, text))
	return err
}

func (t *Telegram) EstimateCreated(e *estimates.Estimate) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf("Создана смета № %s «%s», позиций: %d, итого: %.2f",
		e.Number, e.Name, len(e.Items), e.TotalCost)
	_, err := t.api.Send(tgbotapi.NewMessage(t.adminChat, text))
	return err
}
