package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/checkplatform/checkdesk/pkg/clients"
	"go.uber.org/zap"
)

// ApplicationCreated describes a freshly created application for the
// operator chat message.
type ApplicationCreated struct {
	ApplicationID     int64
	ApplicationNumber int64
	UserName          string
	CompanyName       string
	CompanyINN        string
	ChecksCount       int
}

// TelegramNotifier posts operator notifications to a Telegram chat. Delivery
// is best effort: failures are logged and never surface to the caller.
type TelegramNotifier struct {
	client clients.HTTPClientI
	token  string
	chatID string
}

func NewTelegramNotifier(client clients.HTTPClientI, token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{client: client, token: token, chatID: chatID}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (n *TelegramNotifier) ApplicationCreated(ctx context.Context, e ApplicationCreated) {
	if n.token == "" || n.chatID == "" {
		return
	}

	text := fmt.Sprintf(
		"New application #%d\nUser: %s\nCompany: %s (INN %s)\nChecks: %d",
		e.ApplicationNumber, e.UserName, e.CompanyName, e.CompanyINN, e.ChecksCount,
	)

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.token)
	status, _, err := n.client.PostJSON(ctx, url, sendMessageRequest{ChatID: n.chatID, Text: text})
	if err != nil {
		zap.L().Error("can't send telegram notification",
			zap.Int64("application_id", e.ApplicationID), zap.Error(err))
		return
	}
	if status != http.StatusOK {
		zap.L().Error("telegram rejected notification",
			zap.Int64("application_id", e.ApplicationID), zap.Int("status", status))
	}
}
