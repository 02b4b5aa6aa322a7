package linebot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"sweet-booking/internal/config"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/models"
)

// SweetSource is the slice of storage the bot needs to answer catalog
// queries.
type SweetSource interface {
	ListSweets(ctx context.Context) ([]models.Sweet, error)
}

// Replier sends reply messages for a webhook event.
type Replier interface {
	Reply(replyToken string, messages []messaging_api.MessageInterface) error
}

// Bot answers keyword messages sent to the LINE official account.
type Bot struct {
	channelSecret string
	sweets        SweetSource
	replier       Replier
	liffBaseURL   string
	baseURL       string
	logger        *slog.Logger
}

func New(cfg *config.Config, sweets SweetSource, logger *slog.Logger) (*Bot, error) {
	if cfg.Line.Messaging == nil {
		return nil, fmt.Errorf("line messaging channel is not configured")
	}

	client, err := messaging_api.NewMessagingApiAPI(cfg.Line.Messaging.ChannelToken)
	if err != nil {
		return nil, fmt.Errorf("building messaging client: %w", err)
	}

	return &Bot{
		channelSecret: cfg.Line.Messaging.ChannelSecret,
		sweets:        sweets,
		replier:       &apiReplier{client: client},
		liffBaseURL:   cfg.Auth.FrontendOrigin,
		baseURL:       cfg.Server.BaseURL,
		logger:        logger,
	}, nil
}

// ParseRequest validates the webhook signature and returns the delivered
// events.
func (b *Bot) ParseRequest(r *http.Request) ([]webhook.EventInterface, error) {
	cb, err := webhook.ParseRequest(b.channelSecret, r)
	if err != nil {
		return nil, err
	}
	return cb.Events, nil
}

// HandleEvent replies to a single webhook event. Events that are not text
// messages are counted and dropped.
func (b *Bot) HandleEvent(ctx context.Context, event webhook.EventInterface) error {
	messageEvent, ok := event.(webhook.MessageEvent)
	if !ok {
		metrics.WebhookEventsTotal.WithLabelValues("other").Inc()
		return nil
	}

	text, ok := messageEvent.Message.(webhook.TextMessageContent)
	if !ok {
		metrics.WebhookEventsTotal.WithLabelValues("non_text").Inc()
		return nil
	}

	metrics.WebhookEventsTotal.WithLabelValues("text").Inc()

	reply, err := b.buildReply(ctx, strings.TrimSpace(text.Text))
	if err != nil {
		return fmt.Errorf("building reply: %w", err)
	}

	if err := b.replier.Reply(messageEvent.ReplyToken, reply); err != nil {
		return fmt.Errorf("sending reply: %w", err)
	}
	return nil
}

func (b *Bot) buildReply(ctx context.Context, text string) ([]messaging_api.MessageInterface, error) {
	switch text {
	case "甜心列表":
		sweets, err := b.sweets.ListSweets(ctx)
		if err != nil {
			return nil, err
		}
		if len(sweets) == 0 {
			return []messaging_api.MessageInterface{
				messaging_api.TextMessage{Text: "目前沒有上架的甜心，請稍後再試或聯絡客服唷。"},
			}, nil
		}
		return []messaging_api.MessageInterface{b.sweetCarousel(sweets)}, nil
	case "預約規則":
		return []messaging_api.MessageInterface{rulesMessage()}, nil
	case "客服":
		return []messaging_api.MessageInterface{customerServiceMessage()}, nil
	default:
		return []messaging_api.MessageInterface{defaultMessage()}, nil
	}
}

type apiReplier struct {
	client *messaging_api.MessagingApiAPI
}

func (r *apiReplier) Reply(replyToken string, messages []messaging_api.MessageInterface) error {
	_, err := r.client.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	return err
}
