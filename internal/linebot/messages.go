package linebot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"sweet-booking/internal/models"
)

const fallbackSweetImage = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30"

func defaultMessage() messaging_api.MessageInterface {
	return messaging_api.TextMessage{
		Text: "嗨，我是小夜的助理，歡迎你！可輸入「甜心列表」、「預約規則」或「客服」來開始互動唷。",
	}
}

func rulesMessage() messaging_api.MessageInterface {
	lines := []string{
		"📜 小夜陪伴服務規則",
		"1) 請保持禮貌與尊重，禁止不當語言。",
		"2) 預約需提前 1 天提出，臨時取消請告知。",
		"3) 如需真人客服，輸入「客服」即可為你安排。",
	}

	return messaging_api.TextMessage{Text: strings.Join(lines, "\n")}
}

func customerServiceMessage() messaging_api.MessageInterface {
	lines := []string{
		"👩‍💼 已轉接至真人客服，請稍候。",
		"若客服忙碌，可先留言你的需求與聯絡方式。",
	}

	return messaging_api.TextMessage{Text: strings.Join(lines, "\n")}
}

func (b *Bot) sweetCarousel(sweets []models.Sweet) messaging_api.MessageInterface {
	bubbles := make([]messaging_api.FlexBubble, 0, len(sweets))
	for _, sweet := range sweets {
		bubbles = append(bubbles, b.sweetBubble(sweet))
	}

	return messaging_api.FlexMessage{
		AltText: "甜心甜點列表",
		Contents: &messaging_api.FlexCarousel{
			Contents: bubbles,
		},
	}
}

func (b *Bot) sweetBubble(sweet models.Sweet) messaging_api.FlexBubble {
	body := []messaging_api.FlexComponentInterface{
		&messaging_api.FlexText{
			Text:   sweet.Name,
			Weight: "bold",
			Size:   "lg",
		},
		&messaging_api.FlexText{
			Text:   sweet.Description,
			Wrap:   true,
			Margin: "md",
			Size:   "sm",
			Color:  "#555555",
		},
	}

	if sweet.Tag != "" {
		body = append(body, &messaging_api.FlexBox{
			Layout: "baseline",
			Margin: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				&messaging_api.FlexIcon{
					Size: "sm",
					Url:  "https://scdn.line-apps.com/n/channel_devcenter/img/fx/review_gold_star_28.png",
				},
				&messaging_api.FlexText{
					Text:   sweet.Tag,
					Size:   "sm",
					Color:  "#FF5A8C",
					Margin: "xs",
				},
			},
		})
	}

	return messaging_api.FlexBubble{
		Hero: &messaging_api.FlexImage{
			Url:         b.resolveImage(sweet.ImageURL),
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
		},
		Body: &messaging_api.FlexBox{
			Layout:   "vertical",
			Contents: body,
		},
		Footer: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				&messaging_api.FlexButton{
					Style: "primary",
					Color: "#FF5A8C",
					Action: &messaging_api.MessageAction{
						Label: "預約",
						Text:  fmt.Sprintf("我想預約 %s", sweet.Name),
					},
				},
				&messaging_api.FlexButton{
					Style: "secondary",
					Action: &messaging_api.UriAction{
						Label: "了解更多",
						Uri:   b.sweetDetailURL(sweet.ID),
					},
				},
			},
		},
	}
}

func (b *Bot) sweetDetailURL(sweetID int64) string {
	if b.liffBaseURL == "" {
		return "https://liff.line.me"
	}
	return fmt.Sprintf("%s/sweet?id=%d", strings.TrimRight(b.liffBaseURL, "/"), sweetID)
}

func (b *Bot) resolveImage(imageURL string) string {
	if imageURL == "" {
		return fallbackSweetImage
	}
	if strings.HasPrefix(imageURL, "http") {
		return imageURL
	}
	if b.baseURL != "" {
		base, err := url.Parse(b.baseURL)
		if err == nil {
			ref, err := url.Parse(imageURL)
			if err == nil {
				return base.ResolveReference(ref).String()
			}
		}
	}
	return imageURL
}
