package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// API is a minimal Telegram Bot API client covering the calls this bot
// makes. Delivery is best effort: callers log failures and move on, no
// retries.
type API struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	token      string
	logger     *slog.Logger
}

func NewAPI(baseURL, token string, logger *slog.Logger) *API {
	return &API{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Bot API allows roughly 30 messages per second overall.
		limiter: rate.NewLimiter(rate.Every(35*time.Millisecond), 1),
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger,
	}
}

// SendMessage sends an HTML-formatted text message, optionally with an
// inline keyboard.
func (api *API) SendMessage(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	return api.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
}

// SendAudio delivers a playable audio by URL with title and performer
// metadata so Telegram renders an in-app player.
func (api *API) SendAudio(ctx context.Context, chatID int64, url, title, performer string, keyboard *InlineKeyboardMarkup) error {
	caption := fmt.Sprintf("🎵 <b>%s</b>\n🎤 %s\n🎧 HQ Audio (320kbps)", title, performer)
	return api.call(ctx, "sendAudio", sendAudioRequest{
		ChatID:      chatID,
		Audio:       url,
		Title:       title,
		Performer:   performer,
		Caption:     caption,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
}

// AnswerCallback acknowledges a button press so the client stops showing
// a progress spinner. It produces no user-visible reply.
func (api *API) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	return api.call(ctx, "answerCallbackQuery", answerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
	})
}

// SetWebhook registers the bot's webhook URL.
func (api *API) SetWebhook(ctx context.Context, url string) error {
	return api.call(ctx, "setWebhook", setWebhookRequest{URL: url})
}

func (api *API) call(ctx context.Context, method string, body any) error {
	if err := api.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", api.baseURL, api.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute %s: %w", method, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out apiResponse
	_ = json.Unmarshal(raw, &out)
	if !out.OK {
		return fmt.Errorf("telegram %s: ok=false: %s", method, out.Description)
	}

	api.logger.Debug("telegram call", "method", method)
	return nil
}
