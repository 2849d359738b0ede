package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"daily-report/ingest"
	"daily-report/internal/logger"
	"daily-report/services"
	"daily-report/store"
)

const (
	welcomeText = "👋 Hello! Daily Report Bot.\n\n" +
		"📱 Forward your messages/photos here.\n" +
		"📊 Use /report to generate today's report.\n" +
		"(Data resets automatically every day.)"

	savedText        = "✅ Saved!"
	noDataText       = "📭 No data found for today."
	reportFailedText = "⚠️ Could not generate today's report. Please try again."
)

// Bot is the Telegram transport: it normalizes inbound messages into the
// ingest layer and serves /report requests through the orchestrator.
type Bot struct {
	api      *tgbotapi.BotAPI
	ingestor *ingest.Ingestor
	reports  *services.ReportService
	dataDir  string
}

func New(token string, ing *ingest.Ingestor, reports *services.ReportService, dataDir string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{
		api:      api,
		ingestor: ing,
		reports:  reports,
		dataDir:  dataDir,
	}, nil
}

// Run long-polls updates until the context is cancelled. Pending updates
// from before the start are dropped.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	logger.Log.Infof("bot started as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(msg.Chat.ID, welcomeText)
		case "report":
			b.handleReport(ctx, msg)
		}
		return
	}

	userID := msg.From.ID
	switch {
	case len(msg.Photo) > 0:
		path, err := b.downloadPhoto(userID, msg.Photo)
		if err != nil {
			logger.ErrorWithFields("photo download failed", logger.Fields{
				"user_id": userID,
				"error":   err.Error(),
			})
			b.reply(msg.Chat.ID, reportFailedText)
			return
		}
		b.ingestor.RecordPhoto(userID, path, msg.Caption)
		b.reply(msg.Chat.ID, savedText)
	default:
		// Every inbound event becomes exactly one entry, empty text
		// included.
		b.ingestor.RecordText(userID, msg.Text)
		b.reply(msg.Chat.ID, savedText)
	}
}

func (b *Bot) handleReport(ctx context.Context, msg *tgbotapi.Message) {
	rep, err := b.reports.Generate(ctx, msg.From.ID)
	if errors.Is(err, services.ErrNoData) {
		b.reply(msg.Chat.ID, noDataText)
		return
	}
	if err != nil {
		logger.ErrorWithFields("report generation failed", logger.Fields{
			"user_id": msg.From.ID,
			"error":   err.Error(),
		})
		b.reply(msg.Chat.ID, reportFailedText)
		return
	}

	b.reply(msg.Chat.ID, "📝 Summary:\n"+rep.SummaryText)

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FilePath(rep.DocumentPath))
	if _, err := b.api.Send(doc); err != nil {
		logger.ErrorWithFields("document send failed", logger.Fields{
			"user_id": msg.From.ID,
			"error":   err.Error(),
		})
	}
}

// downloadPhoto fetches the largest available size of the photo and
// persists it under the data dir, yielding the path used as PhotoRef.
func (b *Bot) downloadPhoto(userID int64, sizes []tgbotapi.PhotoSize) (string, error) {
	largest := sizes[len(sizes)-1]
	url, err := b.api.GetFileDirectURL(largest.FileID)
	if err != nil {
		return "", err
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo download: unexpected status %s", resp.Status)
	}

	name := fmt.Sprintf("photo_%d_%s_%s.jpg", userID, store.DayKey(time.Now()), uuid.NewString())
	path := filepath.Join(b.dataDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Log.Warnf("reply failed: %v", err)
	}
}
