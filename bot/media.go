package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/google/uuid"
)

// handleMedia turns an uploaded photo or document into a file token for the
// active form. Media outside a form is ignored.
func (b *RhinoBot) handleMedia(bot *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	if !b.engine.Active(chatId) {
		return nil
	}

	bg := context.Background()
	lang := b.language(bg, chatId)

	fileId := mediaFileId(ctx.EffectiveMessage)
	if fileId == "" {
		return nil
	}

	path, err := b.downloadFile(fileId)
	if err != nil {
		b.log.Error("downloading upload", slog.Int64("id", chatId), sl.Err(err))
		// Let the validator reject so the field is re-prompted.
		_, err = b.engine.SubmitInput(bg, chatId, lang, "")
		return err
	}

	_, err = b.engine.SubmitInput(bg, chatId, lang, form.FileRefPrefix+path)
	return err
}

// mediaFileId picks the best file id from a message: the largest photo size
// or the attached document.
func mediaFileId(msg *tgbotapi.Message) string {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileId
	}
	if msg.Document != nil {
		return msg.Document.FileId
	}
	return ""
}

// downloadFile fetches the Telegram file and stores it under a fresh uuid
// name in the uploads dir, keeping the original extension.
func (b *RhinoBot) downloadFile(fileId string) (string, error) {
	file, err := b.api.GetFile(fileId, nil)
	if err != nil {
		return "", fmt.Errorf("resolving file: %w", err)
	}

	ext := filepath.Ext(file.FilePath)
	if ext == "" {
		ext = ".jpg"
	}

	if err := os.MkdirAll(b.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating uploads dir: %w", err)
	}

	resp, err := http.Get(file.URL(b.api, nil))
	if err != nil {
		return "", fmt.Errorf("fetching file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching file: status %d", resp.StatusCode)
	}

	path := filepath.Join(b.uploadsDir, uuid.NewString()+ext)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}
