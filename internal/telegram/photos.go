package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/review"
)

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	loc := r.locale(cid)

	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.send(cid, i18n.T(loc, i18n.KeyBadImage))
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	raw, err := download(url)
	if err != nil {
		r.send(cid, i18n.T(loc, i18n.KeyBadImage))
		return
	}

	r.send(cid, i18n.T(loc, i18n.KeyPhotoReceived))

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	sess := r.session(cid)
	draft, err := sess.Submit(ctx, raw)
	if err != nil {
		r.send(cid, i18n.T(loc, review.MessageKeyFor(err)))
		return
	}
	r.sendDraft(cid, loc, draft)
}

func (r *Router) sendDraft(cid int64, loc i18n.Locale, d classify.QuestionDraft) {
	var b strings.Builder
	b.WriteString(d.Question)
	if d.Answer != "" {
		b.WriteString("\n\n✅ " + d.Answer)
	}
	if d.Explanation != "" {
		b.WriteString("\n\n💡 " + d.Explanation)
	}
	var meta []string
	if d.Subject != "" {
		meta = append(meta, d.Subject)
	}
	if d.GradeSemester != "" {
		meta = append(meta, d.GradeSemester)
	}
	if d.Chapter != "" {
		meta = append(meta, d.Chapter)
	}
	meta = append(meta, d.KnowledgeTags...)
	if len(meta) > 0 {
		b.WriteString("\n\n🏷 " + strings.Join(meta, " · "))
	}
	b.WriteString("\n\n" + i18n.T(loc, i18n.KeyReviewPrompt))

	out := tgbotapi.NewMessage(cid, b.String())
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(loc, i18n.KeyBtnSave), "save"),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(loc, i18n.KeyBtnCancel), "cancel"),
		),
	)
	if _, err := r.Bot.Send(out); err != nil {
		r.send(cid, i18n.T(loc, i18n.KeyAnalyzeFailed))
	}
}

func download(url string) ([]byte, error) {
	cl := &http.Client{Timeout: 30 * time.Second}
	resp, err := cl.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}
