// Package telegram drives the review pipeline from a photo-first bot chat.
// Each chat owns one review session; buttons confirm or discard the draft.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/review"
	"wrong-notebook/internal/store"
)

type Router struct {
	Bot      *tgbotapi.BotAPI
	Sessions *review.Manager
	Entries  *store.EntryRepo

	DefaultLocale i18n.Locale

	chatLocale sync.Map // chatID -> i18n.Locale
}

func (r *Router) locale(cid int64) i18n.Locale {
	if v, ok := r.chatLocale.Load(cid); ok {
		return v.(i18n.Locale)
	}
	if r.DefaultLocale != "" {
		return r.DefaultLocale
	}
	return i18n.ZH
}

func (r *Router) session(cid int64) *review.Session {
	s := r.Sessions.Session(fmt.Sprintf("tg:%d", cid))
	s.SetLocale(r.locale(cid))
	return s
}

func (r *Router) send(cid int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(cid, text)); err != nil {
		log.Printf("telegram: send to %d: %v", cid, err)
	}
}

// HandleUpdate is the single entry point for the long-poll loop.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	cid := msg.Chat.ID

	if msg.IsCommand() {
		r.handleCommand(*msg)
		return
	}
	if len(msg.Photo) > 0 {
		r.acceptPhoto(*msg)
		return
	}
	r.send(cid, i18n.T(r.locale(cid), i18n.KeyStart))
}

func (r *Router) handleCommand(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, i18n.T(r.locale(cid), i18n.KeyStart))
	case "lang":
		arg := strings.TrimSpace(msg.CommandArguments())
		loc := i18n.Parse(arg)
		r.chatLocale.Store(cid, loc)
		r.session(cid).SetLocale(loc)
		if loc == i18n.EN {
			r.send(cid, "Language set to English")
		} else {
			r.send(cid, "已切换为中文")
		}
	case "stats":
		r.sendStats(cid)
	default:
		r.send(cid, i18n.T(r.locale(cid), i18n.KeyStart))
	}
}

func (r *Router) sendStats(cid int64) {
	if r.Entries == nil {
		return
	}
	stats, err := r.Entries.Stats(context.Background())
	if err != nil {
		log.Printf("telegram: stats: %v", err)
		r.send(cid, i18n.T(r.locale(cid), i18n.KeyAnalyzeFailed))
		return
	}
	var b strings.Builder
	for _, subject := range []string{"math", "english", "physics", "chemistry", "other"} {
		fmt.Fprintf(&b, "%s: %d\n", subject, stats[subject])
	}
	fmt.Fprintf(&b, "total: %d", stats["total"])
	r.send(cid, b.String())
}
