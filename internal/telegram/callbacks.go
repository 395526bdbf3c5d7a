package telegram

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/review"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	cid := cb.Message.Chat.ID
	loc := r.locale(cid)

	// ack so the button stops spinning
	if _, err := r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("telegram: callback ack: %v", err)
	}

	sess := r.session(cid)
	switch cb.Data {
	case "save":
		snap := sess.Snapshot()
		if snap.Draft == nil {
			r.send(cid, i18n.T(loc, i18n.KeyCancelled))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := sess.Save(ctx, *snap.Draft); err != nil {
			if err == review.ErrNotReviewing {
				r.send(cid, i18n.T(loc, i18n.KeyCancelled))
				return
			}
			r.send(cid, i18n.T(loc, i18n.KeySaveFailed))
			return
		}
		r.send(cid, i18n.T(loc, i18n.KeySaveSuccess))
	case "cancel":
		sess.Cancel()
		r.send(cid, i18n.T(loc, i18n.KeyCancelled))
	}
}

// Run consumes the long-poll update channel until it closes.
func (r *Router) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range r.Bot.GetUpdatesChan(u) {
		go r.HandleUpdate(upd)
	}
}
