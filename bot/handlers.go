package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/bot/i18n"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

func (b *RhinoBot) handleStart(bot *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	lang := b.language(context.Background(), chatId)

	b.plainResponse(chatId, i18n.Tf(lang, "menu_welcome", ctx.EffectiveUser.FirstName))
	return b.sendMainMenu(chatId, lang)
}

func (b *RhinoBot) handleMenu(bot *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	return b.sendMainMenu(chatId, b.language(context.Background(), chatId))
}

// handleMessage feeds text into the active form; outside a form the main
// menu is the answer to everything.
func (b *RhinoBot) handleMessage(bot *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	bg := context.Background()
	lang := b.language(bg, chatId)

	consumed, err := b.engine.SubmitInput(bg, chatId, lang, ctx.EffectiveMessage.Text)
	if err != nil {
		b.log.Error("form input failed", slog.Int64("id", chatId), sl.Err(err))
	}
	if consumed {
		return nil
	}

	return b.sendMainMenu(chatId, lang)
}

func (b *RhinoBot) handleCallback(bot *tgbotapi.Bot, ctx *ext.Context) error {
	cb := ctx.Update.CallbackQuery
	chatId := ctx.EffectiveChat.Id
	bg := context.Background()
	lang := b.language(bg, chatId)

	if _, err := cb.Answer(bot, nil); err != nil {
		b.log.Debug("answering callback", sl.Err(err))
	}

	token := parseToken(cb.Data)
	action, ok := routes[token]
	if !ok {
		b.log.Warn("unknown menu token", slog.String("token", token))
		return nil
	}

	if action.staff && !b.isStaff(bg, chatId) {
		b.log.Info("staff route refused",
			slog.Int64("id", chatId),
			slog.String("token", token),
		)
		return nil
	}

	switch {
	case action.form != "":
		return b.startForm(bg, chatId, lang, action.form)
	case action.list != "":
		return b.renderList(bg, chatId, lang, action.list)
	case action.menu == "admin":
		return b.sendAdminMenu(chatId, lang)
	}

	return nil
}

func (b *RhinoBot) startForm(ctx context.Context, chatId int64, lang, formID string) error {
	err := b.engine.StartForm(ctx, chatId, lang, formID)
	if errors.Is(err, form.ErrAlreadyActive) {
		b.plainResponse(chatId, i18n.T(lang, "form_in_progress"))
		return nil
	}
	return err
}

func (b *RhinoBot) sendMainMenu(chatId int64, lang string) error {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{menuButton(lang, "btn_register", "register")},
		{menuButton(lang, "btn_plans", "plans"), menuButton(lang, "btn_locations", "locations")},
		{menuButton(lang, "btn_schedules", "schedules"), menuButton(lang, "btn_payment", "payment")},
		{menuButton(lang, "btn_admin", "admin")},
		{menuButton(lang, "btn_language", "language")},
	}

	_, err := b.api.SendMessage(chatId, i18n.T(lang, "menu_title"), &tgbotapi.SendMessageOpts{
		ReplyMarkup: tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	return err
}

func (b *RhinoBot) sendAdminMenu(chatId int64, lang string) error {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{menuButton(lang, "btn_attendance", "attendance"), menuButton(lang, "btn_update_user", "update_user")},
		{menuButton(lang, "btn_add_coach", "add_coach"), menuButton(lang, "btn_edit_coach", "edit_coach")},
		{menuButton(lang, "btn_delete_coach", "delete_coach"), menuButton(lang, "btn_list_coaches", "list_coaches")},
		{menuButton(lang, "btn_add_location", "add_location"), menuButton(lang, "btn_edit_location", "edit_location")},
		{menuButton(lang, "btn_delete_location", "delete_location")},
		{menuButton(lang, "btn_add_plan", "add_plan"), menuButton(lang, "btn_edit_plan", "edit_plan")},
		{menuButton(lang, "btn_delete_plan", "delete_plan")},
		{menuButton(lang, "btn_add_method", "add_method"), menuButton(lang, "btn_edit_method", "edit_method")},
		{menuButton(lang, "btn_delete_method", "delete_method"), menuButton(lang, "btn_list_methods", "methods")},
		{menuButton(lang, "btn_add_schedule", "add_schedule"), menuButton(lang, "btn_edit_schedule", "edit_schedule")},
		{menuButton(lang, "btn_delete_schedule", "delete_schedule")},
	}

	_, err := b.api.SendMessage(chatId, i18n.T(lang, "admin_title"), &tgbotapi.SendMessageOpts{
		ReplyMarkup: tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	return err
}

func menuButton(lang, labelKey, token string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.InlineKeyboardButton{
		Text:         i18n.T(lang, labelKey),
		CallbackData: buildCallback(token),
	}
}

// renderList answers the read-only menu entries straight from the repository.
func (b *RhinoBot) renderList(ctx context.Context, chatId int64, lang, list string) error {
	var header string
	var lines []string
	var err error

	switch list {
	case listPlans:
		header = "plans_header"
		plans, lerr := b.core.ListPlans(ctx)
		err = lerr
		for _, p := range plans {
			lines = append(lines, fmt.Sprintf("%s: %.2f", p.Name, p.Price))
		}
	case listLocations:
		header = "locations_header"
		locations, lerr := b.core.ListLocations(ctx)
		err = lerr
		for _, l := range locations {
			lines = append(lines, fmt.Sprintf("%s - %s", l.Location, l.Address))
		}
	case listSchedules:
		header = "schedules_header"
		schedules, lerr := b.core.ListSchedules(ctx)
		err = lerr
		for _, s := range schedules {
			lines = append(lines, fmt.Sprintf("%s: %s %s-%s", s.LocationName, s.Days, s.TimeInit, s.TimeEnd))
		}
	case listMethods:
		header = "methods_header"
		methods, lerr := b.core.ListPaymentMethods(ctx)
		err = lerr
		for _, m := range methods {
			lines = append(lines, m.Method)
		}
	case listCoaches:
		header = "coaches_header"
		coaches, lerr := b.core.ListCoaches(ctx)
		err = lerr
		for _, c := range coaches {
			lines = append(lines, fmt.Sprintf("%s (%s)", c.Names, c.LocationName))
		}
	}

	if err != nil {
		b.log.Error("listing failed", slog.String("list", list), sl.Err(err))
		b.plainResponse(chatId, i18n.T(lang, "fetch_error"))
		return nil
	}

	if len(lines) == 0 {
		b.plainResponse(chatId, i18n.T(lang, "none_available"))
		return nil
	}

	b.plainResponse(chatId, i18n.T(lang, header)+"\n"+strings.Join(lines, "\n"))
	return nil
}
