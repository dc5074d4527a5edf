package bot

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/tunegram/tunegram/models"
	"github.com/tunegram/tunegram/telegram"
)

const (
	welcomeText = "👋 <b>Welcome to Music Bot</b>\n\n" +
		"🎧 <b>যেকোনো গান নাম লিখুন</b>\n" +
		"<i>tum hi ho</i>\n\n" +
		"⬇️ নিচের list থেকে গান বেছে নিন\n" +
		"▶️ Telegram-এই play করুন বা download করুন"

	noResultsText = "😔 কোনো গান পাওয়া যায়নি"

	commandRejectionText = "❌ শুধু গান নাম লিখুন (no command needed)"

	notAllowedText = "❌ You are not allowed to use this command"

	statsUnavailableText = "📊 Statistics are unavailable right now"
)

func statsText(chats, searches int64) string {
	return fmt.Sprintf("📊 <b>Bot Statistics</b>\n\n"+
		"👥 Total Users: <b>%d</b>\n"+
		"🎧 Total Searches: <b>%d</b>", chats, searches)
}

func resultsText(tracks []models.Track) string {
	var b strings.Builder
	b.WriteString("🎵 <b>Search Results:</b>\n\n")
	for i, t := range tracks {
		fmt.Fprintf(&b, "%d. <b>%s</b>\n🎤 %s\n\n",
			i+1, html.EscapeString(t.Title), html.EscapeString(t.Artist))
	}
	return b.String()
}

// resultKeyboard builds one selection button per track. The callback
// payload is the zero-based track index as decimal text; the rendering
// layer and the dispatcher both depend on this encoding.
func resultKeyboard(tracks []models.Track, cleaner *labelCleaner) *telegram.InlineKeyboardMarkup {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(tracks))
	for i, t := range tracks {
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         fmt.Sprintf("🎧 %d. %s", i+1, cleaner.Clean(t.Title)),
			CallbackData: strconv.Itoa(i),
		}})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// navKeyboard is attached to delivered audio so the user can walk the
// result set. The payloads are the literal tokens the dispatcher matches.
func navKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "⏮ Previous", CallbackData: "prev"},
			{Text: "⏭ Next", CallbackData: "next"},
		}},
	}
}
