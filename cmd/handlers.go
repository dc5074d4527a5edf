package main

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tunegram/tunegram/telegram"
)

// jsonResponse returns a JSON response
func jsonResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Telegram Music Bot is running 🎧",
	})
}

// webhook handles one inbound update. Telegram retries deliveries that
// don't get a 2xx, so even undecodable bodies are acknowledged; they are
// logged and dropped rather than bounced.
func (app *application) webhook(w http.ResponseWriter, r *http.Request) {
	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		app.logger.Warn("undecodable webhook body", "error", err)
		jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	eventID := uuid.NewString()
	app.logger.Info("webhook update",
		"event_id", eventID,
		"update_id", update.UpdateID,
		"has_message", update.Message != nil,
		"has_callback", update.CallbackQuery != nil,
	)

	app.botService.HandleUpdate(r.Context(), &update)

	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}
