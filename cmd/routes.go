package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", app.home)
	mux.HandleFunc("POST /webhook", app.webhook)

	standard := alice.New(app.recoverPanic, app.logRequest)
	return standard.Then(mux)
}
