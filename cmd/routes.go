package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"invenBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleUser))

	mux := pat.New()

	// Auth
	mux.Post("/auth/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Get("/auth/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Post("/auth/logout", authMiddleware.ThenFunc(app.userHandler.Logout))

	// Items
	mux.Post("/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/items", authMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/items/:id", authMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Activity
	mux.Get("/activity", authMiddleware.ThenFunc(app.activityHandler.GetActivityFeed))

	return mux
}
