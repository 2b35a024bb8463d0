package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.Me)
	profile.Put("", handler.UpdateProfile)
	profile.Post("/change-password", handler.ChangePassword)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)

	api.Get("/proofs", handler.AuthRequired, handler.ListProofs)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.CalendarMonth)
	calendar.Get("/:date", handler.CalendarDay)

	journal := api.Group("/journal", handler.AuthRequired)
	journal.Get("", handler.ListJournal)
	journal.Post("", handler.CreateJournalEntry)
	journal.Put("/:id", handler.UpdateJournalEntry)
	journal.Delete("/:id", handler.DeleteJournalEntry)

	todos := api.Group("/todos", handler.AuthRequired)
	todos.Get("", handler.ListTodos)
	todos.Post("", handler.CreateTodo)
	todos.Post("/:id/toggle", handler.ToggleTodo)
	todos.Delete("/:id", handler.DeleteTodo)

	expenses := api.Group("/expenses", handler.AuthRequired)
	expenses.Get("", handler.ListExpenses)
	expenses.Post("", handler.CreateExpense)
	expenses.Put("/:id", handler.UpdateExpense)
	expenses.Delete("/:id", handler.DeleteExpense)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Post("/toggle-sound", handler.ToggleSound)
	settings.Post("/toggle-dark-mode", handler.ToggleDarkMode)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/dashboard", handler.Dashboard)
	stats.Get("/insights", handler.Insights)
	stats.Get("/analytics", handler.Analytics)

	data := api.Group("/data", handler.AuthRequired)
	data.Get("/export", handler.ExportJSON)
	data.Post("/import", handler.ImportJSON)
	data.Post("/reset", handler.ResetData)

	api.Post("/uploads", handler.AuthRequired, handler.UploadImage)
}
