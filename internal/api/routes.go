package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerPublicAPIRoutes(app, handler)
	registerCoupleAPIRoutes(app, handler)
}

// Public routes: registration (which issues the device token) and the
// static suggestion catalogs, which carry no couple data.
func registerPublicAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Post("/users", handler.RegisterUser)

	api.Get("/challenges/suggestions", handler.ChallengeSuggestions)
	api.Get("/positions", handler.PositionCatalog)
	api.Get("/random-suggestion", handler.RandomSuggestion)
	api.Get("/love-dice/roll", handler.RollLoveDice)
	api.Get("/wishlist/items", handler.WishlistCatalog)
	api.Get("/love-notes/templates", handler.LoveNoteTemplates)
}

func registerCoupleAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	users := api.Group("/users")
	users.Post("/join-couple", handler.JoinCouple)
	users.Put("/push-token", handler.SavePushToken)
	users.Get("/:id", handler.GetUser)

	intimacy := api.Group("/intimacy")
	intimacy.Post("", handler.CreateIntimacyEntry)
	intimacy.Get("/stats/:couple_code", handler.IntimacyStats)
	intimacy.Get("/:couple_code", handler.ListIntimacyEntries)
	intimacy.Delete("/:id", handler.DeleteIntimacyEntry)

	cycle := api.Group("/cycle")
	cycle.Post("", handler.SaveCycle)
	cycle.Post("/start-period", handler.StartPeriod)
	cycle.Put("/end-period/:id", handler.EndPeriod)
	cycle.Get("/fertility/couple/:couple_code", handler.CoupleFertilityCalendar)
	cycle.Get("/fertility/:user_id", handler.FertilityCalendar)
	cycle.Get("/history/:user_id", handler.CycleHistory)
	cycle.Get("/:user_id", handler.GetCycle)

	api.Get("/fertility/predictions/:user_id", handler.FertilityPredictions)

	mood := api.Group("/mood")
	mood.Post("", handler.SaveMood)
	mood.Get("/stats/:couple_code", handler.MoodStats)
	mood.Get("/today/:couple_code", handler.TodayMoods)
	mood.Get("/:couple_code", handler.ListMoods)

	wishlist := api.Group("/wishlist")
	wishlist.Post("/toggle", handler.ToggleWishlistItem)
	wishlist.Get("/:couple_code/:user_id", handler.GetWishlist)

	desires := api.Group("/desires")
	desires.Post("/save", handler.SaveDesires)
	desires.Get("/:couple_code/:user_id", handler.GetDesires)

	challenges := api.Group("/challenges")
	challenges.Post("", handler.CreateChallenge)
	challenges.Put("/:id/complete", handler.CompleteChallenge)
	challenges.Get("/:couple_code", handler.ListChallenges)

	weekly := api.Group("/weekly-challenge")
	weekly.Get("/:couple_code", handler.WeeklyChallenge)
	weekly.Put("/:couple_code/complete", handler.CompleteWeeklyChallenge)

	quiz := api.Group("/quiz")
	quiz.Post("/answer", handler.SaveQuizAnswer)
	quiz.Get("/results/:couple_code", handler.QuizResults)

	specialDates := api.Group("/special-dates")
	specialDates.Post("", handler.CreateSpecialDate)
	specialDates.Get("/:couple_code", handler.ListSpecialDates)
	specialDates.Delete("/:id", handler.DeleteSpecialDate)

	loveNotes := api.Group("/love-notes")
	loveNotes.Post("", handler.SendLoveNote)
	loveNotes.Put("/:id/read", handler.MarkLoveNoteRead)
	loveNotes.Get("/unread/:couple_code/:user_id", handler.UnreadLoveNotes)
	loveNotes.Get("/:couple_code/:user_id", handler.ListLoveNotes)

	coach := api.Group("/coach")
	coach.Post("/analyze", handler.CoachAnalyze)
	coach.Post("/question", handler.CoachQuestion)
	coach.Get("/insights/:couple_code", handler.CoachInsights)

	api.Post("/calculate-calories", handler.CalculateCalories)
	api.Get("/calories/monthly/:couple_code", handler.MonthlyCalories)
}
