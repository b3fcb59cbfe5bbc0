package api

import (
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type quizAnswerRequest struct {
	QuestionID  int `json:"question_id"`
	AnswerIndex int `json:"answer_index"`
}

func (handler *Handler) SaveQuizAnswer(c *fiber.Ctx) error {
	var request quizAnswerRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	question, ok := quizQuestionByID(request.QuestionID)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown question_id")
	}
	if request.AnswerIndex < 0 || request.AnswerIndex >= len(question.Options) {
		return apiError(c, fiber.StatusBadRequest, "answer_index out of range")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	answer := models.QuizAnswer{
		ID:          uuid.NewString(),
		CoupleCode:  actor.CoupleCode,
		UserID:      actor.ID,
		QuestionID:  request.QuestionID,
		AnswerIndex: request.AnswerIndex,
		CreatedAt:   time.Now(),
	}
	if err := handler.repositories.Quiz.SaveAnswer(&answer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save answer")
	}
	return c.JSON(fiber.Map{"message": "Answer saved"})
}

func (handler *Handler) QuizResults(c *fiber.Ctx) error {
	coupleCode := c.Params("couple_code")

	handler.ensureDependencies()
	members, err := handler.repositories.Users.MembersOfCouple(coupleCode)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load couple")
	}
	answers, err := handler.repositories.Quiz.ListByCouple(coupleCode)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load answers")
	}
	return c.JSON(services.BuildQuizResults(members, answers))
}

func quizQuestionByID(questionID int) (services.QuizQuestion, bool) {
	for _, question := range services.CompatibilityQuestions {
		if question.ID == questionID {
			return question, true
		}
	}
	return services.QuizQuestion{}, false
}
