package services

import (
	"fmt"

	"github.com/coupletrack/bliss/internal/models"
)

type QuizComparison struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	User1Answer string   `json:"user1_answer"`
	User2Answer string   `json:"user2_answer"`
	User1Name   string   `json:"user1_name"`
	User2Name   string   `json:"user2_name"`
	Match       bool     `json:"match"`
}

type QuizResults struct {
	Complete           bool             `json:"complete"`
	Message            string           `json:"message,omitempty"`
	CompatibilityScore int              `json:"compatibility_score"`
	Matches            int              `json:"matches,omitempty"`
	TotalQuestions     int              `json:"total_questions,omitempty"`
	Interpretation     string           `json:"interpretation,omitempty"`
	Comparisons        []QuizComparison `json:"comparisons"`
}

// BuildQuizResults compares both partners' answers question by question.
// Results only unlock once both partners exist and have answered every
// question; until then the payload says what is still missing.
func BuildQuizResults(users []models.User, answers []models.QuizAnswer) QuizResults {
	if len(users) < 2 {
		return QuizResults{
			Message:     "Entrambi i partner devono completare il quiz",
			Comparisons: []QuizComparison{},
		}
	}

	first, second := users[0], users[1]
	firstAnswers := make(map[int]int)
	secondAnswers := make(map[int]int)
	for _, answer := range answers {
		switch answer.UserID {
		case first.ID:
			firstAnswers[answer.QuestionID] = answer.AnswerIndex
		case second.ID:
			secondAnswers[answer.QuestionID] = answer.AnswerIndex
		}
	}

	total := len(CompatibilityQuestions)
	if len(firstAnswers) < total || len(secondAnswers) < total {
		return QuizResults{
			Message: fmt.Sprintf("Quiz incompleto. %s: %d/%d, %s: %d/%d",
				first.Name, len(firstAnswers), total,
				second.Name, len(secondAnswers), total),
			Comparisons: []QuizComparison{},
		}
	}

	matches := 0
	comparisons := make([]QuizComparison, 0, total)
	for _, question := range CompatibilityQuestions {
		firstIndex, firstOK := firstAnswers[question.ID]
		secondIndex, secondOK := secondAnswers[question.ID]
		match := firstOK && secondOK && firstIndex == secondIndex
		if match {
			matches++
		}
		comparisons = append(comparisons, QuizComparison{
			Question:    question.Question,
			Options:     question.Options,
			User1Answer: optionLabel(question.Options, firstIndex),
			User2Answer: optionLabel(question.Options, secondIndex),
			User1Name:   first.Name,
			User2Name:   second.Name,
			Match:       match,
		})
	}

	score := matches * 100 / total
	return QuizResults{
		Complete:           true,
		CompatibilityScore: score,
		Matches:            matches,
		TotalQuestions:     total,
		Interpretation:     quizInterpretation(score),
		Comparisons:        comparisons,
	}
}

func optionLabel(options []string, index int) string {
	if index < 0 || index >= len(options) {
		return "?"
	}
	return options[index]
}

func quizInterpretation(score int) string {
	switch {
	case score >= 80:
		return "Anime gemelle! Siete incredibilmente in sintonia"
	case score >= 60:
		return "Ottima intesa! Le differenze vi rendono interessanti"
	case score >= 40:
		return "Buona base! C'è spazio per scoprirvi ancora"
	default:
		return "Opposti che si attraggono! Esplorate le differenze"
	}
}
