package services

import (
	"testing"

	"github.com/coupletrack/bliss/internal/models"
)

func quizUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Anna"},
		{ID: "u2", Name: "Luca"},
	}
}

func fullAnswers(userID string, answerIndex int) []models.QuizAnswer {
	answers := make([]models.QuizAnswer, 0, len(CompatibilityQuestions))
	for _, question := range CompatibilityQuestions {
		answers = append(answers, models.QuizAnswer{
			UserID:      userID,
			QuestionID:  question.ID,
			AnswerIndex: answerIndex,
		})
	}
	return answers
}

func TestBuildQuizResultsRequiresBothPartners(t *testing.T) {
	results := BuildQuizResults([]models.User{{ID: "u1", Name: "Anna"}}, nil)
	if results.Complete {
		t.Fatal("results must not complete with a single partner")
	}
	if results.Message != "Entrambi i partner devono completare il quiz" {
		t.Fatalf("unexpected message: %s", results.Message)
	}
}

func TestBuildQuizResultsReportsMissingAnswers(t *testing.T) {
	answers := fullAnswers("u1", 0)
	answers = append(answers, models.QuizAnswer{UserID: "u2", QuestionID: CompatibilityQuestions[0].ID, AnswerIndex: 1})

	results := BuildQuizResults(quizUsers(), answers)
	if results.Complete {
		t.Fatal("results must not complete until both partners answered everything")
	}
	expected := "Quiz incompleto. Anna: 12/12, Luca: 1/12"
	if results.Message != expected {
		t.Fatalf("expected %q, got %q", expected, results.Message)
	}
}

func TestBuildQuizResultsFullMatch(t *testing.T) {
	answers := append(fullAnswers("u1", 0), fullAnswers("u2", 0)...)

	results := BuildQuizResults(quizUsers(), answers)
	if !results.Complete {
		t.Fatalf("expected complete results: %+v", results)
	}
	if results.CompatibilityScore != 100 || results.Matches != len(CompatibilityQuestions) {
		t.Fatalf("expected perfect score, got %d (%d matches)", results.CompatibilityScore, results.Matches)
	}
	if results.Interpretation != "Anime gemelle! Siete incredibilmente in sintonia" {
		t.Fatalf("unexpected interpretation: %s", results.Interpretation)
	}
	if len(results.Comparisons) != len(CompatibilityQuestions) {
		t.Fatalf("expected %d comparisons, got %d", len(CompatibilityQuestions), len(results.Comparisons))
	}
	for _, comparison := range results.Comparisons {
		if !comparison.Match {
			t.Fatalf("expected every question to match: %+v", comparison)
		}
	}
}

func TestBuildQuizResultsPartialMatch(t *testing.T) {
	answers := fullAnswers("u1", 0)
	for i, question := range CompatibilityQuestions {
		answerIndex := 0
		if i >= 6 {
			answerIndex = 1
		}
		answers = append(answers, models.QuizAnswer{
			UserID:      "u2",
			QuestionID:  question.ID,
			AnswerIndex: answerIndex,
		})
	}

	results := BuildQuizResults(quizUsers(), answers)
	if results.Matches != 6 || results.CompatibilityScore != 50 {
		t.Fatalf("expected 6 matches for score 50, got %d matches score %d", results.Matches, results.CompatibilityScore)
	}
	if results.Interpretation != "Buona base! C'è spazio per scoprirvi ancora" {
		t.Fatalf("unexpected interpretation: %s", results.Interpretation)
	}
}
