package services

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/llm"
	"github.com/coupletrack/bliss/internal/models"
)

type CoachMission struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Difficulty  string `json:"difficulty"`
}

type DateNightIdea struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Budget      string `json:"budget"`
}

type CoachBadge struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress,omitempty"`
	Total       int    `json:"total,omitempty"`
}

type CoachAnalysis struct {
	DailyMission   CoachMission    `json:"daily_mission"`
	DateNightIdeas []DateNightIdea `json:"date_night_ideas"`
	Badges         []CoachBadge    `json:"badges"`
	Encouragement  string          `json:"encouragement"`
}

type CoachInsight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var dailyMissionPool = []CoachMission{
	{Icon: "💌", Title: "Messaggio Speciale", Description: "Scrivi un messaggio romantico al tuo partner con 3 cose che ami di lui/lei", Points: 50, Difficulty: "facile"},
	{Icon: "👀", Title: "Sguardo Profondo", Description: "Guardate negli occhi per 2 minuti senza parlare. Scoprite cosa comunicate", Points: 60, Difficulty: "medio"},
	{Icon: "💆", Title: "Massaggio Relax", Description: "Regalate 10 minuti di massaggio al partner - senza aspettarvi nulla in cambio", Points: 70, Difficulty: "facile"},
	{Icon: "🎵", Title: "La Vostra Canzone", Description: "Ballate insieme la vostra canzone preferita in salotto", Points: 50, Difficulty: "facile"},
	{Icon: "📸", Title: "Selfie di Coppia", Description: "Scattate un selfie insieme e condividete un ricordo felice", Points: 40, Difficulty: "facile"},
	{Icon: "🍳", Title: "Colazione a Letto", Description: "Preparate la colazione a letto per il vostro partner", Points: 80, Difficulty: "medio"},
	{Icon: "💋", Title: "Bacio di 10 Secondi", Description: "Un bacio appassionato di almeno 10 secondi - senza fretta!", Points: 60, Difficulty: "facile"},
	{Icon: "🎁", Title: "Piccola Sorpresa", Description: "Fate una piccola sorpresa inaspettata al partner oggi", Points: 90, Difficulty: "medio"},
	{Icon: "📝", Title: "Lista dei Desideri", Description: "Scrivete insieme 3 cose che vorreste fare come coppia", Points: 50, Difficulty: "facile"},
	{Icon: "🌟", Title: "Complimento Sincero", Description: "Dite al partner qualcosa che ammirate di lui/lei che non avete mai detto", Points: 70, Difficulty: "medio"},
}

var dateNightIdeaPool = []DateNightIdea{
	{Icon: "🍿", Title: "Serata Cinema", Description: "Film romantico + popcorn + coccole", Time: "2-3 ore", Budget: "€"},
	{Icon: "🍳", Title: "Chef a Casa", Description: "Cucinate insieme un piatto nuovo", Time: "1-2 ore", Budget: "€€"},
	{Icon: "🌙", Title: "Sotto le Stelle", Description: "Picnic notturno o aperitivo sul balcone", Time: "1-2 ore", Budget: "€"},
	{Icon: "💆", Title: "Spa Casalinga", Description: "Massaggi, candele, musica rilassante", Time: "1-2 ore", Budget: "€"},
	{Icon: "🎮", Title: "Game Night", Description: "Videogiochi o giochi da tavolo insieme", Time: "2-3 ore", Budget: "€"},
	{Icon: "📚", Title: "Lettura Condivisa", Description: "Leggete insieme o a voce alta", Time: "1 ora", Budget: "€"},
}

// coachResponses are keyword-matched fallback answers used when the language
// model is not configured or fails. Listing order decides which answer wins
// when a question touches several topics.
var coachResponses = []struct {
	Keyword string
	Answer  string
}{
	{"comunicazione", "La comunicazione è la base! 💬 Dedica 15 minuti al giorno per parlare senza distrazioni. Usa 'Mi sento...' invece di accusare."},
	{"passione", "Riaccendi la passione con creatività! 🔥 Sorprendi il partner, scrivi messaggi piccanti, esplora nuove fantasie insieme."},
	{"stress", "Lo stress pesa sulla coppia. 🧘 Create momenti di relax insieme e supportatevi a vicenda."},
	{"romanticismo", "Il romanticismo si coltiva ogni giorno! 💕 Piccoli gesti contano: messaggi dolci, fiori, colazione a letto."},
	{"litigi", "Litigate in modo costruttivo. 🤝 Mai a letto arrabbiati, concentratevi sul problema non sulla persona."},
}

const coachDefaultAnswer = "Grazie per la domanda! 💕 Comunicare apertamente e dedicare tempo di qualità sono sempre la chiave."

const missionSystemPrompt = `Sei un coach di coppia esperto. Genera UNA missione romantica per oggi.
La missione deve essere:
- Realistica e fattibile in giornata
- Romantica ma non volgare
- Specifica e chiara
- In italiano

Rispondi SOLO con un JSON valido nel formato:
{"description": "descrizione della missione", "difficulty": "facile|medio|difficile", "points": 50}`

const questionSystemPrompt = `Sei Dr. Sofia, coach di coppia esperta e compassionevole.
Rispondi in italiano, caldo ed empatico. Dai consigli pratici.
Usa emoji occasionalmente. Max 150 parole. Sii supportivo.`

type CoachService struct {
	intimacy *db.IntimacyRepository
	moods    *db.MoodRepository
	model    *llm.Client
	logger   *slog.Logger
}

func NewCoachService(intimacy *db.IntimacyRepository, moods *db.MoodRepository, model *llm.Client, logger *slog.Logger) *CoachService {
	return &CoachService{intimacy: intimacy, moods: moods, model: model, logger: logger}
}

// Analyze builds the coach dashboard. The daily mission is stable for a
// given couple and day; when the language model is configured it may
// personalize the mission, otherwise the pooled one stands.
func (service *CoachService) Analyze(ctx context.Context, coupleCode string, now time.Time) (CoachAnalysis, error) {
	entries, err := service.intimacy.ListByCouple(coupleCode)
	if err != nil {
		return CoachAnalysis{}, err
	}

	mission := DailyMissionFor(coupleCode, now)
	ideas := append([]DateNightIdea(nil), dateNightIdeaPool[:4]...)

	if service.model.Enabled() {
		if personalized, ok := service.personalizedMission(ctx, coupleCode, entries); ok {
			mission = personalized
		}
	}

	badges := coachBadges(entries)
	unlocked := 0
	for _, badge := range badges {
		if badge.Unlocked {
			unlocked++
		}
	}

	return CoachAnalysis{
		DailyMission:   mission,
		DateNightIdeas: ideas,
		Badges:         badges,
		Encouragement:  fmt.Sprintf("🏆 %d/%d traguardi sbloccati!", unlocked, len(badges)),
	}, nil
}

// DailyMissionFor picks today's mission deterministically so both partners
// see the same one all day.
func DailyMissionFor(coupleCode string, now time.Time) CoachMission {
	seed := fmt.Sprintf("%s-%s", now.Format(models.DayFormat), coupleCode)
	digest := md5.Sum([]byte(seed))
	index := binary.BigEndian.Uint64(digest[:8]) % uint64(len(dailyMissionPool))
	return dailyMissionPool[index]
}

func (service *CoachService) personalizedMission(ctx context.Context, coupleCode string, entries []models.IntimacyEntry) (CoachMission, bool) {
	total := len(entries)
	avgQuality := averageQuality(entries)
	prompt := fmt.Sprintf("Genera una missione romantica basata su questi dati:\nMomenti registrati: %d\nQualità media: %.1f/5", total, avgQuality)

	reply, err := service.model.Complete(ctx, missionSystemPrompt, prompt, 200, 0.8)
	if err != nil {
		service.logger.Warn("coach mission generation failed, using pooled mission", "couple", coupleCode, "error", err)
		return CoachMission{}, false
	}

	var generated struct {
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Points      int    `json:"points"`
	}
	if err := json.Unmarshal([]byte(llm.StripFences(reply)), &generated); err != nil || generated.Description == "" {
		service.logger.Warn("coach mission reply unparseable, using pooled mission", "couple", coupleCode)
		return CoachMission{}, false
	}
	if generated.Points <= 0 {
		generated.Points = 50
	}
	if generated.Difficulty == "" {
		generated.Difficulty = "medio"
	}
	return CoachMission{
		Icon:        "🎯",
		Title:       "Missione del Giorno",
		Description: generated.Description,
		Points:      generated.Points,
		Difficulty:  generated.Difficulty,
	}, true
}

// Question answers a free-form relationship question, preferring the
// language model and falling back to keyword-matched advice.
func (service *CoachService) Question(ctx context.Context, coupleCode string, question string) string {
	if service.model.Enabled() {
		contextLine := service.coupleContext(coupleCode)
		prompt := fmt.Sprintf("Contesto: %s\n\nDomanda: %s", contextLine, question)
		if answer, err := service.model.Complete(ctx, questionSystemPrompt, prompt, 500, 0.7); err == nil {
			return answer
		} else {
			service.logger.Warn("coach question fell back to canned answer", "couple", coupleCode, "error", err)
		}
	}
	return cannedCoachAnswer(question)
}

func (service *CoachService) coupleContext(coupleCode string) string {
	count, err := service.intimacy.CountByCouple(coupleCode)
	if err != nil {
		count = 0
	}
	line := fmt.Sprintf("La coppia ha %d momenti intimi registrati.", count)

	moods, err := service.moods.ListByCouple(coupleCode)
	if err == nil && len(moods) > 0 {
		sum := 0
		for _, entry := range moods {
			sum += entry.Mood
		}
		line += fmt.Sprintf(" Umore medio: %.1f/5.", float64(sum)/float64(len(moods)))
	}
	return line
}

func cannedCoachAnswer(question string) string {
	lowered := strings.ToLower(question)
	for _, response := range coachResponses {
		if strings.Contains(lowered, response.Keyword) {
			return response.Answer
		}
	}
	return coachDefaultAnswer
}

// Insights summarizes the couple's history as dashboard cards.
func (service *CoachService) Insights(coupleCode string) ([]CoachInsight, error) {
	entries, err := service.intimacy.ListByCouple(coupleCode)
	if err != nil {
		return nil, err
	}

	insights := make([]CoachInsight, 0, 4)
	if len(entries) > 0 {
		insights = append(insights, CoachInsight{
			Icon:        "❤️",
			Title:       "Momenti Insieme",
			Value:       fmt.Sprint(len(entries)),
			Description: "momenti intimi registrati",
			Color:       "#ff6b8a",
		})
		insights = append(insights, CoachInsight{
			Icon:        "⭐",
			Title:       "Qualità Media",
			Value:       fmt.Sprintf("%.1f/5", averageQuality(entries)),
			Description: "valutazione dei vostri momenti",
			Color:       "#f39c12",
		})
		if location, count := topLocation(entries); location != "" {
			insights = append(insights, CoachInsight{
				Icon:        "📍",
				Title:       "Posto Preferito",
				Value:       italianLocation(location),
				Description: fmt.Sprintf("%d volte", count),
				Color:       "#9b59b6",
			})
		}
	}

	moods, err := service.moods.ListByCouple(coupleCode)
	if err == nil && len(moods) > 0 {
		sum := 0
		for _, entry := range moods {
			sum += entry.Mood
		}
		avgMood := float64(sum) / float64(len(moods))
		icon := "😔"
		if avgMood >= 3.5 {
			icon = "😊"
		} else if avgMood >= 2.5 {
			icon = "😐"
		}
		insights = append(insights, CoachInsight{
			Icon:        icon,
			Title:       "Umore Medio",
			Value:       fmt.Sprintf("%.1f/5", avgMood),
			Description: "negli ultimi 30 giorni",
			Color:       "#2ed573",
		})
	}
	return insights, nil
}

func coachBadges(entries []models.IntimacyEntry) []CoachBadge {
	total := len(entries)
	perfect := 0
	locations := make(map[string]bool)
	for _, entry := range entries {
		if entry.QualityRating >= 5 {
			perfect++
		}
		if entry.Location != "" {
			locations[entry.Location] = true
		}
	}

	return []CoachBadge{
		{Icon: "🔥", Title: "Prima Scintilla", Description: "Primo momento registrato", Unlocked: total >= 1},
		{Icon: "📅", Title: "Settimana d'Amore", Description: "7 momenti registrati", Unlocked: total >= 7, Progress: minInt(total, 7), Total: 7},
		{Icon: "💯", Title: "Perfezionisti", Description: "5 momenti qualità 5/5", Unlocked: perfect >= 5, Progress: minInt(perfect, 5), Total: 5},
		{Icon: "🌍", Title: "Esploratori", Description: "5 location diverse", Unlocked: len(locations) >= 5, Progress: minInt(len(locations), 5), Total: 5},
		{Icon: "💕", Title: "Innamorati", Description: "10 momenti insieme", Unlocked: total >= 10, Progress: minInt(total, 10), Total: 10},
		{Icon: "👑", Title: "Re e Regina", Description: "25 momenti insieme", Unlocked: total >= 25, Progress: minInt(total, 25), Total: 25},
	}
}

// topLocation breaks ties by which location showed up first in the log.
func topLocation(entries []models.IntimacyEntry) (string, int) {
	counts := make(map[string]int)
	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		location := entry.Location
		if location == "" {
			location = "bedroom"
		}
		if _, seen := counts[location]; !seen {
			order = append(order, location)
		}
		counts[location]++
	}
	best := ""
	bestCount := 0
	for _, location := range order {
		if counts[location] > bestCount {
			best = location
			bestCount = counts[location]
		}
	}
	return best, bestCount
}

func italianLocation(location string) string {
	names := map[string]string{
		"bedroom": "Camera da letto",
		"shower":  "Doccia",
		"couch":   "Divano",
		"kitchen": "Cucina",
		"car":     "Auto",
		"outdoor": "All'aperto",
		"hotel":   "Hotel",
	}
	if name, known := names[location]; known {
		return name
	}
	return location
}
