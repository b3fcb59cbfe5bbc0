package services

import (
	"fmt"
	"math/rand"
)

var loveDiceActions = []string{
	"Bacia", "Accarezza", "Massaggia", "Sussurra a", "Abbraccia",
	"Tocca dolcemente", "Sfiora", "Coccola", "Stringi",
	"Lecca", "Soffia su", "Mordicchia", "Strofina", "Esplora con le dita",
	"Succhia delicatamente", "Graffia leggermente", "Pizzica dolcemente",
	"Morsica", "Lecca lentamente", "Bacia appassionatamente",
	"Accarezza sensualmente", "Premi il corpo contro", "Strusciati su",
	"Respira caldo su", "Passa la lingua su", "Bacia umido",
	"Lecce a spirale", "Mordi e tira", "Succhia forte",
	"Afferra con decisione", "Spingi contro",
}

var loveDiceBodyParts = []string{
	"collo", "labbra", "orecchio", "schiena", "pancia",
	"interno coscia", "fianchi", "glutei", "petto", "capezzoli",
	"inguine", "basso ventre", "osso del bacino", "incavo del collo",
	"dietro il ginocchio", "caviglia", "polso", "dita",
	"lato del seno", "zona lombare", "sotto l'ombelico",
	"attaccatura dei capelli", "lobo dell'orecchio",
	"parte alta dell'interno coscia", "curva della schiena",
	"zona bikini", "solco del sedere",
}

var loveDiceDurations = []string{
	"per 10 secondi", "per 30 secondi", "per 1 minuto", "per 2 minuti",
	"finché non geme", "finché non sospira", "finché non trema",
	"a occhi chiusi", "lentamente", "intensamente", "con passione",
	"mentre ti guarda negli occhi", "da dietro", "bendato/a",
	"sussurrando cose sporche", "mentre ti tocchi", "senza fermarti",
	"alternando velocità", "usando solo la punta della lingua",
	"con ghiaccio in bocca", "dopo aver bevuto qualcosa di caldo",
}

var loveDiceScenarios = []string{
	"Al buio completo", "Con musica sensuale", "Sotto la doccia",
	"Sul divano", "Contro il muro", "Sul tavolo", "A letto",
	"In cucina", "Con candele accese", "Allo specchio",
	"Con una benda sugli occhi", "Legati le mani", "In ginocchio",
	"Sdraiato/a a pancia in giù", "Seduto/a sulle gambe",
}

type LoveDiceRoll struct {
	Action   string `json:"action"`
	BodyPart string `json:"body_part"`
	Duration string `json:"duration"`
	Scenario string `json:"scenario,omitempty"`
	FullText string `json:"full_text"`
}

// RollLoveDice composes a random instruction. The scenario is added half of
// the time.
func RollLoveDice(rng *rand.Rand) LoveDiceRoll {
	roll := LoveDiceRoll{
		Action:   loveDiceActions[rng.Intn(len(loveDiceActions))],
		BodyPart: loveDiceBodyParts[rng.Intn(len(loveDiceBodyParts))],
		Duration: loveDiceDurations[rng.Intn(len(loveDiceDurations))],
	}
	if rng.Intn(2) == 1 {
		roll.Scenario = loveDiceScenarios[rng.Intn(len(loveDiceScenarios))]
		roll.FullText = fmt.Sprintf("%s %s %s. %s!", roll.Action, roll.BodyPart, roll.Duration, roll.Scenario)
	} else {
		roll.FullText = fmt.Sprintf("%s %s %s", roll.Action, roll.BodyPart, roll.Duration)
	}
	return roll
}

type RandomSuggestion struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// PickRandomSuggestion returns either a challenge or a position, evenly.
func PickRandomSuggestion(rng *rand.Rand) RandomSuggestion {
	if rng.Intn(2) == 0 {
		return RandomSuggestion{Type: "challenge", Data: SpicyChallenges[rng.Intn(len(SpicyChallenges))]}
	}
	return RandomSuggestion{Type: "position", Data: PositionSuggestions[rng.Intn(len(PositionSuggestions))]}
}

// PickWeeklyChallenge draws a template for a new week.
func PickWeeklyChallenge(rng *rand.Rand) WeeklyChallengeTemplate {
	return WeeklyChallengePool[rng.Intn(len(WeeklyChallengePool))]
}
