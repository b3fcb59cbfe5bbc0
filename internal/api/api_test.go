package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/llm"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	database, err := db.OpenSQLiteInMemory()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(database, "test-secret", llm.NewClient(""), logger)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		var parsed any
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
		if object, ok := parsed.(map[string]any); ok {
			decoded = object
		}
	}
	return response, decoded
}

func registerTestUser(t *testing.T, app *fiber.App, name string, gender string) (string, string, string) {
	t.Helper()
	response, body := doJSON(t, app, fiber.MethodPost, "/api/users", "", fiber.Map{
		"name":   name,
		"gender": gender,
	})
	require.Equal(t, fiber.StatusCreated, response.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	userID, _ := user["id"].(string)
	coupleCode, _ := user["couple_code"].(string)
	require.NotEmpty(t, userID)
	require.NotEmpty(t, coupleCode)
	return token, userID, coupleCode
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	response, body := doJSON(t, app, fiber.MethodGet, "/healthz", "", nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.Equal(t, "ok", body["status"])
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	response, _ := doJSON(t, app, fiber.MethodPost, "/api/users", "", fiber.Map{"name": "", "gender": "female"})
	require.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	response, _ = doJSON(t, app, fiber.MethodPost, "/api/users", "", fiber.Map{"name": "Anna", "gender": "other"})
	require.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	response, body := doJSON(t, app, fiber.MethodGet, "/api/users/someone", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	require.Equal(t, "unauthorized", body["error"])

	response, _ = doJSON(t, app, fiber.MethodGet, "/api/users/someone", "not-a-jwt", nil)
	require.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestCatalogRoutesArePublic(t *testing.T) {
	app := newTestApp(t)

	response, body := doJSON(t, app, fiber.MethodGet, "/api/challenges/suggestions", "", nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.NotEmpty(t, body["challenges"])
	require.NotEmpty(t, body["positions"])
	require.NotEmpty(t, body["quiz_questions"])

	response, _ = doJSON(t, app, fiber.MethodGet, "/api/wishlist/items", "", nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
}

func TestPairingFlow(t *testing.T) {
	app := newTestApp(t)
	annaToken, annaID, annaCode := registerTestUser(t, app, "Anna", "female")
	lucaToken, _, _ := registerTestUser(t, app, "Luca", "male")

	response, body := doJSON(t, app, fiber.MethodPost, "/api/users/join-couple", lucaToken, fiber.Map{
		"couple_code": annaCode,
	})
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.Equal(t, "Coppia collegata!", body["message"])
	require.Equal(t, annaCode, body["couple_code"])

	// Anna now sees Luca as her partner.
	response, body = doJSON(t, app, fiber.MethodGet, "/api/users/"+annaID, annaToken, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.NotEmpty(t, body["partner_id"])

	response, _ = doJSON(t, app, fiber.MethodPost, "/api/users/join-couple", lucaToken, fiber.Map{
		"couple_code": "ZZZZZZ",
	})
	require.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestIntimacyRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token, _, code := registerTestUser(t, app, "Anna", "female")

	response, body := doJSON(t, app, fiber.MethodPost, "/api/intimacy", token, fiber.Map{
		"date":             "2025-03-12",
		"quality_rating":   5,
		"duration_minutes": 25,
		"positions_used":   []string{"missionary"},
	})
	require.Equal(t, fiber.StatusCreated, response.StatusCode)
	entryID, _ := body["id"].(string)
	require.NotEmpty(t, entryID)
	require.NotZero(t, body["calories_burned"])

	response, body = doJSON(t, app, fiber.MethodGet, "/api/intimacy/stats/"+code, token, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 1, body["total_count"])

	response, _ = doJSON(t, app, fiber.MethodDelete, "/api/intimacy/"+entryID, token, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	response, _ = doJSON(t, app, fiber.MethodDelete, "/api/intimacy/"+entryID, token, nil)
	require.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestLoveNoteFlow(t *testing.T) {
	app := newTestApp(t)
	annaToken, annaID, annaCode := registerTestUser(t, app, "Anna", "female")
	lucaToken, lucaID, _ := registerTestUser(t, app, "Luca", "male")

	response, _ := doJSON(t, app, fiber.MethodPost, "/api/users/join-couple", lucaToken, fiber.Map{
		"couple_code": annaCode,
	})
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	response, body := doJSON(t, app, fiber.MethodPost, "/api/love-notes", annaToken, fiber.Map{
		"message": "Mi manchi ❤️",
	})
	require.Equal(t, fiber.StatusCreated, response.StatusCode)
	noteID, _ := body["id"].(string)
	require.NotEmpty(t, noteID)

	// The sender has no unread notes, the partner has one.
	response, body = doJSON(t, app, fiber.MethodGet, "/api/love-notes/unread/"+annaCode+"/"+annaID, annaToken, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 0, body["count"])

	response, body = doJSON(t, app, fiber.MethodGet, "/api/love-notes/unread/"+annaCode+"/"+lucaID, lucaToken, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 1, body["count"])

	response, _ = doJSON(t, app, fiber.MethodPut, "/api/love-notes/"+noteID+"/read", lucaToken, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	response, body = doJSON(t, app, fiber.MethodGet, "/api/love-notes/unread/"+annaCode+"/"+lucaID, lucaToken, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 0, body["count"])
}

func TestCaloriesEndpoint(t *testing.T) {
	app := newTestApp(t)
	token, _, _ := registerTestUser(t, app, "Anna", "female")

	response, body := doJSON(t, app, fiber.MethodPost, "/api/calculate-calories", token, fiber.Map{
		"duration": 15,
		"quality":  3,
		"weight":   70,
	})
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 58, body["calories"])
}

func TestMonthlyCaloriesWindowsByMonth(t *testing.T) {
	app := newTestApp(t)
	token, _, code := registerTestUser(t, app, "Anna", "female")

	for _, date := range []string{"2025-03-05", "2025-03-12", "2025-02-20"} {
		response, _ := doJSON(t, app, fiber.MethodPost, "/api/intimacy", token, fiber.Map{
			"date":             date,
			"quality_rating":   3,
			"duration_minutes": 15,
		})
		require.Equal(t, fiber.StatusCreated, response.StatusCode)
	}

	response, body := doJSON(t, app, fiber.MethodGet, "/api/calories/monthly/"+code+"?month=3&year=2025", token, nil)
	require.Equal(t, fiber.StatusOK, response.StatusCode)
	require.EqualValues(t, 116, body["total_calories"], "February entry must stay out of the March window")
	require.EqualValues(t, 30, body["total_duration_minutes"])
}
