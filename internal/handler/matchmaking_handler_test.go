package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchRequestInput(gameID uint) MatchRequestInput {
	from := time.Now().UTC().Truncate(time.Second)
	return MatchRequestInput{
		GameID:         gameID,
		RequestType:    "quick_match",
		AvailableFrom:  from,
		AvailableUntil: from.Add(2 * time.Hour),
	}
}

func TestCreateMatchRequest(t *testing.T) {
	router := setupTest(t)
	user := createTestUser(t, "player1", "player@example.com", "password123")
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	input := matchRequestInput(game.ID)
	input.PreferredSkillLevels = []string{"gold", "platinum"}

	w := performRequest(router, http.MethodPost, "/matchmaking/requests/", input, bearerFor(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	var response MatchRequestResponse
	decodeBody(t, w, &response)
	assert.NotZero(t, response.ID)
	assert.Equal(t, user.ID, response.UserID, "request is bound to the caller")
	assert.Equal(t, game.ID, response.GameID)
	assert.Equal(t, "quick_match", response.RequestType)
	assert.Equal(t, models.MatchRequestStatusActive, response.Status)
	assert.Equal(t, 1, response.MinPlayers)
	assert.Equal(t, 5, response.MaxPlayers)
	assert.JSONEq(t, `["gold","platinum"]`, string(response.PreferredSkillLevels))
	assert.JSONEq(t, `[]`, string(response.PreferredRoles))
}

func TestCreateMatchRequest_ExplicitPlayerBounds(t *testing.T) {
	router := setupTest(t)
	user := createTestUser(t, "player1", "player@example.com", "password123")
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	minPlayers, maxPlayers := 2, 4
	input := matchRequestInput(game.ID)
	input.MinPlayers = &minPlayers
	input.MaxPlayers = &maxPlayers

	w := performRequest(router, http.MethodPost, "/matchmaking/requests/", input, bearerFor(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	var response MatchRequestResponse
	decodeBody(t, w, &response)
	assert.Equal(t, 2, response.MinPlayers)
	assert.Equal(t, 4, response.MaxPlayers)
}

func TestCreateMatchRequest_UnknownGame(t *testing.T) {
	router := setupTest(t)
	user := createTestUser(t, "player1", "player@example.com", "password123")

	w := performRequest(router, http.MethodPost, "/matchmaking/requests/", matchRequestInput(999), bearerFor(t, user))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was persisted.
	var count int64
	database.DB.Model(&models.MatchRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetMyMatchRequests(t *testing.T) {
	router := setupTest(t)
	owner := createTestUser(t, "owner", "owner@example.com", "password123")
	other := createTestUser(t, "other", "other@example.com", "password123")
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	for _, user := range []models.User{owner, owner, other} {
		w := performRequest(router, http.MethodPost, "/matchmaking/requests/", matchRequestInput(game.ID), bearerFor(t, user))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/matchmaking/requests/me", nil, bearerFor(t, owner))
	require.Equal(t, http.StatusOK, w.Code)

	var requests []MatchRequestResponse
	decodeBody(t, w, &requests)
	require.Len(t, requests, 2)
	for _, request := range requests {
		assert.Equal(t, owner.ID, request.UserID)
	}
	assert.Less(t, requests[0].ID, requests[1].ID, "insertion order")
}

func TestGetMyMatches_MatchedUserSideOnly(t *testing.T) {
	router := setupTest(t)
	requester := createTestUser(t, "requester", "requester@example.com", "password123")
	matched := createTestUser(t, "matched", "matched@example.com", "password123")
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	request := models.MatchRequest{
		UserID:         requester.ID,
		GameID:         game.ID,
		RequestType:    "quick_match",
		AvailableFrom:  time.Now(),
		AvailableUntil: time.Now().Add(time.Hour),
		MinPlayers:     1,
		MaxPlayers:     5,
		Status:         models.MatchRequestStatusActive,
	}
	require.NoError(t, database.DB.Create(&request).Error)

	// Match rows come from the external matching process; inserted directly.
	match := models.Match{
		MatchRequestID:     request.ID,
		MatchedUserID:      matched.ID,
		GameID:             game.ID,
		CompatibilityScore: 0.87,
		SuggestedGameMode:  "ranked",
		Status:             models.MatchStatusPending,
		ExpiresAt:          time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(&match).Error)

	// The matched user sees the pairing.
	w := performRequest(router, http.MethodGet, "/matchmaking/matches/me", nil, bearerFor(t, matched))
	require.Equal(t, http.StatusOK, w.Code)
	var visible []MatchResponse
	decodeBody(t, w, &visible)
	require.Len(t, visible, 1)
	assert.Equal(t, match.ID, visible[0].ID)
	assert.Equal(t, matched.ID, visible[0].MatchedUserID)
	assert.Equal(t, models.MatchStatusPending, visible[0].Status)
	assert.InDelta(t, 0.87, visible[0].CompatibilityScore, 0.001)

	// The original requester does not; its side goes through its requests.
	w = performRequest(router, http.MethodGet, "/matchmaking/matches/me", nil, bearerFor(t, requester))
	require.Equal(t, http.StatusOK, w.Code)
	var hidden []MatchResponse
	decodeBody(t, w, &hidden)
	assert.Empty(t, hidden)
}

func TestMatchmakingRoutes_RequireAuth(t *testing.T) {
	router := setupTest(t)
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/matchmaking/requests/", matchRequestInput(game.ID)},
		{http.MethodGet, "/matchmaking/requests/me", nil},
		{http.MethodGet, "/matchmaking/matches/me", nil},
	}
	for _, tc := range cases {
		w := performRequest(router, tc.method, tc.path, tc.body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}
