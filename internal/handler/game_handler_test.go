package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGames(t *testing.T) {
	router := setupTest(t)
	createTestGame(t, "Counter-Strike 2", "cs2")
	createTestGame(t, "Dota 2", "dota2")
	createTestGame(t, "Valorant", "valorant")

	// Public: no token needed.
	w := performRequest(router, http.MethodGet, "/games", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var games []GameResponse
	decodeBody(t, w, &games)
	require.Len(t, games, 3)
	assert.Equal(t, "cs2", games[0].Slug)
	assert.Equal(t, "valorant", games[2].Slug)
}

func TestGetGames_SkipLimit(t *testing.T) {
	router := setupTest(t)
	createTestGame(t, "Counter-Strike 2", "cs2")
	createTestGame(t, "Dota 2", "dota2")
	createTestGame(t, "Valorant", "valorant")

	w := performRequest(router, http.MethodGet, "/games?skip=1&limit=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var games []GameResponse
	decodeBody(t, w, &games)
	require.Len(t, games, 1)
	assert.Equal(t, "dota2", games[0].Slug)

	// Out-of-range and malformed parameters fall back to safe values.
	for _, query := range []string{"?skip=-5", "?limit=0", "?skip=abc&limit=xyz", "?limit=100000"} {
		w := performRequest(router, http.MethodGet, "/games"+query, nil, "")
		require.Equal(t, http.StatusOK, w.Code, query)
		var all []GameResponse
		decodeBody(t, w, &all)
		assert.Len(t, all, 3, query)
	}
}

func TestGetGameByID(t *testing.T) {
	router := setupTest(t)
	game := createTestGame(t, "Counter-Strike 2", "cs2")

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response GameResponse
	decodeBody(t, w, &response)
	assert.Equal(t, game.ID, response.ID)
	assert.Equal(t, "Counter-Strike 2", response.Name)
	assert.Equal(t, 1, response.MinPlayers)
	assert.Equal(t, 10, response.MaxPlayers)
}

func TestGetGameByID_Errors(t *testing.T) {
	router := setupTest(t)

	missing := performRequest(router, http.MethodGet, "/games/999", nil, "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	malformed := performRequest(router, http.MethodGet, "/games/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}
