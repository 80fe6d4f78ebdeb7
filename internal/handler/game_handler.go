package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameResponse defines the structure for a catalog entry.
type GameResponse struct {
	ID          uint      `json:"id" example:"1"`
	Name        string    `json:"name" example:"Counter-Strike 2"`
	Slug        string    `json:"slug" example:"cs2"`
	Category    string    `json:"category" example:"fps"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	MinPlayers  int       `json:"min_players" example:"1"`
	MaxPlayers  int       `json:"max_players" example:"10"`
	CreatedAt   time.Time `json:"created_at"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Slug:        game.Slug,
		Category:    game.Category,
		Description: game.Description,
		IsActive:    game.IsActive,
		MinPlayers:  game.MinPlayers,
		MaxPlayers:  game.MaxPlayers,
		CreatedAt:   game.CreatedAt,
	}
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Returns the game catalog. Public, paginated via skip/limit.
// @Tags         games
// @Produce      json
// @Param        skip   query  int  false  "Rows to skip"       default(0)
// @Param        limit  query  int  false  "Max rows to return" default(100)
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/ [get]
func GetGames(c *gin.Context) {
	skip, limit := SkipLimit(c)

	var games []models.Game
	if err := database.DB.Order("id").Offset(skip).Limit(limit).Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	responses := make([]GameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, newGameResponse(game))
	}

	c.JSON(http.StatusOK, responses)
}

// GetGameByID godoc
// @Summary      Get game by ID
// @Description  Retrieves a single catalog entry.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}
