package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// region --- DTOs ---

// MatchRequestInput defines the structure for creating a match request. The
// time window is stored as provided; available_from < available_until is not
// enforced.
type MatchRequestInput struct {
	GameID         uint      `json:"game_id" binding:"required" example:"1"`
	RequestType    string    `json:"request_type" binding:"required" example:"quick_match"`
	AvailableFrom  time.Time `json:"available_from" binding:"required"`
	AvailableUntil time.Time `json:"available_until" binding:"required"`
	MinPlayers     *int      `json:"min_players" example:"1"`
	MaxPlayers     *int      `json:"max_players" example:"5"`

	PreferredSkillLevels []string `json:"preferred_skill_levels"`
	PreferredGameModes   []string `json:"preferred_game_modes"`
	PreferredRoles       []string `json:"preferred_roles"`
}

// MatchRequestResponse defines the structure for a match request.
type MatchRequestResponse struct {
	ID     uint `json:"id" example:"1"`
	UserID uint `json:"user_id" example:"1"`
	GameID uint `json:"game_id" example:"1"`

	RequestType    string    `json:"request_type" example:"quick_match"`
	MinPlayers     int       `json:"min_players" example:"1"`
	MaxPlayers     int       `json:"max_players" example:"5"`
	AvailableFrom  time.Time `json:"available_from"`
	AvailableUntil time.Time `json:"available_until"`
	Status         string    `json:"status" example:"active"`

	PreferredSkillLevels datatypes.JSON `json:"preferred_skill_levels" swaggertype:"array,string"`
	PreferredGameModes   datatypes.JSON `json:"preferred_game_modes" swaggertype:"array,string"`
	PreferredRoles       datatypes.JSON `json:"preferred_roles" swaggertype:"array,string"`

	CreatedAt time.Time `json:"created_at"`
}

func newMatchRequestResponse(request models.MatchRequest) MatchRequestResponse {
	return MatchRequestResponse{
		ID:                   request.ID,
		UserID:               request.UserID,
		GameID:               request.GameID,
		RequestType:          request.RequestType,
		MinPlayers:           request.MinPlayers,
		MaxPlayers:           request.MaxPlayers,
		AvailableFrom:        request.AvailableFrom,
		AvailableUntil:       request.AvailableUntil,
		Status:               request.Status,
		PreferredSkillLevels: request.PreferredSkillLevels,
		PreferredGameModes:   request.PreferredGameModes,
		PreferredRoles:       request.PreferredRoles,
		CreatedAt:            request.CreatedAt,
	}
}

// MatchResponse defines the structure for a proposed pairing.
type MatchResponse struct {
	ID             uint `json:"id" example:"1"`
	MatchRequestID uint `json:"match_request_id" example:"1"`
	MatchedUserID  uint `json:"matched_user_id" example:"2"`
	GameID         uint `json:"game_id" example:"1"`

	CompatibilityScore float64            `json:"compatibility_score" example:"0.87"`
	SuggestedGameMode  string             `json:"suggested_game_mode" example:"ranked"`
	SuggestedRole      string             `json:"suggested_role" example:"support"`
	Status             models.MatchStatus `json:"status" example:"pending"`
	ExpiresAt          time.Time          `json:"expires_at"`
	CreatedAt          time.Time          `json:"created_at"`
}

func newMatchResponse(match models.Match) MatchResponse {
	return MatchResponse{
		ID:                 match.ID,
		MatchRequestID:     match.MatchRequestID,
		MatchedUserID:      match.MatchedUserID,
		GameID:             match.GameID,
		CompatibilityScore: match.CompatibilityScore,
		SuggestedGameMode:  match.SuggestedGameMode,
		SuggestedRole:      match.SuggestedRole,
		Status:             match.Status,
		ExpiresAt:          match.ExpiresAt,
		CreatedAt:          match.CreatedAt,
	}
}

// jsonList stores a preference list as a JSON column value. A nil slice is
// normalized to an empty list.
func jsonList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	encoded, _ := json.Marshal(values)
	return datatypes.JSON(encoded)
}

// endregion

// CreateMatchRequest godoc
// @Summary      Create a match request
// @Description  Creates a standing request for opponents/teammates, owned by the caller.
// @Tags         matchmaking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MatchRequestInput true "Match Request Info"
// @Success      201  {object}  MatchRequestResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or unknown game"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /matchmaking/requests/ [post]
func CreateMatchRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input MatchRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A dangling game reference is a request-validation failure (400), not
	// the 404 of a direct catalog lookup.
	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game not found"})
		return
	}

	request := models.MatchRequest{
		// The owner is always the caller; the payload cannot bind a request
		// to another user.
		UserID:               viewerID.(uint),
		GameID:               input.GameID,
		RequestType:          input.RequestType,
		AvailableFrom:        input.AvailableFrom,
		AvailableUntil:       input.AvailableUntil,
		MinPlayers:           1,
		MaxPlayers:           5,
		Status:               models.MatchRequestStatusActive,
		PreferredSkillLevels: jsonList(input.PreferredSkillLevels),
		PreferredGameModes:   jsonList(input.PreferredGameModes),
		PreferredRoles:       jsonList(input.PreferredRoles),
	}
	if input.MinPlayers != nil {
		request.MinPlayers = *input.MinPlayers
	}
	if input.MaxPlayers != nil {
		request.MaxPlayers = *input.MaxPlayers
	}

	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match request"})
		return
	}

	c.JSON(http.StatusCreated, newMatchRequestResponse(request))
}

// GetMyMatchRequests godoc
// @Summary      List own match requests
// @Description  Returns every match request owned by the caller, in insertion order.
// @Tags         matchmaking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   MatchRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /matchmaking/requests/me [get]
func GetMyMatchRequests(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var requests []models.MatchRequest
	if err := database.DB.Where("user_id = ?", viewerID.(uint)).Order("id").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve match requests"})
		return
	}

	responses := make([]MatchRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, newMatchRequestResponse(request))
	}

	c.JSON(http.StatusOK, responses)
}

// GetMyMatches godoc
// @Summary      List own matches
// @Description  Returns the matches where the caller is the matched user. The requester side sees matches only through its own requests.
// @Tags         matchmaking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   MatchResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /matchmaking/matches/me [get]
func GetMyMatches(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var matches []models.Match
	if err := database.DB.Where("matched_user_id = ?", viewerID.(uint)).Order("id").Find(&matches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve matches"})
		return
	}

	responses := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, newMatchResponse(match))
	}

	c.JSON(http.StatusOK, responses)
}
