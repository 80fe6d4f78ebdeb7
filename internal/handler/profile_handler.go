package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// region --- DTOs ---

// ProfileUpdateInput carries a partial profile update. Nil fields are left
// untouched on update and take their declared defaults on creation, so
// re-applying the same payload is idempotent.
type ProfileUpdateInput struct {
	FirstName       *string    `json:"first_name"`
	LastName        *string    `json:"last_name"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	AvatarURL       *string    `json:"avatar_url"`
	Bio             *string    `json:"bio"`
	Location        *string    `json:"location"`
	Timezone        *string    `json:"timezone"`
	DiscordUsername *string    `json:"discord_username"`
	SteamID         *string    `json:"steam_id"`
	TwitchUsername  *string    `json:"twitch_username"`

	PreferredGameModes   datatypes.JSON `json:"preferred_game_modes" swaggertype:"object"`
	PreferredPlaytime    datatypes.JSON `json:"preferred_playtime" swaggertype:"object"`
	AvailabilitySchedule datatypes.JSON `json:"availability_schedule" swaggertype:"object"`

	SkillLevel          *string `json:"skill_level" example:"intermediate"`
	LookingFor          *string `json:"looking_for"`
	IsAvailableNow      *bool   `json:"is_available_now"`
	ProfileVisibility   *string `json:"profile_visibility" example:"public"`
	ShowStats           *bool   `json:"show_stats"`
	AllowFriendRequests *bool   `json:"allow_friend_requests"`
}

// apply copies the supplied fields onto the profile.
func (in *ProfileUpdateInput) apply(profile *models.UserProfile) {
	if in.FirstName != nil {
		profile.FirstName = in.FirstName
	}
	if in.LastName != nil {
		profile.LastName = in.LastName
	}
	if in.DateOfBirth != nil {
		profile.DateOfBirth = in.DateOfBirth
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = in.AvatarURL
	}
	if in.Bio != nil {
		profile.Bio = in.Bio
	}
	if in.Location != nil {
		profile.Location = in.Location
	}
	if in.Timezone != nil {
		profile.Timezone = in.Timezone
	}
	if in.DiscordUsername != nil {
		profile.DiscordUsername = in.DiscordUsername
	}
	if in.SteamID != nil {
		profile.SteamID = in.SteamID
	}
	if in.TwitchUsername != nil {
		profile.TwitchUsername = in.TwitchUsername
	}
	if in.PreferredGameModes != nil {
		profile.PreferredGameModes = in.PreferredGameModes
	}
	if in.PreferredPlaytime != nil {
		profile.PreferredPlaytime = in.PreferredPlaytime
	}
	if in.AvailabilitySchedule != nil {
		profile.AvailabilitySchedule = in.AvailabilitySchedule
	}
	if in.SkillLevel != nil {
		profile.SkillLevel = *in.SkillLevel
	}
	if in.LookingFor != nil {
		profile.LookingFor = in.LookingFor
	}
	if in.IsAvailableNow != nil {
		profile.IsAvailableNow = *in.IsAvailableNow
	}
	if in.ProfileVisibility != nil {
		profile.ProfileVisibility = *in.ProfileVisibility
	}
	if in.ShowStats != nil {
		profile.ShowStats = *in.ShowStats
	}
	if in.AllowFriendRequests != nil {
		profile.AllowFriendRequests = *in.AllowFriendRequests
	}
}

// ProfileResponse defines the structure for a user's profile.
type ProfileResponse struct {
	ID     uint `json:"id" example:"1"`
	UserID uint `json:"user_id" example:"1"`

	FirstName       *string    `json:"first_name"`
	LastName        *string    `json:"last_name"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	AvatarURL       *string    `json:"avatar_url"`
	Bio             *string    `json:"bio"`
	Location        *string    `json:"location"`
	Timezone        *string    `json:"timezone"`
	DiscordUsername *string    `json:"discord_username"`
	SteamID         *string    `json:"steam_id"`
	TwitchUsername  *string    `json:"twitch_username"`

	PreferredGameModes   datatypes.JSON `json:"preferred_game_modes,omitempty" swaggertype:"object"`
	PreferredPlaytime    datatypes.JSON `json:"preferred_playtime,omitempty" swaggertype:"object"`
	AvailabilitySchedule datatypes.JSON `json:"availability_schedule,omitempty" swaggertype:"object"`

	SkillLevel          string  `json:"skill_level" example:"beginner"`
	LookingFor          *string `json:"looking_for"`
	IsAvailableNow      bool    `json:"is_available_now"`
	ProfileVisibility   string  `json:"profile_visibility" example:"public"`
	ShowStats           bool    `json:"show_stats"`
	AllowFriendRequests bool    `json:"allow_friend_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProfileResponse(profile models.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                   profile.ID,
		UserID:               profile.UserID,
		FirstName:            profile.FirstName,
		LastName:             profile.LastName,
		DateOfBirth:          profile.DateOfBirth,
		AvatarURL:            profile.AvatarURL,
		Bio:                  profile.Bio,
		Location:             profile.Location,
		Timezone:             profile.Timezone,
		DiscordUsername:      profile.DiscordUsername,
		SteamID:              profile.SteamID,
		TwitchUsername:       profile.TwitchUsername,
		PreferredGameModes:   profile.PreferredGameModes,
		PreferredPlaytime:    profile.PreferredPlaytime,
		AvailabilitySchedule: profile.AvailabilitySchedule,
		SkillLevel:           profile.SkillLevel,
		LookingFor:           profile.LookingFor,
		IsAvailableNow:       profile.IsAvailableNow,
		ProfileVisibility:    profile.ProfileVisibility,
		ShowStats:            profile.ShowStats,
		AllowFriendRequests:  profile.AllowFriendRequests,
		CreatedAt:            profile.CreatedAt,
		UpdatedAt:            profile.UpdatedAt,
	}
}

// endregion

// GetMyProfile godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile of the authenticated user. Profiles are not created on registration.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Profile not found"
// @Router       /profiles/me [get]
func GetMyProfile(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", viewerID.(uint)).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// UpdateMyProfile godoc
// @Summary      Create or update current user's profile
// @Description  Applies a partial update; omitted fields keep their current values, or their defaults when the profile is first created.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ProfileUpdateInput true "Profile fields to apply"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /profiles/me [put]
func UpdateMyProfile(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.UserProfile
	err := database.DB.Where("user_id = ?", viewerID.(uint)).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.NewUserProfile(viewerID.(uint))
		input.apply(&profile)
		if err := database.DB.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	default:
		input.apply(&profile)
		if err := database.DB.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}
