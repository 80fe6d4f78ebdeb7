package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/models"
	"github.com/Farounaga/Esport-api/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testIssuer = token.NewIssuer("test-secret", 30*time.Minute)

// setupTest wires the handlers to a fresh in-memory database and returns a
// router with the full route table.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	// One shared-cache memory database per test so connections from the
	// pool see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, testIssuer)
	return router
}

func performRequest(router *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func createTestUser(t *testing.T, username, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func bearerFor(t *testing.T, user models.User) string {
	t.Helper()

	tokenString, err := testIssuer.Issue(user.ID)
	require.NoError(t, err)
	return tokenString
}

func createTestGame(t *testing.T, name, slug string) models.Game {
	t.Helper()

	game := models.Game{
		Name:       name,
		Slug:       slug,
		Category:   "fps",
		IsActive:   true,
		MinPlayers: 1,
		MaxPlayers: 10,
	}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}
