package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"electroparts-backend/internal/models"
)

type userResponse struct {
	User models.User `json:"user"`
}

func TestRegister(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Ada Lovelace",
			"email":    "Ada@Example.com",
			"password": "abcdef",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp userResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.NotZero(t, resp.User.ID)
		assert.Equal(t, "Ada Lovelace", resp.User.Name)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		// the hash must never leave the server
		assert.NotContains(t, w.Body.String(), "password")

		var stored models.User
		assert.NoError(t, db.Where("email = ?", "ada@example.com").First(&stored).Error)
		assert.NotEqual(t, "abcdef", stored.Password)
	})
}

func TestRegisterShortPassword(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "abc",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterMissingFields(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "",
			"email":    "ada@example.com",
			"password": "abcdef",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "abcdef",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		// same address in a different case is still a duplicate
		w = postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Other Ada",
			"email":    "ADA@Example.com",
			"password": "ghijkl",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLogin(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "A",
			"email":    "A@X.com",
			"password": "abcdef",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = postJSON(router, "/auth/login", map[string]interface{}{
			"email":    "a@x.com",
			"password": "abcdef",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp userResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.NotContains(t, w.Body.String(), "password")
	})
}

func TestLoginWrongPassword(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "abcdef",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = postJSON(router, "/auth/login", map[string]interface{}{
			"email":    "ada@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/register", map[string]interface{}{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "abcdef",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		wrongPassword := postJSON(router, "/auth/login", map[string]interface{}{
			"email":    "ada@example.com",
			"password": "wrong-password",
		})
		unknownEmail := postJSON(router, "/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "abcdef",
		})

		// neither response reveals whether the account exists
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})
}

func TestLoginMissingFields(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db, testConfig())

		w := postJSON(router, "/auth/login", map[string]interface{}{
			"email":    "ada@example.com",
			"password": "   ",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
