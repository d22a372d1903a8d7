package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"electroparts-backend/internal/config"
)

type server struct {
	db  *gorm.DB
	cfg config.Config
}

// SetupRouter wires every endpoint against the given database handle. Tests
// pass an sqlite handle here, production passes the postgres pool.
func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	s := &server{db: db, cfg: cfg}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", s.listProducts)
	r.GET("/orders", s.listOrders)
	r.POST("/orders", s.createOrder)
	r.POST("/auth/login", s.login)
	r.POST("/auth/register", s.register)

	return r
}

// Emails are matched case-insensitively everywhere by storing and querying
// the normalized form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
