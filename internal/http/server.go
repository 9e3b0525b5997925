// Package httpx exposes the todo CRUD API over HTTP.
package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"todo-api/internal/store"
)

// Server owns the router and the injected store.
type Server struct {
	R     *gin.Engine
	Store store.Store
	Log   *log.Logger
	Now   func() time.Time
}

// NewServer wires up middleware and routes. The store is injected so
// handlers can be tested against a fake.
func NewServer(st store.Store, logger *log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), CORS())

	s := &Server{R: r, Store: st, Log: logger, Now: time.Now}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": s.Now().UTC()})
	})

	r.POST("/todos", s.createTodo)
	r.GET("/todos", s.listTodos)
	r.GET("/todos/:id", s.getTodo)
	r.PUT("/todos/:id", s.updateTodo)
	r.DELETE("/todos/:id", s.deleteTodo)

	return s
}
