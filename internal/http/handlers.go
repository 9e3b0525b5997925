package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-api/internal/store"
)

type createRequest struct {
	Title string `json:"title"`
}

func (s *Server) createTodo(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}
	todo, err := s.Store.Create(c.Request.Context(), req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create todo: %v", err)})
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (s *Server) listTodos(c *gin.Context) {
	todos, err := s.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch todos: %v", err)})
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (s *Server) getTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	todo, err := s.Store.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("todo with id %d not found", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch todo: %v", err)})
	default:
		c.JSON(http.StatusOK, todo)
	}
}

func (s *Server) updateTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}
	todo, err := s.Store.Update(c.Request.Context(), id, req.Title)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("todo with id %d not found", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to update todo: %v", err)})
	default:
		c.JSON(http.StatusOK, todo)
	}
}

func (s *Server) deleteTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := s.Store.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("todo with id %d not found", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to delete todo: %v", err)})
	default:
		c.Status(http.StatusNoContent)
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return 0, false
	}
	return id, true
}
