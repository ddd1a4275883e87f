package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metonline/hesap-paylas/internal/middleware"
	"github.com/metonline/hesap-paylas/internal/models"
)

func (s *Server) createGroup(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	creator, err := s.users.GetUserByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	group, err := s.groups.CreateGroup(c.Request.Context(), creator, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, groupResponse(group))
}

func (s *Server) getGroup(c *gin.Context) {
	group, err := s.groups.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, groupResponse(group))
}

func (s *Server) joinGroup(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := s.users.GetUserByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	group, err := s.groups.JoinGroup(c.Request.Context(), req.Code, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	c.JSON(http.StatusOK, groupResponse(group))
}

func groupResponse(g *models.Group) gin.H {
	members := make([]gin.H, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, gin.H{"id": m.ID, "name": m.Name})
	}
	return gin.H{
		"id":          g.ID,
		"code":        g.Code,
		"name":        g.Name,
		"description": g.Description,
		"createdBy":   g.CreatedBy,
		"members":     members,
		"createdAt":   g.CreatedAt,
	}
}
