package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/ledger"
	"github.com/metonline/hesap-paylas/internal/middleware"
	"github.com/metonline/hesap-paylas/internal/models"
	"github.com/metonline/hesap-paylas/internal/settlement"
	"github.com/metonline/hesap-paylas/internal/service"
)

type orderItemRequest struct {
	ParticipantID  string          `json:"participantId" binding:"required"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Quantity       decimal.Decimal `json:"quantity"`
	Classification string          `json:"classification" binding:"required"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req struct {
		GroupID    string             `json:"groupId" binding:"required"`
		Restaurant string             `json:"restaurant"`
		Items      []orderItemRequest `json:"items"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order := &models.Order{
		GroupID:    req.GroupID,
		CreatorID:  middleware.GetUserID(c),
		Restaurant: req.Restaurant,
		Items:      make([]models.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		class, err := models.ParseClassification(item.Classification)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order.Items = append(order.Items, models.OrderItem{
			ParticipantID:  item.ParticipantID,
			Name:           item.Name,
			UnitPrice:      item.UnitPrice,
			Quantity:       item.Quantity,
			Classification: class,
		})
	}

	created, err := s.orders.CreateOrder(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, orderResponse(created))
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

func (s *Server) settleOrder(c *gin.Context) {
	var req struct {
		Tip struct {
			Amount  decimal.Decimal `json:"amount"`
			Percent decimal.Decimal `json:"percent"`
		} `json:"tip"`
		Tax struct {
			Amount  decimal.Decimal `json:"amount"`
			Percent decimal.Decimal `json:"percent"`
		} `json:"tax"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	st, err := s.settlements.SettleOrder(
		c.Request.Context(),
		c.Param("id"),
		service.ExtraCharge{Amount: req.Tip.Amount, Percent: req.Tip.Percent},
		service.ExtraCharge{Amount: req.Tax.Amount, Percent: req.Tax.Percent},
	)
	if err != nil {
		if errors.Is(err, settlement.ErrEmptyGroup) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	middleware.SettlementsTotal.Inc()

	c.JSON(http.StatusCreated, settlementResponse(st))
}

func (s *Server) getSettlement(c *gin.Context) {
	st, err := s.settlements.GetSettlement(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "settlement not found"})
		return
	}
	c.JSON(http.StatusOK, settlementResponse(st))
}
