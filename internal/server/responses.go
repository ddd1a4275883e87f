package server

import (
	"github.com/gin-gonic/gin"

	"github.com/metonline/hesap-paylas/internal/models"
)

// Amounts are rendered as fixed two-decimal strings; consumption ratios keep
// four places. This is the presentation rounding boundary — stored values
// stay exact.

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"phone":     u.Phone,
		"createdAt": u.CreatedAt,
	}
}

func orderResponse(o *models.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, gin.H{
			"id":             item.ID,
			"participantId":  item.ParticipantID,
			"name":           item.Name,
			"unitPrice":      item.UnitPrice.StringFixed(2),
			"quantity":       item.Quantity.String(),
			"classification": string(item.Classification),
			"lineTotal":      item.LineTotal().StringFixed(2),
		})
	}
	return gin.H{
		"id":         o.ID,
		"groupId":    o.GroupID,
		"creatorId":  o.CreatorID,
		"restaurant": o.Restaurant,
		"items":      items,
		"createdAt":  o.CreatedAt,
	}
}

func settlementResponse(st *models.Settlement) gin.H {
	shares := make([]gin.H, 0, len(st.Shares))
	for _, sh := range st.Shares {
		shares = append(shares, gin.H{
			"participantId":    sh.ParticipantID,
			"participantName":  sh.ParticipantName,
			"personalTotal":    sh.PersonalTotal.StringFixed(2),
			"sharedShare":      sh.SharedShare.StringFixed(2),
			"tipShare":         sh.TipShare.StringFixed(2),
			"taxShare":         sh.TaxShare.StringFixed(2),
			"grandTotal":       sh.GrandTotal.StringFixed(2),
			"consumptionRatio": sh.ConsumptionRatio.StringFixed(4),
		})
	}
	return gin.H{
		"id":              st.ID,
		"orderId":         st.OrderID,
		"groupId":         st.GroupID,
		"billTotal":       st.BillTotal.StringFixed(2),
		"excludedTotal":   st.ExcludedTotal.StringFixed(2),
		"tipAmount":       st.TipAmount.StringFixed(2),
		"taxAmount":       st.TaxAmount.StringFixed(2),
		"grandTotal":      st.BillTotal.Add(st.TipAmount).Add(st.TaxAmount).StringFixed(2),
		"numParticipants": st.NumParticipants,
		"shares":          shares,
		"createdAt":       st.CreatedAt,
	}
}
