package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nhea/awards-api/internal/domain/entity"
)

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"role":        u.Role,
		"is_verified": u.IsVerified,
	}
}

func nominationView(n *entity.Nomination) gin.H {
	v := gin.H{
		"id":            n.ID,
		"category_id":   n.CategoryID,
		"nominee_name":  n.NomineeName,
		"nominee_email": n.NomineeEmail,
		"organization":  n.Organization,
		"reason":        n.Reason,
		"status":        n.Status,
		"submitted_by":  n.SubmittedByID,
		"created_at":    n.CreatedAt,
	}
	if n.ReviewedByID != "" {
		v["reviewed_by"] = n.ReviewedByID
	}
	if n.ReviewedAt != nil {
		v["reviewed_at"] = n.ReviewedAt
	}
	if n.CategoryName != "" {
		v["category_name"] = n.CategoryName
	}
	if n.SubmittedByName != "" {
		v["submitted_by_name"] = n.SubmittedByName
	}
	return v
}

func voteView(v *entity.Vote) gin.H {
	out := gin.H{
		"id":            v.ID,
		"user_id":       v.UserID,
		"category_id":   v.CategoryID,
		"nomination_id": v.NominationID,
		"cast_at":       v.CastAt,
	}
	if v.CategoryName != "" {
		out["category_name"] = v.CategoryName
	}
	if v.NomineeName != "" {
		out["nominee_name"] = v.NomineeName
	}
	return out
}

func settingsView(s *entity.EventSettings) gin.H {
	return gin.H{
		"voting_enabled":    s.VotingEnabled,
		"voting_start_date": s.VotingStartDate,
		"voting_end_date":   s.VotingEndDate,
		"results_announced": s.ResultsAnnounced,
		"updated_at":        s.UpdatedAt,
	}
}
