package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/nhea/awards-api/internal/application"
	"github.com/nhea/awards-api/internal/domain/voting"
	"github.com/nhea/awards-api/internal/interface/middleware"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type VoteHandler struct {
	Svc    *app.VoteService
	Logger *logrus.Logger
}

func NewVoteHandler(svc *app.VoteService, logger *logrus.Logger) *VoteHandler {
	return &VoteHandler{Svc: svc, Logger: logger}
}

type castVoteRequest struct {
	CategoryID   string `json:"category_id" binding:"required,uuid"`
	NominationID string `json:"nomination_id" binding:"required,uuid"`
}

// statusForDenial maps a vote denial code to its HTTP status. Window and
// eligibility denials are 400s, duplicates are 409, missing category 404.
func statusForDenial(code voting.Code) int {
	switch code {
	case voting.CodeAlreadyVoted:
		return http.StatusConflict
	case voting.CodeCategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Cast POST /api/votes
func (h *VoteHandler) Cast(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	v, err := h.Svc.Cast(c.Request.Context(), uid, req.CategoryID, req.NominationID, clientIP(c))
	if err != nil {
		if code := voting.CodeOf(err); code != "" {
			response.Error[any](c, statusForDenial(code), err.Error(), gin.H{"code": code})
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("vote cast failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, voteView(v), "vote recorded successfully", nil)
}

// MyVotes GET /api/votes/me
func (h *VoteHandler) MyVotes(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	votes, err := h.Svc.MyVotes(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("list votes failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	categoryIDs := make([]string, 0, len(votes))
	views := make([]gin.H, 0, len(votes))
	for i := range votes {
		categoryIDs = append(categoryIDs, votes[i].CategoryID)
		views = append(views, voteView(&votes[i]))
	}
	response.Success(c, http.StatusOK, gin.H{
		"category_ids": categoryIDs,
		"votes":        views,
	}, "my votes", nil)
}

// Analytics GET /api/votes/analytics (admin)
func (h *VoteHandler) Analytics(c *gin.Context) {
	a, err := h.Svc.Analytics(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("vote analytics failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, a, "vote analytics", nil)
}
