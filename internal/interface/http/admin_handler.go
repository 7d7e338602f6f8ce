package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/pkg/response"
)

// AdminHandler serves the dashboard counters. Pure read-side aggregation;
// no special locking against concurrent votes.
type AdminHandler struct {
	Users       repository.UserRepository
	Categories  repository.CategoryRepository
	Nominations repository.NominationRepository
	Votes       repository.VoteRepository
	Logger      *logrus.Logger
}

func NewAdminHandler(users repository.UserRepository, cats repository.CategoryRepository,
	noms repository.NominationRepository, votes repository.VoteRepository, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Users: users, Categories: cats, Nominations: noms, Votes: votes, Logger: logger}
}

// DashboardStats GET /api/admin/dashboard-stats (admin)
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalNoms, err := h.Nominations.Count(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	pending, err := h.Nominations.CountByStatus(ctx, entity.NominationPending)
	if err != nil {
		h.fail(c, err)
		return
	}
	approved, err := h.Nominations.CountByStatus(ctx, entity.NominationApproved)
	if err != nil {
		h.fail(c, err)
		return
	}
	totalVotes, err := h.Votes.CountTotal(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	totalCategories, err := h.Categories.Count(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	totalUsers, err := h.Users.CountByRole(ctx, entity.RolePublic)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"total_nominations":    totalNoms,
		"pending_nominations":  pending,
		"approved_nominations": approved,
		"total_votes":          totalVotes,
		"total_categories":     totalCategories,
		"total_users":          totalUsers,
	}, "dashboard stats", nil)
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	h.Logger.WithError(err).Error("dashboard stats failed")
	response.Error[any](c, http.StatusInternalServerError, "server error", nil)
}
