package handlers

import (
	"errors"
	"net/http"

	"github.com/abhishek-8081/Brainly-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO toggling sharing. A missing or false flag disables it.
type shareRequest struct {
	Share bool `json:"share"`
}

// @Summary      Enable or disable brain sharing
// @Description  share=true returns the (possibly pre-existing) public hash; share=false removes the link.
// @Tags         brain
// @Accept       json
// @Produce      json
// @Param        body  body   shareRequest  true  "Share flag"
// @Success      200  {object}  map[string]string  "hash or msg"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/brain/share [post]
// @Security     ApiKeyAuth
func (h *Handler) shareBrain(c *gin.Context) {
	var req shareRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)

	if !req.Share {
		if err := h.services.Sharing.Disable(ctx, userID); err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to remove link", "share_disable_failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Removed link"})
		return
	}

	hash, err := h.services.Sharing.Enable(ctx, userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to share content", "share_enable_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hash": hash})
}

// @Summary      Read a shared brain
// @Description  Public: anyone holding the hash gets the owner's username and full content list.
// @Tags         brain
// @Produce      json
// @Param        shareLink  path  string  true  "Share hash"
// @Success      200  {object}  map[string]interface{}  "username, content"
// @Failure      411  {object}  map[string]string  "unknown hash or vanished owner"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/brain/{shareLink} [get]
func (h *Handler) getSharedBrain(c *gin.Context) {
	hash := c.Param("shareLink")

	brain, err := h.services.Sharing.Resolve(c.Request.Context(), hash)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			// Clients expect 411 on this path, not 404.
			c.JSON(http.StatusLengthRequired, gin.H{"msg": "Link not found"})
		case errors.Is(err, service.ErrOwnerNotFound):
			c.JSON(http.StatusLengthRequired, gin.H{"msg": "user not found"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to load shared content", "share_resolve_failed", err,
				"hash", hash)
		}
		return
	}

	c.JSON(http.StatusOK, brain)
}
