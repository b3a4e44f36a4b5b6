package handlers

import (
	"net/http"

	"github.com/abhishek-8081/Brainly-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCreateContent = "Content Creation failed"
	errFetchContent  = "Failed to fetch content"
	errDeleteContent = "failed to delete content"

	msgContentCreated = "Content Created Successfully"
	msgContentDeleted = "content deleted successfully"
)

// Request DTO for creating content. Field presence is not enforced;
// partial bookmarks are allowed, matching the frontend's behavior.
type createContentRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}

// Request DTO for deleting content by id.
type deleteContentRequest struct {
	ContentID string `json:"contentId" binding:"required"`
}

// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body   createContentRequest  true  "Content payload"
// @Success      200  {object}  map[string]interface{}  "msg, content"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/content [post]
// @Security     ApiKeyAuth
func (h *Handler) createContent(c *gin.Context) {
	var req createContentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	content, err := h.services.Contents.Create(c.Request.Context(), currentUserID(c), service.ContentParams{
		Title: req.Title,
		Link:  req.Link,
		Type:  req.Type,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateContent, "content_create_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": msgContentCreated, "content": content})
}

// @Summary      List content
// @Description  Returns all content of the caller with the owner reference expanded.
// @Tags         content
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "content"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/content [get]
// @Security     ApiKeyAuth
func (h *Handler) listContent(c *gin.Context) {
	content, err := h.services.Contents.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchContent, "content_list_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// @Summary      Delete content
// @Description  Deletes the record matching both id and caller. Matching nothing still succeeds.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body   deleteContentRequest  true  "Content id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/content [delete]
// @Security     ApiKeyAuth
func (h *Handler) deleteContent(c *gin.Context) {
	var req deleteContentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Contents.Delete(c.Request.Context(), req.ContentID, currentUserID(c)); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteContent, "content_delete_failed", err,
			"contentId", req.ContentID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": msgContentDeleted})
}
