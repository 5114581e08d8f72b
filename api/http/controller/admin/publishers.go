package admin

import (
	"studio/admin/control"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPublishers(c *gin.Context) {
	ctl := control.NewPublisherControl(h.db)
	publishers, err := ctl.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"publishers": publishers}
	if id, ok := queryID(c); ok {
		stats, err := ctl.Statistics(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}
		data["statistics"] = stats
	}
	h.ok(c, data)
}

// AddPublisherForm exists for symmetry with the entities that prefill
// reference lists; publishers reference nothing.
func (h *Handler) AddPublisherForm(c *gin.Context) {
	h.ok(c, nil)
}

func (h *Handler) AddPublisher(c *gin.Context) {
	var req control.NewPublisher
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewPublisherControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditPublisherForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	publisher, err := control.NewPublisherControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"publisher": publisher})
}

func (h *Handler) EditPublisher(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewPublisher
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewPublisherControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeletePublisher(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewPublisherControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
