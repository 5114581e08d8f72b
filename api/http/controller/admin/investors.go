package admin

import (
	"studio/admin/control"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInvestors(c *gin.Context) {
	ctl := control.NewInvestorControl(h.db)
	investors, err := ctl.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"investors": investors}
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

func (h *Handler) AddInvestorForm(c *gin.Context) {
	h.ok(c, nil)
}

func (h *Handler) AddInvestor(c *gin.Context) {
	var req control.NewInvestor
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewInvestorControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditInvestorForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	investor, err := control.NewInvestorControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"investor": investor})
}

func (h *Handler) EditInvestor(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewInvestor
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewInvestorControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteInvestor(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewInvestorControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
