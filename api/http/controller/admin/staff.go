package admin

import (
	"studio/admin/control"
	"studio/admin/tools"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListStaff(c *gin.Context) {
	ctl := control.NewStaffControl(h.db)
	staff, err := ctl.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"staff": staff}
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

func (h *Handler) AddStaffForm(c *gin.Context) {
	h.ok(c, nil)
}

func (h *Handler) AddStaff(c *gin.Context) {
	var req control.NewStaff
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewStaffControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditStaffForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	staff, err := control.NewStaffControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := staff.ChangeDateFormat(tools.DateLayoutDisplay, tools.DateLayoutISO); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"staff": staff})
}

func (h *Handler) EditStaff(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewStaff
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewStaffControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewStaffControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
