package admin

import (
	"studio/admin/control"
	"studio/admin/tools"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	ctl := control.NewUserControl(h.db)
	users, err := ctl.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"users": users}
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

func (h *Handler) AddUserForm(c *gin.Context) {
	h.ok(c, nil)
}

func (h *Handler) AddUser(c *gin.Context) {
	var req control.NewUser
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewUserControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditUserForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	user, err := control.NewUserControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := user.ChangeDateFormat(tools.DateLayoutDisplay, tools.DateLayoutISO); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"user": user})
}

func (h *Handler) EditUser(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewUser
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewUserControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewUserControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
