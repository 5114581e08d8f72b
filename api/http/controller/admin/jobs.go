package admin

import (
	"studio/admin/control"
	"studio/admin/tools"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := control.NewJobControl(h.db).List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"jobs": jobs})
}

// jobRefs collects the game and staff lists both job forms prefill.
func (h *Handler) jobRefs(c *gin.Context) (gin.H, error) {
	games, err := control.NewGameControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	staff, err := control.NewStaffControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{"games": games, "staff": staff}, nil
}

func (h *Handler) AddJobForm(c *gin.Context) {
	refs, err := h.jobRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, refs)
}

func (h *Handler) AddJob(c *gin.Context) {
	var req control.NewJob
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewJobControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditJobForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	job, err := control.NewJobControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := job.ChangeDateFormat(tools.DateLayoutDisplay, tools.DateLayoutISO); err != nil {
		h.fail(c, err)
		return
	}
	refs, err := h.jobRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	refs["job"] = job
	h.ok(c, refs)
}

func (h *Handler) EditJob(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewJob
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewJobControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewJobControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
