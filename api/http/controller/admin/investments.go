package admin

import (
	"studio/admin/control"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInvestments(c *gin.Context) {
	investments, err := control.NewInvestmentControl(h.db).List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"investments": investments})
}

func (h *Handler) investmentRefs(c *gin.Context) (gin.H, error) {
	games, err := control.NewGameControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	investors, err := control.NewInvestorControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{"games": games, "investors": investors}, nil
}

func (h *Handler) AddInvestmentForm(c *gin.Context) {
	refs, err := h.investmentRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, refs)
}

func (h *Handler) AddInvestment(c *gin.Context) {
	var req control.NewInvestment
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewInvestmentControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditInvestmentForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	investment, err := control.NewInvestmentControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	refs, err := h.investmentRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	refs["investment"] = investment
	h.ok(c, refs)
}

func (h *Handler) EditInvestment(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewInvestment
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewInvestmentControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewInvestmentControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
