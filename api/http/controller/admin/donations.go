package admin

import (
	"studio/admin/control"
	"studio/admin/tools"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDonations(c *gin.Context) {
	donations, err := control.NewDonationControl(h.db).List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"donations": donations})
}

func (h *Handler) donationRefs(c *gin.Context) (gin.H, error) {
	users, err := control.NewUserControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	games, err := control.NewGameControl(h.db).List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{"users": users, "games": games}, nil
}

func (h *Handler) AddDonationForm(c *gin.Context) {
	refs, err := h.donationRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, refs)
}

func (h *Handler) AddDonation(c *gin.Context) {
	var req control.NewDonation
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewDonationControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) EditDonationForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	donation, err := control.NewDonationControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := donation.ChangeDateFormat(tools.TimestampLayoutDisplay, tools.TimestampLayoutISO); err != nil {
		h.fail(c, err)
		return
	}
	refs, err := h.donationRefs(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	refs["donation"] = donation
	h.ok(c, refs)
}

func (h *Handler) EditDonation(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewDonation
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewDonationControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteDonation(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewDonationControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
