package admin

import (
	"studio/admin/control"
	"studio/admin/tools"

	"github.com/gin-gonic/gin"
)

// ListGames returns all games; with ?id= it also attaches that game's
// statistics bundle for the detail view.
func (h *Handler) ListGames(c *gin.Context) {
	ctl := control.NewGameControl(h.db)
	games, err := ctl.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"games": games}
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

// AddGameForm returns the reference data the add form needs.
func (h *Handler) AddGameForm(c *gin.Context) {
	publishers, err := control.NewPublisherControl(h.db).List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"publishers": publishers})
}

func (h *Handler) AddGame(c *gin.Context) {
	var req control.NewGame
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewGameControl(h.db).Create(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

// EditGameForm returns the row with its date re-rendered in the ISO layout
// the form parser expects, plus the publisher reference list.
func (h *Handler) EditGameForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	game, err := control.NewGameControl(h.db).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := game.ChangeDateFormat(tools.DateLayoutDisplay, tools.DateLayoutISO); err != nil {
		h.fail(c, err)
		return
	}
	publishers, err := control.NewPublisherControl(h.db).List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"game": game, "publishers": publishers})
}

func (h *Handler) EditGame(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	var req control.NewGame
	if !h.bindJSON(c, &req) {
		return
	}
	if err := control.NewGameControl(h.db).Update(c.Request.Context(), id, req); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		h.badParams(c, "id is required")
		return
	}
	if err := control.NewGameControl(h.db).Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}
