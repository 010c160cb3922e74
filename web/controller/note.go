package controller

import (
	"github.com/taskdeck/taskdeck/database/model"
	"github.com/taskdeck/taskdeck/web/service"
	"github.com/taskdeck/taskdeck/web/session"

	"github.com/gin-gonic/gin"
)

// ReorderForm is the move request sent when a note is dragged to a new
// position within its category.
type ReorderForm struct {
	MovedNoteId       string `json:"movedNoteId" form:"movedNoteId"`
	PositionMovedFrom int    `json:"positionMovedFrom" form:"positionMovedFrom"`
	PositionMovedTo   int    `json:"positionMovedTo" form:"positionMovedTo"`
}

// NoteController handles the note routes of a category.
type NoteController struct {
	noteService service.NoteService
}

// NewNoteController creates a new NoteController and sets up its routes.
func NewNoteController(g *gin.RouterGroup) *NoteController {
	a := &NoteController{}
	a.initRouter(g)
	return a
}

func (a *NoteController) initRouter(g *gin.RouterGroup) {
	g.GET("/list/:categoryId", a.getNotes)
	g.POST("/add", a.addNote)
	g.POST("/update/:id", a.updateNote)
	g.POST("/del/:id", a.deleteNote)
	g.POST("/reorder", a.reorderNotes)
}

func (a *NoteController) getNotes(c *gin.Context) {
	user := session.GetLoginUser(c)
	notes, err := a.noteService.GetNotes(user.Id, c.Param("categoryId"))
	if err != nil {
		jsonMsg(c, "failed to list notes:", err)
		return
	}
	jsonObj(c, notes, nil)
}

func (a *NoteController) addNote(c *gin.Context) {
	note := &model.Note{}
	if err := c.ShouldBind(note); err != nil {
		jsonMsg(c, "failed to add note:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	note, err := a.noteService.CreateNote(user.Id, note)
	if err != nil {
		jsonMsg(c, "failed to add note:", err)
		return
	}
	jsonObj(c, note, nil)
}

func (a *NoteController) updateNote(c *gin.Context) {
	note := &model.Note{}
	if err := c.ShouldBind(note); err != nil {
		jsonMsg(c, "failed to update note:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	if err := a.noteService.UpdateNote(user.Id, c.Param("id"), note.Name, note.Content); err != nil {
		jsonMsg(c, "failed to update note:", err)
		return
	}
	jsonMsg(c, "note updated", nil)
}

func (a *NoteController) deleteNote(c *gin.Context) {
	user := session.GetLoginUser(c)
	if err := a.noteService.DeleteNote(user.Id, c.Param("id")); err != nil {
		jsonMsg(c, "failed to delete note:", err)
		return
	}
	jsonMsg(c, "note deleted", nil)
}

func (a *NoteController) reorderNotes(c *gin.Context) {
	var form ReorderForm
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "failed to reorder notes:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	err := a.noteService.ReorderNotes(c.Request.Context(), user.Id,
		form.MovedNoteId, form.PositionMovedFrom, form.PositionMovedTo)
	if err != nil {
		jsonMsg(c, "failed to reorder notes:", err)
		return
	}
	jsonMsg(c, "notes reordered", nil)
}
