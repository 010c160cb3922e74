package controller

import (
	"github.com/taskdeck/taskdeck/web/service"
	"github.com/taskdeck/taskdeck/web/session"

	"github.com/gin-gonic/gin"
)

// CategoryController handles the category CRUD routes.
type CategoryController struct {
	categoryService service.CategoryService
}

// NewCategoryController creates a new CategoryController and sets up its routes.
func NewCategoryController(g *gin.RouterGroup) *CategoryController {
	a := &CategoryController{}
	a.initRouter(g)
	return a
}

func (a *CategoryController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getCategories)
	g.POST("/add", a.addCategory)
	g.POST("/del/:id", a.deleteCategory)
}

func (a *CategoryController) getCategories(c *gin.Context) {
	user := session.GetLoginUser(c)
	categories, err := a.categoryService.GetCategories(user.Id)
	if err != nil {
		jsonMsg(c, "failed to list categories:", err)
		return
	}
	jsonObj(c, categories, nil)
}

func (a *CategoryController) addCategory(c *gin.Context) {
	var form struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "failed to add category:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	category, err := a.categoryService.CreateCategory(user.Id, form.Name)
	if err != nil {
		jsonMsg(c, "failed to add category:", err)
		return
	}
	jsonObj(c, category, nil)
}

func (a *CategoryController) deleteCategory(c *gin.Context) {
	user := session.GetLoginUser(c)
	err := a.categoryService.DeleteCategory(user.Id, c.Param("id"))
	if err != nil {
		jsonMsg(c, "failed to delete category:", err)
		return
	}
	jsonMsg(c, "category deleted", nil)
}
