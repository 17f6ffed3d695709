package rest

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"xmirrord/pkg/rest/controller"
)

// InitFileController serves <filesDir>/static and loads the page templates
// from <filesDir>/templates.
func InitFileController(engine *gin.Engine, filesDir string) {
	engine.LoadHTMLGlob(filepath.Join(filesDir, "templates", "*"))
	engine.Static("/static", filepath.Join(filesDir, "static"))
}

func InitGuestController(engine *gin.Engine, m *controller.MirrorController) {
	engine.GET("/", m.Index)

	r := engine.Group("/api/v1")
	r.GET("/mirrors", m.GetAllMirrors)
	r.GET("/mirrors/:id", m.GetMirror)
}

// InitLegacyController registers the routes older clients fetch the mirror
// list from.
func InitLegacyController(engine *gin.Engine, m *controller.MirrorController) {
	engine.GET("/v0/mirrors.json", m.GetLegacyMirrors)
	engine.GET("/raw/mirrors.lst", m.GetRawMirrors)
}

func InitAdminController(engine *gin.Engine, a *controller.AdminController) {
	r := engine.Group("/api/v1/admin")

	r.POST("/mirrors", a.CreateMirror)
	r.PUT("/mirrors/:id", a.UpdateMirror)
	r.DELETE("/mirrors/:id", a.DeleteMirror)
}
