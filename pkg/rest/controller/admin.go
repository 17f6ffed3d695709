package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"xmirrord/internal/log"
	"xmirrord/pkg/db/service"
	"xmirrord/pkg/model/mirror"
	"xmirrord/pkg/utils"
)

type MirrorWriter interface {
	CreateMirror(mr mirror.Mirror) error
	UpdateMirror(id uint64, mr mirror.Mirror) error
	DeleteMirror(id uint64) error
}

type AdminController struct {
	Mirrors MirrorWriter
}

func NewAdminController(mirrors MirrorWriter) *AdminController {
	return &AdminController{Mirrors: mirrors}
}

func (a *AdminController) CreateMirror(c *gin.Context) {
	var mr mirror.Mirror
	if err := c.ShouldBindJSON(&mr); err != nil {
		log.Errorf("Parse json mirror found error:%v", err)
		c.JSON(http.StatusBadRequest, utils.ErrorHelper(utils.PARAMETER_ERROR))
		return
	}
	a.respond(c, a.Mirrors.CreateMirror(mr))
}

func (a *AdminController) UpdateMirror(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	var mr mirror.Mirror
	if err := c.ShouldBindJSON(&mr); err != nil {
		log.Errorf("Parse json mirror found error:%v", err)
		c.JSON(http.StatusBadRequest, utils.ErrorHelper(utils.PARAMETER_ERROR))
		return
	}
	a.respond(c, a.Mirrors.UpdateMirror(id, mr))
}

func (a *AdminController) DeleteMirror(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	a.respond(c, a.Mirrors.DeleteMirror(id))
}

func (a *AdminController) respond(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotImplemented) {
		c.JSON(http.StatusNotImplemented, utils.ErrorHelper(utils.NOT_IMPLEMENTED))
		return
	}
	if err != nil {
		log.Errorf("Mirror write %s %s found error:%v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, utils.ErrorHelper(utils.WRITE_DATA_ERROR))
		return
	}
	c.JSON(http.StatusOK, utils.ResponseHelper(utils.SuccessResp()))
}
