package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"xmirrord/internal/log"
	"xmirrord/pkg/db/service"
	"xmirrord/pkg/model/mirror"
	"xmirrord/pkg/utils"
)

type MirrorReader interface {
	GetAllMirrors() ([]mirror.Mirror, error)
	GetMirror(id uint64) (mirror.Mirror, error)
}

type MirrorController struct {
	Mirrors MirrorReader
}

func NewMirrorController(mirrors MirrorReader) *MirrorController {
	return &MirrorController{Mirrors: mirrors}
}

func (m *MirrorController) Index(c *gin.Context) {
	mirrors, err := m.Mirrors.GetAllMirrors()
	if err != nil {
		log.Errorf("Get all mirrors found error:%v", err)
		c.String(http.StatusInternalServerError, utils.Message(utils.FETCH_DATA_ERROR))
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"mirrors": mirrors,
	})
}

func (m *MirrorController) GetAllMirrors(c *gin.Context) {
	mirrors, err := m.Mirrors.GetAllMirrors()
	if err != nil {
		log.Errorf("Get all mirrors found error:%v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorHelper(utils.FETCH_DATA_ERROR))
		return
	}
	c.JSON(http.StatusOK, utils.ResponseHelper(utils.SetData("mirrors", mirrors)))
}

func (m *MirrorController) GetMirror(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	mr, err := m.Mirrors.GetMirror(id)
	if errors.Is(err, service.ErrMirrorNotFound) {
		c.JSON(http.StatusNotFound, utils.ErrorHelper(utils.MIRROR_NOT_FOUND))
		return
	}
	if err != nil {
		log.Errorf("Get mirror:%d found error:%v", id, err)
		c.JSON(http.StatusInternalServerError, utils.ErrorHelper(utils.FETCH_DATA_ERROR))
		return
	}
	c.JSON(http.StatusOK, utils.ResponseHelper(utils.SetData("mirror", mr)))
}

// parseId reads the :id path parameter, answering 400 itself when it is not
// an unsigned integer.
func parseId(c *gin.Context) (uint64, bool) {
	pathId := c.Param("id")
	id, err := strconv.ParseUint(pathId, 10, 64)
	if err != nil {
		log.Errorf("Parse path param id:%s found error:%v", pathId, err)
		c.JSON(http.StatusBadRequest, utils.ErrorHelper(utils.PARAMETER_ERROR))
		return 0, false
	}
	return id, true
}

func (m *MirrorController) legacyMirrors() ([]mirror.LegacyMirror, error) {
	mirrors, err := m.Mirrors.GetAllMirrors()
	if err != nil {
		return nil, err
	}
	return mirror.Legacy(mirrors), nil
}

// GetLegacyMirrors serves the v0 JSON list: a bare array, enabled mirrors only.
func (m *MirrorController) GetLegacyMirrors(c *gin.Context) {
	legacy, err := m.legacyMirrors()
	if err != nil {
		log.Errorf("Get legacy mirrors found error:%v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorHelper(utils.FETCH_DATA_ERROR))
		return
	}
	c.JSON(http.StatusOK, legacy)
}

func (m *MirrorController) GetRawMirrors(c *gin.Context) {
	legacy, err := m.legacyMirrors()
	if err != nil {
		log.Errorf("Get raw mirrors found error:%v", err)
		c.String(http.StatusInternalServerError, utils.Message(utils.FETCH_DATA_ERROR))
		return
	}
	var buf bytes.Buffer
	if err := mirror.WriteLegacyTSV(&buf, legacy); err != nil {
		log.Errorf("Write raw mirrors found error:%v", err)
		c.String(http.StatusInternalServerError, utils.Message(utils.RENDER_ERROR))
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
