package controller

import (
	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MateriController struct {
	MateriService *service.MateriService
	Authz         *service.AuthzService
}

func NewMateriController(materiService *service.MateriService, authz *service.AuthzService) *MateriController {
	return &MateriController{MateriService: materiService, Authz: authz}
}

// Create godoc
// @Summary Buat materi pembelajaran
// @Description Nama materi unik global; mapel harus salah satu dari enam mapel skolastik
// @Tags materi
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.MateriRequest true "Data materi"
// @Success 201 {object} util.Response{data=model.MateriPembelajaran}
// @Failure 403 {object} util.Response "Bukan mentor terverifikasi"
// @Failure 409 {object} util.Response "Nama sudah dipakai"
// @Router /materi [post]
func (c *MateriController) Create(ctx *gin.Context) {
	p := util.GetPrincipalFromContext(ctx)
	if p == nil || p.Kind != util.PrincipalUser {
		util.Unauthorized(ctx)
		return
	}
	if _, err := c.Authz.RequireMentor(p.UserID); err != nil {
		util.DomainError(ctx, err)
		return
	}

	var req service.MateriRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	materi, err := c.MateriService.CreateMateri(req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, materi)
}

// Get godoc
// @Summary Detail materi
// @Tags materi
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID materi"
// @Success 200 {object} util.Response{data=model.MateriPembelajaran}
// @Failure 400 {object} util.Response "Materi tidak ditemukan"
// @Router /materi/{id} [get]
func (c *MateriController) Get(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	materi, err := c.MateriService.GetMateri(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, materi)
}

// List godoc
// @Summary Daftar materi, opsional difilter per mapel
// @Tags materi
// @Produce  json
// @Security ApiKeyAuth
// @Param   mapel query int false "Filter mapel (1-6)"
// @Success 200 {object} util.Response{data=[]model.MateriPembelajaran}
// @Router /materi [get]
func (c *MateriController) List(ctx *gin.Context) {
	var mapel model.MapelSkolastik
	if raw := ctx.Query("mapel"); raw != "" {
		n, err := util.ParseUint(raw)
		if err != nil {
			util.BadRequest(ctx, "mapel tidak valid")
			return
		}
		mapel = model.MapelSkolastik(n)
		if !mapel.Valid() {
			util.DomainError(ctx, util.ErrInvalidMapel)
			return
		}
	}

	daftar, err := c.MateriService.ListMateri(mapel)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, daftar)
}
