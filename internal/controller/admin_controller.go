package controller

import (
	"errors"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	AuthService *service.AuthService
	UserRepo    *repository.UserRepository
}

func NewAdminController(authService *service.AuthService, userRepo *repository.UserRepository) *AdminController {
	return &AdminController{AuthService: authService, UserRepo: userRepo}
}

type AdminLoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Login admin
// @Description Token admin membawa klaim id bertipe string
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   body body AdminLoginRequest true "Kredensial admin"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.AdminLogin(req.ID, req.Password)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"access_token": token, "token_type": "bearer"})
}

// Register godoc
// @Summary Registrasi admin baru
// @Description Hanya admin yang boleh membuat admin; pembuat tercatat di created_by
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AdminRegisterRequest true "Data admin baru"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "ID sudah dipakai"
// @Router /admin/registrasi [post]
func (c *AdminController) Register(ctx *gin.Context) {
	var req service.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	parent := ctx.MustGet("admin").(*model.Admin)
	if err := c.AuthService.RegisterAdmin(req, parent.ID); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": req.ID})
}

// MyData godoc
// @Summary Profil admin saat ini
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Admin}
// @Router /admin/mydata [get]
func (c *AdminController) MyData(ctx *gin.Context) {
	admin := ctx.MustGet("admin").(*model.Admin)
	util.Success(ctx, admin)
}

type ToggleMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ToggleMember godoc
// @Summary Alihkan status membership pelajar
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ToggleMemberRequest true "Email pelajar"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Akun tidak ditemukan"
// @Router /admin/pelajar/membership [post]
func (c *AdminController) ToggleMember(ctx *gin.Context) {
	var req ToggleMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pelajar, err := c.UserRepo.TogglePelajarMember(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.DomainError(ctx, util.ErrAccountNotFound)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"email": req.Email, "is_member": pelajar.IsMember})
}
