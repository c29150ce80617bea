package controller

import (
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterPelajar godoc
// @Summary Registrasi pelajar baru
// @Description Membuat akun pelajar; tautan aktivasi dikirim lewat email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.PelajarRegisterRequest true "Data registrasi pelajar"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email sudah terdaftar"
// @Router /pelajar/registrasi [post]
func (c *AuthController) RegisterPelajar(ctx *gin.Context) {
	var req service.PelajarRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.RegisterPelajar(req); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"email": req.Email})
}

// RegisterMentor godoc
// @Summary Registrasi mentor baru
// @Description Membuat akun mentor; mentor dengan asal institusi langsung terverifikasi
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.MentorRegisterRequest true "Data registrasi mentor"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email sudah terdaftar"
// @Router /mentor/registrasi [post]
func (c *AuthController) RegisterMentor(ctx *gin.Context) {
	var req service.MentorRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.RegisterMentor(req); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"email": req.Email})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Login pelajar/mentor
// @Description Memverifikasi kredensial dan mengembalikan token JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Kredensial"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /user/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"access_token": token, "token_type": "bearer"})
}

// Activate godoc
// @Summary Aktivasi akun via tautan email
// @Tags auth
// @Produce  json
// @Param   id  query int    true "ID user"
// @Param   otp query string true "Kode aktivasi"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Kode tidak cocok"
// @Router /user/aktivasi [get]
func (c *AuthController) Activate(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Query("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}
	otp := ctx.Query("otp")
	if otp == "" {
		util.BadRequest(ctx, "otp wajib diisi")
		return
	}

	if err := c.AuthService.Activate(id, otp); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": "akun aktif"})
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset godoc
// @Summary Minta reset password
// @Description Mengganti sandi dengan sandi sementara dan mengirimkannya lewat email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body PasswordResetRequest true "Email akun"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /user/lupa-password [post]
func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var req PasswordResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.RequestPasswordReset(req.Email); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": "sandi sementara dikirim"})
}

type ChangePasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword godoc
// @Summary Ganti password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body ChangePasswordRequest true "Kredensial lama dan sandi baru"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /user/ganti-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ChangePassword(req.Email, req.Password, req.NewPassword); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": "password diperbarui"})
}
