package controller

import (
	"errors"

	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	UserRepo *repository.UserRepository
}

func NewUserController(userRepo *repository.UserRepository) *UserController {
	return &UserController{UserRepo: userRepo}
}

// PelajarMyData godoc
// @Summary Profil pelajar saat ini
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Pelajar}
// @Failure 403 {object} util.Response "Token bukan milik pelajar"
// @Router /pelajar/mydata [get]
func (c *UserController) PelajarMyData(ctx *gin.Context) {
	p := util.GetPrincipalFromContext(ctx)
	if p == nil || p.Kind != util.PrincipalUser {
		util.Unauthorized(ctx)
		return
	}

	pelajar, err := c.UserRepo.FindPelajarByUID(p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.DomainError(ctx, util.ErrAccountNotFound)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pelajar)
}

// MentorMyData godoc
// @Summary Profil mentor saat ini
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Mentor}
// @Failure 403 {object} util.Response "Token bukan milik mentor"
// @Router /mentor/mydata [get]
func (c *UserController) MentorMyData(ctx *gin.Context) {
	p := util.GetPrincipalFromContext(ctx)
	if p == nil || p.Kind != util.PrincipalUser {
		util.Unauthorized(ctx)
		return
	}

	mentor, err := c.UserRepo.FindMentorByUID(p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.DomainError(ctx, util.ErrAccountNotFound)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, mentor)
}
