package controller

import (
	"os"
	"path/filepath"

	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VideoController struct {
	VideoService *service.VideoService
	Authz        *service.AuthzService
}

func NewVideoController(videoService *service.VideoService, authz *service.AuthzService) *VideoController {
	return &VideoController{VideoService: videoService, Authz: authz}
}

func (c *VideoController) requireMentorPrincipal(ctx *gin.Context) (uint, bool) {
	p := util.GetPrincipalFromContext(ctx)
	if p == nil || p.Kind != util.PrincipalUser {
		util.Unauthorized(ctx)
		return 0, false
	}
	if _, err := c.Authz.RequireMentor(p.UserID); err != nil {
		util.DomainError(ctx, err)
		return 0, false
	}
	return p.UserID, true
}

// Upload godoc
// @Summary Unggah video pembelajaran
// @Description Menerima berkas mp4 maksimal 500MB lewat multipart form
// @Tags video
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   judul     formData string true "Judul video"
// @Param   id_materi formData int    true "ID materi induk"
// @Param   file      formData file   true "Berkas video mp4"
// @Success 201 {object} util.Response{data=model.VideoPembelajaran}
// @Failure 400 {object} util.Response "Bukan mp4, terlalu besar, atau materi tidak ada"
// @Failure 403 {object} util.Response "Bukan mentor terverifikasi"
// @Router /video [post]
func (c *VideoController) Upload(ctx *gin.Context) {
	uid, ok := c.requireMentorPrincipal(ctx)
	if !ok {
		return
	}

	judul := ctx.PostForm("judul")
	if judul == "" {
		util.BadRequest(ctx, "judul wajib diisi")
		return
	}
	materiID, err := util.ParseUint(ctx.PostForm("id_materi"))
	if err != nil {
		util.BadRequest(ctx, "id_materi tidak valid")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "berkas video wajib disertakan")
		return
	}
	if file.Header.Get("Content-Type") != util.MimeVideoMP4 {
		util.BadRequest(ctx, "hanya berkas video/mp4 yang diterima")
		return
	}
	if file.Size > util.MaxVideoUploadSize {
		util.BadRequest(ctx, "ukuran berkas melebihi batas 500MB")
		return
	}

	// Simpan dulu ke berkas sementara supaya ffmpeg bisa melakukan probe.
	tmpPath := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+".mp4")
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	video, err := c.VideoService.UploadVideo(ctx.Request.Context(), uid, judul, materiID, tmpPath, file.Size)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, video)
}

// Get godoc
// @Summary Detail video
// @Tags video
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID video"
// @Success 200 {object} util.Response{data=model.VideoPembelajaran}
// @Failure 404 {object} util.Response
// @Router /video/{id} [get]
func (c *VideoController) Get(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	video, err := c.VideoService.GetVideo(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, video)
}

// ListByMateri godoc
// @Summary Daftar video dalam satu materi
// @Tags video
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID materi"
// @Success 200 {object} util.Response{data=[]model.VideoPembelajaran}
// @Router /materi/{id}/video [get]
func (c *VideoController) ListByMateri(ctx *gin.Context) {
	materiID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	videos, err := c.VideoService.ListByMateri(materiID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, videos)
}

// Watch godoc
// @Summary URL streaming video
// @Description Mengembalikan presigned URL berumur pendek, di-cache di redis
// @Tags video
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID video"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /video/{id}/watch [get]
func (c *VideoController) Watch(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	url, err := c.VideoService.WatchURL(ctx.Request.Context(), id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

// Delete godoc
// @Summary Hapus video milik sendiri
// @Description Tugas yang menempel ikut terhapus berikut soal dan attempt-nya
// @Tags video
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID video"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Bukan pemilik video"
// @Router /video/{id} [delete]
func (c *VideoController) Delete(ctx *gin.Context) {
	uid, ok := c.requireMentorPrincipal(ctx)
	if !ok {
		return
	}

	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	video, err := c.VideoService.GetVideo(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	if err := c.Authz.RequireOwner(video.CreatorID, uid); err != nil {
		util.DomainError(ctx, err)
		return
	}

	if err := c.VideoService.DeleteVideo(ctx.Request.Context(), id); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": "video dihapus"})
}
