package controller

import (
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TugasController struct {
	TugasService   *service.TugasService
	GradingService *service.GradingService
}

func NewTugasController(tugasService *service.TugasService, gradingService *service.GradingService) *TugasController {
	return &TugasController{TugasService: tugasService, GradingService: gradingService}
}

func userPrincipal(ctx *gin.Context) (uint, bool) {
	p := util.GetPrincipalFromContext(ctx)
	if p == nil || p.Kind != util.PrincipalUser {
		util.Unauthorized(ctx)
		return 0, false
	}
	return p.UserID, true
}

// Create godoc
// @Summary Buat tugas pada sebuah video
// @Description Satu video maksimal satu tugas; soal dan pilihannya dibuat sekaligus
// @Tags tugas
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int                        true "ID video"
// @Param   body body service.TugasCreateRequest true "Definisi tugas"
// @Success 201 {object} util.Response{data=model.TugasPembelajaran}
// @Failure 403 {object} util.Response "Bukan mentor atau bukan pemilik video"
// @Failure 409 {object} util.Response "Video sudah memiliki tugas"
// @Router /video/{id}/tugas [post]
func (c *TugasController) Create(ctx *gin.Context) {
	uid, ok := userPrincipal(ctx)
	if !ok {
		return
	}
	videoID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	var req service.TugasCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tugas, err := c.TugasService.CreateTugas(uid, videoID, req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, tugas)
}

// Delete godoc
// @Summary Hapus tugas
// @Description Attempt, soal, dan pilihan ikut terhapus; backlink video dilepas
// @Tags tugas
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID tugas"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Bukan pemilik video induk"
// @Failure 404 {object} util.Response
// @Router /tugas/{id} [delete]
func (c *TugasController) Delete(ctx *gin.Context) {
	uid, ok := userPrincipal(ctx)
	if !ok {
		return
	}
	tugasID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	if err := c.TugasService.DeleteTugas(uid, tugasID); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": "tugas dihapus"})
}

// GetForPelajar godoc
// @Summary Tugas sebuah video untuk dikerjakan
// @Description Kunci jawaban dan flag kebenaran pilihan disembunyikan
// @Tags tugas
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID video"
// @Success 200 {object} util.Response{data=service.TugasView}
// @Failure 400 {object} util.Response "Video belum memiliki tugas"
// @Router /video/{id}/tugas [get]
func (c *TugasController) GetForPelajar(ctx *gin.Context) {
	videoID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	view, err := c.TugasService.GetTugasForPelajar(videoID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// GetForMentor godoc
// @Summary Tugas sebuah video beserta kunci jawaban
// @Tags tugas
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID video"
// @Success 200 {object} util.Response{data=model.TugasPembelajaran}
// @Failure 403 {object} util.Response "Bukan pemilik video"
// @Router /video/{id}/tugas/kunci [get]
func (c *TugasController) GetForMentor(ctx *gin.Context) {
	uid, ok := userPrincipal(ctx)
	if !ok {
		return
	}
	videoID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	tugas, err := c.TugasService.GetTugasForMentor(uid, videoID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, tugas)
}

// SubmitAttempt godoc
// @Summary Kumpulkan jawaban tugas
// @Description Menilai jawaban dan mencatat satu attempt; melewati batas attempt ditolak
// @Tags tugas
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AttemptRequest true "Jawaban, sejajar dengan urutan soal"
// @Success 201 {object} util.Response{data=model.AttemptMengerjakanTugas}
// @Failure 400 {object} util.Response "Panjang jawaban tidak cocok"
// @Failure 403 {object} util.Response "Batas attempt tercapai"
// @Failure 404 {object} util.Response "Tugas tidak ditemukan"
// @Router /tugas/attempt [post]
func (c *TugasController) SubmitAttempt(ctx *gin.Context) {
	uid, ok := userPrincipal(ctx)
	if !ok {
		return
	}

	var req service.AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.GradingService.SubmitAttempt(uid, req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// ListAttempts godoc
// @Summary Riwayat attempt pelajar pada satu tugas
// @Tags tugas
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "ID tugas"
// @Success 200 {object} util.Response{data=[]model.AttemptMengerjakanTugas}
// @Router /tugas/{id}/attempt [get]
func (c *TugasController) ListAttempts(ctx *gin.Context) {
	uid, ok := userPrincipal(ctx)
	if !ok {
		return
	}
	tugasID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id tidak valid")
		return
	}

	attempts, err := c.GradingService.ListAttempts(uid, tugasID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
