package service

import (
	"errors"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

type TugasStore interface {
	CreateWithSoal(videoID uint, tugas *model.TugasPembelajaran, specs []repository.SoalSpec) error
	FindByIDWithSoal(id uint) (*model.TugasPembelajaran, error)
	FindVideoByTugasID(tugasID uint) (*model.VideoPembelajaran, error)
	DeleteCascade(id uint) error
}

type VideoFinder interface {
	FindByID(id uint) (*model.VideoPembelajaran, error)
}

// TugasService menangani penulisan dan pembacaan agregat tugas.
// Semua mutasi melewati gerbang mentor dan pemeriksaan kepemilikan video.
type TugasService struct {
	Tugas  TugasStore
	Videos VideoFinder
	Authz  *AuthzService
}

func NewTugasService(tugas TugasStore, videos VideoFinder, authz *AuthzService) *TugasService {
	return &TugasService{Tugas: tugas, Videos: videos, Authz: authz}
}

type PilihanRequest struct {
	Teks  string `json:"teks" binding:"required"`
	Benar bool   `json:"benar"`
}

type SoalRequest struct {
	Tipe            model.TipeSoal   `json:"tipe" binding:"required"`
	Pertanyaan      string           `json:"pertanyaan" binding:"required"`
	PernyataanBenar string           `json:"pernyataan_benar"`
	PernyataanSalah string           `json:"pernyataan_salah"`
	Pilihan         []PilihanRequest `json:"pilihan"`
	IndeksKunci     *int             `json:"indeks_kunci"`
}

type TugasCreateRequest struct {
	Judul          string        `json:"judul" binding:"required"`
	AttemptAllowed int           `json:"attempt_allowed" binding:"required"`
	Soal           []SoalRequest `json:"soal" binding:"required"`
}

func validateSoalRequest(req *SoalRequest) error {
	if !req.Tipe.Valid() || len(req.Pilihan) == 0 {
		return util.ErrInvalidSoal
	}
	if req.Tipe == model.SoalPilihanGanda {
		// Kunci wajib menunjuk salah satu pilihan milik soal ini.
		if req.IndeksKunci == nil || *req.IndeksKunci < 0 || *req.IndeksKunci >= len(req.Pilihan) {
			return util.ErrInvalidSoal
		}
	}
	return nil
}

func buildSoalSpec(req *SoalRequest) repository.SoalSpec {
	spec := repository.SoalSpec{
		Soal: model.Soal{
			Tipe:       req.Tipe,
			Pertanyaan: req.Pertanyaan,
		},
	}

	switch req.Tipe {
	case model.SoalPilihanGanda:
		spec.IndeksKunci = req.IndeksKunci
		for _, p := range req.Pilihan {
			spec.Pilihan = append(spec.Pilihan, model.PilihanJawaban{Teks: p.Teks})
		}
	case model.SoalBenarSalah:
		spec.Soal.PernyataanBenar = req.PernyataanBenar
		spec.Soal.PernyataanSalah = req.PernyataanSalah
		for _, p := range req.Pilihan {
			spec.Pilihan = append(spec.Pilihan, model.PilihanJawaban{Teks: p.Teks, Benar: p.Benar})
		}
	case model.SoalMultiPilih:
		for _, p := range req.Pilihan {
			spec.Pilihan = append(spec.Pilihan, model.PilihanJawaban{Teks: p.Teks, Benar: p.Benar})
		}
	}
	return spec
}

// CreateTugas membuat tugas baru pada sebuah video. Pemanggil harus
// mentor terverifikasi dan pemilik video; video yang sudah punya tugas
// ditolak dengan konflik.
func (s *TugasService) CreateTugas(callerID, videoID uint, req TugasCreateRequest) (*model.TugasPembelajaran, error) {
	if _, err := s.Authz.RequireMentor(callerID); err != nil {
		return nil, err
	}

	video, err := s.Videos.FindByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrVideoNotFound
		}
		return nil, err
	}
	if err := s.Authz.RequireOwner(video.CreatorID, callerID); err != nil {
		return nil, err
	}
	if video.IDTugas != nil {
		return nil, util.ErrTugasExists
	}

	if req.AttemptAllowed <= 0 || len(req.Soal) == 0 {
		return nil, util.ErrInvalidSoal
	}

	specs := make([]repository.SoalSpec, 0, len(req.Soal))
	for i := range req.Soal {
		if err := validateSoalRequest(&req.Soal[i]); err != nil {
			return nil, err
		}
		specs = append(specs, buildSoalSpec(&req.Soal[i]))
	}

	tugas := &model.TugasPembelajaran{
		Judul:          req.Judul,
		AttemptAllowed: req.AttemptAllowed,
	}
	if err := s.Tugas.CreateWithSoal(videoID, tugas, specs); err != nil {
		return nil, err
	}
	return tugas, nil
}

// DeleteTugas membongkar tugas beserta attempt, soal, dan pilihannya,
// lalu melepas backlink di video.
func (s *TugasService) DeleteTugas(callerID, tugasID uint) error {
	if _, err := s.Authz.RequireMentor(callerID); err != nil {
		return err
	}

	if _, err := s.Tugas.FindByIDWithSoal(tugasID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTugasNotFound
		}
		return err
	}

	video, err := s.Tugas.FindVideoByTugasID(tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTugasNotFound
		}
		return err
	}
	if err := s.Authz.RequireOwner(video.CreatorID, callerID); err != nil {
		return err
	}

	return s.Tugas.DeleteCascade(tugasID)
}

// PilihanView menyembunyikan kolom kebenaran dari pelajar.
type PilihanView struct {
	ID   uint   `json:"id"`
	Teks string `json:"teks"`
}

type SoalView struct {
	ID              uint           `json:"id"`
	Tipe            model.TipeSoal `json:"tipe"`
	Pertanyaan      string         `json:"pertanyaan"`
	PernyataanBenar string         `json:"pernyataan_benar,omitempty"`
	PernyataanSalah string         `json:"pernyataan_salah,omitempty"`
	Pilihan         []PilihanView  `json:"pilihan"`
}

type TugasView struct {
	ID             uint       `json:"id"`
	Judul          string     `json:"judul"`
	AttemptAllowed int        `json:"attempt_allowed"`
	Soal           []SoalView `json:"soal"`
}

func (s *TugasService) tugasForVideo(videoID uint) (*model.TugasPembelajaran, *model.VideoPembelajaran, error) {
	video, err := s.Videos.FindByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrVideoNotFound
		}
		return nil, nil, err
	}
	if video.IDTugas == nil {
		return nil, nil, util.ErrNoTugasOnVideo
	}

	tugas, err := s.Tugas.FindByIDWithSoal(*video.IDTugas)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrTugasNotFound
		}
		return nil, nil, err
	}
	return tugas, video, nil
}

// GetTugasForPelajar mengembalikan tugas tanpa data kunci/kebenaran —
// pelajar tidak boleh melihat jawaban yang benar.
func (s *TugasService) GetTugasForPelajar(videoID uint) (*TugasView, error) {
	tugas, _, err := s.tugasForVideo(videoID)
	if err != nil {
		return nil, err
	}

	view := &TugasView{
		ID:             tugas.ID,
		Judul:          tugas.Judul,
		AttemptAllowed: tugas.AttemptAllowed,
	}
	for _, soal := range tugas.Soal {
		sv := SoalView{
			ID:              soal.ID,
			Tipe:            soal.Tipe,
			Pertanyaan:      soal.Pertanyaan,
			PernyataanBenar: soal.PernyataanBenar,
			PernyataanSalah: soal.PernyataanSalah,
		}
		for _, p := range soal.Pilihan {
			sv.Pilihan = append(sv.Pilihan, PilihanView{ID: p.ID, Teks: p.Teks})
		}
		view.Soal = append(view.Soal, sv)
	}
	return view, nil
}

// GetTugasForMentor mengembalikan tugas lengkap dengan kunci untuk
// tampilan penyuntingan; hanya pemilik video yang boleh melihatnya.
func (s *TugasService) GetTugasForMentor(callerID, videoID uint) (*model.TugasPembelajaran, error) {
	if _, err := s.Authz.RequireMentor(callerID); err != nil {
		return nil, err
	}

	tugas, video, err := s.tugasForVideo(videoID)
	if err != nil {
		return nil, err
	}
	if err := s.Authz.RequireOwner(video.CreatorID, callerID); err != nil {
		return nil, err
	}
	return tugas, nil
}
