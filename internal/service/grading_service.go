package service

import (
	"errors"
	"time"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/util"
	"swift_elearning_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type AttemptStore interface {
	CountByPelajarAndTugas(pelajarID, tugasID uint) (int64, error)
	CreateChecked(a *model.AttemptMengerjakanTugas, attemptAllowed int) error
	ListByPelajarAndTugas(pelajarID, tugasID uint) ([]model.AttemptMengerjakanTugas, error)
}

// GradingService menilai pengerjaan tugas dan mencatat attempt.
// Penilaian seluruhnya murni: attempt baru ditulis setelah semua
// prasyarat lolos dan nilai selesai dihitung.
type GradingService struct {
	Tugas    TugasStore
	Attempts AttemptStore
}

func NewGradingService(tugas TugasStore, attempts AttemptStore) *GradingService {
	return &GradingService{Tugas: tugas, Attempts: attempts}
}

// JawabanSoal adalah jawaban untuk satu soal, posisinya sejajar dengan
// urutan soal. IDPilihan dipakai varian pilihan_ganda; Jawaban dipakai
// benar_salah dan multi_pilih, satu boolean per pilihan.
type JawabanSoal struct {
	IDPilihan uint   `json:"id_pilihan,omitempty"`
	Jawaban   []bool `json:"jawaban,omitempty"`
}

type AttemptRequest struct {
	IDTugas      uint          `json:"id_tugas" binding:"required"`
	WaktuMulai   time.Time     `json:"waktu_mulai"`
	WaktuSelesai time.Time     `json:"waktu_selesai"`
	Jawaban      []JawabanSoal `json:"jawaban"`
}

// SubmitAttempt memeriksa prasyarat secara berurutan, menghitung nilai,
// lalu menulis satu baris attempt. Kegagalan di tahap manapun tidak
// meninggalkan apa-apa di database.
func (s *GradingService) SubmitAttempt(pelajarID uint, req AttemptRequest) (*model.AttemptMengerjakanTugas, error) {
	tugas, err := s.Tugas.FindByIDWithSoal(req.IDTugas)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.reject(util.ErrTugasNotFound)
		}
		return nil, err
	}

	count, err := s.Attempts.CountByPelajarAndTugas(pelajarID, req.IDTugas)
	if err != nil {
		return nil, err
	}
	if count >= int64(tugas.AttemptAllowed) {
		return nil, s.reject(util.ErrMaxAttemptReached)
	}

	// Tugas yatim (backlink video sudah dilepas) tidak bisa dikerjakan.
	if _, err := s.Tugas.FindVideoByTugasID(req.IDTugas); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.reject(util.ErrTugasDetached)
		}
		return nil, err
	}

	nilai, err := scoreTugas(tugas.Soal, req.Jawaban)
	if err != nil {
		return nil, s.reject(err)
	}

	attempt := &model.AttemptMengerjakanTugas{
		PelajarID:    pelajarID,
		TugasID:      req.IDTugas,
		Nilai:        nilai,
		WaktuMulai:   req.WaktuMulai,
		WaktuSelesai: req.WaktuSelesai,
	}
	if err := s.Attempts.CreateChecked(attempt, tugas.AttemptAllowed); err != nil {
		if errors.Is(err, util.ErrMaxAttemptReached) {
			return nil, s.reject(err)
		}
		return nil, err
	}

	monitoring.AttemptCounter.WithLabelValues("graded").Inc()
	return attempt, nil
}

func (s *GradingService) reject(err error) error {
	monitoring.AttemptCounter.WithLabelValues("rejected").Inc()
	return err
}

// ListAttempts mengembalikan riwayat attempt pelajar pada satu tugas,
// terlama lebih dulu.
func (s *GradingService) ListAttempts(pelajarID, tugasID uint) ([]model.AttemptMengerjakanTugas, error) {
	if _, err := s.Tugas.FindByIDWithSoal(tugasID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTugasNotFound
		}
		return nil, err
	}
	return s.Attempts.ListByPelajarAndTugas(pelajarID, tugasID)
}

// scoreTugas menghitung nilai akhir: jumlah skor per soal dibagi banyak
// soal, selalu dalam rentang [0, 1]. Jawaban harus sejajar satu-satu
// dengan daftar soal.
func scoreTugas(soal []model.Soal, jawaban []JawabanSoal) (float64, error) {
	if len(jawaban) != len(soal) {
		return 0, util.ErrAnswerLengthMismatch
	}
	if len(soal) == 0 {
		return 0, nil
	}

	var total float64
	for i := range soal {
		skor, err := scoreSoal(&soal[i], jawaban[i])
		if err != nil {
			return 0, err
		}
		total += skor
	}
	return total / float64(len(soal)), nil
}

// scoreSoal menilai satu soal:
//   - pilihan_ganda: 1.0 hanya bila pilihan yang dikirim sama dengan
//     kunci tersimpan, selain itu 0 (tanpa kredit parsial).
//   - benar_salah / multi_pilih: kredit parsial, banyaknya posisi yang
//     cocok dibagi banyaknya pilihan.
func scoreSoal(soal *model.Soal, jawaban JawabanSoal) (float64, error) {
	switch soal.Tipe {
	case model.SoalPilihanGanda:
		if soal.KunciID != nil && jawaban.IDPilihan == *soal.KunciID {
			return 1, nil
		}
		return 0, nil
	case model.SoalBenarSalah, model.SoalMultiPilih:
		if len(jawaban.Jawaban) != len(soal.Pilihan) {
			return 0, util.ErrAnswerLengthMismatch
		}
		if len(soal.Pilihan) == 0 {
			return 0, nil
		}
		cocok := 0
		for i := range soal.Pilihan {
			if jawaban.Jawaban[i] == soal.Pilihan[i].Benar {
				cocok++
			}
		}
		return float64(cocok) / float64(len(soal.Pilihan)), nil
	}
	return 0, util.ErrInvalidSoal
}
