package repository

import (
	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) CountByPelajarAndTugas(pelajarID, tugasID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AttemptMengerjakanTugas{}).
		Where("pelajar_id = ? AND tugas_id = ?", pelajarID, tugasID).
		Count(&count).Error
	return count, err
}

// CreateChecked menulis attempt sambil menghitung ulang jumlah attempt
// di dalam transaksi yang sama dengan row lock, sehingga dua submit
// bersamaan dari pelajar yang sama tidak bisa sama-sama lolos batas.
func (r *AttemptRepository) CreateChecked(a *model.AttemptMengerjakanTugas, attemptAllowed int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.AttemptMengerjakanTugas{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pelajar_id = ? AND tugas_id = ?", a.PelajarID, a.TugasID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= int64(attemptAllowed) {
			return util.ErrMaxAttemptReached
		}
		return tx.Create(a).Error
	})
}

func (r *AttemptRepository) ListByPelajarAndTugas(pelajarID, tugasID uint) ([]model.AttemptMengerjakanTugas, error) {
	var as []model.AttemptMengerjakanTugas
	err := r.DB.Where("pelajar_id = ? AND tugas_id = ?", pelajarID, tugasID).
		Order("created_at asc").Find(&as).Error
	return as, err
}
