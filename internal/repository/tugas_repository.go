package repository

import (
	"swift_elearning_backend/internal/model"

	"gorm.io/gorm"
)

// SoalSpec mendeskripsikan satu soal yang akan dibuat bersama tugasnya.
// IndeksKunci hanya berarti untuk soal pilihan_ganda: pilihan pada
// indeks tersebut menjadi kunci setelah barisnya ada (pembuatan dua
// tahap, karena kunci menunjuk id pilihan yang sudah tersimpan).
type SoalSpec struct {
	Soal        model.Soal
	Pilihan     []model.PilihanJawaban
	IndeksKunci *int
}

type TugasRepository struct {
	DB *gorm.DB
}

func NewTugasRepository(db *gorm.DB) *TugasRepository {
	return &TugasRepository{DB: db}
}

// CreateWithSoal menulis seluruh agregat tugas (tugas, soal, pilihan,
// kunci, backlink video) dalam satu transaksi; kegagalan di tengah
// tidak meninggalkan baris yatim.
func (r *TugasRepository) CreateWithSoal(videoID uint, tugas *model.TugasPembelajaran, specs []SoalSpec) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Soal").Create(tugas).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.VideoPembelajaran{}).Where("id = ?", videoID).
			Update("id_tugas", tugas.ID).Error; err != nil {
			return err
		}

		for si := range specs {
			spec := &specs[si]
			spec.Soal.TugasID = tugas.ID
			if err := tx.Omit("Pilihan").Create(&spec.Soal).Error; err != nil {
				return err
			}

			for pi := range spec.Pilihan {
				p := &spec.Pilihan[pi]
				p.SoalID = spec.Soal.ID
				if err := tx.Create(p).Error; err != nil {
					return err
				}
				if spec.IndeksKunci != nil && pi == *spec.IndeksKunci {
					if err := tx.Model(&model.Soal{}).Where("id = ?", spec.Soal.ID).
						Update("kunci_id", p.ID).Error; err != nil {
						return err
					}
					spec.Soal.KunciID = &p.ID
				}
			}
			spec.Soal.Pilihan = spec.Pilihan
			tugas.Soal = append(tugas.Soal, spec.Soal)
		}
		return nil
	})
}

// FindByIDWithSoal memuat tugas beserta soal dan pilihannya, urut
// sesuai urutan pembuatan.
func (r *TugasRepository) FindByIDWithSoal(id uint) (*model.TugasPembelajaran, error) {
	var t model.TugasPembelajaran
	err := r.DB.Preload("Soal", func(db *gorm.DB) *gorm.DB {
		return db.Order("soal.id asc")
	}).Preload("Soal.Pilihan", func(db *gorm.DB) *gorm.DB {
		return db.Order("pilihan_jawaban.id asc")
	}).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindVideoByTugasID mencari video pemilik tugas; gorm.ErrRecordNotFound
// berarti tugas sudah tercabut dari videonya.
func (r *TugasRepository) FindVideoByTugasID(tugasID uint) (*model.VideoPembelajaran, error) {
	var v model.VideoPembelajaran
	err := r.DB.Where("id_tugas = ?", tugasID).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteCascade membongkar tugas dalam satu transaksi: attempt dulu
// (FK), lalu pilihan tiap soal, soal, backlink video, terakhir baris
// tugas itu sendiri.
func (r *TugasRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tugas_id = ?", id).
			Delete(&model.AttemptMengerjakanTugas{}).Error; err != nil {
			return err
		}

		var soal []model.Soal
		if err := tx.Where("tugas_id = ?", id).Find(&soal).Error; err != nil {
			return err
		}
		for _, s := range soal {
			if err := tx.Where("soal_id = ?", s.ID).
				Delete(&model.PilihanJawaban{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("tugas_id = ?", id).Delete(&model.Soal{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.VideoPembelajaran{}).Where("id_tugas = ?", id).
			Update("id_tugas", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.TugasPembelajaran{}, id).Error
	})
}
