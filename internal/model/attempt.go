package model

import "time"

// AttemptMengerjakanTugas mencatat satu pengerjaan tugas oleh pelajar.
// Baris bersifat immutable: sekali tertulis, nilai tidak pernah
// dihitung ulang atau diubah.
// swagger:model AttemptMengerjakanTugas
type AttemptMengerjakanTugas struct {
	BaseModel
	PelajarID    uint      `gorm:"index:idx_attempt_pelajar_tugas;not null" json:"id_pelajar"`
	TugasID      uint      `gorm:"index:idx_attempt_pelajar_tugas;not null" json:"id_tugas"`
	Nilai        float64   `gorm:"not null" json:"nilai"`
	WaktuMulai   time.Time `json:"waktu_mulai"`
	WaktuSelesai time.Time `json:"waktu_selesai"`
}

func (AttemptMengerjakanTugas) TableName() string {
	return "attempt_mengerjakan_tugas"
}
