package model

// TipeSoal menandai varian soal; penilaian melakukan switch atas tag ini.
type TipeSoal string

const (
	SoalPilihanGanda TipeSoal = "pilihan_ganda"
	SoalBenarSalah   TipeSoal = "benar_salah"
	SoalMultiPilih   TipeSoal = "multi_pilih"
)

func (t TipeSoal) Valid() bool {
	switch t {
	case SoalPilihanGanda, SoalBenarSalah, SoalMultiPilih:
		return true
	}
	return false
}

// TugasPembelajaran adalah kuis yang menempel pada satu video.
// swagger:model TugasPembelajaran
type TugasPembelajaran struct {
	BaseModel
	Judul          string `gorm:"size:255;not null" json:"judul"`
	AttemptAllowed int    `gorm:"not null" json:"attempt_allowed"`
	Soal           []Soal `gorm:"foreignKey:TugasID" json:"soal"`
}

func (TugasPembelajaran) TableName() string {
	return "tugas_pembelajaran"
}

// Soal adalah satu pertanyaan dalam tugas. Ketiga varian berbagi tabel;
// kolom yang tidak relevan untuk sebuah varian dibiarkan kosong:
//   - pilihan_ganda: KunciID menunjuk satu PilihanJawaban milik soal ini,
//     diisi setelah pilihan dibuat (pembuatan dua tahap).
//   - benar_salah: PernyataanBenar/PernyataanSalah berisi templat kalimat,
//     tiap pilihan membawa boolean yang diharapkan di kolom Benar.
//   - multi_pilih: tiap pilihan membawa flag kebenarannya di kolom Benar.
// swagger:model Soal
type Soal struct {
	BaseModel
	TugasID         uint             `gorm:"index;not null" json:"id_tugas"`
	Tipe            TipeSoal         `gorm:"size:20;not null" json:"tipe"`
	Pertanyaan      string           `gorm:"type:text;not null" json:"pertanyaan"`
	PernyataanBenar string           `gorm:"type:text" json:"pernyataan_benar,omitempty"`
	PernyataanSalah string           `gorm:"type:text" json:"pernyataan_salah,omitempty"`
	KunciID         *uint            `json:"kunci,omitempty"`
	Pilihan         []PilihanJawaban `gorm:"foreignKey:SoalID" json:"pilihan"`
}

func (Soal) TableName() string {
	return "soal"
}

// PilihanJawaban milik tepat satu soal. Arti kolom Benar bergantung
// varian soal induknya; untuk pilihan_ganda kolom ini tidak dipakai.
// swagger:model PilihanJawaban
type PilihanJawaban struct {
	BaseModel
	SoalID uint   `gorm:"index;not null" json:"id_soal"`
	Teks   string `gorm:"type:text;not null" json:"teks"`
	Benar  bool   `gorm:"default:false" json:"benar,omitempty"`
}

func (PilihanJawaban) TableName() string {
	return "pilihan_jawaban"
}
