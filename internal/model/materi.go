package model

// MapelSkolastik adalah enam kategori mata pelajaran tetap.
type MapelSkolastik int

const (
	MapelPenalaranUmum MapelSkolastik = iota + 1
	MapelKuantitatif
	MapelPengetahuanUmum
	MapelPemahamanBacaan
	MapelBahasaIndonesia
	MapelBahasaInggris
)

func (m MapelSkolastik) Valid() bool {
	return m >= MapelPenalaranUmum && m <= MapelBahasaInggris
}

func (m MapelSkolastik) String() string {
	switch m {
	case MapelPenalaranUmum:
		return "penalaran_umum"
	case MapelKuantitatif:
		return "pengetahuan_kuantitatif"
	case MapelPengetahuanUmum:
		return "pengetahuan_umum"
	case MapelPemahamanBacaan:
		return "pemahaman_bacaan"
	case MapelBahasaIndonesia:
		return "literasi_bahasa_indonesia"
	case MapelBahasaInggris:
		return "literasi_bahasa_inggris"
	}
	return "unknown"
}

// MateriPembelajaran adalah wadah konten belajar per mata pelajaran.
// swagger:model MateriPembelajaran
type MateriPembelajaran struct {
	BaseModel
	Nama  string         `gorm:"size:255;uniqueIndex;not null" json:"nama"`
	Mapel MapelSkolastik `gorm:"not null" json:"mapel"`
}

func (MateriPembelajaran) TableName() string {
	return "materi_pembelajaran"
}
