package model

// VideoPembelajaran milik satu materi dan satu mentor pembuat.
// IDTugas ber-unique index: satu video tidak pernah punya dua tugas
// sekaligus (relasi 1:1 video-tugas).
// swagger:model VideoPembelajaran
type VideoPembelajaran struct {
	BaseModel
	Judul       string              `gorm:"size:255;not null" json:"judul"`
	ObjectKey   string              `gorm:"size:512;not null" json:"-"`
	DurasiDetik float64             `gorm:"default:0" json:"durasi_detik"`
	CreatorID   uint                `gorm:"index;not null" json:"creator_id"`
	Creator     *Mentor             `gorm:"foreignKey:CreatorID;references:UID" json:"creator,omitempty"`
	MateriID    uint                `gorm:"index;not null" json:"id_materi"`
	Materi      *MateriPembelajaran `gorm:"foreignKey:MateriID" json:"materi,omitempty"`
	IDTugas     *uint               `gorm:"uniqueIndex" json:"id_tugas"`
}

func (VideoPembelajaran) TableName() string {
	return "video_pembelajaran"
}
