package service_test

import (
	"errors"
	"testing"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

func TestSubmitPerfectScore(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 3)

	attempt, err := grading.SubmitAttempt(1, service.AttemptRequest{
		IDTugas: tugasID,
		Jawaban: correctAnswers(store, tugasID),
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if attempt.Nilai != 1.0 {
		t.Fatalf("expected nilai 1.0, got %v", attempt.Nilai)
	}
	if len(attempts.attempts) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(attempts.attempts))
	}
}

func TestSubmitPartialCredit(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 3)

	// Urutan soal: pilihan_ganda, benar_salah (4 pilihan), multi_pilih
	// (4 pilihan). PG benar, TF meleset 1 posisi, MS meleset 2 posisi.
	jawaban := correctAnswers(store, tugasID)
	jawaban[1].Jawaban[0] = !jawaban[1].Jawaban[0]
	jawaban[2].Jawaban[0] = !jawaban[2].Jawaban[0]
	jawaban[2].Jawaban[1] = !jawaban[2].Jawaban[1]

	attempt, err := grading.SubmitAttempt(1, service.AttemptRequest{IDTugas: tugasID, Jawaban: jawaban})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// (1 + 3/4 + 2/4) / 3
	if attempt.Nilai != 0.75 {
		t.Fatalf("expected nilai 0.75, got %v", attempt.Nilai)
	}
}

func TestPilihanGandaIsAllOrNothing(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 3)

	// Jawaban PG salah tidak memberi kredit parsial meski "hampir benar".
	jawaban := correctAnswers(store, tugasID)
	jawaban[0].IDPilihan = jawaban[0].IDPilihan + 1

	attempt, err := grading.SubmitAttempt(1, service.AttemptRequest{IDTugas: tugasID, Jawaban: jawaban})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// (0 + 1 + 1) / 3
	want := 2.0 / 3.0
	if attempt.Nilai != want {
		t.Fatalf("expected nilai %v, got %v", want, attempt.Nilai)
	}
}

func TestAttemptLimitEnforced(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 2)

	req := service.AttemptRequest{IDTugas: tugasID, Jawaban: correctAnswers(store, tugasID)}
	for i := 0; i < 2; i++ {
		if _, err := grading.SubmitAttempt(1, req); err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
	}

	if _, err := grading.SubmitAttempt(1, req); !errors.Is(err, util.ErrMaxAttemptReached) {
		t.Fatalf("expected ErrMaxAttemptReached, got %v", err)
	}
	if len(attempts.attempts) != 2 {
		t.Fatalf("expected 2 persisted attempts, got %d", len(attempts.attempts))
	}

	// Batas berlaku per pelajar; pelajar lain masih bisa mengerjakan.
	if _, err := grading.SubmitAttempt(2, req); err != nil {
		t.Fatalf("submit by other pelajar failed: %v", err)
	}
}

func TestAnswerLengthMismatchRejected(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 3)

	// Jumlah jawaban tidak sama dengan jumlah soal.
	jawaban := correctAnswers(store, tugasID)
	_, err := grading.SubmitAttempt(1, service.AttemptRequest{IDTugas: tugasID, Jawaban: jawaban[:2]})
	if !errors.Is(err, util.ErrAnswerLengthMismatch) {
		t.Fatalf("expected ErrAnswerLengthMismatch, got %v", err)
	}

	// Panjang array boolean tidak sama dengan jumlah pilihan soalnya.
	jawaban = correctAnswers(store, tugasID)
	jawaban[1].Jawaban = jawaban[1].Jawaban[:2]
	_, err = grading.SubmitAttempt(1, service.AttemptRequest{IDTugas: tugasID, Jawaban: jawaban})
	if !errors.Is(err, util.ErrAnswerLengthMismatch) {
		t.Fatalf("expected ErrAnswerLengthMismatch, got %v", err)
	}

	if len(attempts.attempts) != 0 {
		t.Fatalf("expected no persisted attempt, got %d", len(attempts.attempts))
	}
}

func TestSubmitUnknownTugas(t *testing.T) {
	grading := service.NewGradingService(newFakeStore(), newFakeAttemptStore())

	_, err := grading.SubmitAttempt(1, service.AttemptRequest{IDTugas: 999})
	if !errors.Is(err, util.ErrTugasNotFound) {
		t.Fatalf("expected ErrTugasNotFound, got %v", err)
	}
}

func TestSubmitDetachedTugas(t *testing.T) {
	store, attempts := newFakeStore(), newFakeAttemptStore()
	grading := service.NewGradingService(store, attempts)
	tugasID := seedTugas(t, store, 3)

	// Lepas backlink video: tugas masih ada tetapi yatim.
	for _, v := range store.videos {
		v.IDTugas = nil
	}

	_, err := grading.SubmitAttempt(1, service.AttemptRequest{
		IDTugas: tugasID,
		Jawaban: correctAnswers(store, tugasID),
	})
	if !errors.Is(err, util.ErrTugasDetached) {
		t.Fatalf("expected ErrTugasDetached, got %v", err)
	}
	if len(attempts.attempts) != 0 {
		t.Fatalf("expected no persisted attempt, got %d", len(attempts.attempts))
	}
}

// ---- fakes dan helper ----

const mentorUID uint = 10

// fakeStore memenuhi service.TugasStore dan service.VideoFinder
// sekaligus, supaya backlink video dan agregat tugas konsisten di test.
type fakeStore struct {
	nextID uint
	videos map[uint]*model.VideoPembelajaran
	tugas  map[uint]*model.TugasPembelajaran
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		videos: make(map[uint]*model.VideoPembelajaran),
		tugas:  make(map[uint]*model.TugasPembelajaran),
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addVideo(creatorID uint) *model.VideoPembelajaran {
	v := &model.VideoPembelajaran{CreatorID: creatorID}
	v.ID = f.id()
	f.videos[v.ID] = v
	return v
}

func (f *fakeStore) FindByID(id uint) (*model.VideoPembelajaran, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeStore) CreateWithSoal(videoID uint, t *model.TugasPembelajaran, specs []repository.SoalSpec) error {
	t.ID = f.id()
	for _, spec := range specs {
		soal := spec.Soal
		soal.ID = f.id()
		soal.TugasID = t.ID
		for pi := range spec.Pilihan {
			p := spec.Pilihan[pi]
			p.ID = f.id()
			p.SoalID = soal.ID
			if spec.IndeksKunci != nil && pi == *spec.IndeksKunci {
				kunci := p.ID
				soal.KunciID = &kunci
			}
			soal.Pilihan = append(soal.Pilihan, p)
		}
		t.Soal = append(t.Soal, soal)
	}
	f.tugas[t.ID] = t
	tugasID := t.ID
	f.videos[videoID].IDTugas = &tugasID
	return nil
}

func (f *fakeStore) FindByIDWithSoal(id uint) (*model.TugasPembelajaran, error) {
	t, ok := f.tugas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeStore) FindVideoByTugasID(tugasID uint) (*model.VideoPembelajaran, error) {
	for _, v := range f.videos {
		if v.IDTugas != nil && *v.IDTugas == tugasID {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) DeleteCascade(id uint) error {
	delete(f.tugas, id)
	for _, v := range f.videos {
		if v.IDTugas != nil && *v.IDTugas == id {
			v.IDTugas = nil
		}
	}
	return nil
}

type fakeAttemptStore struct {
	nextID   uint
	attempts []model.AttemptMengerjakanTugas
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{}
}

func (f *fakeAttemptStore) CountByPelajarAndTugas(pelajarID, tugasID uint) (int64, error) {
	var count int64
	for _, a := range f.attempts {
		if a.PelajarID == pelajarID && a.TugasID == tugasID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttemptStore) CreateChecked(a *model.AttemptMengerjakanTugas, attemptAllowed int) error {
	count, _ := f.CountByPelajarAndTugas(a.PelajarID, a.TugasID)
	if count >= int64(attemptAllowed) {
		return util.ErrMaxAttemptReached
	}
	f.nextID++
	a.ID = f.nextID
	f.attempts = append(f.attempts, *a)
	return nil
}

func (f *fakeAttemptStore) ListByPelajarAndTugas(pelajarID, tugasID uint) ([]model.AttemptMengerjakanTugas, error) {
	var out []model.AttemptMengerjakanTugas
	for _, a := range f.attempts {
		if a.PelajarID == pelajarID && a.TugasID == tugasID {
			out = append(out, a)
		}
	}
	return out, nil
}

func sampleTugasRequest(attemptAllowed int) service.TugasCreateRequest {
	kunci := 1
	return service.TugasCreateRequest{
		Judul:          "Latihan Penalaran",
		AttemptAllowed: attemptAllowed,
		Soal: []service.SoalRequest{
			{
				Tipe:        model.SoalPilihanGanda,
				Pertanyaan:  "Ibukota Indonesia?",
				IndeksKunci: &kunci,
				Pilihan: []service.PilihanRequest{
					{Teks: "Bandung"},
					{Teks: "Jakarta"},
					{Teks: "Surabaya"},
				},
			},
			{
				Tipe:            model.SoalBenarSalah,
				Pertanyaan:      "Tentukan benar atau salah",
				PernyataanBenar: "Pernyataan berikut benar",
				PernyataanSalah: "Pernyataan berikut salah",
				Pilihan: []service.PilihanRequest{
					{Teks: "Air mendidih pada 100 derajat", Benar: true},
					{Teks: "Bumi itu datar", Benar: false},
					{Teks: "Matahari terbit dari timur", Benar: true},
					{Teks: "Satu kilogram lebih berat dari satu ton", Benar: false},
				},
			},
			{
				Tipe:       model.SoalMultiPilih,
				Pertanyaan: "Pilih semua bilangan prima",
				Pilihan: []service.PilihanRequest{
					{Teks: "2", Benar: true},
					{Teks: "4", Benar: false},
					{Teks: "5", Benar: true},
					{Teks: "9", Benar: false},
				},
			},
		},
	}
}

// seedTugas membuat satu video bermilik mentorUID dengan tugas tiga
// soal (PG, TF, MS) dan mengembalikan id tugasnya.
func seedTugas(t *testing.T, store *fakeStore, attemptAllowed int) uint {
	t.Helper()

	video := store.addVideo(mentorUID)
	tugas := &model.TugasPembelajaran{
		Judul:          "Latihan Penalaran",
		AttemptAllowed: attemptAllowed,
	}

	req := sampleTugasRequest(attemptAllowed)
	specs := make([]repository.SoalSpec, 0, len(req.Soal))
	for i := range req.Soal {
		spec := repository.SoalSpec{
			Soal: model.Soal{
				Tipe:            req.Soal[i].Tipe,
				Pertanyaan:      req.Soal[i].Pertanyaan,
				PernyataanBenar: req.Soal[i].PernyataanBenar,
				PernyataanSalah: req.Soal[i].PernyataanSalah,
			},
			IndeksKunci: req.Soal[i].IndeksKunci,
		}
		for _, p := range req.Soal[i].Pilihan {
			spec.Pilihan = append(spec.Pilihan, model.PilihanJawaban{Teks: p.Teks, Benar: p.Benar})
		}
		specs = append(specs, spec)
	}

	if err := store.CreateWithSoal(video.ID, tugas, specs); err != nil {
		t.Fatalf("seed tugas failed: %v", err)
	}
	return tugas.ID
}

// correctAnswers menyusun jawaban sempurna untuk tugas hasil seedTugas.
func correctAnswers(store *fakeStore, tugasID uint) []service.JawabanSoal {
	tugas := store.tugas[tugasID]
	jawaban := make([]service.JawabanSoal, 0, len(tugas.Soal))
	for _, soal := range tugas.Soal {
		switch soal.Tipe {
		case model.SoalPilihanGanda:
			jawaban = append(jawaban, service.JawabanSoal{IDPilihan: *soal.KunciID})
		default:
			flags := make([]bool, len(soal.Pilihan))
			for i, p := range soal.Pilihan {
				flags[i] = p.Benar
			}
			jawaban = append(jawaban, service.JawabanSoal{Jawaban: flags})
		}
	}
	return jawaban
}
