package service_test

import (
	"errors"
	"testing"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

func newTugasService(store *fakeStore) *service.TugasService {
	asal := "SMA Negeri 1"
	authz := service.NewAuthzService(fakeMentorStore{
		mentorUID: {UID: mentorUID, Asal: &asal, IsVerified: true},
	}, fakeAdminStore{})
	return service.NewTugasService(store, store, authz)
}

func TestCreateTugas(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	tugas, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(tugas.Soal) != 3 {
		t.Fatalf("expected 3 soal, got %d", len(tugas.Soal))
	}
	if video.IDTugas == nil || *video.IDTugas != tugas.ID {
		t.Fatalf("expected video backlink to %d, got %v", tugas.ID, video.IDTugas)
	}

	// Kunci pilihan_ganda menunjuk pilihan pada indeks 1 ("Jakarta").
	pg := tugas.Soal[0]
	if pg.KunciID == nil || *pg.KunciID != pg.Pilihan[1].ID {
		t.Fatalf("expected kunci %d, got %v", pg.Pilihan[1].ID, pg.KunciID)
	}
}

func TestCreateTugasConflict(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	if _, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3)); !errors.Is(err, util.ErrTugasExists) {
		t.Fatalf("expected ErrTugasExists, got %v", err)
	}
}

func TestDeleteThenRecreate(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	tugas, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.DeleteTugas(mentorUID, tugas.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if video.IDTugas != nil {
		t.Fatalf("expected backlink cleared, got %v", video.IDTugas)
	}
	if _, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3)); err != nil {
		t.Fatalf("recreate after delete failed: %v", err)
	}
}

func TestCreateTugasRequiresOwner(t *testing.T) {
	store := newFakeStore()
	asal := "SMA Negeri 1"
	authz := service.NewAuthzService(fakeMentorStore{
		mentorUID: {UID: mentorUID, Asal: &asal},
		99:        {UID: 99, Asal: &asal},
	}, fakeAdminStore{})
	svc := service.NewTugasService(store, store, authz)

	video := store.addVideo(mentorUID)
	if _, err := svc.CreateTugas(99, video.ID, sampleTugasRequest(3)); !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestCreateTugasValidation(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	// pilihan_ganda tanpa indeks kunci.
	req := sampleTugasRequest(3)
	req.Soal[0].IndeksKunci = nil
	if _, err := svc.CreateTugas(mentorUID, video.ID, req); !errors.Is(err, util.ErrInvalidSoal) {
		t.Fatalf("expected ErrInvalidSoal, got %v", err)
	}

	// Indeks kunci di luar rentang pilihan.
	req = sampleTugasRequest(3)
	out := 5
	req.Soal[0].IndeksKunci = &out
	if _, err := svc.CreateTugas(mentorUID, video.ID, req); !errors.Is(err, util.ErrInvalidSoal) {
		t.Fatalf("expected ErrInvalidSoal, got %v", err)
	}

	// Tugas tanpa soal.
	req = sampleTugasRequest(3)
	req.Soal = nil
	if _, err := svc.CreateTugas(mentorUID, video.ID, req); !errors.Is(err, util.ErrInvalidSoal) {
		t.Fatalf("expected ErrInvalidSoal, got %v", err)
	}

	// attempt_allowed nol.
	req = sampleTugasRequest(0)
	if _, err := svc.CreateTugas(mentorUID, video.ID, req); !errors.Is(err, util.ErrInvalidSoal) {
		t.Fatalf("expected ErrInvalidSoal, got %v", err)
	}
}

func TestLearnerViewHidesKeys(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	if _, err := svc.CreateTugas(mentorUID, video.ID, sampleTugasRequest(3)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	view, err := svc.GetTugasForPelajar(video.ID)
	if err != nil {
		t.Fatalf("learner view failed: %v", err)
	}
	if len(view.Soal) != 3 {
		t.Fatalf("expected 3 soal, got %d", len(view.Soal))
	}
	for _, soal := range view.Soal {
		if len(soal.Pilihan) == 0 {
			t.Fatalf("expected pilihan in learner view")
		}
	}

	// Tampilan mentor tetap membawa kunci dan flag kebenaran.
	full, err := svc.GetTugasForMentor(mentorUID, video.ID)
	if err != nil {
		t.Fatalf("mentor view failed: %v", err)
	}
	if full.Soal[0].KunciID == nil {
		t.Fatalf("expected kunci in mentor view")
	}
}

func TestViewsRequireAttachedTugas(t *testing.T) {
	store := newFakeStore()
	svc := newTugasService(store)
	video := store.addVideo(mentorUID)

	if _, err := svc.GetTugasForPelajar(video.ID); !errors.Is(err, util.ErrNoTugasOnVideo) {
		t.Fatalf("expected ErrNoTugasOnVideo, got %v", err)
	}
	if _, err := svc.GetTugasForPelajar(999); !errors.Is(err, util.ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

// ---- fakes otorisasi ----

type fakeMentorStore map[uint]*model.Mentor

func (f fakeMentorStore) FindMentorByUID(uid uint) (*model.Mentor, error) {
	m, ok := f[uid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

type fakeAdminStore map[string]*model.Admin

func (f fakeAdminStore) FindByID(id string) (*model.Admin, error) {
	a, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}
