package service_test

import (
	"errors"
	"testing"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

func TestCreateMateri(t *testing.T) {
	store := newFakeMateriStore()
	svc := service.NewMateriService(store)

	materi, err := svc.CreateMateri(service.MateriRequest{
		Nama:  "Deret Aritmetika",
		Mapel: model.MapelKuantitatif,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if materi.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	// Nama unik global, mapel apa pun.
	_, err = svc.CreateMateri(service.MateriRequest{
		Nama:  "Deret Aritmetika",
		Mapel: model.MapelPenalaranUmum,
	})
	if !errors.Is(err, util.ErrMateriExists) {
		t.Fatalf("expected ErrMateriExists, got %v", err)
	}
}

func TestCreateMateriInvalidMapel(t *testing.T) {
	svc := service.NewMateriService(newFakeMateriStore())

	_, err := svc.CreateMateri(service.MateriRequest{Nama: "Apa Saja", Mapel: 42})
	if !errors.Is(err, util.ErrInvalidMapel) {
		t.Fatalf("expected ErrInvalidMapel, got %v", err)
	}
}

func TestGetMateriNotFound(t *testing.T) {
	svc := service.NewMateriService(newFakeMateriStore())

	if _, err := svc.GetMateri(404); !errors.Is(err, util.ErrMateriNotFound) {
		t.Fatalf("expected ErrMateriNotFound, got %v", err)
	}
}

func TestListMateriFilter(t *testing.T) {
	store := newFakeMateriStore()
	svc := service.NewMateriService(store)

	seed := []service.MateriRequest{
		{Nama: "Silogisme", Mapel: model.MapelPenalaranUmum},
		{Nama: "Barisan Bilangan", Mapel: model.MapelKuantitatif},
		{Nama: "Teks Argumentasi", Mapel: model.MapelBahasaIndonesia},
	}
	for _, req := range seed {
		if _, err := svc.CreateMateri(req); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	all, err := svc.ListMateri(0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 materi, got %d", len(all))
	}

	filtered, err := svc.ListMateri(model.MapelKuantitatif)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Nama != "Barisan Bilangan" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}
}

type fakeMateriStore struct {
	nextID uint
	items  map[uint]*model.MateriPembelajaran
}

func newFakeMateriStore() *fakeMateriStore {
	return &fakeMateriStore{items: make(map[uint]*model.MateriPembelajaran)}
}

func (f *fakeMateriStore) Create(m *model.MateriPembelajaran) error {
	f.nextID++
	m.ID = f.nextID
	f.items[m.ID] = m
	return nil
}

func (f *fakeMateriStore) FindByID(id uint) (*model.MateriPembelajaran, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMateriStore) FindByNama(nama string) (*model.MateriPembelajaran, error) {
	for _, m := range f.items {
		if m.Nama == nama {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMateriStore) List(mapel model.MapelSkolastik) ([]model.MateriPembelajaran, error) {
	var out []model.MateriPembelajaran
	for _, m := range f.items {
		if mapel == 0 || m.Mapel == mapel {
			out = append(out, *m)
		}
	}
	return out, nil
}
