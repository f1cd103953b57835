package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/lostfound"
	"github.com/campushelper/backend/core/research"
	"github.com/campushelper/backend/core/tutor"
)

// Tutors

type tutorRepository struct {
	db *tutorTable
}

var _ tutor.Repository = (*tutorRepository)(nil)

func NewTutorRepository(db *DB) *tutorRepository {
	return &tutorRepository{db: db.tutor}
}

func (repo *tutorRepository) CreateTutor(_ context.Context, ttr tutor.Tutor) (tutor.Tutor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if ttr.ID == "" {
		ttr.ID = uuid.New().String()
	}
	repo.db.t[ttr.ID] = &ttr
	return ttr, nil
}

func (repo *tutorRepository) QueryAllTutors(_ context.Context) ([]tutor.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tutors := make([]tutor.Tutor, 0, len(repo.db.t))
	for _, ttr := range repo.db.t {
		tutors = append(tutors, *ttr)
	}
	sort.Slice(tutors, func(i, j int) bool { return tutors[i].CreatedAt.After(tutors[j].CreatedAt) })
	return tutors, nil
}

// Lost & found

type lostFoundRepository struct {
	db *lostFoundTable
}

var _ lostfound.Repository = (*lostFoundRepository)(nil)

func NewLostFoundRepository(db *DB) *lostFoundRepository {
	return &lostFoundRepository{db: db.lostFound}
}

func (repo *lostFoundRepository) CreateItem(_ context.Context, itm lostfound.Item) (lostfound.Item, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if itm.ID == "" {
		itm.ID = uuid.New().String()
	}
	repo.db.t[itm.ID] = &itm
	return itm, nil
}

func (repo *lostFoundRepository) QueryAllItems(_ context.Context) ([]lostfound.Item, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]lostfound.Item, 0, len(repo.db.t))
	for _, itm := range repo.db.t {
		items = append(items, *itm)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// Research materials

type researchRepository struct {
	db *researchTable
}

var _ research.Repository = (*researchRepository)(nil)

func NewResearchRepository(db *DB) *researchRepository {
	return &researchRepository{db: db.research}
}

func (repo *researchRepository) CreateMaterial(_ context.Context, mat research.Material) (research.Material, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if mat.ID == "" {
		mat.ID = uuid.New().String()
	}
	repo.db.t[mat.ID] = &mat
	return mat, nil
}

func (repo *researchRepository) QueryAllMaterials(_ context.Context) ([]research.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	materials := make([]research.Material, 0, len(repo.db.t))
	for _, mat := range repo.db.t {
		materials = append(materials, *mat)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].CreatedAt.After(materials[j].CreatedAt) })
	return materials, nil
}

// Announcements

type announcementRepository struct {
	db *announcementTable
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) *announcementRepository {
	return &announcementRepository{db: db.announcement}
}

func (repo *announcementRepository) CreateAnnouncement(_ context.Context, ann announcement.Announcement) (announcement.Announcement, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if ann.ID == "" {
		ann.ID = uuid.New().String()
	}
	repo.db.t[ann.ID] = &ann
	return ann, nil
}

func (repo *announcementRepository) QueryAllAnnouncements(_ context.Context) ([]announcement.Announcement, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	announcements := make([]announcement.Announcement, 0, len(repo.db.t))
	for _, ann := range repo.db.t {
		announcements = append(announcements, *ann)
	}
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements, nil
}

// Activity feed

type activityRepository struct {
	db *activityTable
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) *activityRepository {
	return &activityRepository{db: db.activity}
}

func (repo *activityRepository) CreateActivity(_ context.Context, act activity.Activity) (activity.Activity, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	repo.db.t[act.ID] = &act
	return act, nil
}

func (repo *activityRepository) QueryRecentActivity(_ context.Context, limit int) ([]activity.Activity, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	acts := make([]activity.Activity, 0, len(repo.db.t))
	for _, act := range repo.db.t {
		acts = append(acts, *act)
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i].CreatedAt.After(acts[j].CreatedAt) })
	if len(acts) > limit {
		acts = acts[:limit]
	}
	return acts, nil
}
