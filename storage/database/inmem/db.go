// Package inmemdb provides map-backed repositories. They are used by the test
// suites and as a development fallback when no database is reachable.
package inmemdb

import (
	"sync"

	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/lostfound"
	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/research"
	"github.com/campushelper/backend/core/tutor"
	"github.com/campushelper/backend/core/user"
)

type (
	DB struct {
		user         *userTable
		post         *postTable
		tutor        *tutorTable
		lostFound    *lostFoundTable
		research     *researchTable
		announcement *announcementTable
		activity     *activityTable
	}

	userTable struct {
		t     map[string]*user.User
		mutex sync.RWMutex
	}

	postTable struct {
		t     map[string]*post.Post
		mutex sync.RWMutex
	}

	tutorTable struct {
		t     map[string]*tutor.Tutor
		mutex sync.RWMutex
	}

	lostFoundTable struct {
		t     map[string]*lostfound.Item
		mutex sync.RWMutex
	}

	researchTable struct {
		t     map[string]*research.Material
		mutex sync.RWMutex
	}

	announcementTable struct {
		t     map[string]*announcement.Announcement
		mutex sync.RWMutex
	}

	activityTable struct {
		t     map[string]*activity.Activity
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		user:         &userTable{t: make(map[string]*user.User)},
		post:         &postTable{t: make(map[string]*post.Post)},
		tutor:        &tutorTable{t: make(map[string]*tutor.Tutor)},
		lostFound:    &lostFoundTable{t: make(map[string]*lostfound.Item)},
		research:     &researchTable{t: make(map[string]*research.Material)},
		announcement: &announcementTable{t: make(map[string]*announcement.Announcement)},
		activity:     &activityTable{t: make(map[string]*activity.Activity)},
	}
}
