package inmemdb

import (
	"sync"

	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
	"github.com/Konou0luc/ucao-academy-sub000/core/news"
	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

// DB is an in-memory store shared by all repositories. Used in development
// and in tests.
type DB struct {
	mutex sync.RWMutex

	users       map[string]*user.User
	courses     map[string]*catalog.Course
	slots       map[string]*schedule.Slot
	evaluations map[string]*evaluation.Event
	articles    map[string]*news.Article
	threads     map[string]*discussion.Thread
	messages    map[string]*discussion.Message
}

func NewDB() *DB {
	db := new(DB)
	db.Reset()
	return db
}

// Reset drops all stored records. Used between tests.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.users = make(map[string]*user.User)
	db.courses = make(map[string]*catalog.Course)
	db.slots = make(map[string]*schedule.Slot)
	db.evaluations = make(map[string]*evaluation.Event)
	db.articles = make(map[string]*news.Article)
	db.threads = make(map[string]*discussion.Thread)
	db.messages = make(map[string]*discussion.Message)
}
