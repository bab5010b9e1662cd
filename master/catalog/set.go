package catalog

import (
	"sort"
	"sync"
)

type database struct {
	name string
	info *databaseInfo

	lock sync.RWMutex
}

func newDatabase(info *databaseInfo) *database {
	return &database{
		name: info.Name,
		info: info,
	}
}

func (d *database) GetInfo() *databaseInfo {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.info.Clone()
}

func (d *database) setStatus(status DatabaseStatus) {
	d.lock.Lock()
	d.info.Status = status
	d.lock.Unlock()
}

type databaseSet struct {
	databases []*database
	lock      sync.RWMutex
}

func (s *databaseSet) Get(name string) (*database, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	i, ok := search(s.databases, name)
	if !ok {
		return nil, false
	}
	return s.databases[i], true
}

func (s *databaseSet) Put(db *database) {
	s.lock.Lock()
	defer s.lock.Unlock()
	idx, ok := search(s.databases, db.name)
	if !ok {
		s.databases = append(s.databases, db)
		if idx == len(s.databases)-1 {
			return
		}
		copy(s.databases[idx+1:], s.databases[idx:len(s.databases)-1])
		s.databases[idx] = db
	}
}

func (s *databaseSet) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.databases)
}

func (s *databaseSet) List() []*database {
	s.lock.RLock()
	defer s.lock.RUnlock()
	databases := make([]*database, len(s.databases))
	copy(databases, s.databases)
	return databases
}

// Names returns the database names in ascending order, the set keeps
// its slice sorted so no extra sort is needed here.
func (s *databaseSet) Names() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	names := make([]string, 0, len(s.databases))
	for _, db := range s.databases {
		names = append(names, db.name)
	}
	return names
}

func search(databases []*database, name string) (int, bool) {
	idx := sort.Search(len(databases), func(i int) bool {
		return databases[i].name >= name
	})
	if idx == len(databases) || databases[idx].name != name {
		return idx, false
	}
	return idx, true
}
