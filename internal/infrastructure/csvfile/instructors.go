package csvfile

import (
	"context"

	"github.com/zjrosen/registrar/internal/cachemanager"
	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/log"
)

const instructorHeader = "FirstName,LastName,EmployeeID"

// InstructorFile implements roster.InstructorStore over a delimited
// instructors file. The legacy writer duplicated the employee ID into a
// bogus fourth "NetID" column; loads tolerate that extra column and saves
// never write it.
type InstructorFile struct {
	path   string
	cache  *cachemanager.InMemoryCacheManager[string, []*roster.Instructor]
	loader *cachemanager.ReadThroughCache[string, []*roster.Instructor, string]
}

// Ensure InstructorFile implements roster.InstructorStore.
var _ roster.InstructorStore = (*InstructorFile)(nil)

// NewInstructorFile creates a store backed by the file at path.
func NewInstructorFile(path string) *InstructorFile {
	cache := cachemanager.NewInMemoryCacheManager[string, []*roster.Instructor](
		"instructors-file", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	f := &InstructorFile{path: path, cache: cache}
	f.loader = cachemanager.NewReadThroughCache[string, []*roster.Instructor, string](
		cache, func(ctx context.Context, path string) ([]*roster.Instructor, error) {
			return readInstructors(path)
		}, false)
	return f
}

// Load reads all instructors from the file, serving repeated loads from the
// cache until the file is rewritten or invalidated.
func (f *InstructorFile) Load() ([]*roster.Instructor, error) {
	return f.loader.Get(context.Background(), f.path, f.path, cachemanager.DefaultExpiration)
}

// Save rewrites the instructors file in collection order.
func (f *InstructorFile) Save(instructors []*roster.Instructor) error {
	rows := make([][]string, 0, len(instructors))
	for _, i := range instructors {
		rows = append(rows, []string{i.FirstName(), i.LastName(), i.EmployeeID()})
	}
	if err := writeRows(f.path, instructorHeader, rows); err != nil {
		return err
	}
	f.cache.Set(context.Background(), f.path, instructors, cachemanager.DefaultExpiration)
	return nil
}

// Invalidate drops the cached parse so the next Load re-reads the file.
func (f *InstructorFile) Invalidate() {
	_ = f.cache.Delete(context.Background(), f.path)
}

func readInstructors(path string) ([]*roster.Instructor, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	instructors := make([]*roster.Instructor, 0, len(rows))
	for _, row := range rows {
		// Legacy files carry a duplicated employee ID in column four.
		if len(row) != 3 && len(row) != 4 {
			log.Warn(log.CatStore, "Skipping malformed instructor row", "path", path, "fields", len(row))
			continue
		}
		instructors = append(instructors, roster.NewInstructor(row[0], row[1], row[2]))
	}
	return instructors, nil
}
