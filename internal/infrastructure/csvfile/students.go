package csvfile

import (
	"context"
	"strconv"

	"github.com/zjrosen/registrar/internal/cachemanager"
	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/log"
)

const studentHeader = "FirstName,LastName,Year,NetID"

// StudentFile implements roster.StudentStore over a delimited students file.
type StudentFile struct {
	path   string
	cache  *cachemanager.InMemoryCacheManager[string, []*roster.Student]
	loader *cachemanager.ReadThroughCache[string, []*roster.Student, string]
}

// Ensure StudentFile implements roster.StudentStore.
var _ roster.StudentStore = (*StudentFile)(nil)

// NewStudentFile creates a store backed by the file at path.
func NewStudentFile(path string) *StudentFile {
	cache := cachemanager.NewInMemoryCacheManager[string, []*roster.Student](
		"students-file", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	f := &StudentFile{path: path, cache: cache}
	f.loader = cachemanager.NewReadThroughCache[string, []*roster.Student, string](
		cache, func(ctx context.Context, path string) ([]*roster.Student, error) {
			return readStudents(path)
		}, false)
	return f
}

// Load reads all students from the file, serving repeated loads from the
// cache until the file is rewritten or invalidated.
func (f *StudentFile) Load() ([]*roster.Student, error) {
	return f.loader.Get(context.Background(), f.path, f.path, cachemanager.DefaultExpiration)
}

// Save rewrites the students file in collection order.
func (f *StudentFile) Save(students []*roster.Student) error {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.FirstName(), s.LastName(), strconv.Itoa(s.Year()), s.ID()})
	}
	if err := writeRows(f.path, studentHeader, rows); err != nil {
		return err
	}
	f.cache.Set(context.Background(), f.path, students, cachemanager.DefaultExpiration)
	return nil
}

// Invalidate drops the cached parse so the next Load re-reads the file.
func (f *StudentFile) Invalidate() {
	_ = f.cache.Delete(context.Background(), f.path)
}

func readStudents(path string) ([]*roster.Student, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	students := make([]*roster.Student, 0, len(rows))
	for _, row := range rows {
		if len(row) != 4 {
			log.Warn(log.CatStore, "Skipping malformed student row", "path", path, "fields", len(row))
			continue
		}
		year, err := strconv.Atoi(row[2])
		if err != nil {
			log.Warn(log.CatStore, "Skipping student row with unparsable year", "path", path, "year", row[2])
			continue
		}
		students = append(students, roster.NewStudent(row[0], row[1], year, row[3]))
	}
	return students, nil
}
