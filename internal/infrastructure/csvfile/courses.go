package csvfile

import (
	"context"
	"strings"

	"github.com/zjrosen/registrar/internal/cachemanager"
	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/log"
)

const courseHeader = "CourseCode,CourseName,InstructorEmpID,DaysOfWeek,StartTime,EndTime,Description"

// daySeparator joins the days-of-week inside their single field. It must
// not collide with the field delimiter or rows stop decomposing into seven
// fields.
const daySeparator = "&"

// CourseFile implements roster.CourseStore over a delimited courses file.
// Rows that do not decompose into exactly seven fields are skipped with a
// diagnostic. Resolving the instructor reference is left to the Registry.
type CourseFile struct {
	path   string
	cache  *cachemanager.InMemoryCacheManager[string, []*roster.Course]
	loader *cachemanager.ReadThroughCache[string, []*roster.Course, string]
}

// Ensure CourseFile implements roster.CourseStore.
var _ roster.CourseStore = (*CourseFile)(nil)

// NewCourseFile creates a store backed by the file at path.
func NewCourseFile(path string) *CourseFile {
	cache := cachemanager.NewInMemoryCacheManager[string, []*roster.Course](
		"courses-file", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	f := &CourseFile{path: path, cache: cache}
	f.loader = cachemanager.NewReadThroughCache[string, []*roster.Course, string](
		cache, func(ctx context.Context, path string) ([]*roster.Course, error) {
			return readCourses(path)
		}, false)
	return f
}

// Load reads all parseable courses from the file, serving repeated loads
// from the cache until the file is rewritten or invalidated.
func (f *CourseFile) Load() ([]*roster.Course, error) {
	return f.loader.Get(context.Background(), f.path, f.path, cachemanager.DefaultExpiration)
}

// Save rewrites the courses file in collection order. Descriptions are
// written bare; quoting is a legacy-load tolerance only.
func (f *CourseFile) Save(courses []*roster.Course) error {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			c.Code(),
			c.Name(),
			c.InstructorID(),
			strings.Join(c.DaysOfWeek(), daySeparator),
			c.StartTime(),
			c.EndTime(),
			c.Description(),
		})
	}
	if err := writeRows(f.path, courseHeader, rows); err != nil {
		return err
	}
	f.cache.Set(context.Background(), f.path, courses, cachemanager.DefaultExpiration)
	return nil
}

// Invalidate drops the cached parse so the next Load re-reads the file.
func (f *CourseFile) Invalidate() {
	_ = f.cache.Delete(context.Background(), f.path)
}

func readCourses(path string) ([]*roster.Course, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	courses := make([]*roster.Course, 0, len(rows))
	for _, row := range rows {
		if len(row) != 7 {
			log.Warn(log.CatStore, "Skipping malformed course row", "path", path, "fields", len(row))
			continue
		}
		days := strings.Split(row[3], daySeparator)
		courses = append(courses, roster.ReconstituteCourse(
			row[0], row[1], row[2], days, row[4], row[5], unquote(row[6])))
	}
	return courses, nil
}

// unquote strips one surrounding quote pair when present. Legacy files
// quoted the description field; rewritten files never do.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
