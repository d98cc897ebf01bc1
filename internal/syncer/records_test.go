package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/Spok95/university-records-console/internal/api"
	"github.com/Spok95/university-records-console/internal/models"
	"github.com/Spok95/university-records-console/internal/store"
	"go.uber.org/zap"
)

// fakeBackend serves the collection endpoints from mutable in-memory
// state, with per-path failure injection.
type fakeBackend struct {
	mu         sync.Mutex
	students   []models.Student
	groups     []models.Group
	faculties  []models.Faculty
	subjects   []models.Subject
	professors []models.Professor
	fail       map[string]int // path -> status to return
	nextID     int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fail: map[string]int{}, nextID: 100}
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if status, ok := f.fail[r.URL.Path]; ok {
			http.Error(w, "injected failure", status)
			return
		}
		switch r.URL.Path {
		case "/students":
			if r.Method == http.MethodPost {
				var s models.Student
				_ = json.NewDecoder(r.Body).Decode(&s)
				s.ID = f.nextID
				f.nextID++
				f.students = append(f.students, s)
				_ = json.NewEncoder(w).Encode(s)
				return
			}
			f.writeList(w, f.students)
		case "/groups":
			f.writeList(w, f.groups)
		case "/faculties":
			f.writeList(w, f.faculties)
		case "/subjects":
			f.writeList(w, f.subjects)
		case "/professors":
			f.writeList(w, f.professors)
		default:
			http.NotFound(w, r)
		}
	})
}

// writeList mimics the real backend: empty collections come back as
// JSON null, not [].
func (f *fakeBackend) writeList(w http.ResponseWriter, v any) {
	if reflect.ValueOf(v).Len() == 0 {
		_, _ = w.Write([]byte("null"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func newRecordsSyncer(t *testing.T, backend *fakeBackend) (*Records, *store.Records) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, "t1", zap.NewNop())
	st := store.NewRecords()
	return NewRecords(client, st, zap.NewNop()), st
}

func TestReloadReplacesAllCollections(t *testing.T) {
	backend := newFakeBackend()
	backend.students = []models.Student{{ID: 1, FirstName: "Ann", GroupID: 10}}
	backend.groups = []models.Group{{ID: 10, FacultyID: 20, Name: "CS-101"}}
	backend.faculties = []models.Faculty{{ID: 20, Name: "Computer Science"}}
	rs, st := newRecordsSyncer(t, backend)

	st.SetStudents([]models.Student{{ID: 99, FirstName: "Stale"}})

	if err := rs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	students := st.Students()
	if len(students) != 1 || students[0].ID != 1 {
		t.Fatalf("stale records survived the reload: %#v", students)
	}
	if got := st.Groups(); len(got) != 1 || got[0].Name != "CS-101" {
		t.Fatalf("groups: %#v", got)
	}
	if got := st.Faculties(); len(got) != 1 || got[0].Name != "Computer Science" {
		t.Fatalf("faculties: %#v", got)
	}
}

func TestReloadPartialFailureWritesNothing(t *testing.T) {
	backend := newFakeBackend()
	backend.students = []models.Student{{ID: 1}}
	backend.groups = []models.Group{{ID: 10}}
	backend.faculties = []models.Faculty{{ID: 20}}
	backend.fail["/groups"] = http.StatusInternalServerError
	rs, st := newRecordsSyncer(t, backend)

	st.SetStudents([]models.Student{{ID: 99}})
	st.SetFaculties([]models.Faculty{{ID: 88}})

	if err := rs.Reload(context.Background()); err == nil {
		t.Fatal("reload must fail when any fetch fails")
	}
	if got := st.Students(); len(got) != 1 || got[0].ID != 99 {
		t.Fatalf("students changed despite failed reload: %#v", got)
	}
	if got := st.Faculties(); len(got) != 1 || got[0].ID != 88 {
		t.Fatalf("faculties changed despite failed reload: %#v", got)
	}
	if got := st.Groups(); len(got) != 0 {
		t.Fatalf("groups changed despite failed reload: %#v", got)
	}
}

func TestReloadNullCollectionsBecomeEmpty(t *testing.T) {
	backend := newFakeBackend() // everything empty, served as null
	rs, st := newRecordsSyncer(t, backend)

	st.SetStudents([]models.Student{{ID: 1}})
	if err := rs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := st.Students(); got == nil || len(got) != 0 {
		t.Fatalf("null response must become an empty collection: %#v", got)
	}
}

func TestReloadIdempotent(t *testing.T) {
	backend := newFakeBackend()
	backend.students = []models.Student{{ID: 2}, {ID: 1}}
	backend.groups = []models.Group{{ID: 10}}
	rs, st := newRecordsSyncer(t, backend)

	if err := rs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := st.Students()
	if err := rs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, st.Students()) {
		t.Fatalf("back-to-back reloads differ: %#v vs %#v", first, st.Students())
	}
}

func TestCreateThenReload(t *testing.T) {
	backend := newFakeBackend()
	backend.faculties = []models.Faculty{{ID: 20}}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, "t1", zap.NewNop())
	st := store.NewRecords()
	rs := NewRecords(client, st, zap.NewNop())

	if _, err := client.CreateStudent(context.Background(), models.Student{FirstName: "New", GroupID: 10}); err != nil {
		t.Fatal(err)
	}
	if err := rs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	var matches int
	var created models.Student
	for _, s := range st.Students() {
		if s.FirstName == "New" {
			matches++
			created = s
		}
	}
	if matches != 1 {
		t.Fatalf("created record must appear exactly once, found %d", matches)
	}
	if created.ID == 0 {
		t.Fatal("created record must carry a server-assigned id")
	}
}

func TestCatalogReloadSharesFaculties(t *testing.T) {
	backend := newFakeBackend()
	backend.subjects = []models.Subject{{ID: 1, Name: "Algebra", FacultyID: 20, ProfessorID: 5}}
	backend.professors = []models.Professor{{ID: 5, FirstName: "Ivan", LastName: "Petrov"}}
	backend.faculties = []models.Faculty{{ID: 20, Name: "Mathematics"}}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, "t1", zap.NewNop())
	records := store.NewRecords()
	catalog := store.NewCatalog()
	cs := NewCatalog(client, catalog, records, zap.NewNop())

	if err := cs.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := catalog.Subjects(); len(got) != 1 || got[0].Name != "Algebra" {
		t.Fatalf("subjects: %#v", got)
	}
	if got := catalog.Professors(); len(got) != 1 {
		t.Fatalf("professors: %#v", got)
	}
	if got := records.Faculties(); len(got) != 1 || got[0].Name != "Mathematics" {
		t.Fatalf("faculties must land in the records store: %#v", got)
	}
}

func TestCatalogPartialFailureWritesNothing(t *testing.T) {
	backend := newFakeBackend()
	backend.subjects = []models.Subject{{ID: 1}}
	backend.fail["/professors"] = http.StatusBadGateway
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, "t1", zap.NewNop())
	records := store.NewRecords()
	catalog := store.NewCatalog()
	cs := NewCatalog(client, catalog, records, zap.NewNop())

	catalog.SetSubjects([]models.Subject{{ID: 77}})
	if err := cs.Reload(context.Background()); err == nil {
		t.Fatal("reload must fail when any fetch fails")
	}
	if got := catalog.Subjects(); len(got) != 1 || got[0].ID != 77 {
		t.Fatalf("subjects changed despite failed reload: %#v", got)
	}
}
