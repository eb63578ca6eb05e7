package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

// fakeSession is an in-memory TokenStore.
type fakeSession struct {
	token   string
	cleared bool
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) Clear() error {
	f.token = ""
	f.cleared = true
	return nil
}

func recordServer(t *testing.T, handler http.HandlerFunc) (*RecordClient, *fakeSession, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	sess := &fakeSession{token: "tok"}
	return NewRecordClient(NewClient(srv.URL), sess), sess, srv.Close
}

func TestList_NoTokenShortCircuits(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected without a token")
	})
	defer done()
	rc.session.(*fakeSession).token = ""

	recs, err := rc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d records", len(recs))
	}
}

func TestList_AcceptsBareArray(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`[{"_id":"a","type":"positive"},{"_id":"b","type":"meditation"}]`))
	})
	defer done()

	recs, err := rc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 || recs[0].Key() != "a" {
		t.Fatalf("got %+v", recs)
	}
}

func TestList_AcceptsRecordsObject(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[{"id":42,"type":"mindRecord"}]}`))
	})
	defer done()

	recs, err := rc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].Key() != "42" {
		t.Fatalf("got %+v", recs)
	}
}

func TestList_UnauthorizedClearsSession(t *testing.T) {
	rc, sess, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer done()

	recs, err := rc.List(context.Background())
	if !errors.Is(err, apperr.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if !sess.cleared || sess.token != "" {
		t.Fatalf("401 must clear the stored token")
	}
	if len(recs) != 0 {
		t.Fatalf("got %d records", len(recs))
	}
}

func TestList_SwallowsServerAndShapeFailures(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"http 500":  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
		"not json":  func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html></html>")) },
		"bad shape": func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"items":[]}`)) },
	} {
		rc, _, done := recordServer(t, handler)
		recs, err := rc.List(context.Background())
		done()
		if err != nil {
			t.Fatalf("%s: err = %v, want nil", name, err)
		}
		if len(recs) != 0 {
			t.Fatalf("%s: got %d records", name, len(recs))
		}
	}
}

func TestSave_ReturnsServerID(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/records/save" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":"64f1c0ffee"}`))
	})
	defer done()

	id, err := rc.Save(context.Background(), model.Record{Type: model.KindMind, Fact: "x"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id != "64f1c0ffee" {
		t.Fatalf("id = %q", id)
	}
}

func TestSave_RequiresSession(t *testing.T) {
	rc, sess, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	})
	defer done()
	sess.token = ""

	if _, err := rc.Save(context.Background(), model.Record{}); !errors.Is(err, apperr.ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestUpdate_RequiresServerID(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	})
	defer done()

	err := rc.Update(context.Background(), model.Record{TempID: 123})
	if !errors.Is(err, apperr.ErrMissingID) {
		t.Fatalf("err = %v, want ErrMissingID", err)
	}
}

func TestUpdate_AddressesByMongoID(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/records/64f1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	})
	defer done()

	if err := rc.Update(context.Background(), model.Record{ID: "legacy", MongoID: "64f1"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestRemove(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/records/abc" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	})
	defer done()

	if err := rc.Remove(context.Background(), "abc"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := rc.Remove(context.Background(), "  "); !errors.Is(err, apperr.ErrMissingID) {
		t.Fatalf("blank id: err = %v, want ErrMissingID", err)
	}
}

func TestClearAll_ReturnsDeletedCount(t *testing.T) {
	rc, _, done := recordServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/records/clear-all" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"deletedCount":7}`))
	})
	defer done()

	n, err := rc.ClearAll(context.Background())
	if err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if n != 7 {
		t.Fatalf("count = %d", n)
	}
}
