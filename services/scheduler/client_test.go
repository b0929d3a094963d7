package schedulersvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplewood/scheduler/core"
	"github.com/maplewood/scheduler/core/student"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{}
	conf.Scheduler.BaseURL = srv.URL
	conf.Scheduler.Timeout = 2 * time.Second
	return NewClient(conf)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func Test_Client_Semesters(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/semesters", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(t, w, []map[string]interface{}{
			{"id": 3, "name": "Fall 2026", "year": 2026, "orderInYear": 1, "isActive": true},
		})
	}))

	semesters, err := client.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, semesters, 1)
	assert.Equal(t, "Fall 2026", semesters[0].Name)
	assert.True(t, semesters[0].IsActive)
}

func Test_Client_MasterSchedule(t *testing.T) {
	t.Run("decodes the entries envelope", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/master-schedule/semester/3", r.URL.Path)
			writeJSON(t, w, map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"entries": []map[string]interface{}{
						{"id": 1, "courseCode": "MAT101", "capacity": 30, "enrolledCount": 12},
					},
				},
			})
		}))

		sections, err := client.MasterSchedule(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "MAT101", sections[0].CourseCode)
		assert.Equal(t, 18, sections[0].AvailableSpots())
	})

	t.Run("failed envelope surfaces its message", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]interface{}{"success": false, "message": "semester not found"})
		}))

		_, err := client.MasterSchedule(context.Background(), 99)
		require.EqualError(t, err, "semester not found")
		// a rejected request is a caller error, not a transport failure
		var vErr *core.ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.False(t, IsTransportError(err))
	})

	t.Run("server error is a transport error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.MasterSchedule(context.Background(), 3)
		assert.True(t, IsTransportError(err), "want *TransportError, got %v", err)
	})
}

func Test_Client_GenerateMasterSchedule(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/master-schedule/generate", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["semesterId"])

		writeJSON(t, w, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"entries": []map[string]interface{}{{"id": 1}}},
		})
	}))

	sections, err := client.GenerateMasterSchedule(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func Test_Client_StudentEndpoints(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/students/7/progress":
			writeJSON(t, w, map[string]interface{}{
				"studentId": 7, "gradeLevel": 10, "creditsEarned": 12.0, "graduationStatus": "ON_TRACK",
			})
		case "/students/7/schedule":
			assert.Equal(t, "3", r.URL.Query().Get("semesterId"))
			writeJSON(t, w, map[string]interface{}{"studentId": 7, "semesterId": 3, "studentName": "Alex Kim"})
		case "/students/7/available-sections":
			writeJSON(t, w, []map[string]interface{}{
				{"id": 2, "courseCode": "SCI201", "canEnroll": true, "gradeLevel": 10, "prerequisiteCourse": nil},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	ctx := context.Background()

	prog, err := client.Progress(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, prog.StudentID)
	assert.Equal(t, student.StatusOnTrack, prog.GraduationStatus)

	sched, err := client.StudentSchedule(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "Alex Kim", sched.StudentName)

	cands, err := client.AvailableSections(ctx, 7, 3)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, 10, cands[0].MinGradeLevel)
	assert.False(t, cands[0].PrerequisiteCourse.Valid)
}

func Test_Client_Enroll(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "2", r.URL.Query().Get("sectionId"))
			writeJSON(t, w, map[string]interface{}{"success": true, "message": "enrolled"})
		}))

		assert.NoError(t, client.Enroll(context.Background(), 7, 2))
	})

	t.Run("rejected", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]interface{}{"success": false, "message": "Section is full"})
		}))

		err := client.Enroll(context.Background(), 7, 2)
		var rejection *student.RejectionError
		require.True(t, errors.As(err, &rejection), "want *RejectionError, got %v", err)
		assert.Equal(t, "Section is full", rejection.Message)
	})
}

func Test_Client_unreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	conf := &core.Config{}
	conf.Scheduler.BaseURL = srv.URL
	conf.Scheduler.Timeout = time.Second
	client := NewClient(conf)
	srv.Close() // nothing is listening anymore

	_, err := client.Semesters(context.Background())
	assert.True(t, IsTransportError(err), "want *TransportError, got %v", err)
}
