package echoapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/school"
	dummydb "github.com/trezcool/shule/storage/dummy"
	"github.com/trezcool/shule/storage/mongodb"
)

func Test_home(t *testing.T) {
	app := initApp(dummydb.Open())

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["message"], "API is running")
}

func Test_schoolApi_listFeed(t *testing.T) {
	store := dummydb.Open()
	app := initApp(store)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, post := range []school.FeedPost{
		{AuthorName: "A", CreatedAt: now},
		{AuthorName: "B", CreatedAt: now.Add(-time.Hour)},
		{AuthorName: "C", CreatedAt: now.Add(time.Hour)},
	} {
		_, err := store.InsertDocument(ctx, school.CollectionFeedPost, post)
		require.NoError(t, err)
	}

	req, rec := newRequest(http.MethodGet, "/api/feed")
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]interface{}
	decodeBody(t, rec, &docs)
	require.Len(t, docs, 3)
	assert.Equal(t, "C", docs[0]["author_name"])
	assert.Equal(t, "A", docs[1]["author_name"])
	assert.Equal(t, "B", docs[2]["author_name"])
	for _, doc := range docs {
		assert.NotContains(t, doc, "_id")
		assert.NotEmpty(t, doc["id"])
	}
}

func Test_schoolApi_listFeed_limit(t *testing.T) {
	store := dummydb.Open()
	app := initApp(store)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := store.InsertDocument(ctx, school.CollectionFeedPost, school.FeedPost{AuthorName: "A", CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
	}

	req, rec := newRequest(http.MethodGet, "/api/feed?limit=2")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]interface{}
	decodeBody(t, rec, &docs)
	assert.Len(t, docs, 2)

	req, rec = newRequest(http.MethodGet, "/api/feed?limit=nope")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req, rec = newRequest(http.MethodGet, "/api/feed?limit=-1")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_schoolApi_createFeedPost(t *testing.T) {
	app := initApp(dummydb.Open())

	body := marshal(t, school.NewFeedPost{AuthorName: "Ms. Carter", Text: "Welcome back!"})
	req, rec := newRequest(http.MethodPost, "/api/feed", body)
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var doc map[string]interface{}
	decodeBody(t, rec, &doc)
	assert.NotEmpty(t, doc["id"])
	assert.Equal(t, "Ms. Carter", doc["author_name"])
	assert.EqualValues(t, 0, doc["likes"])
	assert.EqualValues(t, 0, doc["comments_count"])
	assert.IsType(t, "", doc["created_at"])
}

func Test_schoolApi_createFeedPost_validation(t *testing.T) {
	app := initApp(dummydb.Open())

	req, rec := newRequest(http.MethodPost, "/api/feed", []byte(`{"text": "anonymous"}`))
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var flds map[string]string
	decodeBody(t, rec, &flds)
	assert.Equal(t, "this field is required", flds["author_name"])
}

func Test_schoolApi_schedule(t *testing.T) {
	store := dummydb.Open()
	app := initApp(store)

	tests := []httpTest{
		{
			name:     "valid item",
			method:   http.MethodPost,
			path:     "/api/schedule",
			body:     marshal(t, school.NewScheduleItem{Day: "Friday", StartTime: "14:00", EndTime: "14:50", Subject: "Art", Room: "D110"}),
			wantCode: http.StatusCreated,
		},
		{
			name:     "another valid item",
			method:   http.MethodPost,
			path:     "/api/schedule",
			body:     marshal(t, school.NewScheduleItem{Day: "Monday", StartTime: "08:00", EndTime: "08:50", Subject: "Math", Room: "A101"}),
			wantCode: http.StatusCreated,
		},
		{
			name:     "unrecognized day",
			method:   http.MethodPost,
			path:     "/api/schedule",
			body:     marshal(t, school.NewScheduleItem{Day: "Funday", StartTime: "08:00", EndTime: "08:50", Subject: "Math"}),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad time format",
			method:   http.MethodPost,
			path:     "/api/schedule",
			body:     marshal(t, school.NewScheduleItem{Day: "Monday", StartTime: "25:00", EndTime: "08:50", Subject: "Math"}),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	// listing comes back Monday-first regardless of insertion order
	req, rec := newRequest(http.MethodGet, "/api/schedule")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]interface{}
	decodeBody(t, rec, &docs)
	require.Len(t, docs, 2)
	assert.Equal(t, "Math", docs[0]["subject"])
	assert.Equal(t, "Art", docs[1]["subject"])
	assert.Equal(t, "08:00", docs[0]["start_time"]) // plain string, not a timestamp
}

func Test_schoolApi_createLesson(t *testing.T) {
	app := initApp(dummydb.Open())

	body := marshal(t, school.NewLesson{
		Title: "Quadratic Functions", Subject: "Math", Teacher: "Mr. Lee",
		Date: time.Date(2021, 6, 1, 8, 30, 0, 0, time.UTC), Resources: []string{"slides.pdf"},
	})
	req, rec := newRequest(http.MethodPost, "/api/lessons", body)
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var doc map[string]interface{}
	decodeBody(t, rec, &doc)
	assert.Equal(t, "2021-06-01T08:30:00Z", doc["date"])
	assert.Equal(t, []interface{}{"slides.pdf"}, doc["resources"])
}

func Test_schoolApi_createAssessment_defaultStatus(t *testing.T) {
	app := initApp(dummydb.Open())

	body := marshal(t, school.NewAssessment{
		Title: "Physics Midterm", Subject: "Physics", Type: "Exam",
		DueDate: time.Now().Add(10 * 24 * time.Hour).UTC(),
	})
	req, rec := newRequest(http.MethodPost, "/api/assessments", body)
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var doc map[string]interface{}
	decodeBody(t, rec, &doc)
	assert.Equal(t, "upcoming", doc["status"])
}

func Test_schoolApi_createStudent(t *testing.T) {
	app := initApp(dummydb.Open())

	body := marshal(t, school.NewStudent{Name: "Awa Traore", Email: "awa@school.io", GradeLevel: "10th"})
	req, rec := newRequest(http.MethodPost, "/api/students", body)
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var doc map[string]interface{}
	decodeBody(t, rec, &doc)
	assert.Equal(t, "awa@school.io", doc["email"])
	assert.NotEmpty(t, doc["id"])
}

func Test_schoolApi_storeUnavailable(t *testing.T) {
	app := initApp(mongodb.NewStore(nil))

	req, rec := newRequest(http.MethodGet, "/api/feed")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "database not configured", body["error"])

	req, rec = newRequest(http.MethodPost, "/api/students", marshal(t, school.NewStudent{Name: "A", Email: "a@b.io", GradeLevel: "9th"}))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_schoolApi_storeStatus(t *testing.T) {
	app := initApp(dummydb.Open())

	req, rec := newRequest(http.MethodGet, "/test")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]interface{}
	decodeBody(t, rec, &res)
	assert.Equal(t, "running", res["backend"])
	assert.Equal(t, "connected", res["connection_status"])

	// unconfigured store still answers, reporting disconnection
	app = initApp(mongodb.NewStore(nil))
	req, rec = newRequest(http.MethodGet, "/test")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &res)
	assert.Equal(t, "running", res["backend"])
	assert.Equal(t, "not connected", res["connection_status"])
}

func Test_schoolApi_seed(t *testing.T) {
	store := dummydb.Open()
	app := initApp(store)

	req, rec := newRequest(http.MethodPost, "/seed")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]string
	decodeBody(t, rec, &res)
	assert.Equal(t, "ok", res["status"])
	assert.Equal(t, "Seeded demo content", res["message"])

	req, rec = newRequest(http.MethodPost, "/seed")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &res)
	assert.Equal(t, "Already seeded", res["message"])

	n, err := store.CountDocuments(context.Background(), school.CollectionFeedPost, school.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
