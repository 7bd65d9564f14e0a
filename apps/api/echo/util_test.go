package echoapi

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
	logsvc "github.com/trezcool/shule/services/logger"
)

func init() {
	school.InitValidators(core.Validate, core.Translator)
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
}

// initApp wires a minimal app around store, mirroring the server setup without
// its middleware noise.
func initApp(store school.Store) *echo.Echo {
	app := echo.New()
	app.Pre(middleware.RemoveTrailingSlash())
	app.HTTPErrorHandler = newAppHTTPErrorHandler(testLogger(), func() {})
	app.GET("/", home)
	registerSchoolAPI(app, school.NewService(store))
	return app
}

func testLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func marshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
