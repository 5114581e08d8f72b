package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/admin/api/common"
	"studio/admin/codes"
	"studio/admin/system"

	"github.com/gin-gonic/gin"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := system.Open(dsn, 4, 2)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := system.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := gin.New()
	Routers(e.Group("/"), db)
	return e
}

func doJSON(t *testing.T, e *gin.Engine, method, path, body string) (int, common.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var res common.Response
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, res
}

func TestPublisherRoutes(t *testing.T) {
	e := testEngine(t)

	status, res := doJSON(t, e, http.MethodPost, "/publishers/add",
		`{"name":"Alpha","price":"49.99","popularity":7}`)
	if status != http.StatusOK || res.Code != codes.CODE_SUCCESS {
		t.Fatalf("add: status=%d code=%d msg=%s", status, res.Code, res.Msg)
	}

	status, res = doJSON(t, e, http.MethodGet, "/publishers", "")
	if status != http.StatusOK || res.Code != codes.CODE_SUCCESS {
		t.Fatalf("list: status=%d code=%d", status, res.Code)
	}
	data, ok := res.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("list data shape: %T", res.Data)
	}
	publishers, ok := data["publishers"].([]interface{})
	if !ok || len(publishers) != 1 {
		t.Fatalf("expected one publisher, got %v", data["publishers"])
	}
}

func TestEditMissingRowIs404(t *testing.T) {
	e := testEngine(t)

	status, res := doJSON(t, e, http.MethodGet, "/publishers/edit?id=999", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if res.Code != codes.CODE_ERR_OBJ_NOT_FOUND {
		t.Fatalf("code = %d, want %d", res.Code, codes.CODE_ERR_OBJ_NOT_FOUND)
	}
}

func TestMissingIDIsBadParams(t *testing.T) {
	e := testEngine(t)

	status, res := doJSON(t, e, http.MethodPost, "/publishers/delete", "")
	if status != http.StatusOK || res.Code != codes.CODE_ERR_BAD_PARAMS {
		t.Fatalf("status=%d code=%d", status, res.Code)
	}
}

func TestMissingFieldsEnvelope(t *testing.T) {
	e := testEngine(t)

	// Required fields absent from the body must name themselves in the
	// envelope instead of collapsing into the generic bad-params code.
	status, res := doJSON(t, e, http.MethodPost, "/publishers/add", `{"price":"49.99"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if res.Code != codes.CODE_ERR_NULL_VALUES {
		t.Fatalf("code = %d, want %d (msg=%s)", res.Code, codes.CODE_ERR_NULL_VALUES, res.Msg)
	}
	if !strings.Contains(res.Msg, "Name") {
		t.Fatalf("msg %q does not name the missing field", res.Msg)
	}

	status, res = doJSON(t, e, http.MethodPost, "/staff/add", `{}`)
	if status != http.StatusOK || res.Code != codes.CODE_ERR_NULL_VALUES {
		t.Fatalf("status=%d code=%d msg=%s", status, res.Code, res.Msg)
	}
	if !strings.Contains(res.Msg, "Name") || !strings.Contains(res.Msg, "Birth") {
		t.Fatalf("msg %q does not name both missing fields", res.Msg)
	}
}

func TestUnreadableBodyIsBadParams(t *testing.T) {
	e := testEngine(t)

	status, res := doJSON(t, e, http.MethodPost, "/publishers/add", `{"name":`)
	if status != http.StatusOK || res.Code != codes.CODE_ERR_BAD_PARAMS {
		t.Fatalf("status=%d code=%d msg=%s", status, res.Code, res.Msg)
	}
}

func TestForeignKeyViolationEnvelope(t *testing.T) {
	e := testEngine(t)

	status, res := doJSON(t, e, http.MethodPost, "/jobs/add",
		`{"game_id":42,"staff_id":43,"position":"tester","first_work_day":"2003-01-01","salary":"100.00"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if res.Code != codes.CODE_ERR_FOREIGN_KEY {
		t.Fatalf("code = %d, want %d (msg=%s)", res.Code, codes.CODE_ERR_FOREIGN_KEY, res.Msg)
	}
}

func TestGameListWithStatistics(t *testing.T) {
	e := testEngine(t)

	if _, res := doJSON(t, e, http.MethodPost, "/publishers/add",
		`{"name":"Alpha","price":"49.99","popularity":7}`); res.Code != codes.CODE_SUCCESS {
		t.Fatalf("add publisher: %s", res.Msg)
	}
	if _, res := doJSON(t, e, http.MethodPost, "/games/add",
		`{"name":"Quest","genre":"rpg","release_date":"2003-05-20","prime_cost":"1000.00","publisher_id":1,"cost":"59.99","is_subscribable":true}`); res.Code != codes.CODE_SUCCESS {
		t.Fatalf("add game: %s", res.Msg)
	}

	status, res := doJSON(t, e, http.MethodGet, "/games?id=1", "")
	if status != http.StatusOK || res.Code != codes.CODE_SUCCESS {
		t.Fatalf("list: status=%d code=%d msg=%s", status, res.Code, res.Msg)
	}
	data := res.Data.(map[string]interface{})
	if _, ok := data["statistics"]; !ok {
		t.Fatalf("statistics bundle missing: %v", data)
	}
}

func TestInvalidDateEnvelope(t *testing.T) {
	e := testEngine(t)

	if _, res := doJSON(t, e, http.MethodPost, "/publishers/add",
		`{"name":"Alpha","price":"49.99","popularity":7}`); res.Code != codes.CODE_SUCCESS {
		t.Fatalf("add publisher: %s", res.Msg)
	}
	status, res := doJSON(t, e, http.MethodPost, "/games/add",
		`{"name":"Quest","genre":"rpg","release_date":"20-05-2003","prime_cost":"1.00","publisher_id":1,"cost":"1.00"}`)
	if status != http.StatusOK || res.Code != codes.CODE_ERR_INVALID_DATE {
		t.Fatalf("status=%d code=%d msg=%s", status, res.Code, res.Msg)
	}
}
