package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/database"
	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitJWT("test-secret")
	os.Exit(m.Run())
}

// setupTestDB opens a named in-memory SQLite database (unique per test so
// parallel tests never share state) and migrates every model.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedMenu inserts a small card: two active dishes and one retired.
func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.MenuItem{
		{Name: "Caesar Salad", Type: models.MenuTypeStarter, Price: 450, IsActive: true},
		{Name: "Grilled Fish", Type: models.MenuTypeMain, Price: 950, IsActive: true},
		{Name: "Retired Special", Type: models.MenuTypeMain, Price: 700, IsActive: false},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw sends a raw (possibly invalid) body and returns the recorder.
func doRaw(t *testing.T, r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorder body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}

// decodeList unmarshals a recorder body into a slice of maps.
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}
