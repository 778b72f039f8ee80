package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/router"
	"github.com/anonto42/photofeed/backend/internal/token"
	"github.com/anonto42/photofeed/backend/validators"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeMediaStore records uploads and removals instead of talking to S3.
type fakeMediaStore struct {
	uploaded []string
	removed  []string
}

func (f *fakeMediaStore) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	f.uploaded = append(f.uploaded, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeMediaStore) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

type testEnv struct {
	e      *echo.Echo
	db     *gorm.DB
	media  *fakeMediaStore
	tokens *token.Service
}

// newTestEnv wires the real router against an in-memory database and a
// fake media store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	media := &fakeMediaStore{}
	tokens := token.NewService("test-secret")

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, db, media, tokens)

	return &testEnv{e: e, db: db, media: media, tokens: tokens}
}

// seedUser inserts a user directly and returns it with a valid credential.
func (env *testEnv) seedUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
		Password: []byte("$2a$10$fakehash"),
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	tok, err := env.tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return user, tok
}

// seedPost inserts a post directly.
func (env *testEnv) seedPost(t *testing.T, author *models.User, caption string) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:       uuid.NewString(),
		ImageURL: "https://cdn.test/posts/" + uuid.NewString(),
		Caption:  caption,
		UserID:   author.ID,
	}
	if err := env.db.Create(post).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return post
}

// doJSON performs a JSON request with an optional credential token.
func (env *testEnv) doJSON(t *testing.T, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if tok != "" {
		req.Header.Set(middleware.HeaderAuthToken, tok)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// doUpload performs a multipart post upload.
func (env *testEnv) doUpload(t *testing.T, tok, filename, caption string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.WriteField("caption", caption); err != nil {
		t.Fatalf("failed to write caption field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/post/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if tok != "" {
		req.Header.Set(middleware.HeaderAuthToken, tok)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}
