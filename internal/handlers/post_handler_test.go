package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/anonto42/photofeed/backend/internal/models"
)

func TestUploadStoresMediaAndPersistsPost(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceTok := env.seedUser(t, "alice")

	rec := env.doUpload(t, aliceTok, "sunset.jpg", "golden hour", []byte("fake jpeg bytes"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID       string `json:"id"`
		ImageURL string `json:"image_url"`
		Caption  string `json:"caption"`
		User     struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, rec, &created)
	if created.Caption != "golden hour" {
		t.Errorf("caption = %q", created.Caption)
	}
	if !strings.HasPrefix(created.ImageURL, "https://cdn.test/posts/") || !strings.HasSuffix(created.ImageURL, "/sunset.jpg") {
		t.Errorf("image_url = %q, want cdn URL keyed under posts/<id>/sunset.jpg", created.ImageURL)
	}
	if created.User.ID != alice.ID || created.User.Username != "alice" {
		t.Errorf("author projection = %+v, want alice", created.User)
	}

	if len(env.media.uploaded) != 1 {
		t.Fatalf("media store saw %d uploads, want 1", len(env.media.uploaded))
	}

	var post models.Post
	if err := env.db.First(&post, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("post row not persisted: %v", err)
	}
	if post.UserID != alice.ID || post.ImageURL != created.ImageURL {
		t.Errorf("persisted post = %+v", post)
	}
}

func TestUploadRequiresImage(t *testing.T) {
	env := newTestEnv(t)
	_, aliceTok := env.seedUser(t, "alice")

	req := env.doJSON(t, http.MethodPost, "/post/upload", aliceTok, map[string]string{"caption": "no file"})
	if req.Code != http.StatusBadRequest {
		t.Errorf("upload without image: status = %d, want 400", req.Code)
	}
}

// A post row that cannot be persisted must not leave its image behind in
// the media store.
func TestUploadRemovesMediaWhenPersistFails(t *testing.T) {
	env := newTestEnv(t)
	_, aliceTok := env.seedUser(t, "alice")

	if err := env.db.Migrator().DropTable(&models.Post{}); err != nil {
		t.Fatalf("failed to drop posts table: %v", err)
	}

	rec := env.doUpload(t, aliceTok, "sunset.jpg", "golden hour", []byte("fake jpeg bytes"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("upload status = %d, want 500", rec.Code)
	}
	if len(env.media.removed) != 1 {
		t.Fatalf("media store saw %d removals, want 1", len(env.media.removed))
	}
	if env.media.removed[0] != env.media.uploaded[0] {
		t.Errorf("removed key %q does not match uploaded key %q", env.media.removed[0], env.media.uploaded[0])
	}
}
