package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	controller "github.com/hemanth0525/contribuzz/pkg/controller/http"
	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// MockContributorUC is a mock implementation of ContributorUseCase
type MockContributorUC struct {
	fetchFunc   func(ctx context.Context, repo string) ([]*model.Contributor, error)
	getRepoFunc func(ctx context.Context, repo string) (*model.Repository, error)
}

func (m *MockContributorUC) FetchContributors(ctx context.Context, repo string) ([]*model.Contributor, error) {
	return m.fetchFunc(ctx, repo)
}

func (m *MockContributorUC) GetRepository(ctx context.Context, repo string) (*model.Repository, error) {
	return m.getRepoFunc(ctx, repo)
}

// MockWallUC is a mock implementation of WallUseCase
type MockWallUC struct {
	generateFunc func(ctx context.Context, repo string) (*model.WallBuild, error)
	publishFunc  func(ctx context.Context, kind model.WallKind, fileName, imageDataURL string) (*model.Artifact, error)
	resolveFunc  func(ctx context.Context, req *model.WallRequest) (string, error)
}

func (m *MockWallUC) Generate(ctx context.Context, repo string) (*model.WallBuild, error) {
	return m.generateFunc(ctx, repo)
}

func (m *MockWallUC) Publish(ctx context.Context, kind model.WallKind, fileName, imageDataURL string) (*model.Artifact, error) {
	return m.publishFunc(ctx, kind, fileName, imageDataURL)
}

func (m *MockWallUC) Resolve(ctx context.Context, req *model.WallRequest) (string, error) {
	return m.resolveFunc(ctx, req)
}

// MockSubscriberUC is a mock implementation of SubscriberUseCase
type MockSubscriberUC struct {
	addFunc func(ctx context.Context, email string) error
}

func (m *MockSubscriberUC) Add(ctx context.Context, email string) error {
	return m.addFunc(ctx, email)
}

// MockFeedbackUC is a mock implementation of FeedbackUseCase
type MockFeedbackUC struct {
	sendFunc func(ctx context.Context, fb *model.Feedback) error
}

func (m *MockFeedbackUC) Send(ctx context.Context, fb *model.Feedback) error {
	return m.sendFunc(ctx, fb)
}

type testServerOpts struct {
	contributors *MockContributorUC
	walls        *MockWallUC
	subscribers  *MockSubscriberUC
	feedback     *MockFeedbackUC
}

func newTestServer(t *testing.T, opts testServerOpts) *controller.Server {
	t.Helper()
	server, err := controller.NewServer(
		context.Background(),
		opts.contributors,
		opts.walls,
		opts.subscribers,
		opts.feedback,
		controller.WithAddr("localhost:0"),
		controller.WithBaseURL("https://contri.buzz"),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return server
}

func postJSON(t *testing.T, server *controller.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)
	return w
}

func TestWallEndpoint(t *testing.T) {
	walls := &MockWallUC{
		resolveFunc: func(ctx context.Context, req *model.WallRequest) (string, error) {
			if req.Repo != "owner/name" {
				return "", goerr.New("no image", goerr.T(types.TagNotFound))
			}
			if req.OnlyAvatars {
				return "https://cdn.example.com/public/walls/owner-name(avatars).png", nil
			}
			return "https://cdn.example.com/public/walls/owner-name.jpg", nil
		},
	}
	server := newTestServer(t, testServerOpts{walls: walls})

	t.Run("missing repo parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wall", nil))
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.String(t, body["error"]).Contains("repo parameter is missing")
	})

	t.Run("malformed repo", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wall?repo=no-slash", nil))
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("never published", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wall?repo=other/repo", nil))
		gt.Number(t, w.Code).Equal(http.StatusNotFound)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.String(t, body["error"]).Contains("image not found")
	})

	t.Run("redirects to the published image", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wall?repo=owner/name", nil))
		gt.Number(t, w.Code).Equal(http.StatusFound)
		gt.Value(t, w.Header().Get("Location")).Equal("https://cdn.example.com/public/walls/owner-name.jpg")
	})

	t.Run("avatar variant", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wall?repo=owner/name&onlyAvatars=true", nil))
		gt.Number(t, w.Code).Equal(http.StatusFound)
		gt.String(t, w.Header().Get("Location")).Contains("(avatars).png")
	})
}

func TestEmbedEndpoint(t *testing.T) {
	server := newTestServer(t, testServerOpts{})

	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/embed?repo=owner/name", nil))
	gt.Number(t, w.Code).Equal(http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	gt.String(t, body["wall"]).Contains("https://contri.buzz/api/wall?repo=owner/name")
	gt.String(t, body["avatarWall"]).Contains("onlyAvatars=true")
}

func TestFetchContributorsEndpoint(t *testing.T) {
	contributors := &MockContributorUC{
		fetchFunc: func(ctx context.Context, repo string) ([]*model.Contributor, error) {
			return []*model.Contributor{{Login: "alice", Contributions: 42}}, nil
		},
	}
	server := newTestServer(t, testServerOpts{contributors: contributors})

	t.Run("missing repoUrl", func(t *testing.T) {
		w := postJSON(t, server, "/api/fetchContributors", map[string]string{})
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.String(t, body["message"]).Contains("repository URL not provided")
	})

	t.Run("returns the contributor list", func(t *testing.T) {
		w := postJSON(t, server, "/api/fetchContributors", map[string]string{"repoUrl": "owner/name"})
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var body []*model.Contributor
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.Number(t, len(body)).Equal(1)
		gt.Value(t, body[0].Login).Equal("alice")
	})
}

func TestGithubRepoEndpoint(t *testing.T) {
	contributors := &MockContributorUC{
		getRepoFunc: func(ctx context.Context, repo string) (*model.Repository, error) {
			return &model.Repository{FullName: repo, Stars: 12}, nil
		},
	}
	server := newTestServer(t, testServerOpts{contributors: contributors})

	w := postJSON(t, server, "/api/githubRepo", map[string]string{"repo": "owner/name"})
	gt.Number(t, w.Code).Equal(http.StatusOK)

	var body model.Repository
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	gt.Value(t, body.FullName).Equal("owner/name")
	gt.Number(t, body.Stars).Equal(12)
}

func TestSaveWallEndpoints(t *testing.T) {
	walls := &MockWallUC{
		publishFunc: func(ctx context.Context, kind model.WallKind, fileName, imageDataURL string) (*model.Artifact, error) {
			if imageDataURL == "" {
				return nil, goerr.New("invalid image data URL", goerr.T(types.TagInvalidInput))
			}
			return &model.Artifact{
				Path:      "public/walls/" + fileName,
				PublicURL: "https://cdn.example.com/public/walls/" + fileName,
			}, nil
		},
	}
	server := newTestServer(t, testServerOpts{walls: walls})

	t.Run("full wall", func(t *testing.T) {
		w := postJSON(t, server, "/api/save-full-wall", map[string]string{
			"fileName":     "owner-name.jpg",
			"imageDataUrl": "data:image/jpeg;base64,aGVsbG8=",
		})
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.String(t, body["url"]).Contains("owner-name.jpg")
		gt.Value(t, body["message"]).Equal("Full wall image saved successfully")
	})

	t.Run("avatar wall", func(t *testing.T) {
		w := postJSON(t, server, "/api/save-avatar-wall", map[string]string{
			"fileName":     "owner-name(avatars).png",
			"imageDataUrl": "data:image/png;base64,aGVsbG8=",
		})
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.Value(t, body["message"]).Equal("Avatar wall image saved successfully")
	})

	t.Run("publish rejection", func(t *testing.T) {
		w := postJSON(t, server, "/api/save-full-wall", map[string]string{
			"fileName": "owner-name.jpg",
		})
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)
	})
}

func TestGenerateWallEndpoint(t *testing.T) {
	walls := &MockWallUC{
		generateFunc: func(ctx context.Context, repo string) (*model.WallBuild, error) {
			return &model.WallBuild{
				BuildID:       "build-1",
				Repo:          repo,
				Contributors:  2,
				FullWallURL:   "https://cdn.example.com/public/walls/owner-name.jpg",
				AvatarWallURL: "https://cdn.example.com/public/walls/owner-name(avatars).png",
				GeneratedAt:   time.Now().UTC(),
			}, nil
		},
	}
	server := newTestServer(t, testServerOpts{walls: walls})

	t.Run("missing repo", func(t *testing.T) {
		w := postJSON(t, server, "/api/generateWall", map[string]string{})
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("runs the pipeline", func(t *testing.T) {
		w := postJSON(t, server, "/api/generateWall", map[string]string{"repo": "owner/name"})
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var body model.WallBuild
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.Value(t, body.Repo).Equal("owner/name")
		gt.Number(t, body.Contributors).Equal(2)
	})
}

func TestAddSubscriberEndpoint(t *testing.T) {
	subscribers := &MockSubscriberUC{
		addFunc: func(ctx context.Context, email string) error {
			if email == "taken@example.com" {
				return goerr.New("email already exists in the notification list", goerr.T(types.TagDuplicate))
			}
			return nil
		},
	}
	server := newTestServer(t, testServerOpts{subscribers: subscribers})

	t.Run("subscribes", func(t *testing.T) {
		w := postJSON(t, server, "/api/addSubscriber", map[string]string{"email": "new@example.com"})
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.Value(t, body["message"]).Equal("Thank you for subscribing!")
	})

	t.Run("duplicate is a client error", func(t *testing.T) {
		w := postJSON(t, server, "/api/addSubscriber", map[string]string{"email": "taken@example.com"})
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		gt.String(t, body["message"]).Contains("already exists")
	})
}

func TestSendFeedbackEndpoint(t *testing.T) {
	var received *model.Feedback
	feedback := &MockFeedbackUC{
		sendFunc: func(ctx context.Context, fb *model.Feedback) error {
			received = fb
			return nil
		},
	}
	server := newTestServer(t, testServerOpts{feedback: feedback})

	w := postJSON(t, server, "/api/sendFeedback", map[string]string{
		"email":    "a@example.com",
		"feedback": "love the walls",
	})
	gt.Number(t, w.Code).Equal(http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	gt.Value(t, body["message"]).Equal("Feedback sent successfully")

	gt.NotNil(t, received)
	gt.Value(t, received.Email).Equal("a@example.com")
}

func TestUpstreamStatusForwarding(t *testing.T) {
	contributors := &MockContributorUC{
		fetchFunc: func(ctx context.Context, repo string) ([]*model.Contributor, error) {
			return nil, goerr.New("repository not found upstream",
				goerr.V("upstream_status", http.StatusNotFound),
				goerr.T(types.TagUpstream))
		},
	}
	server := newTestServer(t, testServerOpts{contributors: contributors})

	w := postJSON(t, server, "/api/fetchContributors", map[string]string{"repoUrl": "owner/gone"})
	gt.Number(t, w.Code).Equal(http.StatusNotFound)
}
