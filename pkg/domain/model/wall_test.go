package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

func TestNewWallRequest(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{name: "valid", repo: "owner/name", wantErr: false},
		{name: "valid with dots", repo: "m-mizutani/goerr.v2", wantErr: false},
		{name: "missing slash", repo: "ownername", wantErr: true},
		{name: "empty owner", repo: "/name", wantErr: true},
		{name: "empty name", repo: "owner/", wantErr: true},
		{name: "extra segment", repo: "owner/name/extra", wantErr: true},
		{name: "empty", repo: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := model.NewWallRequest(tt.repo, false)
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, types.TagInvalidInput))
				return
			}
			gt.NoError(t, err)
			gt.Value(t, req.Repo).Equal(tt.repo)
		})
	}
}

func TestWallRequest_FileName(t *testing.T) {
	full := gt.R1(model.NewWallRequest("Foo/Bar", false)).NoError(t)
	gt.Value(t, full.FileName()).Equal("foo-bar.jpg")
	gt.Value(t, full.Path()).Equal("public/walls/foo-bar.jpg")
	gt.Value(t, full.Kind()).Equal(model.WallKindFull)

	avatars := gt.R1(model.NewWallRequest("Foo/Bar", true)).NoError(t)
	gt.Value(t, avatars.FileName()).Equal("foo-bar(avatars).png")
	gt.Value(t, avatars.Path()).Equal("public/walls/foo-bar(avatars).png")
	gt.Value(t, avatars.Kind()).Equal(model.WallKindAvatars)
}

func TestSanitizeRepo(t *testing.T) {
	gt.Value(t, model.SanitizeRepo("Hemanth/Contri.buzz")).Equal("hemanth-contri.buzz")

	// sanitizing is idempotent
	once := model.SanitizeRepo("Owner/Name")
	gt.Value(t, model.SanitizeRepo(once)).Equal(once)
}

func TestWallKind(t *testing.T) {
	gt.Value(t, model.WallKindFull.MIMEType()).Equal("image/jpeg")
	gt.Value(t, model.WallKindFull.Extension()).Equal(".jpg")
	gt.Value(t, model.WallKindAvatars.MIMEType()).Equal("image/png")
	gt.Value(t, model.WallKindAvatars.Extension()).Equal(".png")
}

func TestWallRequest_EmbedMarkup(t *testing.T) {
	full := gt.R1(model.NewWallRequest("owner/name", false)).NoError(t)
	markup := full.EmbedMarkup("https://contri.buzz")
	gt.String(t, markup).Contains("https://contri.buzz/api/wall?repo=owner/name")
	gt.String(t, markup).Contains("https://github.com/owner/name/graphs/contributors")
	gt.String(t, markup).Contains("Contributors' Wall")

	avatars := gt.R1(model.NewWallRequest("owner/name", true)).NoError(t)
	gt.String(t, avatars.EmbedMarkup("https://contri.buzz")).
		Contains("repo=owner/name&onlyAvatars=true")
}

func TestSubscriberList(t *testing.T) {
	list := &model.SubscriberList{}
	gt.False(t, list.Contains("a@example.com"))

	list.Append("a@example.com")
	gt.True(t, list.Contains("a@example.com"))
	// matching is case sensitive
	gt.False(t, list.Contains("A@example.com"))

	list.Append("b@example.com")
	gt.Array(t, list.EmailList).Equal([]string{"a@example.com", "b@example.com"})
}
