package renderer_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/renderer"
)

func testContributors(n int) []*model.Contributor {
	contributors := make([]*model.Contributor, n)
	for i := range contributors {
		contributors[i] = &model.Contributor{
			Login:         "user-with-a-long-login",
			AvatarURL:     "https://avatars.example.com/u/1",
			Contributions: 10 + i,
		}
	}
	return contributors
}

func testAvatar() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	return img
}

func TestFullWallHeight(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "empty list", n: 0, want: 105},
		{name: "single row", n: 1, want: 537},
		{name: "full row", n: 6, want: 537},
		{name: "two rows", n: 7, want: 969},
		{name: "max contributors", n: 100, want: 7449},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Number(t, renderer.FullWallHeight(tt.n)).Equal(tt.want)
		})
	}
}

func TestAvatarWallSize(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantWidth  int
		wantHeight int
	}{
		{name: "empty list", n: 0, wantWidth: 1470, wantHeight: 120},
		{name: "single row", n: 1, wantWidth: 1470, wantHeight: 300},
		{name: "two rows", n: 9, wantWidth: 1470, wantHeight: 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := renderer.AvatarWallSize(tt.n)
			gt.Number(t, w).Equal(tt.wantWidth)
			gt.Number(t, h).Equal(tt.wantHeight)
		})
	}
}

func TestFullWall(t *testing.T) {
	contributors := testContributors(7)
	avatars := make([]image.Image, len(contributors))
	for i := range avatars {
		avatars[i] = testAvatar()
	}
	// one failed download degrades to a placeholder cell
	avatars[3] = nil

	wall := gt.R1(renderer.FullWall(contributors, avatars)).NoError(t)
	gt.Value(t, wall.Kind).Equal(model.WallKindFull)
	gt.Number(t, wall.Width()).Equal(1920)
	gt.Number(t, wall.Height()).Equal(renderer.FullWallHeight(7))
}

func TestFullWall_CountMismatch(t *testing.T) {
	contributors := testContributors(3)
	_, err := renderer.FullWall(contributors, make([]image.Image, 2))
	gt.Error(t, err)
}

func TestAvatarWall(t *testing.T) {
	contributors := testContributors(9)
	avatars := make([]image.Image, len(contributors))

	wall := gt.R1(renderer.AvatarWall(contributors, avatars)).NoError(t)
	gt.Value(t, wall.Kind).Equal(model.WallKindAvatars)

	wantW, wantH := renderer.AvatarWallSize(9)
	gt.Number(t, wall.Width()).Equal(wantW)
	gt.Number(t, wall.Height()).Equal(wantH)

	// transparent background: a corner pixel outside any avatar cell
	_, _, _, a := wall.Image.At(0, wall.Height()-1).RGBA()
	gt.Number(t, int(a)).Equal(0)
}

func TestFullWall_EmptyList(t *testing.T) {
	wall := gt.R1(renderer.FullWall(nil, nil)).NoError(t)
	gt.Number(t, wall.Width()).Equal(1920)
	gt.Number(t, wall.Height()).Equal(105)
}
