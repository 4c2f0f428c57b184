// Package renderer draws contributor walls and fits the encoded result
// under a byte budget. Layout is a fixed-column grid of circular avatars;
// the full wall adds username and contribution labels on an opaque dark
// background, the avatar wall is avatars only on a transparent background.
package renderer

import (
	"image"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
)

// All cell sizes are the logical values of the original layout multiplied
// by a constant 1.5 resolution factor.
const (
	scale = 1.5

	fullAvatarSize    = 150 * scale
	fullHorizontalGap = 40 * scale
	fullVerticalGap   = 60 * scale
	fullColumns       = 6
	nameFontSize      = 30 * scale
	contribFontSize   = 28 * scale
	nameGap           = 20 * scale
	fullWidth         = 1280 * scale
	fullTopPadding    = 60 * scale
	fullBottomPadding = 70 * scale

	avatarOnlySize    = 100 * scale
	avatarOnlyGap     = 20 * scale
	avatarOnlyColumns = 8

	footerFontSize = 24 * scale

	backgroundColor  = "#0d1117"
	ringColor        = "#58a6ff"
	textColor        = "#ffffff"
	contribTextColor = "#b0b0b0"
	placeholderColor = "#30363d"

	fullFooterText   = "Made with ❤️ by Contri.Buzz"
	avatarFooterText = "Made with 💙 by Contri.Buzz"

	// usernames wrap into fixed-width chunks below the avatar
	nameChunkLen = 10
)

// Wall is a rendered raster, ready for compression
type Wall struct {
	Kind  model.WallKind
	Image image.Image
}

// Width returns the pixel width of the rendered wall
func (w *Wall) Width() int { return w.Image.Bounds().Dx() }

// Height returns the pixel height of the rendered wall
func (w *Wall) Height() int { return w.Image.Bounds().Dy() }

// FullWallHeight computes the full wall canvas height for n contributors.
// The (rows-1) gap term matches the historical formula exactly, including
// the n=0 case where it subtracts one gap from the padding.
func FullWallHeight(n int) int {
	rows := (n + fullColumns - 1) / fullColumns
	rowHeight := fullAvatarSize + nameGap + nameFontSize + contribFontSize
	return int(fullTopPadding + float64(rows)*rowHeight + float64(rows-1)*fullVerticalGap + fullBottomPadding)
}

// AvatarWallSize computes the avatar wall canvas dimensions for n contributors
func AvatarWallSize(n int) (int, int) {
	rows := (n + avatarOnlyColumns - 1) / avatarOnlyColumns
	width := avatarOnlyColumns*avatarOnlySize + (avatarOnlyColumns-1)*avatarOnlyGap + 2*avatarOnlyGap
	height := float64(rows)*avatarOnlySize + float64(rows-1)*avatarOnlyGap + 2*avatarOnlyGap + 60*scale
	return int(width), int(height)
}

// FullWall renders the opaque wall with usernames and contribution counts.
// avatars holds the decoded avatar image per contributor; a nil entry
// degrades that cell to a placeholder disc instead of aborting the render.
func FullWall(contributors []*model.Contributor, avatars []image.Image) (*Wall, error) {
	if len(avatars) != len(contributors) {
		return nil, goerr.New("avatar count does not match contributor count",
			goerr.V("contributors", len(contributors)), goerr.V("avatars", len(avatars)))
	}

	width := int(fullWidth)
	height := FullWallHeight(len(contributors))
	dc := gg.NewContext(width, height)

	dc.SetHexColor(backgroundColor)
	dc.Clear()

	contentWidth := fullAvatarSize*fullColumns + fullHorizontalGap*(fullColumns-1)
	sidePadding := (fullWidth - contentWidth) / 2
	rowHeight := fullAvatarSize + nameGap + nameFontSize + contribFontSize

	nameFace, err := face(nameFontSize, false)
	if err != nil {
		return nil, err
	}
	contribFace, err := face(contribFontSize*0.6, true)
	if err != nil {
		return nil, err
	}

	for i, c := range contributors {
		row := i / fullColumns
		col := i % fullColumns

		cx := sidePadding + float64(col)*(fullAvatarSize+fullHorizontalGap) + fullAvatarSize/2
		top := fullTopPadding + float64(row)*(rowHeight+fullVerticalGap)
		cy := top + fullAvatarSize/2

		drawAvatar(dc, avatars[i], cx, cy, fullAvatarSize/2, 4*scale)

		dc.SetFontFace(nameFace)
		dc.SetHexColor(textColor)
		for j, line := range chunkString(c.Login, nameChunkLen) {
			y := top + fullAvatarSize + nameGap + float64(j)*nameFontSize
			dc.DrawStringAnchored(line, cx, y, 0.5, 1)
		}

		dc.SetFontFace(contribFace)
		dc.SetHexColor(contribTextColor)
		label := strconv.Itoa(c.Contributions) + "+"
		dc.DrawStringAnchored(label, cx+fullAvatarSize/2-20*scale, top, 0, 1)
	}

	footerFace, err := face(footerFontSize, false)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(footerFace)
	dc.SetHexColor(textColor)
	dc.DrawStringAnchored(fullFooterText, fullWidth/2-150*scale, float64(height)-40*scale, 0, 1)

	return &Wall{Kind: model.WallKindFull, Image: dc.Image()}, nil
}

// AvatarWall renders the transparent avatars-only wall
func AvatarWall(contributors []*model.Contributor, avatars []image.Image) (*Wall, error) {
	if len(avatars) != len(contributors) {
		return nil, goerr.New("avatar count does not match contributor count",
			goerr.V("contributors", len(contributors)), goerr.V("avatars", len(avatars)))
	}

	width, height := AvatarWallSize(len(contributors))
	dc := gg.NewContext(width, height)
	// no background fill: the avatar wall stays transparent

	for i := range contributors {
		row := i / avatarOnlyColumns
		col := i % avatarOnlyColumns

		x := avatarOnlyGap + float64(col)*(avatarOnlySize+avatarOnlyGap)
		y := avatarOnlyGap + float64(row)*(avatarOnlySize+avatarOnlyGap)

		drawAvatar(dc, avatars[i], x+avatarOnlySize/2, y+avatarOnlySize/2, avatarOnlySize/2, 2*scale)
	}

	footerFace, err := face(footerFontSize, false)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(footerFace)
	dc.SetHexColor(ringColor)
	dc.DrawStringAnchored(avatarFooterText, float64(width)/2, float64(height)-10*scale, 0.5, 0)

	return &Wall{Kind: model.WallKindAvatars, Image: dc.Image()}, nil
}

// drawAvatar draws one circular avatar cell with its ring border. A nil
// image degrades to a filled placeholder disc.
func drawAvatar(dc *gg.Context, avatar image.Image, cx, cy, radius, ringWidth float64) {
	if avatar != nil {
		size := int(radius * 2)
		scaled := scaleTo(avatar, size, size)
		dc.DrawCircle(cx, cy, radius)
		dc.Clip()
		dc.DrawImage(scaled, int(cx-radius), int(cy-radius))
		dc.ResetClip()
	} else {
		dc.SetHexColor(placeholderColor)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
	}

	dc.SetHexColor(ringColor)
	dc.SetLineWidth(ringWidth)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()
}

// scaleTo resamples src into a w x h RGBA image
func scaleTo(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// chunkString splits s into rune chunks of at most n characters
func chunkString(s string, n int) []string {
	runes := []rune(s)
	var chunks []string
	for len(runes) > 0 {
		k := n
		if k > len(runes) {
			k = len(runes)
		}
		chunks = append(chunks, string(runes[:k]))
		runes = runes[k:]
	}
	return chunks
}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error
)

// face builds a font face at the given pixel size from the embedded Go
// fonts, so rendering never depends on system fonts.
func face(size float64, bold bool) (font.Face, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return nil, goerr.Wrap(fontErr, "failed to parse embedded font")
	}

	f := regularFont
	if bold {
		f = boldFont
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build font face", goerr.V("size", size))
	}
	return fc, nil
}
