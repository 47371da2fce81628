package components

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// textureCache keeps a GPU copy of a CPU bitmap and re-uploads it only when
// the bitmap's version changes. All methods must run on the render thread.
type textureCache struct {
	tex     rl.Texture2D
	version uint64
}

func (c *textureCache) sync(img image.Image, version uint64) rl.Texture2D {
	if img == nil {
		return c.tex
	}
	if c.tex.ID > 0 && c.version == version {
		return c.tex
	}
	c.release()
	cpu := rl.NewImageFromImage(img)
	c.tex = rl.LoadTextureFromImage(cpu)
	rl.UnloadImage(cpu)
	c.version = version
	return c.tex
}

func (c *textureCache) release() {
	if c.tex.ID > 0 {
		rl.UnloadTexture(c.tex)
	}
	c.tex = rl.Texture2D{}
}

func drawStretched(tex rl.Texture2D, rect rl.Rectangle) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	rl.DrawTexturePro(tex, src, rect, rl.Vector2{}, 0, rl.White)
}
