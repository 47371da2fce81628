package components

import (
	"image"

	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIImage draws a texture, or a flat rectangle of Color when it has none.
// The swatch is a UIImage without a texture whose Color follows the bus.
type UIImage struct {
	engine.BaseComponent

	TexturePath string
	Color       rl.Color
	Tint        rl.Color
	KeepAspect  bool

	cache      textureCache
	img        image.Image
	imgVersion uint64
	fromFile   rl.Texture2D
}

func NewUIImage() *UIImage {
	return &UIImage{Color: rl.White, Tint: rl.White}
}

func (i *UIImage) Start() {
	if i.TexturePath != "" && i.fromFile.ID == 0 {
		i.fromFile = rl.LoadTexture(i.TexturePath)
	}
}

// SetImage replaces the texture with img; the upload happens on the next
// Draw. A nil img falls back to the file texture or the flat colour.
func (i *UIImage) SetImage(img image.Image) {
	i.img = img
	i.imgVersion++
	if img == nil {
		i.cache.release()
	}
}

// HasTexture reports whether Draw will draw a texture.
func (i *UIImage) HasTexture() bool {
	return i.img != nil || i.fromFile.ID > 0
}

func (i *UIImage) texture() rl.Texture2D {
	if i.img != nil {
		return i.cache.sync(i.img, i.imgVersion)
	}
	return i.fromFile
}

func (i *UIImage) DrawOrder() int { return 0 }

func (i *UIImage) Draw(rect rl.Rectangle) {
	tex := i.texture()
	if tex.ID == 0 {
		rl.DrawRectangleRec(rect, i.Color)
		return
	}
	dst := rect
	if i.KeepAspect {
		dst = fitAspect(rect, float32(tex.Width)/float32(tex.Height))
	}
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, i.Tint)
}

// fitAspect returns the largest rect of the given aspect centred in r.
func fitAspect(r rl.Rectangle, aspect float32) rl.Rectangle {
	if aspect <= 0 || r.Height <= 0 {
		return r
	}
	if aspect > r.Width/r.Height {
		h := r.Width / aspect
		return rl.Rectangle{X: r.X, Y: r.Y + (r.Height-h)/2, Width: r.Width, Height: h}
	}
	w := r.Height * aspect
	return rl.Rectangle{X: r.X + (r.Width-w)/2, Y: r.Y, Width: w, Height: r.Height}
}

func (i *UIImage) OnDestroy() {
	i.cache.release()
	if i.fromFile.ID > 0 {
		rl.UnloadTexture(i.fromFile)
		i.fromFile = rl.Texture2D{}
	}
}

func (i *UIImage) TypeName() string { return "UIImage" }

func (i *UIImage) Serialize() map[string]any {
	return map[string]any{
		"texturePath": i.TexturePath,
		"color":       colorToAny(i.Color),
		"tint":        colorToAny(i.Tint),
		"keepAspect":  i.KeepAspect,
	}
}

func (i *UIImage) Deserialize(data map[string]any) {
	readString(data, "texturePath", &i.TexturePath)
	readColor(data, "color", &i.Color)
	readColor(data, "tint", &i.Tint)
	readBool(data, "keepAspect", &i.KeepAspect)
}

func init() {
	engine.RegisterComponent("UIImage", func() engine.Serializable { return NewUIImage() })
}
