package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlameShader draws the candle glow
	FlameShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	flameSrc, err := shaderFS.ReadFile("shaders/flame.kage")
	if err != nil {
		return err
	}
	FlameShader, err = ebiten.NewShader(flameSrc)
	if err != nil {
		return err
	}

	return nil
}
