package render

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

var (
	mono     = mustParseTTF(gomono.TTF)
	monobold = mustParseTTF(gomonobold.TTF)
)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}
