package render

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSource *text.GoTextFaceSource
	faces      = map[float64]text.Face{}
)

// LabelFace returns a cached face of the given size. If the bundled font
// cannot be parsed it falls back to the fixed basic font.
func LabelFace(size float64) text.Face {
	if face, ok := faces[size]; ok {
		return face
	}

	if faceSource == nil {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("render: load label font: %v", err)
			face := text.NewGoXFace(basicfont.Face7x13)
			faces[size] = face
			return face
		}
		faceSource = s
	}

	face := &text.GoTextFace{Source: faceSource, Size: size}
	faces[size] = face
	return face
}
