package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	mono    *text.GoTextFace // readouts
	regular *text.GoTextFace // help panel
	button  *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	return &fonts{
		mono:    &text.GoTextFace{Source: mono, Size: 18},
		regular: &text.GoTextFace{Source: regular, Size: 18},
		button:  &text.GoTextFace{Source: regular, Size: 24},
	}, nil
}
