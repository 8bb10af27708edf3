package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/trig-visualization/internal/logging"
)

// exportSnapshot asks for a file name and writes the current frame there
// as PNG. Cancelling the dialog is not an error.
func (g *Game) exportSnapshot() (err error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("trig.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := g.snapshots.Render(f, g.frame, g.state.ThetaText, int(g.size.Width), int(g.size.Height)); err != nil {
		return err
	}
	logging.Logger().Info("snapshot written", "path", path)
	return nil
}
