package ui

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/desktop-groups/internal/platform"
)

// IconLoader turns an icon reference from a group file into a resource,
// returning nil when there is nothing to show
type IconLoader func(ref string) fyne.Resource

// LoadIcon resolves and loads an icon reference
func LoadIcon(ref string) fyne.Resource {
	return IconResource(platform.ResolveIcon(ref))
}

// IconResource loads a resolved icon. ICO data is converted to PNG so the
// toolkit can render it. Failures are logged and yield nil.
func IconResource(icon *platform.ResolvedIcon) fyne.Resource {
	if icon == nil {
		return nil
	}

	data := icon.ICO
	if data == nil {
		if !platform.IsICO(icon.Path) {
			res, err := fyne.LoadResourceFromPath(icon.Path)
			if err != nil {
				log.Printf("Failed to open icon %s: %v", icon.Path, err)
				return nil
			}
			return res
		}

		var err error
		if data, err = os.ReadFile(icon.Path); err != nil {
			log.Printf("Failed to open icon %s: %v", icon.Path, err)
			return nil
		}
	}

	png, err := platform.ICOToPNG(data)
	if err != nil {
		log.Printf("Failed to convert icon %s: %v", icon.Source, err)
		return nil
	}
	name := strings.TrimSuffix(icon.Name(), filepath.Ext(icon.Name())) + ".png"
	return fyne.NewStaticResource(name, png)
}

// newIconImage creates a square image of the given size; res may be nil
func newIconImage(res fyne.Resource, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(res)
	img.SetMinSize(fyne.NewSize(size, size))
	img.FillMode = canvas.ImageFillContain
	return img
}
