package platform

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyne-io/image/ico"
	"github.com/tc-hib/winres"
)

// File extensions with special icon handling
const (
	ExecutableExtension = ".exe"
	ICOExtension        = ".ico"
)

// ErrNoIcon is returned when an executable has no icon group resource
var ErrNoIcon = errors.New("no icon resource found")

// ResolvedIcon is an icon reference after resolution
type ResolvedIcon struct {
	// Source is the reference as written in the group file
	Source string
	// Path is an image file to open directly. Empty when the icon was
	// extracted from an executable.
	Path string
	// ICO holds the icon extracted from an executable, in ICO file format
	ICO []byte
}

// Name returns a resource name for the icon
func (r *ResolvedIcon) Name() string {
	base := filepath.Base(r.Source)
	if r.ICO != nil {
		return strings.TrimSuffix(base, filepath.Ext(base)) + ICOExtension
	}
	return base
}

// IsExtracted reports whether the icon data came out of an executable
func (r *ResolvedIcon) IsExtracted() bool {
	return r.ICO != nil
}

// IsExecutable reports whether an icon reference points to a Windows executable
func IsExecutable(ref string) bool {
	return strings.EqualFold(filepath.Ext(ref), ExecutableExtension)
}

// IsICO reports whether a path points to an ICO file
func IsICO(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ICOExtension)
}

// ResolveIcon turns an icon reference into something that can be rendered.
// Executables get their first icon extracted; any failure there yields nil
// ("no icon"). Other references are returned as image paths unchanged.
// An empty reference yields nil.
func ResolveIcon(ref string) *ResolvedIcon {
	if ref == "" {
		return nil
	}

	if !IsExecutable(ref) {
		return &ResolvedIcon{Source: ref, Path: ref}
	}

	data, err := ExtractExecutableIcon(ref)
	if err != nil {
		log.Printf("No icon extracted from %s: %v", ref, err)
		return nil
	}
	return &ResolvedIcon{Source: ref, ICO: data}
}

// ExtractExecutableIcon returns the first icon group of a PE file as ICO data
func ExtractExecutableIcon(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rs, err := winres.LoadFromEXE(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}

	return firstIcon(rs)
}

// firstIcon saves the first icon group of a resource set, in resource
// order, as an ICO file
func firstIcon(rs *winres.ResourceSet) ([]byte, error) {
	var first winres.Identifier
	rs.WalkType(winres.RT_GROUP_ICON, func(resID winres.Identifier, _ uint16, _ []byte) bool {
		first = resID
		return false
	})
	if first == nil {
		return nil, ErrNoIcon
	}

	icon, err := rs.GetIcon(first)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon group: %w", err)
	}

	var buf bytes.Buffer
	if err := icon.SaveICO(&buf); err != nil {
		return nil, fmt.Errorf("failed to save icon: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeICO decodes ICO data, returning its largest image
func DecodeICO(data []byte) (image.Image, error) {
	return ico.Decode(bytes.NewReader(data))
}

// ICOToPNG converts ICO data to a PNG of its largest image
func ICOToPNG(data []byte) ([]byte, error) {
	img, err := DecodeICO(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}
