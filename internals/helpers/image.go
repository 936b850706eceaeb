package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxImageEdge = 1600
	webpQuality  = 82
)

var reFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = reFilename.ReplaceAllString(filename, "-")
	if filename == "" {
		filename = "imagen"
	}
	return filename
}

// GenerateUniqueFilename antepone un uuid corto para evitar colisiones.
func GenerateUniqueFilename(original string) string {
	base := strings.TrimSuffix(sanitizeFilename(original), filepath.Ext(original))
	return fmt.Sprintf("%s-%s.webp", uuid.NewString()[:8], base)
}

// GuardarImagen procesa una imagen subida: decodifica (jpeg/png/webp),
// limita el lado mayor a maxImageEdge y la guarda como webp bajo
// MEDIA_ROOT/folder. Devuelve la URL pública (/media/...).
func GuardarImagen(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("no se pudo leer la imagen: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		// segundo intento: webp
		img, err = webp.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return "", fmt.Errorf("formato de imagen no soportado: %w", err)
		}
	}

	b := img.Bounds()
	if b.Dx() > maxImageEdge || b.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("no se pudo codificar la imagen: %w", err)
	}

	mediaRoot := os.Getenv("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "media"
	}
	dir := filepath.Join(mediaRoot, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio de media: %w", err)
	}

	name := GenerateUniqueFilename(fileHeader.Filename)
	if err := os.WriteFile(filepath.Join(dir, name), out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("no se pudo guardar la imagen: %w", err)
	}

	return "/media/" + folder + "/" + name, nil
}
