package helper

import "strings"

// YouTubeEmbedSrc extrae la URL embebible de un enlace de YouTube.
// Soporta youtu.be/<id> y youtube.com/watch?v=<id>; cualquier otra forma
// devuelve cadena vacía (el bloque simplemente no reproduce nada).
func YouTubeEmbedSrc(u string) string {
	if u == "" {
		return ""
	}
	if idx := strings.Index(u, "youtu.be/"); idx >= 0 {
		vid := u[idx+len("youtu.be/"):]
		if q := strings.Index(vid, "?"); q >= 0 {
			vid = vid[:q]
		}
		if vid == "" {
			return ""
		}
		return "https://www.youtube.com/embed/" + vid
	}
	if idx := strings.Index(u, "youtube.com/watch?"); idx >= 0 {
		// "v" tiene que ser el nombre completo del parámetro: "fv=2" o
		// "cv=1" no cuentan.
		query := u[idx+len("youtube.com/watch?"):]
		for _, par := range strings.Split(query, "&") {
			if vid, ok := strings.CutPrefix(par, "v="); ok && vid != "" {
				return "https://www.youtube.com/embed/" + vid
			}
		}
	}
	return ""
}
