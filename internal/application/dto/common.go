package dto

import "time"

// ErrorResponse cuerpo de error del backend: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OkResponse respuesta mínima de mutaciones sin payload propio.
type OkResponse struct {
	OK bool `json:"ok"`
}

// timeLayouts formatos de created_at que emite el backend. El backend de
// referencia serializa isoformat() sin zona horaria; uno real puede emitir
// RFC3339.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTime interpreta un timestamp del backend. Cadena vacía o formato
// desconocido devuelven el cero de time.Time; el cliente solo muestra fechas,
// nunca decide sobre ellas.
func ParseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
