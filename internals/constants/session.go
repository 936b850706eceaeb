package constants

// Claves de sesión del canal socio (más la empresa en curso de encuesta).
const (
	SesEsSocioLogin = "es_socio_login"
	SesSocioID      = "socio_id"
	SesSocioNombre  = "socio_nombre"
	SesSocioRUT     = "socio_rut"
	SesEmpresaID    = "empresa_id"
)
