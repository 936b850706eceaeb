package database

import (
	"log"

	"gorm.io/gorm"

	articuloModel "descubrecurico_backend/internals/features/contenido/articulos/model"
	eventoModel "descubrecurico_backend/internals/features/contenido/eventos/model"
	dashModel "descubrecurico_backend/internals/features/dashboard/model"
	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
	encuestaModel "descubrecurico_backend/internals/features/socios/encuestas/model"
	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
	authModel "descubrecurico_backend/internals/features/users/auth/model"
)

// MigrateAll corre el AutoMigrate de todo el esquema, en orden de
// dependencia (geo → socios → empresas → encuestas). Se dispara con
// MIGRATE=1 al arrancar.
func MigrateAll(db *gorm.DB) {
	err := db.AutoMigrate(
		// auth
		&authModel.UserModel{},
		&authModel.Rol{},
		&authModel.UsuarioRol{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},

		// geo + membresía
		&socioModel.Region{},
		&socioModel.Provincia{},
		&socioModel.Comuna{},
		&socioModel.Rubro{},
		&socioModel.TipoComercializacion{},
		&socioModel.Socio{},
		&empresaModel.Empresa{},
		&encuestaModel.Encuesta{},

		// contenido
		&articuloModel.Categoria{},
		&articuloModel.Articulo{},
		&articuloModel.Noticia{},
		&articuloModel.Reportaje{},
		&articuloModel.BloqueArticulo{},
		&articuloModel.BloqueNoticia{},
		&articuloModel.BloqueReportaje{},
		&articuloModel.Comentario{},
		&eventoModel.Evento{},
		&eventoModel.Actividad{},

		// panel
		&dashModel.MensajeContacto{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate falló: %v", err)
	}
	log.Println("✅ Esquema migrado")
}
