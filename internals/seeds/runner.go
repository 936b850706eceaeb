package seeds

import (
	"gorm.io/gorm"

	geo "descubrecurico_backend/internals/seeds/geo"
	usuarios "descubrecurico_backend/internals/seeds/usuarios"
)

// RunAllSeeds corre los seeders idempotentes: roles, superusuario y la
// jerarquía geográfica. Se dispara con SEED=1 al arrancar.
func RunAllSeeds(db *gorm.DB) {
	usuarios.SeedRoles(db)
	usuarios.SeedSuperusuario(db)
	geo.SeedGeoFromJSON(db, "internals/seeds/geo/paisdata.json")
}
