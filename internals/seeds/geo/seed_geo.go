package geo

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "descubrecurico_backend/internals/features/socios/socios/model"
)

type regionSeed struct {
	ID          uint   `json:"id"`
	Region      string `json:"region"`
	Abreviatura string `json:"abreviatura"`
	Capital     string `json:"capital"`
}

type provinciaSeed struct {
	ID        uint   `json:"id"`
	Provincia string `json:"provincia"`
	RegionID  uint   `json:"region_id"`
}

type comunaSeed struct {
	ID          uint   `json:"id"`
	Comuna      string `json:"comuna"`
	ProvinciaID uint   `json:"provincia_id"`
}

type paisData struct {
	Regiones   []regionSeed    `json:"regiones"`
	Provincias []provinciaSeed `json:"provincias"`
	Comunas    []comunaSeed    `json:"comunas"`
}

// SeedGeoFromJSON carga la jerarquía Región → Provincia → Comuna desde el
// documento paisdata.json, upsert por id numérico, padres primero.
func SeedGeoFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo datos geográficos:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ No se pudo leer %s, se omite el seed geográfico: %v", filePath, err)
		return
	}

	var data paisData
	if err := sonic.Unmarshal(raw, &data); err != nil {
		log.Printf("❌ paisdata.json inválido: %v", err)
		return
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}

	regiones := make([]model.Region, 0, len(data.Regiones))
	for _, r := range data.Regiones {
		regiones = append(regiones, model.Region{
			ID: r.ID, Region: r.Region, Abreviatura: r.Abreviatura, Capital: r.Capital,
		})
	}
	if len(regiones) > 0 {
		if err := db.Clauses(upsert).Create(&regiones).Error; err != nil {
			log.Printf("❌ Seed de regiones falló: %v", err)
			return
		}
	}

	provincias := make([]model.Provincia, 0, len(data.Provincias))
	for _, p := range data.Provincias {
		provincias = append(provincias, model.Provincia{
			ID: p.ID, Provincia: p.Provincia, RegionID: p.RegionID,
		})
	}
	if len(provincias) > 0 {
		if err := db.Clauses(upsert).Create(&provincias).Error; err != nil {
			log.Printf("❌ Seed de provincias falló: %v", err)
			return
		}
	}

	comunas := make([]model.Comuna, 0, len(data.Comunas))
	for _, cm := range data.Comunas {
		comunas = append(comunas, model.Comuna{
			ID: cm.ID, Comuna: cm.Comuna, ProvinciaID: cm.ProvinciaID,
		})
	}
	if len(comunas) > 0 {
		if err := db.Clauses(upsert).Create(&comunas).Error; err != nil {
			log.Printf("❌ Seed de comunas falló: %v", err)
			return
		}
	}

	log.Printf("✅ Geo seed listo: %d regiones, %d provincias, %d comunas",
		len(regiones), len(provincias), len(comunas))
}
