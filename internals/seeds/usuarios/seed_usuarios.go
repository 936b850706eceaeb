package usuarios

import (
	"log"
	"os"

	"gorm.io/gorm"

	"descubrecurico_backend/internals/constants"
	model "descubrecurico_backend/internals/features/users/auth/model"
	helper "descubrecurico_backend/internals/helpers"
)

// SeedRoles asegura las filas admin/socio de la tabla roles.
func SeedRoles(db *gorm.DB) {
	roles := []model.Rol{
		{Nombre: constants.RoleAdmin, Descripcion: "Administrador del gremio"},
		{Nombre: constants.RoleSocio, Descripcion: "Socio del gremio"},
	}
	for _, rol := range roles {
		var existing model.Rol
		if err := db.Where("nombre = ?", rol.Nombre).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&rol).Error; err != nil {
			log.Printf("❌ Seed de rol %q falló: %v", rol.Nombre, err)
			return
		}
		log.Printf("✅ Rol %q creado", rol.Nombre)
	}
}

// SeedSuperusuario crea la cuenta staff inicial desde env y le asigna el
// rol admin automáticamente (un superusuario nuevo siempre nace admin).
func SeedSuperusuario(db *gorm.DB) {
	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ SUPERUSER_EMAIL/SUPERUSER_PASSWORD no definidos, se omite el superusuario")
		return
	}

	var existing model.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Superusuario %s ya existe, se omite", email)
		return
	}

	hashed, err := helper.HashPassword(password)
	if err != nil {
		log.Printf("❌ No se pudo hashear la contraseña del superusuario: %v", err)
		return
	}

	user := model.UserModel{
		UserName: "admin",
		Email:    email,
		Password: hashed,
		IsActive: true,
		IsSuper:  true,
	}
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		var rolAdmin model.Rol
		if err := tx.Where("nombre = ?", constants.RoleAdmin).First(&rolAdmin).Error; err != nil {
			return err
		}
		return tx.Create(&model.UsuarioRol{UsuarioID: user.ID, RolID: rolAdmin.ID}).Error
	})
	if txErr != nil {
		log.Printf("❌ Seed del superusuario falló: %v", txErr)
		return
	}
	log.Printf("✅ Superusuario %s creado con rol admin", email)
}
