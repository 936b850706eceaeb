package controller

import (
	"context"
	"errors"
	"sort"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "descubrecurico_backend/internals/features/contenido/articulos/dto"
	model "descubrecurico_backend/internals/features/contenido/articulos/model"
	helper "descubrecurico_backend/internals/helpers"
)

type ArticuloController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewArticuloController(db *gorm.DB) *ArticuloController {
	return &ArticuloController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Small helpers
============================== */

func parseTipoParam(c *fiber.Ctx) (model.TipoArticulo, error) {
	tipo, ok := model.ParseTipoArticulo(strings.TrimSpace(c.Params("tipo")))
	if !ok {
		return "", fiber.NewError(fiber.StatusNotFound, "Tipo de contenido desconocido")
	}
	return tipo, nil
}

// joinCategorias devuelve la join table m2m del tipo y su columna owner.
func joinCategorias(t model.TipoArticulo) (table, ownerCol string) {
	switch t {
	case model.TipoArticuloNoticia:
		return "noticia_categorias", "noticia_id"
	case model.TipoArticuloReportaje:
		return "reportaje_categorias", "reportaje_id"
	default:
		return "articulo_categorias", "articulo_id"
	}
}

// resolverCategorias junta las categorías seleccionadas por id con las del
// texto libre "nuevas_categorias": cada nombre nuevo se busca por match
// exacto de nombre y se crea solo si no existe, con slug único propio.
func resolverCategorias(ctx context.Context, tx *gorm.DB, ids []uint, nuevas string) ([]model.Categoria, error) {
	var out []model.Categoria

	if len(ids) > 0 {
		if err := tx.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
			return nil, err
		}
	}

	enSet := make(map[string]struct{}, len(out))
	for _, cat := range out {
		enSet[cat.Nombre] = struct{}{}
	}

	for _, nombre := range dto.ParseNuevasCategorias(nuevas) {
		if _, ok := enSet[nombre]; ok {
			continue
		}
		var cat model.Categoria
		err := tx.WithContext(ctx).Where("nombre = ?", nombre).First(&cat).Error
		switch {
		case err == nil:
			// ya existía
		case errors.Is(err, gorm.ErrRecordNotFound):
			slug, serr := helper.EnsureUniqueSlug(ctx, tx, "categorias", "slug", helper.Slugify(nombre, 140), nil, 140)
			if serr != nil {
				return nil, serr
			}
			cat = model.Categoria{Nombre: nombre, Slug: slug}
			if cerr := tx.WithContext(ctx).Create(&cat).Error; cerr != nil {
				// carrera con otra creación del mismo nombre: relee
				if helper.IsDuplicateKey(cerr) {
					if rerr := tx.WithContext(ctx).Where("nombre = ?", nombre).First(&cat).Error; rerr != nil {
						return nil, rerr
					}
				} else {
					return nil, cerr
				}
			}
		default:
			return nil, err
		}
		enSet[cat.Nombre] = struct{}{}
		out = append(out, cat)
	}

	return out, nil
}

// asignarSlug calcula el slug libre para el título dentro de la tabla del
// tipo. excludeID excluye el propio registro en updates.
func asignarSlug(ctx context.Context, tx *gorm.DB, tipo model.TipoArticulo, titulo string, excludeID *uuid.UUID) (string, error) {
	base := helper.Slugify(titulo, 220)
	var scope func(*gorm.DB) *gorm.DB
	if excludeID != nil {
		id := *excludeID
		scope = func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", id) }
	}
	return helper.EnsureUniqueSlug(ctx, tx, tipo.Tabla(), "slug", base, scope, 220)
}

const maxSlugRetries = 3

/* ==============================
   Listado combinado
============================== */

// GET /api/contenido: listado combinado de las tres tablas, filtros
// ?tipo= y ?categoria= (slug), orden publicado_en desc, paginado.
func (ctl *ArticuloController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 12, 60)

	var tipos []model.TipoArticulo
	if raw := strings.TrimSpace(c.Query("tipo")); raw != "" {
		tipo, ok := model.ParseTipoArticulo(raw)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipo de contenido desconocido")
		}
		tipos = []model.TipoArticulo{tipo}
	} else {
		tipos = []model.TipoArticulo{model.TipoArticuloArticulo, model.TipoArticuloNoticia, model.TipoArticuloReportaje}
	}

	categoria := strings.TrimSpace(c.Query("categoria"))
	soloPublicados := c.Locals("userRole") != "admin"

	var items []dto.ArticuloListItem
	for _, tipo := range tipos {
		q := ctl.DB.WithContext(c.Context()).
			Table(tipo.Tabla()).
			Select("id, titulo, slug, resumen, autor, portada, estado, publicado_en")
		if soloPublicados {
			q = q.Where("estado = ?", model.EstadoPublicado)
		}
		if categoria != "" {
			join, ownerCol := joinCategorias(tipo)
			q = q.Joins("JOIN "+join+" jc ON jc."+ownerCol+" = "+tipo.Tabla()+".id").
				Joins("JOIN categorias cat ON cat.id = jc.categoria_id").
				Where("cat.slug = ?", categoria)
		}

		var rows []dto.ArticuloListItem
		if err := q.Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range rows {
			rows[i].Tipo = string(tipo)
		}
		items = append(items, rows...)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublicadoEn.After(items[j].PublicadoEn)
	})

	total := int64(len(items))
	start := paging.Offset
	if start > len(items) {
		start = len(items)
	}
	end := start + paging.Limit
	if end > len(items) {
		end = len(items)
	}
	page := items[start:end]

	return helper.Success(c, "Listado de contenido", fiber.Map{
		"items":      page,
		"pagination": helper.BuildPagination(total, len(page), paging),
	})
}

// GET /api/contenido/categorias
func (ctl *ArticuloController) ListarCategorias(c *fiber.Ctx) error {
	var cats []model.Categoria
	if err := ctl.DB.WithContext(c.Context()).Order("nombre ASC").Find(&cats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Categorías", dto.FromCategorias(cats))
}

/* ==============================
   Detalle
============================== */

// GET /api/contenido/:tipo/:slug: detalle con bloques ordenados y
// comentarios.
func (ctl *ArticuloController) Detalle(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	slug := strings.TrimSpace(c.Params("slug"))

	resp, ownerID, err := ctl.cargarDetalle(c.Context(), tipo, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contenido no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var comentarios []model.Comentario
	if err := ctl.DB.WithContext(c.Context()).
		Where("tipo = ? AND owner_id = ?", tipo, ownerID).
		Order("creado_en DESC").
		Find(&comentarios).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, cm := range comentarios {
		resp.Comentarios = append(resp.Comentarios, dto.FromComentario(cm))
	}

	return helper.Success(c, "Detalle de contenido", resp)
}

// cargarDetalle resuelve la fila por tipo (resolutor explícito por variante,
// nunca por mutación de tipo).
func (ctl *ArticuloController) cargarDetalle(ctx context.Context, tipo model.TipoArticulo, slug string) (dto.ArticuloResponse, uuid.UUID, error) {
	preload := func(q *gorm.DB) *gorm.DB {
		return q.Preload("Categorias").
			Preload("Bloques", func(b *gorm.DB) *gorm.DB { return b.Order("orden ASC, id ASC") })
	}

	switch tipo {
	case model.TipoArticuloNoticia:
		var row model.Noticia
		if err := preload(ctl.DB.WithContext(ctx)).First(&row, "slug = ?", slug).Error; err != nil {
			return dto.ArticuloResponse{}, uuid.Nil, err
		}
		return dto.FromNoticia(&row), row.ID, nil
	case model.TipoArticuloReportaje:
		var row model.Reportaje
		if err := preload(ctl.DB.WithContext(ctx)).First(&row, "slug = ?", slug).Error; err != nil {
			return dto.ArticuloResponse{}, uuid.Nil, err
		}
		return dto.FromReportaje(&row), row.ID, nil
	default:
		var row model.Articulo
		if err := preload(ctl.DB.WithContext(ctx)).First(&row, "slug = ?", slug).Error; err != nil {
			return dto.ArticuloResponse{}, uuid.Nil, err
		}
		return dto.FromArticulo(&row), row.ID, nil
	}
}

/* ==============================
   Create / Update / Delete (admin)
============================== */

// POST /api/a/contenido/:tipo: Create
func (ctl *ArticuloController) Crear(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.CreateArticuloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := req.ToBase()
	var resp dto.ArticuloResponse

	// Transacción + reintento: la unique constraint del slug es la fuente
	// de verdad, no el check previo.
	for intento := 0; ; intento++ {
		err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			slug, serr := asignarSlug(c.Context(), tx, tipo, base.Titulo, nil)
			if serr != nil {
				return serr
			}
			base.Slug = slug

			cats, cerr := resolverCategorias(c.Context(), tx, req.Categorias, req.NuevasCategorias)
			if cerr != nil {
				return cerr
			}

			switch tipo {
			case model.TipoArticuloNoticia:
				row := model.Noticia{ArticuloBase: base}
				for _, b := range req.Bloques {
					row.Bloques = append(row.Bloques, model.BloqueNoticia{BloqueBase: b.ToBase()})
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				if len(cats) > 0 {
					if err := tx.Model(&row).Association("Categorias").Replace(cats); err != nil {
						return err
					}
				}
				row.Categorias = cats
				resp = dto.FromNoticia(&row)
			case model.TipoArticuloReportaje:
				row := model.Reportaje{ArticuloBase: base}
				for _, b := range req.Bloques {
					row.Bloques = append(row.Bloques, model.BloqueReportaje{BloqueBase: b.ToBase()})
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				if len(cats) > 0 {
					if err := tx.Model(&row).Association("Categorias").Replace(cats); err != nil {
						return err
					}
				}
				row.Categorias = cats
				resp = dto.FromReportaje(&row)
			default:
				row := model.Articulo{ArticuloBase: base}
				for _, b := range req.Bloques {
					row.Bloques = append(row.Bloques, model.BloqueArticulo{BloqueBase: b.ToBase()})
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				if len(cats) > 0 {
					if err := tx.Model(&row).Association("Categorias").Replace(cats); err != nil {
						return err
					}
				}
				row.Categorias = cats
				resp = dto.FromArticulo(&row)
			}
			return nil
		})

		if err == nil {
			break
		}
		if helper.IsDuplicateKey(err) && intento < maxSlugRetries {
			continue
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Contenido creado", resp)
}

// PUT /api/a/contenido/:tipo/:id: Update (los bloques se reemplazan como
// conjunto cuando vienen en el payload)
func (ctl *ArticuloController) Actualizar(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateArticuloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var base model.ArticuloBase
		if err := tx.Table(tipo.Tabla()).Where("id = ?", id).Take(&base).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Titulo != nil && strings.TrimSpace(*req.Titulo) != "" && strings.TrimSpace(*req.Titulo) != base.Titulo {
			titulo := strings.TrimSpace(*req.Titulo)
			slug, serr := asignarSlug(c.Context(), tx, tipo, titulo, &id)
			if serr != nil {
				return serr
			}
			updates["titulo"] = titulo
			updates["slug"] = slug
		}
		if req.Resumen != nil {
			updates["resumen"] = strings.TrimSpace(*req.Resumen)
		}
		if req.Autor != nil && strings.TrimSpace(*req.Autor) != "" {
			updates["autor"] = strings.TrimSpace(*req.Autor)
		}
		if req.Estado != nil {
			updates["estado"] = *req.Estado
		}
		if req.PublicadoEn != nil {
			updates["publicado_en"] = *req.PublicadoEn
		}
		if len(updates) > 0 {
			if err := tx.Table(tipo.Tabla()).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Bloques != nil {
			if err := ctl.reemplazarBloques(tx, tipo, id, *req.Bloques); err != nil {
				return err
			}
		}

		if req.Categorias != nil || strings.TrimSpace(req.NuevasCategorias) != "" {
			var ids []uint
			if req.Categorias != nil {
				ids = *req.Categorias
			}
			cats, cerr := resolverCategorias(c.Context(), tx, ids, req.NuevasCategorias)
			if cerr != nil {
				return cerr
			}
			if err := ctl.reemplazarCategorias(tx, tipo, id, cats); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contenido no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	// recarga para la respuesta
	var row struct{ Slug string }
	if err := ctl.DB.WithContext(c.Context()).Table(tipo.Tabla()).Where("id = ?", id).
		Take(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp, _, err := ctl.cargarDetalle(c.Context(), tipo, row.Slug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Contenido actualizado", resp)
}

func (ctl *ArticuloController) reemplazarBloques(tx *gorm.DB, tipo model.TipoArticulo, id uuid.UUID, bloques []dto.BloqueRequest) error {
	switch tipo {
	case model.TipoArticuloNoticia:
		if err := tx.Where("noticia_id = ?", id).Delete(&model.BloqueNoticia{}).Error; err != nil {
			return err
		}
		for _, b := range bloques {
			row := model.BloqueNoticia{BloqueBase: b.ToBase(), NoticiaID: id}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	case model.TipoArticuloReportaje:
		if err := tx.Where("reportaje_id = ?", id).Delete(&model.BloqueReportaje{}).Error; err != nil {
			return err
		}
		for _, b := range bloques {
			row := model.BloqueReportaje{BloqueBase: b.ToBase(), ReportajeID: id}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	default:
		if err := tx.Where("articulo_id = ?", id).Delete(&model.BloqueArticulo{}).Error; err != nil {
			return err
		}
		for _, b := range bloques {
			row := model.BloqueArticulo{BloqueBase: b.ToBase(), ArticuloID: id}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (ctl *ArticuloController) reemplazarCategorias(tx *gorm.DB, tipo model.TipoArticulo, id uuid.UUID, cats []model.Categoria) error {
	switch tipo {
	case model.TipoArticuloNoticia:
		row := model.Noticia{ArticuloBase: model.ArticuloBase{ID: id}}
		return tx.Model(&row).Association("Categorias").Replace(cats)
	case model.TipoArticuloReportaje:
		row := model.Reportaje{ArticuloBase: model.ArticuloBase{ID: id}}
		return tx.Model(&row).Association("Categorias").Replace(cats)
	default:
		row := model.Articulo{ArticuloBase: model.ArticuloBase{ID: id}}
		return tx.Model(&row).Association("Categorias").Replace(cats)
	}
}

// DELETE /api/a/contenido/:tipo/:id
func (ctl *ArticuloController) Eliminar(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		join, ownerCol := joinCategorias(tipo)
		if err := tx.Exec("DELETE FROM "+join+" WHERE "+ownerCol+" = ?", id).Error; err != nil {
			return err
		}

		var res *gorm.DB
		switch tipo {
		case model.TipoArticuloNoticia:
			res = tx.Delete(&model.Noticia{}, "id = ?", id)
		case model.TipoArticuloReportaje:
			res = tx.Delete(&model.Reportaje{}, "id = ?", id)
		default:
			res = tx.Delete(&model.Articulo{}, "id = ?", id)
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// los comentarios se limpian acá: la unión etiquetada no tiene FK real
		return tx.Where("tipo = ? AND owner_id = ?", tipo, id).Delete(&model.Comentario{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contenido no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonDeleted(c, "Contenido eliminado", fiber.Map{"id": id, "tipo": tipo})
}

/* ==============================
   Uploads (admin)
============================== */

// POST /api/a/contenido/:tipo/:id/portada: multipart "imagen"
func (ctl *ArticuloController) SubirPortada(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}
	url, err := helper.GuardarImagen(string(tipo)+"/portadas", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).Table(tipo.Tabla()).Where("id = ?", id).Update("portada", url)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Contenido no encontrado")
	}
	return helper.JsonUpdated(c, "Portada actualizada", fiber.Map{"portada": url})
}

// POST /api/a/contenido/:tipo/bloques/imagen: sube la imagen de un bloque
// y devuelve la URL para incluirla en el payload del bloque.
func (ctl *ArticuloController) SubirImagenBloque(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}
	url, err := helper.GuardarImagen(string(tipo)+"/bloques", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonCreated(c, "Imagen subida", fiber.Map{"imagen": url})
}
