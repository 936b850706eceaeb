package routes

// Suite de integración contra Postgres real. Se salta si TEST_DB_HOST no
// está definido; con él corre el stack completo (rutas, middlewares,
// sesión, GORM) sobre una base desechable:
//
//	TEST_DB_HOST=127.0.0.1 go test ./internals/route/...

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/configs"
	database "descubrecurico_backend/internals/databases"
	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
	encuestaModel "descubrecurico_backend/internals/features/socios/encuestas/model"
	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
	authModel "descubrecurico_backend/internals/features/users/auth/model"
	helper "descubrecurico_backend/internals/helpers"
	usuarioSeeds "descubrecurico_backend/internals/seeds/usuarios"
)

type APISuite struct {
	suite.Suite
	db *gorm.DB
}

func TestAPISuite(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST no definido; se salta la suite de integración")
	}
	suite.Run(t, new(APISuite))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (s *APISuite) SetupSuite() {
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=America/Santiago",
		os.Getenv("TEST_DB_HOST"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_USER", "postgres"),
		envOr("TEST_DB_PASSWORD", "postgres"),
		envOr("TEST_DB_NAME", "postgres"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db
	s.dropAllTables()
}

func (s *APISuite) SetupTest() {
	database.MigrateAll(s.db)
	usuarioSeeds.SeedRoles(s.db)
}

func (s *APISuite) TearDownTest() {
	s.dropAllTables()
}

func (s *APISuite) TearDownSuite() {
	s.dropAllTables()
}

func (s *APISuite) dropAllTables() {
	var tablas []string
	err := s.db.Raw("SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'").
		Scan(&tablas).Error
	s.Require().NoError(err)
	for _, t := range tablas {
		s.Require().NoError(
			s.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(t))).Error)
	}
}

/* ==============================
   Cliente HTTP de prueba
============================== */

// cliente envuelve app.Test con un jar de cookies, igual que lo haría
// un navegador: access_token, refresh_token y descubre_sid persisten
// entre requests.
type cliente struct {
	s   *APISuite
	app *fiber.App
	jar map[string]*http.Cookie
}

func (s *APISuite) nuevoCliente() *cliente {
	app := fiber.New()
	SetupRoutes(app, s.db)
	return &cliente{s: s, app: app, jar: map[string]*http.Cookie{}}
}

func (cl *cliente) do(method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		cl.s.Require().NoError(err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, ck := range cl.jar {
		req.AddCookie(ck)
	}

	resp, err := cl.app.Test(req, -1)
	cl.s.Require().NoError(err)
	for _, ck := range resp.Cookies() {
		cl.jar[ck.Name] = ck
	}

	raw, err := io.ReadAll(resp.Body)
	cl.s.Require().NoError(err)
	var parsed map[string]interface{}
	if len(raw) > 0 && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		cl.s.Require().NoError(sonic.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func errores(body map[string]interface{}) map[string]interface{} {
	e, _ := body["errors"].(map[string]interface{})
	return e
}

/* ==============================
   Fixtures
============================== */

func (s *APISuite) fixtureGeo() {
	s.Require().NoError(s.db.Create(&socioModel.Region{ID: 7, Region: "Región del Maule", Abreviatura: "VII", Capital: "Talca"}).Error)
	s.Require().NoError(s.db.Create(&socioModel.Provincia{ID: 71, Provincia: "Curicó", RegionID: 7}).Error)
	s.Require().NoError(s.db.Create(&socioModel.Comuna{ID: 7301, Comuna: "Curicó", ProvinciaID: 71}).Error)
}

func (s *APISuite) fixtureAdmin(userName, password string) {
	hash, err := helper.HashPassword(password)
	s.Require().NoError(err)

	user := authModel.UserModel{
		ID:       uuid.New(),
		UserName: userName,
		Email:    userName + "@descubrecurico.cl",
		Password: hash,
		IsActive: true,
	}
	s.Require().NoError(s.db.Create(&user).Error)

	var rol authModel.Rol
	s.Require().NoError(s.db.Where("nombre = ?", "admin").First(&rol).Error)
	s.Require().NoError(s.db.Create(&authModel.UsuarioRol{UsuarioID: user.ID, RolID: rol.ID}).Error)
}

func (s *APISuite) fixtureSocio(rut, password string) socioModel.Socio {
	s.fixtureGeo()
	hash, err := helper.HashPassword(password)
	s.Require().NoError(err)

	socio := socioModel.Socio{
		SocioRUT:             helper.NormalizarRUT(rut),
		SocioNombre:          "Marta",
		SocioApellidoPaterno: "Rojas",
		SocioApellidoMaterno: "Soto",
		SocioCorreo:          "marta." + helper.NormalizarRUT(rut) + "@mail.cl",
		SocioComunaID:        7301,
		SocioRegionID:        7,
		SocioEstado:          "Activo",
		SocioContrasena:      hash,
	}
	s.Require().NoError(s.db.Create(&socio).Error)
	return socio
}

func (s *APISuite) loginAdmin(cl *cliente, userName, password string) {
	code, body := cl.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": userName, "password": password}, nil)
	s.Require().Equal(fiber.StatusOK, code, body)
}

/* ==============================
   Registro + login unificado
============================== */

func (s *APISuite) TestRegistroYLoginSocio() {
	s.fixtureGeo()
	cl := s.nuevoCliente()

	registro := fiber.Map{
		"run":              "12.345.678-5",
		"nombre":           "Pedro",
		"apellido_paterno": "Fuentes",
		"apellido_materno": "Leiva",
		"correo":           "pedro@mail.cl",
		"comuna_id":        7301,
		"region_id":        7,
		"contrasena":       "secreto123",
	}
	code, body := cl.do(http.MethodPost, "/api/socios/registro", registro, nil)
	s.Equal(fiber.StatusCreated, code, body)

	// DV equivocado: error de campo, no genérico
	malo := fiber.Map{}
	for k, v := range registro {
		malo[k] = v
	}
	malo["run"] = "12.345.678-9"
	malo["correo"] = "otro@mail.cl"
	code, body = cl.do(http.MethodPost, "/api/socios/registro", malo, nil)
	s.Equal(fiber.StatusUnprocessableEntity, code)
	s.Contains(errores(body), "run")

	// Login con el RUT puntuado; la credencial queda normalizada
	code, body = cl.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": "12.345.678-5", "password": "secreto123"}, nil)
	s.Require().Equal(fiber.StatusOK, code, body)
	s.Equal("socio", data(body)["role"])
	s.Equal("123456785", data(body)["socio_rut"])
	s.NotEmpty(data(body)["access_token"])
	s.Contains(cl.jar, "access_token")
	s.Contains(cl.jar, "descubre_sid")

	// La identidad unificada abre el panel socio
	code, body = cl.do(http.MethodGet, "/api/s/dashboard", nil, nil)
	s.Equal(fiber.StatusOK, code, body)

	// Contraseña mala: mensaje uniforme, sin filtrar si el RUT existe
	otro := s.nuevoCliente()
	code, body = otro.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": "12.345.678-5", "password": "equivocada"}, nil)
	s.Equal(fiber.StatusUnauthorized, code)
	s.Equal("Usuario o contraseña incorrectos", body["message"])

	code, body = otro.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": "no-existe", "password": "equivocada"}, nil)
	s.Equal(fiber.StatusUnauthorized, code)
	s.Equal("Usuario o contraseña incorrectos", body["message"])
}

/* ==============================
   Contenido: slugs y categorías
============================== */

func (s *APISuite) TestContenidoSlugsYCategorias() {
	s.fixtureAdmin("editora", "clave-segura")
	cl := s.nuevoCliente()
	s.loginAdmin(cl, "editora", "clave-segura")

	nota := fiber.Map{
		"titulo":            "Fiesta de la Vendimia",
		"resumen":           "Crónica de la fiesta.",
		"nuevas_categorias": "Vinos, Vinos, Historia",
		"bloques": []fiber.Map{
			{"tipo": "TEXT", "orden": 1, "texto": "La fiesta partió al mediodía."},
			{"tipo": "YOUTUBE", "orden": 2, "url": "https://youtu.be/abc123"},
		},
	}
	code, body := cl.do(http.MethodPost, "/api/a/contenido/noticia", nota, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)
	s.Equal("fiesta-de-la-vendimia", data(body)["slug"])
	s.Len(data(body)["categorias"], 2)

	// Mismo título: el segundo recibe -1
	code, body = cl.do(http.MethodPost, "/api/a/contenido/noticia", nota, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)
	s.Equal("fiesta-de-la-vendimia-1", data(body)["slug"])

	// "Vinos" repetido en texto y entre artículos no duplica filas
	var nCategorias int64
	s.Require().NoError(s.db.Table("categorias").
		Where("nombre IN ?", []string{"Vinos", "Historia"}).Count(&nCategorias).Error)
	s.Equal(int64(2), nCategorias)

	// Lectura pública por slug, con bloques ordenados y embed resuelto
	pub := s.nuevoCliente()
	code, body = pub.do(http.MethodGet, "/api/contenido/noticia/fiesta-de-la-vendimia", nil, nil)
	s.Require().Equal(fiber.StatusOK, code, body)
	bloques, _ := data(body)["bloques"].([]interface{})
	s.Require().Len(bloques, 2)
	segundo, _ := bloques[1].(map[string]interface{})
	s.Equal("https://www.youtube.com/embed/abc123", segundo["embed_src"])
}

/* ==============================
   Agenda: slugs de eventos
============================== */

func (s *APISuite) TestEventosSlugsYAgenda() {
	s.fixtureAdmin("editora", "clave-segura")
	cl := s.nuevoCliente()
	s.loginAdmin(cl, "editora", "clave-segura")

	evento := fiber.Map{
		"titulo":        "Feria Costumbrista",
		"descripcion":   "Gastronomía y folclor en la plaza.",
		"fecha_inicio":  "2026-09-18T10:00:00Z",
		"fecha_termino": "2026-09-19T20:00:00Z",
		"lugar":         "Plaza de Armas",
	}
	code, body := cl.do(http.MethodPost, "/api/a/eventos/evento", evento, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)
	s.Equal("feria-costumbrista", data(body)["slug"])

	// Mismo título: la creación resuelve el choque dentro de la
	// transacción y entrega el siguiente sufijo, nunca un conflicto.
	code, body = cl.do(http.MethodPost, "/api/a/eventos/evento", evento, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)
	s.Equal("feria-costumbrista-1", data(body)["slug"])

	// Término antes del inicio: error de campo
	malo := fiber.Map{
		"titulo":        "Al revés",
		"descripcion":   "x",
		"fecha_inicio":  "2026-09-19T10:00:00Z",
		"fecha_termino": "2026-09-18T10:00:00Z",
	}
	code, body = cl.do(http.MethodPost, "/api/a/eventos/evento", malo, nil)
	s.Equal(fiber.StatusUnprocessableEntity, code)
	s.Contains(errores(body), "fecha_termino")
}

/* ==============================
   Empresa + encuesta en curso
============================== */

func (s *APISuite) TestEmpresaYEncuesta() {
	s.fixtureSocio("7.654.321-6", "secreto123")
	cl := s.nuevoCliente()

	code, body := cl.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": "7.654.321-6", "password": "secreto123"}, nil)
	s.Require().Equal(fiber.StatusOK, code, body)

	// El RUN del dueño sale del token; no hace falta mandarlo
	code, body = cl.do(http.MethodPost, "/api/s/empresas",
		fiber.Map{"nombre": "Café Curicó"}, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)
	empresaID := data(body)["id_empresa"]
	s.NotNil(empresaID)

	// La empresa recién creada queda "en curso" para la encuesta
	code, body = cl.do(http.MethodGet, "/api/s/encuesta", nil, nil)
	s.Require().Equal(fiber.StatusOK, code, body)
	s.Equal(empresaID, data(body)["empresa_id"])

	// Con descuento pero sin detalle: dos errores de campo
	code, body = cl.do(http.MethodPost, "/api/s/encuesta", fiber.Map{
		"pregunta_1_descuento_comercializacion": "si",
		"pregunta_3_valor_empresa":              "Cercanía",
		"pregunta_4_empresa_referencia":         "Ninguna",
	}, nil)
	s.Equal(fiber.StatusUnprocessableEntity, code)
	s.Contains(errores(body), "Pregunta2TipoDescuento")
	s.Contains(errores(body), "Pregunta2Porcentaje")

	code, body = cl.do(http.MethodPost, "/api/s/encuesta", fiber.Map{
		"pregunta_1_descuento_comercializacion": "si",
		"pregunta_2_tipo_descuento":             "Descuento socio",
		"pregunta_2_porcentaje":                 15,
		"pregunta_3_valor_empresa":              "Cercanía",
		"pregunta_4_empresa_referencia":         "Ninguna",
	}, nil)
	s.Require().Equal(fiber.StatusCreated, code, body)

	var empresa empresaModel.Empresa
	s.Require().NoError(s.db.First(&empresa, "nombre = ?", "Café Curicó").Error)
	s.True(empresa.EncuestaRespondida)

	// El snapshot crudo de respuestas queda persistido junto a las columnas
	var encuesta encuestaModel.Encuesta
	s.Require().NoError(s.db.First(&encuesta, "empresa_id = ?", empresa.IDEmpresa).Error)
	s.NotEmpty(encuesta.RespuestasRaw)
	s.Contains(string(encuesta.RespuestasRaw), "Descuento socio")

	// Encuesta lista: ya no hay empresa en curso en la sesión
	code, body = cl.do(http.MethodGet, "/api/s/encuesta", nil, nil)
	s.Equal(fiber.StatusUnprocessableEntity, code, body)
}

/* ==============================
   Gates sobre el stack completo
============================== */

func (s *APISuite) TestGatesAdmin() {
	s.fixtureSocio("12.345.678-5", "secreto123")

	anon := s.nuevoCliente()
	code, _ := anon.do(http.MethodGet, "/api/a/empresas", nil, nil)
	s.Equal(fiber.StatusUnauthorized, code)

	socio := s.nuevoCliente()
	code, body := socio.do(http.MethodPost, "/api/auth/login",
		fiber.Map{"identificador": "123456785", "password": "secreto123"}, nil)
	s.Require().Equal(fiber.StatusOK, code, body)

	code, _ = socio.do(http.MethodGet, "/api/a/empresas", nil, nil)
	s.Equal(fiber.StatusForbidden, code)
}

/* ==============================
   Listado admin AJAX
============================== */

func (s *APISuite) TestListadoEmpresasAJAX() {
	s.fixtureAdmin("admin", "clave-segura")
	socio := s.fixtureSocio("7.654.321-6", "secreto123")

	for _, nombre := range []string{"Café Curicó", "Viña del Valle"} {
		s.Require().NoError(s.db.Create(&empresaModel.Empresa{
			Nombre:  nombre,
			SocioID: &socio.SocioID,
		}).Error)
	}

	cl := s.nuevoCliente()
	s.loginAdmin(cl, "admin", "clave-segura")

	// Con la cabecera AJAX la respuesta es el fragmento + total
	code, body := cl.do(http.MethodGet, "/api/a/empresas", nil,
		map[string]string{"X-Requested-With": "XMLHttpRequest"})
	s.Require().Equal(fiber.StatusOK, code, body)
	s.Equal(float64(2), body["count"])
	html, _ := body["html"].(string)
	s.Contains(html, "Café Curicó")
	s.Contains(html, "Viña del Valle")

	// Sin cabecera, el sobre JSON de siempre
	code, body = cl.do(http.MethodGet, "/api/a/empresas", nil, nil)
	s.Equal(fiber.StatusOK, code, body)
	s.NotContains(body, "html")
}
