package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/auth"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	infrafactura "github.com/jcastellano/gestion-api/internal/infrastructure/factura"
	"github.com/jcastellano/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastellano/gestion-api/internal/interfaces/http"
	"github.com/jcastellano/gestion-api/pkg/config"
	"github.com/jcastellano/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	cambioRepo := postgres.NewCambioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bitacora := auditoria.NewRegistrador(cambioRepo, log)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := usecase.NewClienteUseCase(clienteRepo, bitacora)
	productoUC := usecase.NewProductoUseCase(productoRepo, bitacora)
	servicioUC := usecase.NewServicioUseCase(servicioRepo, bitacora)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, bitacora)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, bitacora)
	crearVentaUC := ventas.NewCrearVentaUseCase(
		txRunner, usuarioRepo, clienteRepo, productoRepo, servicioRepo, ventaRepo, bitacora,
	)
	ventaUC := ventas.NewVentaUseCase(ventaRepo, bitacora)
	facturaUC := ventas.NewFacturaUseCase(ventaRepo, clienteRepo, productoRepo, servicioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClienteUC:   clienteUC,
		ProductoUC:  productoUC,
		ServicioUC:  servicioUC,
		ProveedorUC: proveedorUC,
		UsuarioUC:   usuarioUC,
		CrearVenta:  crearVentaUC,
		VentaUC:     ventaUC,
		FacturaUC:   facturaUC,
		FacturaHTML: infrafactura.NewHTMLRenderer(cfg.Negocio),
		FacturaPDF:  infrafactura.NewPDFRenderer(cfg.Negocio),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
