package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/edusched/lesson-booking-backend/internal/config"
	"github.com/edusched/lesson-booking-backend/internal/lesson"
	"github.com/edusched/lesson-booking-backend/internal/teacher"
	"github.com/edusched/lesson-booking-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ensureSchema(db)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	teacherRepo := teacher.NewPostgresRepository(db)
	teacherService := teacher.NewService(teacherRepo)
	teacherHandler := teacher.NewHandler(teacherService)

	lessonRepo := lesson.NewPostgresRepository(db)
	lessonService := lesson.NewService(lessonRepo, userService, teacherService)
	lessonHandler := lesson.NewHandler(lessonService, userService, teacherService)

	userHandler.RegisterPublicRoutes(app)
	teacherHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// the teacher catalog stays readable without a token
		Filter: func(c *fiber.Ctx) bool {
			return c.Method() == "GET" && strings.HasPrefix(c.Path(), "/api/teachers")
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	teacherHandler.RegisterProtectedRoutes(app)
	lessonHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("method=%s path=%s status=%d duration_ms=%d\n",
		c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start).Milliseconds())
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS teachers (
		teacher_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL UNIQUE REFERENCES users (user_id),
		bio TEXT,
		subjects TEXT[] NOT NULL DEFAULT '{}'
	)`); err != nil {
		panic(err)
	}

	// no uniqueness on (teacher_id, date_time): double-booking the same
	// slot is currently allowed
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS lessons (
		lesson_id SERIAL PRIMARY KEY,
		student_id INT NOT NULL REFERENCES users (user_id),
		teacher_id INT NOT NULL REFERENCES teachers (teacher_id),
		date_time TEXT NOT NULL,
		modality TEXT NOT NULL
	)`); err != nil {
		panic(err)
	}
}
