// Command seed wipes the database and loads the initial site content
// along with the default admin account. Intended for local development
// and fresh deployments only.
package main

import (
	"context"
	"os"

	"github.com/vmss-tech/vmss-backend/internal/api"
	"github.com/vmss-tech/vmss-backend/internal/config"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	"github.com/vmss-tech/vmss-backend/internal/jwt"
	"github.com/vmss-tech/vmss-backend/internal/logger"
	"github.com/vmss-tech/vmss-backend/internal/service"
	"github.com/vmss-tech/vmss-backend/internal/storage/pg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Initialize("info", false)
		logger.Log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	if err := run(context.Background(), cfg); err != nil {
		logger.Log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("seed data created successfully")
}

func run(ctx context.Context, cfg *config.Config) error {
	storage, err := pg.New(cfg.Pg)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		return err
	}

	if err := storage.Reset(ctx); err != nil {
		return err
	}

	auth := service.NewAuth(storage, jwt.New(cfg.JwtSecret, cfg.JwtTTL))
	if _, err := auth.Register(domain.Credentials{
		Email:    getEnv("SEED_ADMIN_EMAIL", "admin@vmss.com"),
		Password: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}); err != nil {
		return err
	}
	logger.Log.Info("admin user created")

	courses := service.NewCourse(storage)
	for _, req := range sampleCourses {
		if _, err := courses.Create(req); err != nil {
			return err
		}
	}
	logger.Log.Info("sample courses created", "count", len(sampleCourses))

	instructors := service.NewInstructor(storage)
	for _, req := range sampleInstructors {
		if _, err := instructors.Create(req); err != nil {
			return err
		}
	}
	logger.Log.Info("sample instructors created", "count", len(sampleInstructors))

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var sampleCourses = []api.CreateCourseRequest{
	{
		Title:       "Cloud Computing & Infrastructure",
		Description: "Master AWS, Azure, Google Cloud platforms with hands-on experience in cloud architecture, deployment, and management.",
		Courses:     "5 Courses",
		Icon:        "☁️",
	},
	{
		Title:       "Artificial Intelligence & Machine Learning",
		Description: "Dive deep into AI/ML algorithms, neural networks, deep learning, and practical implementation of intelligent systems.",
		Courses:     "5 Courses",
		Icon:        "🧠",
	},
}

var sampleInstructors = []api.CreateInstructorRequest{
	{
		Name:        "Samay Jain",
		Title:       "Founder & CEO",
		Description: "Founder and CEO of VMSS Technologies with extensive experience in enterprise cloud migrations and digital transformation.",
		Expertise:   "AWS, Azure, Google Cloud",
		Experience:  "12+ years experience",
	},
	{
		Name:        "Sanket Jain",
		Title:       "Co-Founder & CTO",
		Description: "Co-Founder and CTO of VMSS Technologies, specializing in cloud architecture and ServiceNow platform implementations.",
		Expertise:   "Cloud Architecture, ServiceNow Platform",
		Experience:  "Expert experience",
	},
}
