package main

import (
	"context"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/taranjotsinghW28/Note-Nest/internal/config"
	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/logger"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/memory"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/specification"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/unitofwork"
	"github.com/taranjotsinghW28/Note-Nest/internal/service"
	"github.com/taranjotsinghW28/Note-Nest/pkg/database"
)

// Seeds a demo account with a few tagged notes. Safe to re-run: the signup is
// skipped when the demo email already exists and tag links are idempotent.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)

	authService := service.NewAuthService(uowFactory, memory.NewAttemptRepository(cfg.Auth.AttemptWindow), cfg.Auth, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	tagService := service.NewTagService(uowFactory)

	const demoEmail = "demo@note-nest.local"

	uow := uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoEmail})
	if err != nil {
		color.Red("Lookup failed: %v", err)
		os.Exit(1)
	}

	if user == nil {
		res, err := authService.Signup(ctx, &dto.SignupRequest{
			Username: "demo",
			Email:    demoEmail,
			Password: "demo-password",
		})
		if err != nil {
			color.Red("Signup failed: %v", err)
			os.Exit(1)
		}
		color.Green("Created demo user %s (%s)", res.Username, res.Email)
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoEmail})
		if err != nil || user == nil {
			color.Red("Demo user missing after signup")
			os.Exit(1)
		}
	} else {
		color.Yellow("Demo user already exists, reusing it")
	}

	seedNotes := []struct {
		title   string
		content string
		tags    []string
	}{
		{"Groceries", "milk, eggs", []string{"home"}},
		{"Reading list", "The Go Programming Language", []string{"books", "learning"}},
		{"Standup notes", "", []string{"work"}},
	}

	for _, n := range seedNotes {
		created, err := noteService.Create(ctx, user.Id, &dto.CreateNoteRequest{
			Title:   n.title,
			Content: n.content,
		})
		if err != nil {
			color.Red("Failed to create note %q: %v", n.title, err)
			os.Exit(1)
		}
		for _, tagName := range n.tags {
			if _, err := tagService.AddToNote(ctx, user.Id, &dto.AddTagRequest{
				NoteId:  created.Id,
				TagName: tagName,
			}); err != nil {
				color.Red("Failed to tag note %q with %q: %v", n.title, tagName, err)
				os.Exit(1)
			}
		}
		color.Green("Seeded note %q with tags %v", n.title, n.tags)
	}

	color.Green("Seeding complete.")
}
