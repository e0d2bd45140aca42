package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/records"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/skills"
)

func main() {
	force := flag.Bool("force", false, "overwrite documents that already exist")
	hash := flag.String("hash", "", "print the bcrypt hash of a password for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hash != "" {
		hashed, err := auth.HashPassword(*hash)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hashed)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := db.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	if err := seedCollection(ctx, store, projects.CollectionKey, seedProjects, *force); err != nil {
		log.Fatalf("seed projects: %v", err)
	}
	if err := seedCollection(ctx, store, skills.CollectionKey, seedSkills, *force); err != nil {
		log.Fatalf("seed skills: %v", err)
	}
	if err := seedResume(ctx, store, logger, *force); err != nil {
		log.Fatalf("seed resume: %v", err)
	}

	log.Println("seed completed")
}

func exists(ctx context.Context, store blob.Store, key string) (bool, error) {
	_, err := store.Read(ctx, key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, blob.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func seedCollection[T any](ctx context.Context, store blob.Store, key string, items []T, force bool) error {
	found, err := exists(ctx, store, key)
	if err != nil {
		return err
	}
	if found && !force {
		log.Printf("seed %s: exists, skipping", key)
		return nil
	}
	if err := records.NewCollection[T](store, key).Save(ctx, items); err != nil {
		return err
	}
	log.Printf("seed %s: wrote %d records", key, len(items))
	return nil
}

func seedResume(ctx context.Context, store blob.Store, logger *slog.Logger, force bool) error {
	found, err := exists(ctx, store, resume.DocumentKey)
	if err != nil {
		return err
	}
	if found && !force {
		log.Printf("seed %s: exists, skipping", resume.DocumentKey)
		return nil
	}
	svc := resume.NewService(store, nil, nil, nil, 0, logger)
	if err := svc.Save(ctx, seedResumeDoc); err != nil {
		return err
	}
	log.Printf("seed %s: written", resume.DocumentKey)
	return nil
}

var seedProjects = []projects.Project{
	{
		ID:          "portfolio",
		Icon:        projects.DefaultIcon,
		Title:       "Portfolio",
		Description: "This site: landing page, admin panel and resume export.",
		Tech:        "Go, chi, Next.js",
		Github:      "https://github.com/example/portfolio",
		Featured:    true,
		Visible:     true,
		Order:       0,
	},
	{
		ID:          "task-tracker",
		Icon:        "📋",
		Title:       "Task Tracker",
		Description: "Small kanban board with drag and drop.",
		Tech:        "TypeScript, React",
		Live:        "https://tasks.example.com",
		Visible:     true,
		Order:       1,
	},
}

var seedSkills = []skills.Skill{
	{ID: "go", Name: "Go", Icon: "🐹", Category: "Backend & Tools", Proficiency: "Advanced", Level: 85, Order: 0, Visible: true},
	{ID: "typescript", Name: "TypeScript", Icon: "🟦", Category: "Frontend", Proficiency: "Proficient", Level: 75, Order: 1, Visible: true},
	{ID: "sql", Name: "SQL", Icon: skills.DefaultIcon, Category: "Backend & Tools", Proficiency: skills.DefaultProficiency, Level: 60, Order: 2, Visible: true},
}

var seedResumeDoc = resume.Resume{
	Name:    "Your Name",
	Title:   "Software Engineer",
	Summary: "Short professional summary.",
	Contact: resume.Contact{
		Email:  "you@example.com",
		Github: "github.com/example",
	},
	Education: []resume.Education{
		{Degree: "BSc Computer Science", School: "Example University", Year: "2020"},
	},
	Experience: []resume.Experience{
		{Role: "Backend Engineer", Company: "Example Corp", Year: "2021 - present", Description: "APIs and data pipelines."},
	},
	Skills:         []string{"Go", "TypeScript", "SQL"},
	Certifications: []string{},
}
