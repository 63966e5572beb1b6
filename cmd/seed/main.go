package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/attendease/attendease/internal/config"
	"github.com/attendease/attendease/internal/logger"
	"github.com/attendease/attendease/internal/store"
)

type seedStore struct {
	name  string
	lines []string
}

// Demo rows for every store, written in dependency order.
var seedStores = []seedStore{
	{store.AdminFile, []string{
		"admin,admin",
	}},
	{store.StudentsFile, []string{
		"alice,alice123,A;B;D",
		"bob,bob123,A;C",
		"carol,carol123,B;E;F",
	}},
	{store.ProfessorsFile, []string{
		"drake,drake123,A",
		"erin,erin123,B",
	}},
	{store.UsersFile, []string{
		"Admin,admin,admin",
		"Student,alice,alice123",
		"Student,bob,bob123",
		"Student,carol,carol123",
		"Professor,drake,drake123",
		"Professor,erin,erin123",
	}},
	{store.TimetableFile, []string{
		"MON,09:00,A,101",
		"MON,10:00,B,102",
		"MON,11:00,D,104",
		"TUE,09:00,C,201",
		"TUE,10:00,A,101",
		"WED,09:00,E,205",
		"WED,11:00,B,102",
		"THU,09:00,F,301",
		"THU,10:00,D,104",
		"FRI,09:00,A,101",
		"FRI,12:00,E,205",
	}},
	{store.HolidaysFile, []string{
		"New Year,2024-01-01",
		"Republic Day,2024-01-26",
	}},
	{store.WorkingDaysFile, []string{
		"2024-01-06,MON",
	}},
	{store.AttendanceFile, nil},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// Refuse to mix demo rows into an existing data set.
	if _, err := os.Stat(filepath.Join(cfg.DataDir, store.StudentsFile)); err == nil {
		log.Fatal().Str("dir", cfg.DataDir).Msg("Data directory already contains a students store; refusing to seed")
	}

	fmt.Printf("=== Seeding demo data into %s ===\n", cfg.DataDir)

	for _, s := range seedStores {
		f := store.NewFile(cfg.DataDir, s.name)
		if err := f.Rewrite(s.lines); err != nil {
			log.Fatal().Err(err).Str("store", s.name).Msg("Failed to seed store")
		}
		fmt.Printf("  %-18s %d rows\n", s.name, len(s.lines))
	}

	fmt.Println("\nDone. Try logging in as alice/alice123 (Student) or admin/admin (Admin).")
}
