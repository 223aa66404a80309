// Seeds the session store with a synthetic year of attendance: five
// employees, one login/logout pair per day, logins between 10 and 11 AM and
// shifts of 8 to 11 hours. Existing rows are replaced.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/config"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/repository/postgresql"
)

var employees = []string{
	"John Doe",
	"Jane Smith",
	"Alice Brown",
	"Bob Johnson",
	"Mary Williams",
}

func main() {
	year := flag.Int("year", time.Now().Year(), "calendar year to seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	repo := postgresql.NewSessionRepository(db)
	rows := generateYear(*year)

	count, err := repo.ReplaceAll(context.Background(), rows)
	if err != nil {
		log.Fatal("Error inserting sessions: ", err)
	}
	fmt.Printf("Inserted %d attendance records successfully!\n", count)
}

func generateYear(year int) []session.Session {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var rows []session.Session
	for _, employee := range employees {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			login := randomLogin(day)
			logout := randomLogout(login)
			rows = append(rows, session.Session{
				Employee:   employee,
				Date:       day,
				LoginTime:  login.Format("3:04:05 PM"),
				LogoutTime: logout.Format("3:04:05 PM"),
			})
		}
	}
	return rows
}

// randomLogin lands between 10:00 and 11:59 AM.
func randomLogin(day time.Time) time.Time {
	hour := 10 + rand.Intn(2)
	minute := rand.Intn(60)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// randomLogout is 8 to 11 hours and change after login, matching the
// overtime threshold so some sessions generate overtime and some none.
func randomLogout(login time.Time) time.Time {
	return login.
		Add(time.Duration(8+rand.Intn(4)) * time.Hour).
		Add(time.Duration(rand.Intn(60)) * time.Minute)
}
