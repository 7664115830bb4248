// Command seed fills an empty database with one location, a small team,
// services and a working week, for local development.
package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type staffSeed struct {
	name  string
	email string
	role  string
}

var staff = []staffSeed{
	{"Anna Huber", "anna@salon.local", models.RoleHeadBarber},
	{"Ben Gruber", "ben@salon.local", models.RoleBarber},
	{"Clara Maier", "clara@salon.local", models.RoleBarber},
}

var services = []models.Service{
	{Name: "Haircut", DurationMin: 30, Price: 32},
	{Name: "Beard trim", DurationMin: 20, Price: 18},
	{Name: "Cut & beard", DurationMin: 50, Price: 45},
	{Name: "Kids cut", DurationMin: 20, Price: 20},
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "salon123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		loc := models.Location{Name: "Salon Mitte", Address: "Mariahilfer Straße 1, 1060 Wien"}
		if err := tx.Where(models.Location{Name: loc.Name}).FirstOrCreate(&loc).Error; err != nil {
			return err
		}

		for _, s := range staff {
			u := models.User{
				LocationID:   &loc.ID,
				Name:         s.name,
				Email:        s.email,
				PasswordHash: string(hash),
				Role:         s.role,
			}
			if err := tx.Where(models.User{Email: s.email}).FirstOrCreate(&u).Error; err != nil {
				return err
			}

			if err := seedWeek(tx, u.ID); err != nil {
				return err
			}
			log.Printf("staff %-12s id=%d role=%s", s.name, u.ID, s.role)
		}

		for _, svc := range services {
			svc.LocationID = &loc.ID
			if err := tx.Where(models.Service{Name: svc.Name}).FirstOrCreate(&svc).Error; err != nil {
				return err
			}
			log.Printf("service %-12s id=%d %dmin", svc.Name, svc.ID, svc.DurationMin)
		}

		return nil
	})
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seed complete, staff password: %s", password)
}

// Tuesday to Saturday, 09:00-18:00.
func seedWeek(tx *gorm.DB, barberID uint) error {
	days := make([]models.WorkingHours, 0, 5)
	for wd := time.Tuesday; wd <= time.Saturday; wd++ {
		days = append(days, models.WorkingHours{
			BarberID:  barberID,
			Weekday:   int(wd),
			StartTime: "09:00",
			EndTime:   "18:00",
		})
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&days).Error
}
