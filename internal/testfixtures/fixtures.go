package testfixtures

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

var emailSeq atomic.Int64

func mustCreate(t testing.TB, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}

func Location(t testing.TB, db *gorm.DB, name string) *models.Location {
	loc := &models.Location{Name: name}
	mustCreate(t, db, loc)
	return loc
}

func user(t testing.TB, db *gorm.DB, name, role string, locationID *uint) *models.User {
	u := &models.User{
		Name:       name,
		Email:      fmt.Sprintf("user%d@salon.test", emailSeq.Add(1)),
		Role:       role,
		LocationID: locationID,
	}
	mustCreate(t, db, u)
	return u
}

func Barber(t testing.TB, db *gorm.DB, name string, loc *models.Location) *models.User {
	var locationID *uint
	if loc != nil {
		locationID = &loc.ID
	}
	return user(t, db, name, models.RoleBarber, locationID)
}

func Customer(t testing.TB, db *gorm.DB, name string) *models.User {
	return user(t, db, name, models.RoleCustomer, nil)
}

// CustomerWithCredit seeds a customer holding an unused free-service credit.
func CustomerWithCredit(t testing.TB, db *gorm.DB, name string, stamps int) *models.User {
	u := Customer(t, db, name)
	if err := db.Model(u).Updates(map[string]any{
		"has_free_credit": true,
		"loyalty_stamps":  stamps,
	}).Error; err != nil {
		t.Fatalf("seed credit: %v", err)
	}
	u.HasFreeCredit = true
	u.LoyaltyStamps = stamps
	return u
}

func Service(t testing.TB, db *gorm.DB, name string, durationMin int) *models.Service {
	svc := &models.Service{Name: name, DurationMin: durationMin, Price: 25}
	mustCreate(t, db, svc)
	return svc
}

func WorkingHours(t testing.TB, db *gorm.DB, barberID uint, weekday time.Weekday, start, end string) {
	mustCreate(t, db, &models.WorkingHours{
		BarberID:  barberID,
		Weekday:   int(weekday),
		StartTime: start,
		EndTime:   end,
	})
}

// Local parses "2006-01-02 15:04" in the business timezone.
func Local(t testing.TB, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, timezone.Location())
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func Appointment(t testing.TB, db *gorm.DB, barber, customer *models.User, svc *models.Service, start time.Time) *models.Appointment {
	ap := &models.Appointment{
		BarberID:   barber.ID,
		CustomerID: customer.ID,
		ServiceID:  svc.ID,
		StartTime:  start.UTC(),
		EndTime:    start.Add(time.Duration(svc.DurationMin) * time.Minute).UTC(),
	}
	mustCreate(t, db, ap)
	return ap
}

func Block(t testing.TB, db *gorm.DB, barberID uint, start, end time.Time) *models.BlockedInterval {
	b := &models.BlockedInterval{
		BarberID:  barberID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Reason:    "vacation",
	}
	mustCreate(t, db, b)
	return b
}
