// Package seed holds the static demo dataset served when the store is empty
// or unreachable.
package seed

import (
	"time"

	"dentalSummit/internal/models"
	"dentalSummit/internal/pricing"
)

func Event() *models.Event {
	event := &models.Event{
		ID:                   "seed-event-1",
		Name:                 "Digital Dentistry Summit 2026",
		Date:                 time.Date(2026, time.November, 14, 0, 0, 0, 0, time.UTC),
		StartTime:            "09:00",
		EndTime:              "18:00",
		Timezone:             "Europe/Berlin",
		Platform:             "Zoom Webinar",
		MaxCapacity:          500,
		CurrentRegistrations: 312,
		BasePrice:            pricing.BasePrice,
		EarlyBirdPrice:       pricing.EarlyBirdPrice,
		EarlyBirdDeadline:    time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		Status:               models.EventStatusUpcoming,
		CreatedAt:            time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	event.ComputeDerived(time.Now())

	return event
}

func Events() []models.Event {
	return []models.Event{*Event()}
}

func Dentists() []models.Dentist {
	return []models.Dentist{
		{
			ID:              "seed-dentist-1",
			Name:            "Dr. Elena Moreau",
			Title:           "DDS, PhD",
			Specialty:       "Digital Implantology",
			Bio:             "Pioneer of fully guided implant workflows, lecturing across Europe on chairside CAD/CAM.",
			Clinic:          "Moreau Dental Institute",
			City:            "Lyon",
			YearsExperience: 18,
			PhotoURL:        "/images/speakers/elena-moreau.jpg",
		},
		{
			ID:              "seed-dentist-2",
			Name:            "Dr. Rajan Mehta",
			Title:           "BDS, MSc",
			Specialty:       "Aesthetic Restorative Dentistry",
			Bio:             "Runs a minimally invasive veneer practice and teaches composite layering masterclasses.",
			Clinic:          "Smile Architects",
			City:            "Mumbai",
			YearsExperience: 14,
			PhotoURL:        "/images/speakers/rajan-mehta.jpg",
		},
		{
			ID:              "seed-dentist-3",
			Name:            "Dr. Sofia Lindqvist",
			Title:           "DDS",
			Specialty:       "Endodontics",
			Bio:             "Microscope-enhanced endodontics educator and author of two clinical handbooks.",
			Clinic:          "Nordic Endo Clinic",
			City:            "Stockholm",
			YearsExperience: 11,
			PhotoURL:        "/images/speakers/sofia-lindqvist.jpg",
		},
	}
}

func Reviews() []models.Review {
	return []models.Review{
		{
			ID:         "seed-review-1",
			AuthorName: "Dr. Anna Kowalska",
			Clinic:     "Kowalska Dental",
			City:       "Warsaw",
			Rating:     5,
			Text:       "The implant workflow sessions alone were worth the registration. Practical from the first minute.",
			IsApproved: true,
			IsFeatured: true,
			CreatedAt:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "seed-review-2",
			AuthorName: "Dr. Miguel Santos",
			Clinic:     "Clinica Santos",
			City:       "Porto",
			Rating:     5,
			Text:       "Excellent speakers and a genuinely useful networking dinner. Already registered for next year.",
			IsApproved: true,
			IsFeatured: true,
			CreatedAt:  time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "seed-review-3",
			AuthorName: "Dr. Yuki Tanaka",
			Clinic:     "Tanaka Dental Office",
			City:       "Osaka",
			Rating:     4,
			Text:       "Great clinical content. The hardcopy certificate arrived within two weeks.",
			IsApproved: true,
			IsFeatured: false,
			CreatedAt:  time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC),
		},
	}
}
