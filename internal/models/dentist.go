package models

type Dentist struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Title           string `json:"title"`
	Specialty       string `json:"specialty"`
	Bio             string `json:"bio"`
	Clinic          string `json:"clinic"`
	City            string `json:"city"`
	YearsExperience int    `json:"years_experience"`
	PhotoURL        string `json:"photo_url"`
}
