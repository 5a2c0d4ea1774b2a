package models

type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // em minutos
	Price    float64 `json:"price"`
}
