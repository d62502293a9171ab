package dto

type CreateEventRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	StartsAt        string `json:"starts_at" binding:"required"`
	EndsAt          string `json:"ends_at"`
	LocationType    string `json:"location_type" binding:"required,oneof=physical virtual hybrid"`
	LocationAddress string `json:"location_address" binding:"required"`
}

type RegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Cohort string `json:"cohort" binding:"required"`
	Batch  string `json:"batch" binding:"required"`
}
