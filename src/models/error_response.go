package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status int    `json:"status" example:"404"`                // HTTP Status Code
	Detail string `json:"detail" example:"Activity not found"` // รายละเอียดของ Error
}

// MessageResponse is the body of a successful signup or cancellation.
type MessageResponse struct {
	Message string `json:"message" example:"Signed up emma@mergington.edu for Chess Club"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Redis  string `json:"redis" example:"disabled"`
}
