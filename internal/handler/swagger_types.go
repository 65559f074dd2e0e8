package handler

import "weighbridge/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// TicketResponse is the parsed ticket returned by the API. Absent fields are null.
type TicketResponse struct {
	CompanyName     *string `json:"company_name" example:"정우리사이클링 (주)"`
	ProductName     *string `json:"product_name" example:"고철"`
	VehicleNumber   *string `json:"vehicle_number" example:"5405"`
	Date            *string `json:"date" example:"2026-02-01"`
	InTime          *string `json:"in_time" example:"11:33:00"`
	OutTime         *string `json:"out_time" example:"11:55:35"`
	TotalWeight     *int    `json:"total_weight" example:"14080"`
	EmptyWeight     *int    `json:"empty_weight" example:"13950"`
	NetWeight       *int    `json:"net_weight" example:"130"`
	ConfidenceScore float64 `json:"confidence_score" example:"0.9108"`
	Uncertain       bool    `json:"uncertain" example:"false"`
}

// NewTicketResponse converts a parsed ticket for the response envelope.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		CompanyName:     t.CompanyName,
		ProductName:     t.ProductName,
		VehicleNumber:   t.VehicleNumber,
		Date:            t.Date,
		InTime:          t.InTime,
		OutTime:         t.OutTime,
		TotalWeight:     t.TotalWeight,
		EmptyWeight:     t.EmptyWeight,
		NetWeight:       t.NetWeight,
		ConfidenceScore: t.ConfidenceScore,
		Uncertain:       t.Uncertain,
	}
}

// OCRRequest documents the OCR result document accepted by the API.
type OCRRequest struct {
	Text       string                 `json:"text" example:"총중량 : 14,080 kg\n공차중량 : 13,950 kg"`
	Pages      []domain.OCRPage       `json:"pages"`
	Confidence float64                `json:"confidence" example:"0.9108"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// Response wraps a successful response with data.
type Response struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode string      `json:"status_code" example:"SUCCESS"`
	Message    string      `json:"message" example:"Request successful"`
	Data       interface{} `json:"data"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success    bool        `json:"success" example:"false"`
	StatusCode string      `json:"status_code" example:"FILE_001"`
	Message    string      `json:"message" example:"지원하지 않는 파일 형식입니다. (.json 파일만 가능)"`
	Data       interface{} `json:"data"`
}

// ReadinessResponse reports component readiness.
type ReadinessResponse struct {
	Status string `json:"status" example:"ok"`
	NER    string `json:"ner" example:"ready"`
}
