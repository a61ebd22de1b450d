package dto

import "volunteerhub/modules/auth/entity"

// ===================== Request DTOs =====================

// RegisterRequest creates a new NGO admin account
type RegisterRequest struct {
	NGOName       string `json:"ngo_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	ContactNumber string `json:"contact_number"`
	Location      string `json:"location"`
}

// LoginRequest authenticates an NGO admin
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ===================== Response DTOs =====================

// AdminResponse is the public view of an admin account
type AdminResponse struct {
	ID            string `json:"id"`
	NGOName       string `json:"ngo_name"`
	NGOCode       string `json:"ngo_code"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number,omitempty"`
	Location      string `json:"location,omitempty"`
}

// AuthResponse carries the access token and the authenticated admin
type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// GoogleLoginURLResponse carries the consent-screen redirect URL
type GoogleLoginURLResponse struct {
	URL string `json:"url"`
}

func ToAdminResponse(admin *entity.Admin) AdminResponse {
	resp := AdminResponse{
		ID:      admin.ID.String(),
		NGOName: admin.NGOName,
		NGOCode: admin.NGOCode,
		Email:   admin.Email,
	}
	if admin.ContactNumber != nil {
		resp.ContactNumber = *admin.ContactNumber
	}
	if admin.Location != nil {
		resp.Location = *admin.Location
	}
	return resp
}
