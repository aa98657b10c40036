package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func userToResponse(record *core.Record) userResponse {
	return userResponse{
		ID:    record.Id,
		Email: record.Email(),
		Name:  record.GetString("name"),
		Role:  utils.GetUserRole(record),
	}
}

func authResponse(re *core.RequestEvent, record *core.Record) error {
	token, err := record.NewAuthToken()
	if err != nil {
		log.Printf("[Auth] Failed to issue token for %s: %v", record.Id, err)
		return utils.InternalErrorResponse(re, "Failed to issue token")
	}
	return re.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        userToResponse(record),
	})
}

// handleRegister creates a new user account and signs it in
func handleRegister(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		var req registerRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		email := utils.NormalizeEmail(req.Email)
		if email == "" || req.Password == "" || req.Name == "" {
			return utils.BadRequestResponse(re, "Email, password and name are required")
		}

		role := req.Role
		if role == "" {
			role = "admin"
		}
		if !utils.ValidRole(role) {
			return utils.BadRequestResponse(re, "Invalid role")
		}

		if existing, _ := app.FindAuthRecordByEmail(utils.CollectionUsers, email); existing != nil {
			return utils.BadRequestResponse(re, "Email already registered")
		}

		collection, err := app.FindCollectionByNameOrId(utils.CollectionUsers)
		if err != nil {
			return utils.InternalErrorResponse(re, "Users collection not found")
		}

		record := core.NewRecord(collection)
		record.SetEmail(email)
		record.Set("name", req.Name)
		record.Set(utils.FieldRole, role)
		record.SetPassword(req.Password)
		record.SetVerified(true)

		if err := app.Save(record); err != nil {
			log.Printf("[Auth] Failed to register %s: %v", email, err)
			return utils.BadRequestResponse(re, "Could not create account")
		}

		utils.AuditSuccess(app, re, utils.AuditActionRegister, record.Id, map[string]any{"email": email})
		log.Printf("[Auth] Registered user %s", email)
		return authResponse(re, record)
	}
}

// handleLogin authenticates a user by email and password
func handleLogin(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		var req loginRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		email := utils.NormalizeEmail(req.Email)
		record, err := app.FindAuthRecordByEmail(utils.CollectionUsers, email)
		if err != nil || !record.ValidatePassword(req.Password) {
			utils.AuditFailure(app, re, utils.AuditActionLogin, email, nil)
			return utils.UnauthorizedResponse(re, "Invalid credentials")
		}

		utils.AuditSuccess(app, re, utils.AuditActionLogin, record.Id, nil)
		return authResponse(re, record)
	}
}

// handleMe returns the authenticated user's profile
func handleMe() func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		return utils.DataResponse(re, userToResponse(re.Auth))
	}
}
