package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for users, including registration
// and login.
type UserController struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, authService *services.AuthService) *UserController {
	return &UserController{
		userService: userService,
		authService: authService,
	}
}

type registerRequest struct {
	Username        string `json:"username" validate:"required,alphanum"`
	FirstName       string `json:"first_name" validate:"required,alphanum"`
	LastName        string `json:"last_name" validate:"required,alphanum"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username        string `json:"username" validate:"omitempty,alphanum"`
	FirstName       string `json:"first_name" validate:"omitempty,alphanum"`
	LastName        string `json:"last_name" validate:"omitempty,alphanum"`
	OldPassword     string `json:"old_password"`
	Password        string `json:"password" validate:"omitempty,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
	AdminPasscode   string `json:"admin_passcode"`
}

// Index handles listing all users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, users)
}

// Show handles displaying a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	user, err := uc.userService.GetUser(mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, user)
}

// Create handles user registration
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := uc.authService.Register(req.Username, req.FirstName, req.LastName, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, user)
}

// Login handles credential checks and token issuance
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := uc.authService.Login(req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, map[string]string{"token": token})
}

// Update handles partial user updates
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := uc.userService.UpdateUser(identity, mux.Vars(r)["id"], services.UserPatch{
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		OldPassword:   req.OldPassword,
		Password:      req.Password,
		AdminPasscode: req.AdminPasscode,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, user)
}

// Delete handles deleting a user and cascading to their posts and comments
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	if _, err := uc.userService.DeleteUser(identity, mux.Vars(r)["id"]); err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, map[string]string{"message": "User deleted successfully."})
}
