package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"foodie-api/middleware"
	"foodie-api/models"
	"foodie-api/utils"
)

// UserController handles registration, login and profile requests.
type UserController struct {
	Collection *mongo.Collection
}

// NewUserController creates a new UserController.
func NewUserController(db *mongo.Database) *UserController {
	return &UserController{
		Collection: db.Collection("users"),
	}
}

// Register creates a new account. The role defaults to "customer".
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, failBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondFailure(w, failBadRequest, "Missing required fields: name, email, or password")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleRestaurant {
		respondFailure(w, failBadRequest, "Invalid role: "+role)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := uc.Collection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		respondServerError(w, err)
		return
	}
	if count > 0 {
		respondFailure(w, failBadRequest, "User already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondServerError(w, err)
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Phone:     req.Phone,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := uc.Collection.InsertOne(ctx, user); err != nil {
		respondServerError(w, err)
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		respondServerError(w, err)
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a user and returns a token.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondFailure(w, failBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondFailure(w, failUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		respondServerError(w, err)
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's account.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondFailure(w, failUnauthorized, "Could not parse user from context")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": claims.Email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondFailure(w, failNotFound, "User not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusOK, user)
}
