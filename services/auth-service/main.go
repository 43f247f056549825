package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"

	"civicwatch-system/pkg/database"
	"civicwatch-system/pkg/middleware"
	"civicwatch-system/pkg/response"
	"civicwatch-system/services/auth-service/models"
	"civicwatch-system/services/auth-service/utils"

	"gorm.io/gorm"
)

var db *gorm.DB

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if len(password) > 100 {
		return false, "Password too long"
	}
	return true, ""
}

func main() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_DB"),
		os.Getenv("POSTGRES_PORT"),
	)
	if os.Getenv("POSTGRES_HOST") == "" {
		dsn = "host=localhost user=admin password=password dbname=auth_db port=5434 sslmode=disable TimeZone=UTC"
	}

	var err error
	db, err = database.ConnectPostgres(dsn)
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("[ERROR] Migration failed: %v", err)
	}
	log.Println("[OK] Migration complete")

	middleware.RegisterMetrics()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", registerHandler)
	mux.HandleFunc("/api/auth/login", loginHandler)
	mux.HandleFunc("/api/auth/me", middleware.AuthMiddleware(meHandler))
	mux.HandleFunc("/internal/trust", trustDeltaHandler)
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", middleware.GetMetricsHandler())

	handler := middleware.TraceMiddleware(
		middleware.MetricsMiddleware(
			middleware.LoggerMiddleware(mux),
		),
	)

	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("[INFO] Auth Service running on port :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("[ERROR] Server failed: %v", err)
	}
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("[WARN] Invalid request format")
		response.Error(w, http.StatusBadRequest, "Invalid request payload", "")
		return
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		response.Error(w, http.StatusBadRequest, "Email, Password, and Name are required", "")
		return
	}
	if !isValidEmail(input.Email) {
		response.Error(w, http.StatusBadRequest, "Invalid email format", "")
		return
	}
	if valid, msg := isValidPassword(input.Password); !valid {
		response.Error(w, http.StatusBadRequest, msg, "")
		return
	}
	if len(strings.TrimSpace(input.Name)) < 3 {
		response.Error(w, http.StatusBadRequest, "Name must be at least 3 characters", "")
		return
	}

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	switch role {
	case "":
		role = middleware.RoleCitizen
	case middleware.RoleCitizen, middleware.RoleAuthority, middleware.RoleAdmin:
	default:
		response.Error(w, http.StatusBadRequest, "Invalid role", "")
		return
	}

	var existing models.User
	if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
		log.Printf("[WARN] Registration attempt with existing email")
		response.Error(w, http.StatusConflict, "Email already registered", "")
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to process registration", "")
		return
	}

	newUser := models.User{
		Email:      input.Email,
		Password:   hashedPassword,
		Name:       strings.TrimSpace(input.Name),
		Role:       role,
		TrustScore: 50,
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("[ERROR] Failed to save user: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to save user", "")
		return
	}

	log.Printf("[OK] User registered - ID: %s", newUser.ID)

	token, err := utils.GenerateJWT(newUser.ID, newUser.Email, newUser.Name, newUser.Role)
	if err != nil {
		log.Printf("[ERROR] Failed to generate JWT for user id: %s", newUser.ID)
		response.Error(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", map[string]interface{}{
		"id":          newUser.ID,
		"token":       token,
		"name":        newUser.Name,
		"role":        newUser.Role,
		"trust_score": newUser.TrustScore,
	})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("[WARN] Invalid login request format")
		response.Error(w, http.StatusBadRequest, "Invalid request payload", "")
		return
	}
	if input.Email == "" || input.Password == "" {
		response.Error(w, http.StatusBadRequest, "Email and Password are required", "")
		return
	}

	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		log.Printf("[WARN] Failed login attempt")
		response.Error(w, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		log.Printf("[WARN] Invalid password attempt")
		response.Error(w, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("[ERROR] Failed to generate JWT for user id: %s", user.ID)
		response.Error(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	log.Printf("[OK] User logged in - ID: %s, Role: %s", user.ID, user.Role)

	response.Success(w, http.StatusOK, "Login successful", map[string]interface{}{
		"id":          user.ID,
		"token":       token,
		"name":        user.Name,
		"role":        user.Role,
		"trust_score": user.TrustScore,
	})
}

func meHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusInternalServerError, "Failed to retrieve user context", "")
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		response.Error(w, http.StatusNotFound, "User not found", "")
		return
	}

	response.Success(w, http.StatusOK, "User profile fetched", user)
}

// trustDeltaHandler applies a reputation adjustment from the report
// lifecycle engine. The score is clamped to [0, 100] in the database so
// concurrent deltas cannot push it out of range. An unknown user id is a
// no-op, not an error: reports can outlive deleted accounts.
func trustDeltaHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var input struct {
		UserID string `json:"user_id"`
		Delta  int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload", "")
		return
	}
	if input.UserID == "" {
		response.Error(w, http.StatusBadRequest, "user_id is required", "")
		return
	}

	result := db.Model(&models.User{}).
		Where("id = ?", input.UserID).
		Update("trust_score", gorm.Expr("LEAST(100, GREATEST(0, trust_score + ?))", input.Delta))
	if result.Error != nil {
		log.Printf("[ERROR] Failed to apply trust delta: %v", result.Error)
		response.Error(w, http.StatusInternalServerError, "Failed to apply trust delta", "")
		return
	}

	if result.RowsAffected == 0 {
		log.Printf("[WARN] Trust delta for unknown user id ignored")
		response.Success(w, http.StatusOK, "No matching user, delta ignored", map[string]interface{}{
			"applied": false,
		})
		return
	}

	log.Printf("[OK] Trust delta applied - User: %s, Delta: %+d", input.UserID, input.Delta)
	response.Success(w, http.StatusOK, "Trust delta applied", map[string]interface{}{
		"applied": true,
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":  "UP",
		"service": "auth-service",
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		health["status"] = "DOWN"
		health["database"] = "disconnected"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(health)
		return
	}

	health["database"] = "connected"
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
