package controllers

import (
	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/arvind-0212/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// POST /register
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req struct {
		Username      string `json:"username" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required,min=8"`
		Phone         string `json:"phone"`
		ShippingName  string `json:"shipping_name"`
		ShippingPhone string `json:"shipping_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	db := config.DB
	var existing models.User
	if err := db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration conflict for email: %s", req.Email)
		utils.Conflict(c, "An account with this email or username already exists", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      hash,
		Phone:         req.Phone,
		ShippingName:  req.ShippingName,
		ShippingPhone: req.ShippingPhone,
	}
	if err := db.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("Registered user ID: %d", user.ID)
	utils.Created(c, "Account created successfully", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// POST /login
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed, user not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed, bad password for user ID: %d", user.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %d", user.ID)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	utils.LogInfo("User %d logged in successfully", user.ID)
	utils.Success(c, "Logged in successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// POST /admin/login
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid admin login request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_admin = ?", req.Email, true).First(&user).Error; err != nil {
		utils.LogError("Admin login failed, account not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Admin login failed, bad password for user ID: %d", user.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate admin token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	utils.LogInfo("Admin %d logged in successfully", user.ID)
	utils.Success(c, "Logged in successfully", gin.H{
		"token": token,
	})
}
