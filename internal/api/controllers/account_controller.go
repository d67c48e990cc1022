package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelbot/internal/models/request_models"
	"travelbot/internal/services"
	"travelbot/pkg/middleware"
	"travelbot/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	historyService services.HistoryServiceInterface
	logger         *zap.Logger
}

func NewAccountController(
	accountService services.AccountServiceInterface,
	historyService services.HistoryServiceInterface,
	logger *zap.Logger,
) *AccountController {
	return &AccountController{
		accountService: accountService,
		historyService: historyService,
		logger:         logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account with a default profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// GetProfile godoc
// @Summary Current account profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.HandleServiceError(c, a.logger, utils.ErrUnauthorized)
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), *accountID)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile retrieved successfully")
}

// UpdateProfile godoc
// @Summary Update language and travel preferences
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.HandleServiceError(c, a.logger, utils.ErrUnauthorized)
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), *accountID, req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// ChatHistory godoc
// @Summary Every exchange sent by the current account, newest first
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/history [get]
func (a *AccountController) ChatHistory(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.HandleServiceError(c, a.logger, utils.ErrUnauthorized)
		return
	}

	page, perPage := pageParams(c)

	history, err := a.historyService.ListByAccount(c.Request.Context(), *accountID, page, perPage)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, history, "Chat history retrieved successfully")
}
