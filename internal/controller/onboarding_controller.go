package controller

import (
	"oecd_explorer/internal/model"
	"oecd_explorer/internal/service"
	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	service *service.OnboardingService
}

func NewOnboardingController(s *service.OnboardingService) *OnboardingController {
	return &OnboardingController{service: s}
}

type OnboardRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Onboard godoc
// @Summary 创建学习者身份
// @Description 仅首次进入时可用，之后身份只能通过导入替换
// @Tags 入门
// @Accept json
// @Produce json
// @Param body body OnboardRequest true "姓名与角色"
// @Success 201 {object} util.Response{data=model.Identity}
// @Failure 409 {object} util.Response
// @Router /onboard [post]
func (c *OnboardingController) Onboard(ctx *gin.Context) {
	var req OnboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	identity, err := c.service.Onboard(ctx.Request.Context(), req.Name, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, identity)
}

// GetSettings godoc
// @Summary 获取 LRS 集成设置
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response{data=model.IntegrationConfig}
// @Router /settings [get]
func (c *OnboardingController) GetSettings(ctx *gin.Context) {
	util.Success(ctx, c.service.Settings())
}

// UpdateSettings godoc
// @Summary 更新 LRS 集成设置
// @Description 启用时 endpoint 必须是绝对的 http(s) 地址
// @Tags 设置
// @Accept json
// @Produce json
// @Param body body model.IntegrationConfig true "集成设置"
// @Success 200 {object} util.Response{data=model.IntegrationConfig}
// @Router /settings [put]
func (c *OnboardingController) UpdateSettings(ctx *gin.Context) {
	var req model.IntegrationConfig
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cfg, err := c.service.UpdateSettings(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}
