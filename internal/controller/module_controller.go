package controller

import (
	"io"
	"net/http"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/service"
	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	modules *service.ModuleService
	reports *service.ReportService
}

func NewModuleController(modules *service.ModuleService, reports *service.ReportService) *ModuleController {
	return &ModuleController{modules: modules, reports: reports}
}

type QuizRequest struct {
	Answers map[int]int `json:"answers" binding:"required"`
}

// ListModules godoc
// @Summary 课程总览
// @Description 目录中每个模块的完成状态与测验成绩
// @Tags 模块
// @Produce json
// @Success 200 {object} util.Response{data=model.Overview}
// @Router /modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	util.Success(ctx, c.reports.Overview())
}

// Enter godoc
// @Summary 进入模块
// @Description 从第一步（任务）开始步骤流程
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/enter [post]
func (c *ModuleController) Enter(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	view, err := c.modules.Enter(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Session godoc
// @Summary 当前步骤
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/session [get]
func (c *ModuleController) Session(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	view, err := c.modules.View(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

func (c *ModuleController) step(fn func(ctx *gin.Context, id int) (*model.StepView, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := moduleID(ctx)
		if !ok {
			return
		}
		view, err := fn(ctx, id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, view)
	}
}

// AcceptAssignment godoc
// @Summary 接受任务（任务 → 学习）
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Failure 409 {object} util.Response
// @Router /modules/{id}/assignment [post]
func (c *ModuleController) AcceptAssignment(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		return c.modules.AcceptAssignment(ctx.Request.Context(), id)
	})(ctx)
}

// CompleteLearning godoc
// @Summary 完成阅读（学习 → 测验）
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/learn [post]
func (c *ModuleController) CompleteLearning(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		return c.modules.CompleteLearning(ctx.Request.Context(), id)
	})(ctx)
}

// GetQuiz godoc
// @Summary 获取测验题目（不含答案）
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=[]model.AssessmentQuestion}
// @Router /modules/{id}/quiz [get]
func (c *ModuleController) GetQuiz(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"questions":    model.Assessment(),
		"passingScore": model.PassingScore,
	})
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 80 分及以上通过并进入调研步骤，未通过可重试
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body QuizRequest true "题号到选项序号的映射"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 422 {object} util.Response
// @Router /modules/{id}/quiz [post]
func (c *ModuleController) SubmitQuiz(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	outcome, err := c.modules.SubmitQuiz(ctx.Request.Context(), id, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// ContinueQuiz godoc
// @Summary 已通过测验，直接继续
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/quiz/continue [post]
func (c *ModuleController) ContinueQuiz(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		return c.modules.ContinueQuiz(ctx.Request.Context(), id)
	})(ctx)
}

// CompleteInvestigation godoc
// @Summary 完成调研（调研 → 构建）
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/investigate [post]
func (c *ModuleController) CompleteInvestigation(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		return c.modules.CompleteInvestigation(ctx.Request.Context(), id)
	})(ctx)
}

// SaveDraft godoc
// @Summary 保存构建草稿
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body model.PackageDraft true "草稿字段，省略的字段保持不变"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/draft [put]
func (c *ModuleController) SaveDraft(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		var draft model.PackageDraft
		if err := ctx.ShouldBindJSON(&draft); err != nil {
			return nil, util.NewValidationError(model.StepBuild.String(), err.Error())
		}
		return c.modules.SaveDraft(ctx.Request.Context(), id, draft)
	})(ctx)
}

// UploadInfographic godoc
// @Summary 上传信息图
// @Description 仅接受图片，保存为 data URI
// @Tags 模块
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "模块ID"
// @Param file formData file true "图片文件"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/infographic [post]
func (c *ModuleController) UploadInfographic(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	if header.Size > util.MaxInfographicBytes {
		util.Error(ctx, http.StatusRequestEntityTooLarge, "infographic is too large")
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, util.MaxInfographicBytes+1))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(data) > util.MaxInfographicBytes {
		util.Error(ctx, http.StatusRequestEntityTooLarge, "infographic is too large")
		return
	}
	mimeType, err := util.ValidateMimeType(data, util.AllowedImageTypes)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.modules.AttachInfographic(ctx.Request.Context(), id, mimeType, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// SubmitPackage godoc
// @Summary 提交成果包（构建 → 发布）
// @Description 草稿先保存，再检查信息图、证据锚点、150-220 词文章、三条反思与 AI 日志
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body model.PackageDraft false "最后一次修改"
// @Success 200 {object} util.Response{data=model.StepView}
// @Failure 422 {object} util.Response
// @Router /modules/{id}/package [post]
func (c *ModuleController) SubmitPackage(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		var draft model.PackageDraft
		if ctx.Request.ContentLength != 0 {
			if err := ctx.ShouldBindJSON(&draft); err != nil {
				return nil, util.NewValidationError(model.StepBuild.String(), err.Error())
			}
		}
		return c.modules.SubmitPackage(ctx.Request.Context(), id, draft)
	})(ctx)
}

// Publish godoc
// @Summary 发布并完成模块
// @Description 发布链接必须指向 LinkedIn
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body model.PublishRequest true "发布信息"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 422 {object} util.Response
// @Router /modules/{id}/publish [post]
func (c *ModuleController) Publish(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	var req model.PublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sub, err := c.modules.Publish(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// Previous godoc
// @Summary 返回上一步
// @Description 从构建步骤返回时保存草稿（不校验）
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body model.PackageDraft false "构建草稿"
// @Success 200 {object} util.Response{data=model.StepView}
// @Router /modules/{id}/previous [post]
func (c *ModuleController) Previous(ctx *gin.Context) {
	c.step(func(ctx *gin.Context, id int) (*model.StepView, error) {
		var draft *model.PackageDraft
		if ctx.Request.ContentLength != 0 {
			draft = &model.PackageDraft{}
			if err := ctx.ShouldBindJSON(draft); err != nil {
				return nil, util.NewValidationError("previous", err.Error())
			}
		}
		return c.modules.Previous(ctx.Request.Context(), id, draft)
	})(ctx)
}

// Leave godoc
// @Summary 离开模块返回总览
// @Tags 模块
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response
// @Router /modules/{id}/leave [post]
func (c *ModuleController) Leave(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	c.modules.Leave(id)
	util.Success(ctx, gin.H{"route": model.RouteDashboard})
}

// CompleteIntro godoc
// @Summary 确认介绍模块
// @Description 只有介绍模块（ID 0）可以直接完成
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=model.ModuleProgress}
// @Router /modules/{id}/complete [post]
func (c *ModuleController) CompleteIntro(ctx *gin.Context) {
	id, ok := moduleID(ctx)
	if !ok {
		return
	}
	progress, err := c.modules.CompleteIntro(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
