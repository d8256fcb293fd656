package controller

import (
	"time"

	"oecd_explorer/internal/service"
	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *service.ReportService
}

func NewReportController(s *service.ReportService) *ReportController {
	return &ReportController{service: s}
}

// Portfolio godoc
// @Summary 我的作品集
// @Tags 报告
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SubmissionEntry}
// @Router /portfolio [get]
func (c *ReportController) Portfolio(ctx *gin.Context) {
	util.Success(ctx, c.service.Submissions())
}

// Certificate godoc
// @Summary 结业证书
// @Description 全部模块完成后解锁
// @Tags 报告
// @Produce json
// @Success 200 {object} util.Response{data=model.Certificate}
// @Router /certificate [get]
func (c *ReportController) Certificate(ctx *gin.Context) {
	util.Success(ctx, c.service.Certificate(time.Now()))
}

// AdminSubmissions godoc
// @Summary 提交列表（管理员策展）
// @Tags 报告
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SubmissionEntry}
// @Router /admin/submissions [get]
func (c *ReportController) AdminSubmissions(ctx *gin.Context) {
	entries := c.service.Submissions()
	util.Success(ctx, gin.H{
		"total":       len(entries),
		"submissions": entries,
	})
}
