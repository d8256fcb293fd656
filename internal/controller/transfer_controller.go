package controller

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"oecd_explorer/internal/service"
	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

type TransferController struct {
	service *service.TransferService
}

func NewTransferController(s *service.TransferService) *TransferController {
	return &TransferController{service: s}
}

// Export godoc
// @Summary 导出全部学习数据
// @Description 返回原始导出文档（非统一响应结构），可直接用于导入
// @Tags 导入导出
// @Produce json
// @Success 200 {object} model.ExportDocument
// @Router /export [get]
func (c *TransferController) Export(ctx *gin.Context) {
	doc, err := c.service.Export(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ExportFilename(doc.ExportedAt)))
	ctx.JSON(http.StatusOK, doc)
}

// ExportArchive godoc
// @Summary 导出到对象存储
// @Tags 导入导出
// @Produce json
// @Success 201 {object} util.Response
// @Router /export/archive [post]
func (c *TransferController) ExportArchive(ctx *gin.Context) {
	url, err := c.service.ExportToStorage(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"url": url})
}

// Import godoc
// @Summary 导入学习数据
// @Description 接受 JSON 请求体或 multipart 的 file 字段；校验失败时不修改任何数据
// @Tags 导入导出
// @Accept json,multipart/form-data
// @Produce json
// @Success 200 {object} util.Response{data=model.ImportResult}
// @Failure 400 {object} util.Response
// @Router /import [post]
func (c *TransferController) Import(ctx *gin.Context) {
	var reader io.Reader = ctx.Request.Body
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		file, _, err := ctx.Request.FormFile("file")
		if err != nil {
			util.BadRequest(ctx, "file is required")
			return
		}
		defer file.Close()
		reader = file
	}

	raw, err := io.ReadAll(io.LimitReader(reader, util.MaxImportBytes+1))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(raw) > util.MaxImportBytes {
		util.Error(ctx, http.StatusRequestEntityTooLarge, "import file is too large")
		return
	}

	result, err := c.service.Import(ctx.Request.Context(), raw)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
