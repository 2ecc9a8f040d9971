package controllers

import (
	"qlnt/response"
	"qlnt/services"

	"github.com/gin-gonic/gin"
)

type ContractController struct {
	contractService *services.ContractService
}

func NewContractController(contractService *services.ContractService) *ContractController {
	return &ContractController{contractService: contractService}
}

// GetContract trả dữ liệu hợp đồng đã dựng sẵn để frontend đổ vào mẫu in
func (ctl *ContractController) GetContract(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	projection, err := ctl.contractService.BuildProjection(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, projection)
}
