package controllers

import (
	"net/http"

	"car_dealership_api/app"

	"github.com/gin-gonic/gin"
)

type ContractController struct{ *Srv }

func NewContractController(s *Srv) *ContractController { return &ContractController{Srv: s} }

// GET /api/contracts
func (cc *ContractController) ListContracts(c *gin.Context) {
	rows, err := cc.Repo.ListContracts(c.Request.Context())
	if err != nil {
		cc.logErr("list_contracts", err)
		respondErr(c, http.StatusInternalServerError, "Contracts loading failed")
		return
	}
	respond(c, app.H{"contracts": rows})
}
