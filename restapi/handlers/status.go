package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bnb-chain/subgraph-store/service"
	"github.com/bnb-chain/subgraph-store/util"
)

// HandleGetStatuses answers GET /status?deployment=a&deployment=b,c, no deployment means all
func HandleGetStatuses(svc service.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var deployments []string
		for _, v := range r.URL.Query()["deployment"] {
			deployments = append(deployments, util.SplitByComma(v)...)
		}
		infos, err := svc.GetStatuses(r.Context(), deployments)
		writeResponse(w, infos, err)
	}
}

// HandleGetDeployment answers GET /deployments/{deployment}
func HandleGetDeployment(svc service.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ent, err := svc.GetDeployment(r.Context(), mux.Vars(r)["deployment"])
		writeResponse(w, ent, err)
	}
}
