package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
)

func CreateTicket(service support.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, claims, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		var req domain.CreateTicketRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.RequesterEmail == "" {
			req.RequesterEmail = claims.UserEmail
		}

		ticket, err := service.CreateTicket(r.Context(), schoolID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, ticket)
	}
}

func ListTickets(service support.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		tickets, err := service.ListTickets(r.Context(), schoolID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, tickets)
	}
}

// GetTicket aceita id numérico, protocolo ou referência em :ref;
// ?requester_email habilita a busca por solicitante
func GetTicket(service support.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		reference := httprouter.ParamsFromContext(r.Context()).ByName("ref")
		requesterEmail := r.URL.Query().Get("requester_email")

		ticket, err := service.GetTicket(r.Context(), schoolID, reference, requesterEmail)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ticket)
	}
}

func AddTicketComment(service support.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, claims, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		var req domain.AddCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.AuthorEmail == "" {
			req.AuthorEmail = claims.UserEmail
		}

		reference := httprouter.ParamsFromContext(r.Context()).ByName("ref")

		ticket, err := service.AddComment(r.Context(), schoolID, reference, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, ticket)
	}
}
