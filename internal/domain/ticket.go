package domain

import "time"

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusResolved TicketStatus = "resolved"
	TicketStatusClosed   TicketStatus = "closed"
)

// Ticket é a visão do portal de um chamado do helpdesk externo
type Ticket struct {
	ID             string          `json:"id"`
	Protocol       string          `json:"protocol"`
	Reference      string          `json:"reference,omitempty"`
	Subject        string          `json:"subject"`
	Description    string          `json:"description,omitempty"`
	Status         TicketStatus    `json:"status"`
	Category       string          `json:"category,omitempty"`
	RequesterEmail string          `json:"requester_email"`
	SchoolID       string          `json:"school_id"`
	Comments       []TicketComment `json:"comments,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type TicketComment struct {
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTicketRequest struct {
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	RequesterEmail string `json:"requester_email"`
	Category       string `json:"category,omitempty"`
}

type AddCommentRequest struct {
	AuthorEmail string `json:"author_email"`
	Body        string `json:"body"`
}
