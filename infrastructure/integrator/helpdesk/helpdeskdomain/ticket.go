package helpdeskdomain

import "time"

// Status devolvidos pelo helpdesk
const (
	StatusNew     = "new"
	StatusOpen    = "open"
	StatusPending = "pending"
	StatusHold    = "hold"
	StatusSolved  = "solved"
	StatusClosed  = "closed"
)

type Ticket struct {
	ID             int64     `json:"id"`
	Protocol       string    `json:"protocol"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Category       string    `json:"category,omitempty"`
	RequesterEmail string    `json:"requester_email"`
	Tags           []string  `json:"tags"`
	Comments       []Comment `json:"comments,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Comment struct {
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketEnvelope struct {
	Ticket Ticket `json:"ticket"`
}

type TicketList struct {
	Tickets []Ticket `json:"tickets"`
	Count   int      `json:"count"`
}

type CreateTicketPayload struct {
	Subject        string   `json:"subject"`
	Description    string   `json:"description"`
	RequesterEmail string   `json:"requester_email"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags"`
}

type CommentPayload struct {
	AuthorEmail string `json:"author_email"`
	Body        string `json:"body"`
}

// ErrorResponse representa o corpo de erro da API do helpdesk
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}
